package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typelang/internal/ast"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

func identityProgram() *ast.Program {
	return &ast.Program{
		Decls: []ast.Decl{
			&ast.FuncDecl{
				Name:   "id",
				Params: []string{"x"},
				Body:   &ast.Var{Name: "x"},
			},
		},
	}
}

func TestCheckReturnsSchemeForEveryFunction(t *testing.T) {
	result, err := Check(identityProgram(), Options{})
	require.NoError(t, err)
	require.Contains(t, result.Schemes, "id")
}

func TestCompileLowersACheckedProgram(t *testing.T) {
	mod, err := Compile(identityProgram(), Options{})
	require.NoError(t, err)
	require.NotNil(t, mod)
	assert.Contains(t, mod.FuncOrder, "id")
}

func TestCheckRejectsEmptyProgram(t *testing.T) {
	_, err := Check(&ast.Program{}, Options{})
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.TYPE010, rep.Code)
}

func TestWrapUnclassifiedPassesThroughExistingReports(t *testing.T) {
	original := tlerrors.WrapReport(tlerrors.New("frontend", tlerrors.TYPE010, "boom", nil))
	wrapped := WrapUnclassified("frontend", original)
	assert.Same(t, original, wrapped)
}

func TestWrapUnclassifiedWrapsPlainErrors(t *testing.T) {
	plain := errors.New("not a report")
	wrapped := WrapUnclassified("frontend", plain)
	rep, ok := tlerrors.AsReport(wrapped)
	require.True(t, ok)
	assert.Equal(t, "frontend", rep.Phase)
}

func TestWrapUnclassifiedNilIsNil(t *testing.T) {
	assert.Nil(t, WrapUnclassified("frontend", nil))
}
