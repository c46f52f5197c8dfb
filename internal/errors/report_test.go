package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typelang/internal/ast"
)

func TestReportErrorFormat(t *testing.T) {
	span := &ast.Span{Start: ast.Pos{Line: 3, Col: 5, Offset: 42}}
	r := New("typecheck", TYPE001, "cannot unify Int with Bool", span)
	err := WrapReport(r)
	assert.Equal(t, "[TYPE001] cannot unify Int with Bool @line=3,col=5 @pos=42", err.Error())
}

func TestAsReportRoundTrip(t *testing.T) {
	r := New("lower", COREIR070, "unresolved identifier foo", nil)
	err := WrapReport(r)
	got, ok := AsReport(err)
	require.True(t, ok)
	assert.Equal(t, COREIR070, got.Code)
}

func TestRenderWithSnippet(t *testing.T) {
	span := &ast.Span{Start: ast.Pos{Line: 1, Col: 4, Offset: 4}}
	r := New("lower", COREIR070, "unresolved identifier foo", span)
	out := RenderWithSnippet(r, "let x = foo")
	assert.Contains(t, out, "let x = foo")
	assert.Contains(t, out, "^")
}

func TestGetErrorInfoKnownCode(t *testing.T) {
	info, ok := GetErrorInfo(TYPE002)
	require.True(t, ok)
	assert.Equal(t, "typecheck", info.Phase)
}
