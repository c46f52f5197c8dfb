package infer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typelang/internal/ast"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/types"
)

func TestIntLiteralInfersNumConstraint(t *testing.T) {
	c := NewCtx()
	qt, err := c.Infer(NewEnv(), &ast.Lit{Kind: ast.IntLit, Int: 1})
	require.NoError(t, err)
	qt = c.ApplyQual(qt)
	require.Len(t, qt.Constraints, 1)
	assert.Equal(t, "Num", qt.Constraints[0].Class)
	assert.IsType(t, &types.TVar{}, qt.Type)
}

func TestFloatLiteralInfersFractionalConstraint(t *testing.T) {
	c := NewCtx()
	qt, err := c.Infer(NewEnv(), &ast.Lit{Kind: ast.FloatLit, Flt: 1.5})
	require.NoError(t, err)
	require.Len(t, qt.Constraints, 1)
	assert.Equal(t, "Fractional", qt.Constraints[0].Class)
}

func TestCharAndStringLiteralsAreGround(t *testing.T) {
	c := NewCtx()
	qt, err := c.Infer(NewEnv(), &ast.Lit{Kind: ast.StringLit, Str: "hi"})
	require.NoError(t, err)
	assert.Empty(t, qt.Constraints)
	assert.Equal(t, "String", qt.Type.String())

	c = NewCtx()
	qt, err = c.Infer(NewEnv(), &ast.Lit{Kind: ast.CharLit, Char: 'a'})
	require.NoError(t, err)
	assert.Empty(t, qt.Constraints)
	assert.Equal(t, "Char", qt.Type.String())
}

func TestShowOneWithoutDefaulting(t *testing.T) {
	c := NewCtx()
	litQT, err := c.Infer(NewEnv(), &ast.Lit{Kind: ast.IntLit, Int: 1})
	require.NoError(t, err)
	litQT = c.ApplyQual(litQT)
	showQT := types.NewQualifiedType(types.TString(), append(litQT.Constraints, types.Constraint{Class: "Show", Type: litQT.Type}))
	pretty := types.PrettyPrint(showQT)
	assert.Equal(t, "Num a, Show a => String", pretty)
}

func TestShowOneWithDefaulting(t *testing.T) {
	c := NewCtx()
	litQT, err := c.Infer(NewEnv(), &ast.Lit{Kind: ast.IntLit, Int: 1})
	require.NoError(t, err)
	litQT = c.ApplyQual(litQT)
	showQT := types.NewQualifiedType(types.TString(), append(litQT.Constraints, types.Constraint{Class: "Show", Type: litQT.Type}))
	defaulted := Default(showQT)
	assert.Equal(t, "String", types.PrettyPrint(defaulted))
}

func TestIfBranchesMustUnify(t *testing.T) {
	c := NewCtx()
	e := &ast.If{
		Cond: &ast.Lit{Kind: ast.BoolLit, Bool: true},
		Then: &ast.Lit{Kind: ast.BoolLit, Bool: false},
		Else: &ast.Lit{Kind: ast.StringLit, Str: "x"},
	}
	_, err := c.Infer(NewEnv(), e)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, "TYPE001", rep.Code)
}

func TestCaseBindsCharLiteralPatternAgainstCharScrutinee(t *testing.T) {
	c := NewCtx()
	e := &ast.Case{
		Scrutinee: &ast.Lit{Kind: ast.CharLit, Char: 'a'},
		Arms: []ast.CaseArm{
			{Pattern: &ast.PLit{Kind: ast.CharLit, Char: 'a'}, Body: &ast.Lit{Kind: ast.BoolLit, Bool: true}},
			{Pattern: &ast.PWildcard{}, Body: &ast.Lit{Kind: ast.BoolLit, Bool: false}},
		},
	}
	qt, err := c.Infer(NewEnv(), e)
	require.NoError(t, err)
	assert.Equal(t, types.TBool, qt.Type)
}

func TestLambdaAppRoundTrip(t *testing.T) {
	c := NewCtx()
	env := PreludeEnv(c)
	// \x -> x + 1
	body := &ast.BinOp{Op: "+", Left: &ast.Var{Name: "x"}, Right: &ast.Lit{Kind: ast.IntLit, Int: 1}}
	lam := &ast.Lambda{Params: []string{"x"}, Body: body}
	qt, err := c.Infer(env, lam)
	require.NoError(t, err)
	qt = c.ApplyQual(qt)
	fn, ok := qt.Type.(*types.TFun)
	require.True(t, ok)
	assert.True(t, fn.Param.Equals(fn.Result))
}

// square :: Num a => a -> a; square x = x — the unconstrained body must
// not cause the signature's declared constraint to be dropped.
func TestInferProgramKeepsSignatureDeclaredConstraint(t *testing.T) {
	a := ast.TEVar{Name: "a"}
	sig := &ast.SchemeSyntax{
		Constraints: []ast.ConstraintSyntax{{ClassName: "Num", TypeVar: "a"}},
		Type:        ast.TEFun{Param: a, Return: a},
	}
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{Name: "square", Params: []string{"x"}, Sig: sig, Body: &ast.Var{Name: "x"}},
	}}

	_, schemes, err := InferProgram(prog)
	require.NoError(t, err)
	scheme, ok := schemes["square"]
	require.True(t, ok)
	require.Len(t, scheme.Qual.Constraints, 1)
	assert.Equal(t, "Num", scheme.Qual.Constraints[0].Class)
}

func TestLetGeneralizesAcrossUses(t *testing.T) {
	c := NewCtx()
	env := PreludeEnv(c)
	// let id = \x -> x in (id 1, id "s")
	idLambda := &ast.Lambda{Params: []string{"x"}, Body: &ast.Var{Name: "x"}}
	body := &ast.Tuple{Items: []ast.Expr{
		&ast.App{Func: &ast.Var{Name: "id"}, Arg: &ast.Lit{Kind: ast.IntLit, Int: 1}},
		&ast.App{Func: &ast.Var{Name: "id"}, Arg: &ast.Lit{Kind: ast.StringLit, Str: "s"}},
	}}
	letExpr := &ast.Let{Bindings: []ast.Binding{{Name: "id", Value: idLambda}}, Body: body}
	_, err := c.Infer(env, letExpr)
	require.NoError(t, err)
}
