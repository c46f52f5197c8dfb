package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/infer"
)

func mustLower(t *testing.T, prog *ast.Program) *core.Module {
	t.Helper()
	ctx, schemes, err := infer.InferProgram(prog)
	require.NoError(t, err)
	mod, err := Lower(prog, ctx, schemes)
	require.NoError(t, err)
	return mod
}

// square x = x * x has no pinned signature, so its scheme stays
// polymorphic (Num a => a -> a) and the multiply lowers through the
// dictionary fallback rather than a concrete case.
func TestLowerPolymorphicBinOpUsesDictionaryFallback(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name:   "square",
			Params: []string{"x"},
			Body:   &ast.BinOp{Op: "*", Left: &ast.Var{Name: "x"}, Right: &ast.Var{Name: "x"}},
		},
	}}

	mod := mustLower(t, prog)
	fn := mod.Functions["square"]
	require.NotNil(t, fn)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, core.PKDictionary, fn.Params[0].Kind)
	assert.Equal(t, "Num", fn.Params[0].ClassName)
	assert.Equal(t, core.PKValue, fn.Params[1].Kind)

	prim, ok := fn.Body.(*core.PrimOp)
	require.True(t, ok)
	assert.True(t, prim.DictionaryFallback)
	assert.Equal(t, "Num", prim.FallbackClass)
	assert.Equal(t, "mul", prim.FallbackMethod)

	require.Len(t, mod.Dicts, 1)
	assert.Equal(t, "Num", mod.Dicts[0].ClassName)
	assert.Equal(t, core.BuilderUnresolved, mod.Dicts[0].Builder)
}

// square :: Num a => a -> a; square x = x — the body alone (a bare
// parameter reference) generates no constraint at all, so the Num
// constraint reaching the lowered signature can only have come from the
// declared scheme (spec.md §8.2 scenario 2).
func TestLowerSignatureOnlyConstraintStillProducesDictParam(t *testing.T) {
	a := ast.TEVar{Name: "a"}
	sig := &ast.SchemeSyntax{
		Constraints: []ast.ConstraintSyntax{{ClassName: "Num", TypeVar: "a"}},
		Type:        ast.TEFun{Param: a, Return: a},
	}

	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name:   "square",
			Params: []string{"x"},
			Sig:    sig,
			Body:   &ast.Var{Name: "x"},
		},
	}}

	mod := mustLower(t, prog)
	fn := mod.Functions["square"]
	require.NotNil(t, fn)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, core.PKDictionary, fn.Params[0].Kind)
	assert.Equal(t, "Num", fn.Params[0].ClassName)
	assert.Equal(t, core.PKValue, fn.Params[1].Kind)

	require.Len(t, mod.Dicts, 1)
	assert.Equal(t, "Num", mod.Dicts[0].ClassName)
}

// addInts(x, y) = x + y, pinned to Int -> Int -> Int. The Num constraint
// incurred by "+" is still present in the scheme (this repo's dictionary
// passing does not discharge constraints against concrete ground types, it
// defers that to the dictionary's own Builder: see DESIGN.md), but since
// both operands carry a concrete ValueTy, lowering still picks the
// concrete Int case for the operator itself rather than the fallback.
func TestLowerConcreteSignatureUsesConcreteCase(t *testing.T) {
	intTy := ast.TECon{Name: "Int"}
	sig := &ast.SchemeSyntax{Type: ast.TEFun{Param: intTy, Return: ast.TEFun{Param: intTy, Return: intTy}}}

	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name:   "addInts",
			Params: []string{"x", "y"},
			Sig:    sig,
			Body:   &ast.BinOp{Op: "+", Left: &ast.Var{Name: "x"}, Right: &ast.Var{Name: "y"}},
		},
	}}

	mod := mustLower(t, prog)
	fn := mod.Functions["addInts"]
	require.NotNil(t, fn)
	require.Len(t, fn.Params, 3)
	assert.Equal(t, core.PKDictionary, fn.Params[0].Kind)
	assert.Equal(t, core.PKValue, fn.Params[1].Kind)
	assert.Equal(t, core.PKValue, fn.Params[2].Kind)
	assert.Equal(t, core.VInt, fn.Result.Kind)

	require.Len(t, mod.Dicts, 1)
	assert.Equal(t, core.BuilderResolved, mod.Dicts[0].Builder)

	prim, ok := fn.Body.(*core.PrimOp)
	require.True(t, ok)
	assert.False(t, prim.DictionaryFallback)
	assert.Equal(t, core.OpIAdd, prim.Op)
	assert.Equal(t, core.VInt, prim.Ty().Kind)
}

// main = if true then 1 else 2, exercising If lowering and entry detection.
func TestLowerIfAndEntryDetection(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name: "main",
			Body: &ast.If{
				Cond: &ast.Lit{Kind: ast.BoolLit, Bool: true},
				Then: &ast.Lit{Kind: ast.IntLit, Int: 1},
				Else: &ast.Lit{Kind: ast.IntLit, Int: 2},
			},
		},
	}}

	mod := mustLower(t, prog)
	assert.Equal(t, "main", mod.Entry)
	fn := mod.Functions["main"]
	require.NotNil(t, fn)
	ifExpr, ok := fn.Body.(*core.If)
	require.True(t, ok)
	// Neither branch's Num literal was ever forced to a concrete carrier
	// (no defaulting runs inside InferProgram), so it stays Unknown here.
	assert.Equal(t, core.VUnknown, ifExpr.Ty().Kind)
}

// data Box a = MkBox a
// unwrap b = case b of MkBox v -> v
func TestLowerCaseConstructorPatternBindsField(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.DataDecl{
			Name:       "Box",
			TypeParams: []string{"a"},
			Ctors: []ast.CtorDecl{
				{Name: "MkBox", Fields: []ast.TypeSyntax{ast.TEVar{Name: "a"}}},
			},
		},
		&ast.FuncDecl{
			Name:   "unwrap",
			Params: []string{"b"},
			Body: &ast.Case{
				Scrutinee: &ast.Var{Name: "b"},
				Arms: []ast.CaseArm{
					{
						Pattern: &ast.PCtor{Name: "MkBox", Args: []ast.Pattern{&ast.PVar{Name: "v"}}},
						Body:    &ast.Var{Name: "v"},
					},
				},
			},
		},
	}}

	mod := mustLower(t, prog)
	fn := mod.Functions["unwrap"]
	require.NotNil(t, fn)
	m, ok := fn.Body.(*core.Match)
	require.True(t, ok)
	require.Len(t, m.Arms, 1)
	arm := m.Arms[0]
	assert.Equal(t, "MkBox", arm.CtorName)
	assert.True(t, arm.HasCtor)
	require.Len(t, arm.Bindings, 1)
	assert.Equal(t, "v", arm.Bindings[0].Name)
	assert.Equal(t, []int{0}, arm.Bindings[0].Path)
}

// A Let binding with parameters is a local function, which spec §4.3
// forbids (Core IR is first-order; closures are never produced).
func TestLowerLocalFunctionBindingRejected(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name: "f",
			Body: &ast.Let{
				Bindings: []ast.Binding{{Name: "g", Params: []string{"y"}, Value: &ast.Var{Name: "y"}}},
				Body:     &ast.Lit{Kind: ast.IntLit, Int: 1},
			},
		},
	}}

	// internal/infer desugars a parameterized Let binding into a Lambda
	// and happily infers it; internal/lower is what rejects it, since Core
	// IR is first-order and a Let-bound Lambda would require a closure.
	ctx, schemes, err := infer.InferProgram(prog)
	require.NoError(t, err)

	_, err = Lower(prog, ctx, schemes)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.COREIR050, rep.Code)
}

// "^" only type-checks through internal/infer's one special-cased shape
// (a right operand syntactically `0 - N`, forcing Fractional defaulting to
// Double); BinOpSpecs never names "^" itself, so even that one shape fails
// to lower, with COREIR080, not some silently wrong arithmetic behavior.
func TestLowerUnknownOperatorFails(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name:   "pow",
			Params: []string{"x"},
			Body: &ast.BinOp{
				Op:   "^",
				Left: &ast.Var{Name: "x"},
				Right: &ast.BinOp{
					Op:    "-",
					Left:  &ast.Lit{Kind: ast.IntLit, Int: 0},
					Right: &ast.Lit{Kind: ast.IntLit, Int: 3},
				},
			},
		},
	}}

	ctx, schemes, err := infer.InferProgram(prog)
	require.NoError(t, err)
	_, err = Lower(prog, ctx, schemes)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.COREIR080, rep.Code)
}

// Applying a function to more arguments than its own parameter list
// declares type-checks under plain unification (a lone TVar happily
// unifies with a function type), so the mismatch only surfaces later, when
// lowering flattens the call against id's one-parameter signature.
func TestLowerApplyArgumentCountMismatch(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name:   "id",
			Params: []string{"x"},
			Body:   &ast.Var{Name: "x"},
		},
		&ast.FuncDecl{
			Name: "caller",
			Body: &ast.App{
				Func: &ast.App{Func: &ast.Var{Name: "id"}, Arg: &ast.Lit{Kind: ast.IntLit, Int: 1}},
				Arg:  &ast.Lit{Kind: ast.IntLit, Int: 2},
			},
		},
	}}

	ctx, schemes, err := infer.InferProgram(prog)
	require.NoError(t, err)
	_, err = Lower(prog, ctx, schemes)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.COREIR132, rep.Code)
}

// A non-empty list pattern is rejected with COREIR162. internal/infer
// enforces this itself (its bindPattern mirrors internal/lower's own
// check), so the failure surfaces during inference, before lowering ever
// runs; internal/lower's own COREIR162 site in bindCasePattern exists for
// any other route that can hand it a non-empty PList.
func TestLowerNonEmptyListPatternRejected(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name:   "headOrZero",
			Params: []string{"xs"},
			Body: &ast.Case{
				Scrutinee: &ast.Var{Name: "xs"},
				Arms: []ast.CaseArm{
					{
						Pattern: &ast.PList{Items: []ast.Pattern{&ast.PVar{Name: "h"}}},
						Body:    &ast.Lit{Kind: ast.IntLit, Int: 0},
					},
				},
			},
		},
	}}

	_, _, err := infer.InferProgram(prog)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.COREIR162, rep.Code)
}

// An unresolved identifier in a function body fails inference itself
// (TYPE010), well before internal/lower ever runs.
func TestInferUnresolvedIdentifierFails(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name: "f",
			Body: &ast.Var{Name: "doesNotExist"},
		},
	}}

	_, _, err := infer.InferProgram(prog)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.TYPE010, rep.Code)
}

// A Wildcard reaching lowering (e.g. `_` used as an ordinary expression,
// which internal/infer accepts as "a fresh variable, no constraints") has
// no runtime representation and fails with COREIR070.
func TestLowerWildcardExprFails(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FuncDecl{
			Name: "f",
			Body: &ast.Wildcard{},
		},
	}}

	ctx, schemes, err := infer.InferProgram(prog)
	require.NoError(t, err)
	_, err = Lower(prog, ctx, schemes)
	require.Error(t, err)
	rep, ok := tlerrors.AsReport(err)
	require.True(t, ok)
	assert.Equal(t, tlerrors.COREIR070, rep.Code)
}
