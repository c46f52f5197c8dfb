package infer

import (
	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/types"
)

// inferBinOp implements spec §4.2a: binary operators desugar to two
// applications of an operator-named variable, except the `^` special case
// when the right operand is syntactically `0 - <non-negative int literal>`.
func (c *Ctx) inferBinOp(env *Env, x *ast.BinOp) (types.QualifiedType, error) {
	if x.Op == "^" && isNegativeIntLiteral(x.Right) {
		leftQT, err := c.Infer(env, x.Left)
		if err != nil {
			return types.QualifiedType{}, err
		}
		cs := append(append([]types.Constraint{}, leftQT.Constraints...),
			types.Constraint{Class: "Fractional", Type: leftQT.Type})
		return types.NewQualifiedType(types.TDouble, cs), nil
	}

	opVar := &ast.Var{Name: x.Op, Pos: x.Pos}
	app1 := &ast.App{Func: opVar, Arg: x.Left, Pos: x.Pos}
	app2 := &ast.App{Func: app1, Arg: x.Right, Pos: x.Pos}
	return c.Infer(env, app2)
}

// isNegativeIntLiteral recognizes the surface shape `0 - N` where N is an
// integer literal, spec §4.2a's sole trigger for treating `^` as always
// producing a Double via Fractional.
func isNegativeIntLiteral(e ast.Expr) bool {
	b, ok := e.(*ast.BinOp)
	if !ok || b.Op != "-" {
		return false
	}
	lit, ok := b.Left.(*ast.Lit)
	if !ok || lit.Kind != ast.IntLit || lit.Int != 0 {
		return false
	}
	rhs, ok := b.Right.(*ast.Lit)
	return ok && rhs.Kind == ast.IntLit && rhs.Int >= 0
}

// PreludeEnv seeds an Env with the built-in operator schemes of spec §4.2a,
// each desugared application resolving through here rather than through a
// primitive AST node.
func PreludeEnv(c *Ctx) *Env {
	env := NewEnv()

	numBinOp := func() types.Scheme {
		a := c.freshID()
		av := &types.TVar{ID: a}
		ty := &types.TFun{Param: av, Result: &types.TFun{Param: av, Result: av}}
		return types.Scheme{Quantified: []int{a}, Qual: types.NewQualifiedType(ty, []types.Constraint{{Class: "Num", Type: av}})}
	}
	fracBinOp := func() types.Scheme {
		a := c.freshID()
		av := &types.TVar{ID: a}
		ty := &types.TFun{Param: av, Result: &types.TFun{Param: av, Result: av}}
		return types.Scheme{Quantified: []int{a}, Qual: types.NewQualifiedType(ty, []types.Constraint{{Class: "Fractional", Type: av}})}
	}
	eqBinOp := func() types.Scheme {
		a := c.freshID()
		av := &types.TVar{ID: a}
		ty := &types.TFun{Param: av, Result: &types.TFun{Param: av, Result: types.TBool}}
		return types.Scheme{Quantified: []int{a}, Qual: types.NewQualifiedType(ty, []types.Constraint{{Class: "Eq", Type: av}})}
	}
	ordBinOp := func() types.Scheme {
		a := c.freshID()
		av := &types.TVar{ID: a}
		ty := &types.TFun{Param: av, Result: &types.TFun{Param: av, Result: types.TBool}}
		return types.Scheme{Quantified: []int{a}, Qual: types.NewQualifiedType(ty, []types.Constraint{{Class: "Ord", Type: av}})}
	}
	boolBinOp := func() types.Scheme {
		ty := &types.TFun{Param: types.TBool, Result: &types.TFun{Param: types.TBool, Result: types.TBool}}
		return types.Scheme{Qual: types.QualifiedType{Type: ty}}
	}

	env = env.Extend("+", numBinOp())
	env = env.Extend("-", numBinOp())
	env = env.Extend("*", numBinOp())
	env = env.Extend("/", fracBinOp())
	env = env.Extend("==", eqBinOp())
	env = env.Extend("/=", eqBinOp())
	env = env.Extend("<", ordBinOp())
	env = env.Extend("<=", ordBinOp())
	env = env.Extend(">", ordBinOp())
	env = env.Extend(">=", ordBinOp())
	env = env.Extend("&&", boolBinOp())
	env = env.Extend("||", boolBinOp())

	// `^` outside the Fractional-defaulting special case: Num a => a -> Int -> a
	// is not modeled; the only supported shape is the special case handled in
	// inferBinOp, so `^` is intentionally left unbound here.

	return env
}
