package infer

import (
	"github.com/sunholo/typelang/internal/ast"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/types"
)

// Infer implements the judgement of spec.md §4.2: for every expression
// node, return its QualifiedType, threading c.Sub as a side effect, and
// recording the judged type in c.Annotations for internal/lower to consume.
func (c *Ctx) Infer(env *Env, e ast.Expr) (types.QualifiedType, error) {
	qt, err := c.inferNode(env, e)
	if err != nil {
		return qt, err
	}
	if c.Annotations != nil {
		c.Annotations[e] = qt.Type
	}
	return qt, nil
}

func (c *Ctx) inferNode(env *Env, e ast.Expr) (types.QualifiedType, error) {
	switch x := e.(type) {
	case *ast.Wildcard:
		// "Wildcard variable (underscore or ?name): fresh variable, no
		// constraints. Used for REPL holes."
		return types.QualifiedType{Type: c.FreshVar()}, nil

	case *ast.Var:
		scheme, ok := env.Lookup(x.Name)
		if !ok {
			return types.QualifiedType{}, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.TYPE010,
				"unbound variable "+x.Name, &ast.Span{Start: x.Pos, End: x.Pos}))
		}
		return types.Instantiate(scheme, c.freshID), nil

	case *ast.Lit:
		return c.inferLit(x), nil

	case *ast.ListLit:
		elem := c.FreshVar()
		var constraints []types.Constraint
		for _, item := range x.Items {
			qt, err := c.Infer(env, item)
			if err != nil {
				return types.QualifiedType{}, err
			}
			if err := c.Unify(elem, qt.Type, item.Position()); err != nil {
				return types.QualifiedType{}, err
			}
			constraints = append(constraints, qt.Constraints...)
		}
		return types.NewQualifiedType(types.TList(c.Apply(elem)), constraints), nil

	case *ast.Tuple:
		var items []types.Type
		var constraints []types.Constraint
		for _, it := range x.Items {
			qt, err := c.Infer(env, it)
			if err != nil {
				return types.QualifiedType{}, err
			}
			items = append(items, qt.Type)
			constraints = append(constraints, qt.Constraints...)
		}
		return types.NewQualifiedType(&types.TTuple{Items: items}, constraints), nil

	case *ast.Lambda:
		childEnv := env
		var params []types.Type
		for _, p := range x.Params {
			v := c.FreshVar()
			params = append(params, v)
			// Monomorphic binding: an unquantified scheme.
			childEnv = childEnv.Extend(p, types.Scheme{Qual: types.QualifiedType{Type: v}})
		}
		bodyQT, err := c.Infer(childEnv, x.Body)
		if err != nil {
			return types.QualifiedType{}, err
		}
		result := bodyQT.Type
		for i := len(params) - 1; i >= 0; i-- {
			result = &types.TFun{Param: c.Apply(params[i]), Result: result}
		}
		return types.NewQualifiedType(result, bodyQT.Constraints), nil

	case *ast.Let:
		curEnv := env
		for _, b := range x.Bindings {
			val := b.Value
			for i := len(b.Params) - 1; i >= 0; i-- {
				val = &ast.Lambda{Params: []string{b.Params[i]}, Body: val, Pos: val.Position()}
			}
			qt, err := c.Infer(curEnv, val)
			if err != nil {
				return types.QualifiedType{}, err
			}
			scheme := types.Generalize(curEnv.FreeVars(), c.ApplyQual(qt))
			curEnv = curEnv.Extend(b.Name, scheme)
		}
		return c.Infer(curEnv, x.Body)

	case *ast.If:
		condQT, err := c.Infer(env, x.Cond)
		if err != nil {
			return types.QualifiedType{}, err
		}
		if err := c.Unify(condQT.Type, types.TBool, x.Cond.Position()); err != nil {
			return types.QualifiedType{}, err
		}
		thenQT, err := c.Infer(env, x.Then)
		if err != nil {
			return types.QualifiedType{}, err
		}
		elseQT, err := c.Infer(env, x.Else)
		if err != nil {
			return types.QualifiedType{}, err
		}
		if err := c.Unify(thenQT.Type, elseQT.Type, x.Pos); err != nil {
			return types.QualifiedType{}, err
		}
		cs := append(append([]types.Constraint{}, condQT.Constraints...), thenQT.Constraints...)
		cs = append(cs, elseQT.Constraints...)
		return types.NewQualifiedType(c.Apply(thenQT.Type), cs), nil

	case *ast.App:
		fnQT, err := c.Infer(env, x.Func)
		if err != nil {
			return types.QualifiedType{}, err
		}
		argQT, err := c.Infer(env, x.Arg)
		if err != nil {
			return types.QualifiedType{}, err
		}
		result := c.FreshVar()
		if err := c.Unify(fnQT.Type, &types.TFun{Param: argQT.Type, Result: result}, x.Pos); err != nil {
			return types.QualifiedType{}, err
		}
		cs := append(append([]types.Constraint{}, fnQT.Constraints...), argQT.Constraints...)
		return types.NewQualifiedType(c.Apply(result), cs), nil

	case *ast.BinOp:
		return c.inferBinOp(env, x)

	case *ast.Annot:
		qt, err := c.Infer(env, x.Expr)
		if err != nil {
			return types.QualifiedType{}, err
		}
		annotTy := resolveTypeSyntax(x.Type, nil)
		if err := c.Unify(qt.Type, annotTy, x.Pos); err != nil {
			return types.QualifiedType{}, err
		}
		return types.NewQualifiedType(annotTy, qt.Constraints), nil

	case *ast.Case:
		return c.inferCase(env, x)

	default:
		return types.QualifiedType{}, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.TYPE001,
			"unsupported expression node in inferencer", &ast.Span{Start: e.Position(), End: e.Position()}))
	}
}

func (c *Ctx) inferLit(x *ast.Lit) types.QualifiedType {
	switch x.Kind {
	case ast.IntLit:
		a := c.FreshVar()
		return types.NewQualifiedType(a, []types.Constraint{{Class: "Num", Type: a}})
	case ast.FloatLit:
		a := c.FreshVar()
		return types.NewQualifiedType(a, []types.Constraint{{Class: "Fractional", Type: a}})
	case ast.BoolLit:
		return types.QualifiedType{Type: types.TBool}
	case ast.CharLit:
		return types.QualifiedType{Type: types.TChar}
	case ast.StringLit:
		return types.QualifiedType{Type: types.TString()}
	default:
		return types.QualifiedType{Type: types.TUnit}
	}
}

// resolveTypeSyntax converts a surface TypeSyntax annotation into a Type,
// mapping bound type-variable names through vars (assigning a fresh
// identity via names on first use, when vars is non-nil).
func resolveTypeSyntax(t ast.TypeSyntax, vars map[string]*types.TVar) types.Type {
	switch x := t.(type) {
	case ast.TEVar:
		if vars != nil {
			if v, ok := vars[x.Name]; ok {
				return v
			}
		}
		return &types.TVar{ID: 0}
	case ast.TECon:
		return &types.TCon{Name: x.Name}
	case ast.TEApp:
		return &types.TApp{Func: resolveTypeSyntax(x.Func, vars), Arg: resolveTypeSyntax(x.Arg, vars)}
	case ast.TEFun:
		return &types.TFun{Param: resolveTypeSyntax(x.Param, vars), Result: resolveTypeSyntax(x.Return, vars)}
	case ast.TEList:
		return types.TList(resolveTypeSyntax(x.Elem, vars))
	case ast.TETuple:
		items := make([]types.Type, len(x.Items))
		for i, it := range x.Items {
			items[i] = resolveTypeSyntax(it, vars)
		}
		return &types.TTuple{Items: items}
	default:
		return types.TUnit
	}
}
