package lower

import (
	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/core"
	"github.com/sunholo/typelang/internal/types"
)

// fieldValueTy maps a constructor field's surface type syntax to a ValueTy
// without a concrete type-parameter substitution (spec §4.3 "Constructor-
// field type resolution" falls back to Unknown when unresolved; this repo
// does not track per-use concrete instantiations of a data type's type
// parameters, so every bound type variable becomes Unknown here — a
// documented narrowing, see DESIGN.md).
func fieldValueTy(t ast.TypeSyntax) core.ValueTy {
	switch x := t.(type) {
	case ast.TEVar:
		return core.TyUnknown()
	case ast.TECon:
		switch x.Name {
		case "Int", "Integer":
			return core.TyInt()
		case "Double":
			return core.TyDouble()
		case "Bool":
			return core.TyBool()
		case "Char":
			return core.TyChar()
		case "Unit":
			return core.TyUnit()
		default:
			return core.TyData(x.Name)
		}
	case ast.TEApp:
		return core.TyUnknown()
	case ast.TEFun:
		return core.TyFunc([]core.ValueTy{fieldValueTy(x.Param)}, fieldValueTy(x.Return))
	case ast.TEList:
		if c, ok := x.Elem.(ast.TECon); ok && c.Name == "Char" {
			return core.TyString()
		}
		elem := fieldValueTy(x.Elem)
		return core.TyList(elem)
	case ast.TETuple:
		items := make([]core.ValueTy, len(x.Items))
		for i, it := range x.Items {
			items[i] = fieldValueTy(it)
		}
		return core.TyTuple(items...)
	default:
		return core.TyUnknown()
	}
}

// valueTyOf maps an inferencer Type to its native-representable ValueTy
// (spec §3.3), the boundary between internal/types and internal/core.
func (lw *Lowerer) valueTyOf(t types.Type) core.ValueTy {
	switch x := t.(type) {
	case *types.TVar:
		return core.TyUnknown()
	case *types.TCon:
		switch x.Name {
		case "Int", "Integer":
			return core.TyInt()
		case "Double":
			return core.TyDouble()
		case "Bool":
			return core.TyBool()
		case "Char":
			return core.TyChar()
		case "Unit":
			return core.TyUnit()
		default:
			return core.TyData(x.Name)
		}
	case *types.TApp:
		if isListCon(x.Func) {
			if c, ok := x.Arg.(*types.TCon); ok && c.Name == "Char" {
				return core.TyString()
			}
			elem := lw.valueTyOf(x.Arg)
			return core.TyList(elem)
		}
		name, args := flattenTApp(x)
		var vtArgs []core.ValueTy
		for _, a := range args {
			vtArgs = append(vtArgs, lw.valueTyOf(a))
		}
		return core.TyData(name, vtArgs...)
	case *types.TFun:
		params, result := flattenTFun(x)
		var vtParams []core.ValueTy
		for _, p := range params {
			vtParams = append(vtParams, lw.valueTyOf(p))
		}
		return core.TyFunc(vtParams, lw.valueTyOf(result))
	case *types.TTuple:
		var items []core.ValueTy
		for _, it := range x.Items {
			items = append(items, lw.valueTyOf(it))
		}
		return core.TyTuple(items...)
	default:
		return core.TyUnknown()
	}
}

func isListCon(t types.Type) bool {
	c, ok := t.(*types.TCon)
	return ok && c.Name == "[]"
}

func flattenTApp(t *types.TApp) (string, []types.Type) {
	var args []types.Type
	cur := types.Type(t)
	for {
		app, ok := cur.(*types.TApp)
		if !ok {
			break
		}
		args = append([]types.Type{app.Arg}, args...)
		cur = app.Func
	}
	if c, ok := cur.(*types.TCon); ok {
		return c.Name, args
	}
	return cur.String(), args
}

func flattenTFun(t *types.TFun) ([]types.Type, types.Type) {
	var params []types.Type
	var cur types.Type = t
	for {
		fn, ok := cur.(*types.TFun)
		if !ok {
			break
		}
		params = append(params, fn.Param)
		cur = fn.Result
	}
	return params, cur
}
