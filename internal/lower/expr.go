package lower

import (
	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// localEnv is a persistent name -> (ValueTy, VarKind) environment for one
// function body, parent-chained so nested Lets never mutate an outer scope.
type localEnv struct {
	names  map[string]localBinding
	parent *localEnv
}

type localBinding struct {
	ty   core.ValueTy
	kind core.VarKind
}

func newLocalEnv() *localEnv { return &localEnv{names: map[string]localBinding{}} }

func (e *localEnv) extend(name string, ty core.ValueTy, kind core.VarKind) *localEnv {
	return &localEnv{names: map[string]localBinding{name: {ty, kind}}, parent: e}
}

func (e *localEnv) lookup(name string) (localBinding, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if b, ok := cur.names[name]; ok {
			return b, true
		}
	}
	return localBinding{}, false
}

// lowerFunction lowers one top-level declaration's body using the signature
// already computed in buildSignature.
func (lw *Lowerer) lowerFunction(fd *ast.FuncDecl) (*core.Function, error) {
	lw.curFunc = fd.Name
	sig := lw.funcSigs[fd.Name]

	env := newLocalEnv()
	params := make([]core.Parameter, 0, len(sig.DictParams)+len(sig.ValueParams))
	params = append(params, sig.DictParams...)
	for i, pname := range fd.Params {
		ty := sig.ValueParams[i]
		params = append(params, core.Parameter{Name: pname, Ty: ty, Kind: core.PKValue})
		env = env.extend(pname, ty, core.VarParam)
	}

	body, err := lw.lowerExpr(env, fd.Body)
	if err != nil {
		return nil, err
	}

	return &core.Function{
		Name:   fd.Name,
		Params: params,
		Result: sig.Result,
		Body:   body,
		Span:   ast.Span{Start: fd.Pos, End: fd.Pos},
	}, nil
}

// lowerExpr implements spec §4.3 "Expression lowering".
func (lw *Lowerer) lowerExpr(env *localEnv, e ast.Expr) (core.Expr, error) {
	switch x := e.(type) {
	case *ast.Lit:
		return lw.lowerLit(x), nil

	case *ast.Var:
		return lw.resolveVar(env, x.Name, x.Pos)

	case *ast.Wildcard:
		return nil, lw.err(tlerrors.COREIR070, "wildcard has no runtime value", x.Pos)

	case *ast.Lambda:
		return nil, lw.err(tlerrors.COREIR050, "local lambdas are forbidden", x.Pos)

	case *ast.Let:
		return lw.lowerLet(env, x)

	case *ast.If:
		cond, err := lw.lowerExpr(env, x.Cond)
		if err != nil {
			return nil, err
		}
		then, err := lw.lowerExpr(env, x.Then)
		if err != nil {
			return nil, err
		}
		els, err := lw.lowerExpr(env, x.Else)
		if err != nil {
			return nil, err
		}
		return core.NewIf(x.Pos, then.Ty(), cond, then, els), nil

	case *ast.App:
		return lw.lowerApp(env, x)

	case *ast.BinOp:
		return lw.lowerBinOp(env, x)

	case *ast.Tuple:
		items := make([]core.Expr, len(x.Items))
		tys := make([]core.ValueTy, len(x.Items))
		for i, it := range x.Items {
			ce, err := lw.lowerExpr(env, it)
			if err != nil {
				return nil, err
			}
			items[i] = ce
			tys[i] = ce.Ty()
		}
		return core.NewTupleExpr(x.Pos, core.TyTuple(tys...), items), nil

	case *ast.ListLit:
		items := make([]core.Expr, len(x.Items))
		elem := core.TyUnknown()
		for i, it := range x.Items {
			ce, err := lw.lowerExpr(env, it)
			if err != nil {
				return nil, err
			}
			items[i] = ce
			if i == 0 {
				elem = ce.Ty()
			}
		}
		return core.NewListExpr(x.Pos, core.TyList(elem), items), nil

	case *ast.Annot:
		return lw.lowerExpr(env, x.Expr)

	case *ast.Case:
		return lw.lowerCase(env, x)

	default:
		return nil, lw.err(tlerrors.COREIR070, "unsupported expression in lowering", e.Position())
	}
}

// lowerLit resolves a literal's machine ValueTy from the type the
// inferencer judged for this exact node (lw.ctx.Annotations), since an
// integer literal's Kind alone doesn't say whether unification later fixed
// it to Int or Double (spec §4.2 "Num a => a").
func (lw *Lowerer) lowerLit(x *ast.Lit) core.Expr {
	ty := lw.valueTyOf(lw.ctx.TypeOf(x))
	lit := core.NewLiteral(x.Pos, ty, core.LitKind(x.Kind))
	switch x.Kind {
	case ast.IntLit:
		lit.Int = x.Int
	case ast.FloatLit:
		lit.Flt = x.Flt
	case ast.BoolLit:
		lit.Bool = x.Bool
	case ast.CharLit:
		lit.Char = x.Char
	case ast.StringLit:
		lit.Str = x.Str
	}
	return lit
}

// resolveVar implements spec §4.3's priority order: local scope -> function
// table -> intrinsic table (empty in this repo; no built-in named
// intrinsics beyond operators, which lower via BinOpSpecs instead) -> class
// environment -> constructor table.
func (lw *Lowerer) resolveVar(env *localEnv, name string, pos ast.Pos) (core.Expr, error) {
	if b, ok := env.lookup(name); ok {
		return core.NewVar(pos, b.ty, name, b.kind), nil
	}
	if sig, ok := lw.funcSigs[name]; ok {
		return core.NewVar(pos, core.TyFunc(sig.ValueParams, sig.Result), name, core.VarFunction), nil
	}
	if c, ok := lw.ctors[name]; ok {
		params := make([]core.ValueTy, c.Arity)
		for i := range params {
			params[i] = core.TyUnknown()
		}
		return core.NewVar(pos, core.TyFunc(params, core.TyData(c.DataName)), name, core.VarPrimitive), nil
	}
	return nil, lw.err(tlerrors.COREIR070, "unresolved identifier "+name, pos)
}

// lowerLet implements spec §4.3 "Let expressions lower sequentially; local
// lambdas are forbidden."
func (lw *Lowerer) lowerLet(env *localEnv, x *ast.Let) (core.Expr, error) {
	cur := env
	var bindings []core.Binding
	for _, b := range x.Bindings {
		if len(b.Params) > 0 {
			return nil, lw.err(tlerrors.COREIR050, "local function "+b.Name+" is forbidden", x.Pos)
		}
		ce, err := lw.lowerExpr(cur, b.Value)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, core.Binding{Name: b.Name, Value: ce, Ty: ce.Ty()})
		cur = cur.extend(b.Name, ce.Ty(), core.VarLocal)
	}
	body, err := lw.lowerExpr(cur, x.Body)
	if err != nil {
		return nil, err
	}
	return core.NewLet(x.Pos, body.Ty(), bindings, body), nil
}

// lowerApp implements spec §4.3 "Applications are flattened
// left-associatively" plus dictionary-argument injection.
func (lw *Lowerer) lowerApp(env *localEnv, x *ast.App) (core.Expr, error) {
	callee, argExprs := flattenApp(x)
	calleeVar, ok := callee.(*ast.Var)
	if !ok {
		return nil, lw.err(tlerrors.COREIR070, "only named functions and constructors may be applied", x.Pos)
	}

	if sig, ok := lw.funcSigs[calleeVar.Name]; ok {
		if len(argExprs) != len(sig.ValueParams) {
			return nil, lw.err(tlerrors.COREIR132, "argument count mismatch calling "+calleeVar.Name, x.Pos)
		}
		var args []core.Expr
		for _, dp := range sig.DictParams {
			args = append(args, core.NewDictionaryPlaceholder(x.Pos, dp.ClassName, dp.TypeRepr))
		}
		for _, a := range argExprs {
			ce, err := lw.lowerExpr(env, a)
			if err != nil {
				return nil, err
			}
			args = append(args, ce)
		}
		fnExpr := core.NewVar(calleeVar.Pos, core.TyFunc(sig.ValueParams, sig.Result), calleeVar.Name, core.VarFunction)
		return core.NewApply(x.Pos, sig.Result, fnExpr, args), nil
	}

	if c, ok := lw.ctors[calleeVar.Name]; ok {
		if len(argExprs) != c.Arity {
			return nil, lw.err(tlerrors.COREIR132, "constructor arity mismatch for "+calleeVar.Name, x.Pos)
		}
		var args []core.Expr
		for _, a := range argExprs {
			ce, err := lw.lowerExpr(env, a)
			if err != nil {
				return nil, err
			}
			args = append(args, ce)
		}
		resultTy := core.TyData(c.DataName)
		fnExpr := core.NewVar(calleeVar.Pos, core.TyFunc(nil, resultTy), calleeVar.Name, core.VarPrimitive)
		return core.NewApply(x.Pos, resultTy, fnExpr, args), nil
	}

	return nil, lw.err(tlerrors.COREIR070, "unresolved callee "+calleeVar.Name, x.Pos)
}

func flattenApp(e ast.Expr) (ast.Expr, []ast.Expr) {
	var args []ast.Expr
	cur := e
	for {
		app, ok := cur.(*ast.App)
		if !ok {
			break
		}
		args = append([]ast.Expr{app.Arg}, args...)
		cur = app.Func
	}
	return cur, args
}

// lowerBinOp implements spec §4.3 "Binary operators resolve through a
// static table of BinOpSpecs."
func (lw *Lowerer) lowerBinOp(env *localEnv, x *ast.BinOp) (core.Expr, error) {
	spec, ok := BinOpSpecs[x.Op]
	if !ok {
		return nil, lw.err(tlerrors.COREIR080, "no BinOpSpec for operator "+x.Op, x.Pos)
	}
	left, err := lw.lowerExpr(env, x.Left)
	if err != nil {
		return nil, err
	}
	right, err := lw.lowerExpr(env, x.Right)
	if err != nil {
		return nil, err
	}

	lk, rk := left.Ty().Kind, right.Ty().Kind
	if lk != core.VUnknown && rk != core.VUnknown {
		if c, found := spec.findCase(lk, rk); found {
			return core.NewPrimOp(x.Pos, core.ValueTy{Kind: c.Result}, c.Op, []core.Expr{left, right}), nil
		}
		return nil, lw.err(tlerrors.COREIR080, "no concrete case for operator "+x.Op, x.Pos)
	}

	if spec.Fallback == nil {
		return nil, lw.err(tlerrors.COREIR080, "no dictionary fallback for operator "+x.Op, x.Pos)
	}
	// The dictionary itself was already recorded while processing the
	// enclosing function's Scheme (spec §4.3 "Dictionary descriptor
	// recording"); codegen resolves this PrimOp against the current
	// function's own Dictionary parameter for spec.Fallback.Class (spec
	// §4.4 "PrimOp dict_fallback"), so no Module-level entry is added here.
	resultTy := core.ValueTy{Kind: spec.Fallback.Result}
	if spec.Fallback.Result == core.VUnknown {
		resultTy = left.Ty()
		if resultTy.Kind == core.VUnknown {
			resultTy = right.Ty()
		}
	}
	return core.NewPrimOpFallback(x.Pos, resultTy, spec.Fallback.Op, []core.Expr{left, right}, spec.Fallback.Class, spec.Fallback.Method), nil
}
