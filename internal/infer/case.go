package infer

import (
	"github.com/sunholo/typelang/internal/ast"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/types"
)

// inferCase type-checks a Case expression: the scrutinee, each arm's
// pattern-introduced bindings, optional guard, and body, unifying every
// arm's body type into one result (spec §4.3 "Case lowering" performs the
// equivalent walk again once these types are fixed).
func (c *Ctx) inferCase(env *Env, x *ast.Case) (types.QualifiedType, error) {
	scrutQT, err := c.Infer(env, x.Scrutinee)
	if err != nil {
		return types.QualifiedType{}, err
	}

	result := c.FreshVar()
	var constraints []types.Constraint
	constraints = append(constraints, scrutQT.Constraints...)

	for _, arm := range x.Arms {
		armEnv, err := c.bindPattern(env, arm.Pattern, scrutQT.Type)
		if err != nil {
			return types.QualifiedType{}, err
		}
		if arm.Guard != nil {
			guardQT, err := c.Infer(armEnv, arm.Guard)
			if err != nil {
				return types.QualifiedType{}, err
			}
			if err := c.Unify(guardQT.Type, types.TBool, arm.Guard.Position()); err != nil {
				return types.QualifiedType{}, err
			}
			constraints = append(constraints, guardQT.Constraints...)
		}
		bodyQT, err := c.Infer(armEnv, arm.Body)
		if err != nil {
			return types.QualifiedType{}, err
		}
		if err := c.Unify(result, bodyQT.Type, arm.Body.Position()); err != nil {
			return types.QualifiedType{}, err
		}
		constraints = append(constraints, bodyQT.Constraints...)
	}

	return types.NewQualifiedType(c.Apply(result), constraints), nil
}

// bindPattern extends env with the variables a pattern introduces, unifying
// the pattern's own shape against scrutTy. A non-empty PList or PTuple is
// rejected here with COREIR162/COREIR163 (internal/lower repeats the same
// check); constructor sub-patterns are bound recursively.
func (c *Ctx) bindPattern(env *Env, p ast.Pattern, scrutTy types.Type) (*Env, error) {
	switch pat := p.(type) {
	case *ast.PWildcard:
		return env, nil

	case *ast.PVar:
		scheme := types.Scheme{Qual: types.QualifiedType{Type: scrutTy}}
		return env.Extend(pat.Name, scheme), nil

	case *ast.PLit:
		var litTy types.Type
		switch pat.Kind {
		case ast.IntLit:
			litTy = c.FreshVar()
		case ast.FloatLit:
			litTy = c.FreshVar()
		case ast.BoolLit:
			litTy = types.TBool
		case ast.CharLit:
			litTy = types.TChar
		case ast.StringLit:
			litTy = types.TString()
		default:
			litTy = types.TUnit
		}
		if err := c.Unify(scrutTy, litTy, pat.Pos); err != nil {
			return nil, err
		}
		return env, nil

	case *ast.PAs:
		inner, err := c.bindPattern(env, pat.Inner, scrutTy)
		if err != nil {
			return nil, err
		}
		scheme := types.Scheme{Qual: types.QualifiedType{Type: scrutTy}}
		return inner.Extend(pat.Name, scheme), nil

	case *ast.PCtor:
		sig, ok := c.Ctors[pat.Name]
		if !ok {
			return nil, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.TYPE010,
				"unknown constructor "+pat.Name, &ast.Span{Start: pat.Pos, End: pat.Pos}))
		}
		if len(pat.Args) != len(sig.Fields) {
			return nil, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.COREIR163,
				"constructor arity mismatch for "+pat.Name, &ast.Span{Start: pat.Pos, End: pat.Pos}))
		}
		tvars := make(map[string]*types.TVar, len(sig.TypeParams))
		for _, tp := range sig.TypeParams {
			tvars[tp] = c.FreshVar()
		}
		dataTy := types.Type(&types.TCon{Name: sig.DataName})
		for _, tp := range sig.TypeParams {
			dataTy = &types.TApp{Func: dataTy, Arg: tvars[tp]}
		}
		if err := c.Unify(scrutTy, dataTy, pat.Pos); err != nil {
			return nil, err
		}
		cur := env
		for i, fieldSyntax := range sig.Fields {
			fieldTy := resolveTypeSyntax(fieldSyntax, tvars)
			var err error
			cur, err = c.bindPattern(cur, pat.Args[i], fieldTy)
			if err != nil {
				return nil, err
			}
		}
		return cur, nil

	case *ast.PList:
		if len(pat.Items) != 0 {
			return nil, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.COREIR162,
				"nested list patterns are not supported", &ast.Span{Start: pat.Pos, End: pat.Pos}))
		}
		elem := c.FreshVar()
		if err := c.Unify(scrutTy, types.TList(elem), pat.Pos); err != nil {
			return nil, err
		}
		return env, nil

	case *ast.PTuple:
		if len(pat.Items) != 0 {
			return nil, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.COREIR163,
				"nested tuple patterns are not supported", &ast.Span{Start: pat.Pos, End: pat.Pos}))
		}
		if err := c.Unify(scrutTy, types.TUnit, pat.Pos); err != nil {
			return nil, err
		}
		return env, nil

	default:
		return env, nil
	}
}
