package lower

import (
	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// patternBind is the result of binding one Case arm's pattern: its
// extended environment plus the metadata core.MatchArm records (spec §4.3
// "Case lowering" step 1 and step 4).
type patternBind struct {
	env      *localEnv
	bindings []core.MatchBinding
	ctorName string
	tag      int
	arity    int
	hasCtor  bool
}

// lowerCase implements spec §4.3 "Case lowering".
func (lw *Lowerer) lowerCase(env *localEnv, x *ast.Case) (core.Expr, error) {
	scrut, err := lw.lowerExpr(env, x.Scrutinee)
	if err != nil {
		return nil, err
	}

	var arms []core.MatchArm
	resultTy := core.TyUnknown()

	for _, a := range x.Arms {
		pb, err := lw.bindCasePattern(env, a.Pattern, scrut.Ty())
		if err != nil {
			return nil, err
		}

		var guard core.Expr
		if a.Guard != nil {
			guard, err = lw.lowerExpr(pb.env, a.Guard)
			if err != nil {
				return nil, err
			}
		}

		body, err := lw.lowerExpr(pb.env, a.Body)
		if err != nil {
			return nil, err
		}

		switch {
		case resultTy.Kind == core.VUnknown:
			resultTy = body.Ty()
		case body.Ty().Kind == core.VUnknown:
			// Unknown acts as a wildcard; keep the concrete resultTy already seen.
		case !resultTy.Equals(body.Ty()):
			return nil, lw.err(tlerrors.COREIR054, "case arm bodies do not unify", a.Body.Position())
		}

		arms = append(arms, core.MatchArm{
			Pattern: a.Pattern, Guard: guard, Body: body,
			CtorName: pb.ctorName, Tag: pb.tag, Arity: pb.arity, HasCtor: pb.hasCtor,
			Bindings: pb.bindings,
		})
	}

	return core.NewMatch(x.Pos, resultTy, scrut, arms), nil
}

// bindCasePattern computes the bindings and one-level field path for a
// single arm's pattern (spec §4.3 step 1: "wildcard, literal, variable,
// as-binding, and single-level constructor patterns are supported").
func (lw *Lowerer) bindCasePattern(env *localEnv, p ast.Pattern, scrutTy core.ValueTy) (patternBind, error) {
	switch pat := p.(type) {
	case *ast.PWildcard:
		return patternBind{env: env}, nil

	case *ast.PVar:
		return patternBind{
			env:      env.extend(pat.Name, scrutTy, core.VarLocal),
			bindings: []core.MatchBinding{{Name: pat.Name, Ty: scrutTy, Path: nil}},
		}, nil

	case *ast.PLit:
		return patternBind{env: env}, nil

	case *ast.PAs:
		inner, err := lw.bindCasePattern(env, pat.Inner, scrutTy)
		if err != nil {
			return patternBind{}, err
		}
		inner.bindings = append(inner.bindings, core.MatchBinding{Name: pat.Name, Ty: scrutTy, Path: nil})
		inner.env = inner.env.extend(pat.Name, scrutTy, core.VarLocal)
		return inner, nil

	case *ast.PCtor:
		return lw.bindCtorPattern(env, pat)

	case *ast.PList:
		if len(pat.Items) != 0 {
			return patternBind{}, lw.err(tlerrors.COREIR162, "nested list patterns are not supported", pat.Pos)
		}
		return patternBind{env: env}, nil

	case *ast.PTuple:
		if len(pat.Items) != 0 {
			return patternBind{}, lw.err(tlerrors.COREIR163, "nested tuple patterns are not supported", pat.Pos)
		}
		return patternBind{env: env}, nil

	default:
		return patternBind{env: env}, nil
	}
}

func (lw *Lowerer) bindCtorPattern(env *localEnv, pat *ast.PCtor) (patternBind, error) {
	c, ok := lw.ctors[pat.Name]
	if !ok {
		return patternBind{}, lw.err(tlerrors.COREIR070, "unknown constructor "+pat.Name, pat.Pos)
	}
	if len(pat.Args) != len(c.Fields) {
		return patternBind{}, lw.err(tlerrors.COREIR163, "constructor arity mismatch for "+pat.Name, pat.Pos)
	}

	cur := env
	var bindings []core.MatchBinding
	for i, fieldSyntax := range c.Fields {
		fieldTy := fieldValueTy(fieldSyntax)
		switch fp := pat.Args[i].(type) {
		case *ast.PWildcard, *ast.PLit:
			// no binding introduced
		case *ast.PVar:
			bindings = append(bindings, core.MatchBinding{Name: fp.Name, Ty: fieldTy, Path: []int{i}})
			cur = cur.extend(fp.Name, fieldTy, core.VarLocal)
		case *ast.PAs:
			if _, ok := fp.Inner.(*ast.PWildcard); !ok {
				return patternBind{}, lw.err(tlerrors.COREIR162, "nested pattern inside constructor field", fp.Pos)
			}
			bindings = append(bindings, core.MatchBinding{Name: fp.Name, Ty: fieldTy, Path: []int{i}})
			cur = cur.extend(fp.Name, fieldTy, core.VarLocal)
		default:
			return patternBind{}, lw.err(tlerrors.COREIR162, "nested pattern inside constructor field", pat.Args[i].Position())
		}
	}

	return patternBind{env: cur, bindings: bindings, ctorName: pat.Name, tag: c.Tag, arity: c.Arity, hasCtor: true}, nil
}
