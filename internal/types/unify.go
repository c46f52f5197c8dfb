package types

import (
	"fmt"

	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// Unify implements the algorithm of spec.md §4.1: swap-and-retry dispatch
// over the five Type variants, grounded on the teacher's unification.go
// structure (Unify(t1, t2, sub) with a per-pair-of-constructors switch).
func Unify(t1, t2 Type) (Substitution, error) {
	switch a := t1.(type) {
	case *TVar:
		return bind(a.ID, t2)
	case *TCon:
		if b, ok := t2.(*TCon); ok {
			if a.Name == b.Name {
				return Substitution{}, nil
			}
			return nil, mismatch(t1, t2)
		}
		if _, ok := t2.(*TVar); ok {
			return Unify(t2, t1)
		}
		return nil, mismatch(t1, t2)
	case *TApp:
		b, ok := t2.(*TApp)
		if !ok {
			if _, ok := t2.(*TVar); ok {
				return Unify(t2, t1)
			}
			return nil, mismatch(t1, t2)
		}
		s1, err := Unify(a.Func, b.Func)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(Apply(s1, a.Arg), Apply(s1, b.Arg))
		if err != nil {
			return nil, err
		}
		return Compose(s2, s1), nil
	case *TFun:
		b, ok := t2.(*TFun)
		if !ok {
			if _, ok := t2.(*TVar); ok {
				return Unify(t2, t1)
			}
			return nil, mismatch(t1, t2)
		}
		s1, err := Unify(a.Param, b.Param)
		if err != nil {
			return nil, err
		}
		s2, err := Unify(Apply(s1, a.Result), Apply(s1, b.Result))
		if err != nil {
			return nil, err
		}
		return Compose(s2, s1), nil
	case *TTuple:
		b, ok := t2.(*TTuple)
		if !ok {
			if _, ok := t2.(*TVar); ok {
				return Unify(t2, t1)
			}
			return nil, mismatch(t1, t2)
		}
		if len(a.Items) != len(b.Items) {
			return nil, mismatch(t1, t2)
		}
		sub := Substitution{}
		for i := range a.Items {
			s, err := Unify(Apply(sub, a.Items[i]), Apply(sub, b.Items[i]))
			if err != nil {
				return nil, err
			}
			sub = Compose(s, sub)
		}
		return sub, nil
	default:
		return nil, mismatch(t1, t2)
	}
}

// bind implements `bind(tv, t)` (spec §4.1): trivial success on the same
// variable, TYPE002 if tv occurs free in t, else the singleton {tv: t}.
func bind(tv int, t Type) (Substitution, error) {
	if v, ok := t.(*TVar); ok && v.ID == tv {
		return Substitution{}, nil
	}
	if FTV(t)[tv] {
		return nil, tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.TYPE002,
			fmt.Sprintf("occurs check failed: t%d occurs in %s", tv, t.String()), nil))
	}
	return Substitution{tv: t}, nil
}

func mismatch(t1, t2 Type) error {
	return tlerrors.WrapReport(tlerrors.New("typecheck", tlerrors.TYPE001,
		fmt.Sprintf("cannot unify %s with %s", t1.String(), t2.String()), nil))
}
