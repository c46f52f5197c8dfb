package infer

import "github.com/sunholo/typelang/internal/types"

// Default implements spec §4.2 "Defaulting (display-only)": it never
// participates in inference itself, only in how a principal type is shown
// to a caller.
//
// Phase 1: every free variable carrying a Fractional constraint defaults to
// Double. Phase 2: every free variable still carrying a Num constraint
// (after phase 1 has resolved the Fractional ones) defaults to Integer.
func Default(qt types.QualifiedType) types.QualifiedType {
	sub := types.Substitution{}
	for _, con := range qt.Constraints {
		if con.Class != "Fractional" {
			continue
		}
		if tv, ok := con.Type.(*types.TVar); ok {
			if _, already := sub[tv.ID]; !already {
				sub[tv.ID] = types.TDouble
			}
		}
	}
	qt = types.ApplyQual(sub, qt)

	sub2 := types.Substitution{}
	for _, con := range qt.Constraints {
		if con.Class != "Num" {
			continue
		}
		if tv, ok := con.Type.(*types.TVar); ok {
			if _, already := sub2[tv.ID]; !already {
				sub2[tv.ID] = types.TInteger
			}
		}
	}
	return types.ApplyQual(sub2, qt)
}
