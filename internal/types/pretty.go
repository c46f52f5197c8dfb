package types

import (
	"sort"
	"strings"
)

// PrettyPrint renders a QualifiedType per spec.md §4.2 "Pretty-printing":
// dedup by (class, canonical type key), drop closed/unreferenced
// constraints, assign fresh single-letter names in first-occurrence order,
// and format as "C1 t1, C2 t2 => T" (omitting "=>" when empty).
//
// Grounded on the teacher's constraint String() methods.
func PrettyPrint(q QualifiedType) string {
	resultFTV := FTV(q.Type)

	kept := make([]Constraint, 0, len(q.Constraints))
	for _, c := range dedupConstraints(q.Constraints) {
		cftv := FTV(c.Type)
		if len(cftv) == 0 {
			continue // closed constraint: dropped
		}
		referenced := false
		for id := range cftv {
			if resultFTV[id] {
				referenced = true
				break
			}
		}
		if !referenced {
			continue
		}
		kept = append(kept, c)
	}

	names := freshNames(q.Type, kept)
	renamed := renameType(q.Type, names)

	sort.Slice(kept, func(i, j int) bool {
		if kept[i].Class != kept[j].Class {
			return kept[i].Class < kept[j].Class
		}
		return kept[i].Type.String() < kept[j].Type.String()
	})

	var parts []string
	for _, c := range kept {
		parts = append(parts, c.Class+" "+renameType(c.Type, names))
	}

	if len(parts) == 0 {
		return renamed
	}
	return strings.Join(parts, ", ") + " => " + renamed
}

// freshNames assigns single-letter names to every variable occurring in t or
// any kept constraint, in first-occurrence order (t first, then constraints
// in their given order).
func freshNames(t Type, constraints []Constraint) map[int]string {
	names := make(map[int]string)
	order := []int{}
	var walk func(Type)
	walk = func(ty Type) {
		switch x := ty.(type) {
		case *TVar:
			if _, ok := names[x.ID]; !ok {
				names[x.ID] = ""
				order = append(order, x.ID)
			}
		case *TApp:
			walk(x.Func)
			walk(x.Arg)
		case *TFun:
			walk(x.Param)
			walk(x.Result)
		case *TTuple:
			for _, it := range x.Items {
				walk(it)
			}
		}
	}
	walk(t)
	for _, c := range constraints {
		walk(c.Type)
	}
	for i, id := range order {
		names[id] = letterName(i)
	}
	return names
}

func letterName(i int) string {
	if i < 26 {
		return string(rune('a' + i))
	}
	return letterName(i/26-1) + string(rune('a'+i%26))
}

func renameType(t Type, names map[int]string) string {
	sub := make(Substitution, len(names))
	for id, n := range names {
		sub[id] = &TCon{Name: n}
	}
	return Apply(sub, t).String()
}
