package types

import "sort"

// Constraint pairs a class name with the Type the class is claimed to hold
// for (spec §3.1).
type Constraint struct {
	Class string
	Type  Type
}

func (c Constraint) String() string { return c.Class + " " + c.Type.String() }

// QualifiedType is a Type together with an unordered, structurally
// deduplicated set of Constraints.
type QualifiedType struct {
	Type        Type
	Constraints []Constraint
}

// dedupConstraints removes structural duplicates, keyed by (class, printed
// type). Order of first occurrence is preserved.
func dedupConstraints(cs []Constraint) []Constraint {
	seen := make(map[string]bool, len(cs))
	out := make([]Constraint, 0, len(cs))
	for _, c := range cs {
		key := c.Class + "::" + c.Type.String()
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// NewQualifiedType builds a QualifiedType with deduplicated constraints.
func NewQualifiedType(t Type, cs []Constraint) QualifiedType {
	return QualifiedType{Type: t, Constraints: dedupConstraints(cs)}
}

// FTV returns the free type variables of the type and every constraint.
func (q QualifiedType) FTV() map[int]bool {
	s := make(map[int]bool)
	q.Type.FreeVars(s)
	for _, c := range q.Constraints {
		c.Type.FreeVars(s)
	}
	return s
}

// Scheme is a QualifiedType closed over a set of quantified type-variable
// identities (spec §3.1). Invariant enforced by Generalize: Quantified is
// exactly ftv(Qual) \ ftv(env).
type Scheme struct {
	Quantified []int
	Qual       QualifiedType
}

// Generalize quantifies exactly the free variables of qt that do not occur
// free in env (spec §4.1 "Generalization").
func Generalize(envFTV map[int]bool, qt QualifiedType) Scheme {
	free := qt.FTV()
	var quant []int
	for id := range free {
		if !envFTV[id] {
			quant = append(quant, id)
		}
	}
	sort.Ints(quant)
	return Scheme{Quantified: quant, Qual: qt}
}

// Instantiate draws a fresh variable identity (via fresh) for each quantified
// variable and substitutes it through the scheme's qualified type (spec
// §4.1 "Instantiation").
func Instantiate(s Scheme, fresh func() int) QualifiedType {
	sub := make(Substitution, len(s.Quantified))
	for _, id := range s.Quantified {
		sub[id] = &TVar{ID: fresh()}
	}
	return ApplyQual(sub, s.Qual)
}
