package types

// Substitution is a sparse mapping from type-variable identities to Types
// (spec §3.1). The zero value is the empty substitution.
type Substitution map[int]Type

// Apply replaces every free occurrence of a variable bound in s within t.
// Constructor identity and arity are never altered — only variables change.
func Apply(s Substitution, t Type) Type {
	if len(s) == 0 {
		return t
	}
	switch x := t.(type) {
	case *TVar:
		if bound, ok := s[x.ID]; ok {
			return bound
		}
		return x
	case *TCon:
		return x
	case *TApp:
		return &TApp{Func: Apply(s, x.Func), Arg: Apply(s, x.Arg)}
	case *TFun:
		return &TFun{Param: Apply(s, x.Param), Result: Apply(s, x.Result)}
	case *TTuple:
		items := make([]Type, len(x.Items))
		for i, it := range x.Items {
			items[i] = Apply(s, it)
		}
		return &TTuple{Items: items}
	default:
		return t
	}
}

// ApplyConstraint applies s to a Constraint's type.
func ApplyConstraint(s Substitution, c Constraint) Constraint {
	return Constraint{Class: c.Class, Type: Apply(s, c.Type)}
}

// ApplyQual applies s to every constraint and the underlying type of a
// QualifiedType.
func ApplyQual(s Substitution, q QualifiedType) QualifiedType {
	cs := make([]Constraint, len(q.Constraints))
	for i, c := range q.Constraints {
		cs[i] = ApplyConstraint(s, c)
	}
	return QualifiedType{Type: Apply(s, q.Type), Constraints: cs}
}

// Compose returns the composition of s1 followed by s2: applying s1 then s2.
// Entries in s2 override conflicting entries carried over from s1.
func Compose(s2, s1 Substitution) Substitution {
	out := make(Substitution, len(s1)+len(s2))
	for k, v := range s1 {
		out[k] = Apply(s2, v)
	}
	for k, v := range s2 {
		out[k] = v
	}
	return out
}
