package types

// ClassEnv holds the class hierarchy and the set of ground instances (spec
// §3.2), grounded on the teacher's InstanceEnv (direct lookup + a single
// hard-coded "Ord derives Eq" rule), generalized here to the full entailment
// rule set spec.md requires, including the structural list/tuple instances
// the teacher's InstanceEnv never had.
type ClassEnv struct {
	// Superclasses maps a class name to its direct superclasses.
	Superclasses map[string][]string
	// Instances maps a class name to the set of type-constructor names it
	// directly holds for (e.g. Instances["Eq"]["Int"] == true).
	Instances map[string]map[string]bool
}

// NewStdClassEnv builds the standard hierarchy and ground instances named
// in spec.md §3.2: Eq/Show/Num have no superclasses, Ord <: Eq, Fractional
// <: Num; Eq/Ord/Show hold for Int, Integer, Double, Char, Bool and [Char];
// Num holds for Int, Integer, Double; Fractional holds for Double.
func NewStdClassEnv() *ClassEnv {
	env := &ClassEnv{
		Superclasses: map[string][]string{
			"Eq":         nil,
			"Show":       nil,
			"Num":        nil,
			"Ord":        {"Eq"},
			"Fractional": {"Num"},
		},
		Instances: map[string]map[string]bool{
			"Eq":         set("Int", "Integer", "Double", "Char", "Bool", "[Char]"),
			"Ord":        set("Int", "Integer", "Double", "Char", "Bool", "[Char]"),
			"Show":       set("Int", "Integer", "Double", "Char", "Bool", "[Char]"),
			"Num":        set("Int", "Integer", "Double"),
			"Fractional": set("Double"),
		},
	}
	return env
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// Holds implements the entailment rule set of spec.md §3.2, used for
// display filtering only: a direct instance, or structural derivation over
// `[] u` / tuples for Eq/Ord, or the same check against any superclass.
func (env *ClassEnv) Holds(class string, t Type) bool {
	if env.holdsDirect(class, t) {
		return true
	}
	if class == "Eq" || class == "Ord" {
		if app, ok := t.(*TApp); ok {
			if c, ok := app.Func.(*TCon); ok && c.Name == "[]" {
				return env.Holds(class, app.Arg)
			}
		}
		if tup, ok := t.(*TTuple); ok {
			for _, item := range tup.Items {
				if !env.Holds(class, item) {
					return false
				}
			}
			return true
		}
	}
	for _, super := range env.Superclasses[class] {
		if env.Holds(super, t) {
			return true
		}
	}
	return false
}

func (env *ClassEnv) holdsDirect(class string, t Type) bool {
	name := NormalizeTypeName(t)
	return env.Instances[class] != nil && env.Instances[class][name]
}

// NormalizeTypeName produces a canonical carrier-type key for instance
// lookup, grounded on the teacher's canonicalKey/typeToName helpers. A
// `[] Char` list is keyed "[Char]", the name the instance sets use, rather
// than by its "String" display name.
func NormalizeTypeName(t Type) string {
	if t.Equals(TString()) {
		return "[Char]"
	}
	return t.String()
}
