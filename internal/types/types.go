// Package types implements the type system primitives: types, substitutions,
// unification, and the class environment used by internal/infer.
package types

import "fmt"

// Type is one of TVar, TCon, TApp, TFun, TTuple (spec §3.1).
type Type interface {
	fmt.Stringer
	Equals(other Type) bool
	// FreeVars adds this type's free type-variable identities to into.
	FreeVars(into map[int]bool)
}

// TVar is a type variable identified by an integer, never by name. A fresh
// supply of these identities is owned exclusively by the inferencer.
type TVar struct{ ID int }

func (t *TVar) String() string { return fmt.Sprintf("t%d", t.ID) }
func (t *TVar) Equals(o Type) bool {
	ov, ok := o.(*TVar)
	return ok && ov.ID == t.ID
}
func (t *TVar) FreeVars(into map[int]bool) { into[t.ID] = true }

// TCon is a nullary type constructor, e.g. Int, Double, Bool, Char, Unit, [].
type TCon struct{ Name string }

func (t *TCon) String() string             { return t.Name }
func (t *TCon) Equals(o Type) bool         { ov, ok := o.(*TCon); return ok && ov.Name == t.Name }
func (t *TCon) FreeVars(into map[int]bool) {}

// TApp applies one Type to another, e.g. `[] Char` (aliased as String).
type TApp struct{ Func, Arg Type }

func (t *TApp) String() string {
	if c, ok := t.Func.(*TCon); ok && c.Name == "[]" {
		if cc, ok := t.Arg.(*TCon); ok && cc.Name == "Char" {
			return "String"
		}
		return "[" + t.Arg.String() + "]"
	}
	return t.Func.String() + " " + t.Arg.String()
}
func (t *TApp) Equals(o Type) bool {
	ov, ok := o.(*TApp)
	return ok && t.Func.Equals(ov.Func) && t.Arg.Equals(ov.Arg)
}
func (t *TApp) FreeVars(into map[int]bool) { t.Func.FreeVars(into); t.Arg.FreeVars(into) }

// TFun is a single-argument function type; curried surface functions become
// nested TFuns the way `a -> b -> c` is `TFun{a, TFun{b, c}}`.
type TFun struct{ Param, Result Type }

func (t *TFun) String() string { return t.Param.String() + " -> " + t.Result.String() }
func (t *TFun) Equals(o Type) bool {
	ov, ok := o.(*TFun)
	return ok && t.Param.Equals(ov.Param) && t.Result.Equals(ov.Result)
}
func (t *TFun) FreeVars(into map[int]bool) { t.Param.FreeVars(into); t.Result.FreeVars(into) }

// TTuple is a fixed-arity tuple type.
type TTuple struct{ Items []Type }

func (t *TTuple) String() string {
	s := "("
	for i, it := range t.Items {
		if i > 0 {
			s += ", "
		}
		s += it.String()
	}
	return s + ")"
}
func (t *TTuple) Equals(o Type) bool {
	ov, ok := o.(*TTuple)
	if !ok || len(ov.Items) != len(t.Items) {
		return false
	}
	for i := range t.Items {
		if !t.Items[i].Equals(ov.Items[i]) {
			return false
		}
	}
	return true
}
func (t *TTuple) FreeVars(into map[int]bool) {
	for _, it := range t.Items {
		it.FreeVars(into)
	}
}

// Ground type constructors shared across the pipeline.
var (
	TInt    = &TCon{Name: "Int"}
	TInteger = &TCon{Name: "Integer"}
	TDouble = &TCon{Name: "Double"}
	TBool   = &TCon{Name: "Bool"}
	TChar   = &TCon{Name: "Char"}
	TUnit   = &TCon{Name: "Unit"}
	TListCon = &TCon{Name: "[]"}
)

// TList builds the list type `[] elem`.
func TList(elem Type) Type { return &TApp{Func: TListCon, Arg: elem} }

// TString is the alias `[] Char` (spec §3.1).
func TString() Type { return TList(TChar) }

// FTV returns the set of free type-variable identities occurring in t.
func FTV(t Type) map[int]bool {
	s := make(map[int]bool)
	t.FreeVars(s)
	return s
}
