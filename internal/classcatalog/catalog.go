// Package classcatalog is the single shared authority spec.md §9 names: a
// static table of (class, method, method identifier, signature pattern)
// entries consumed by both internal/lower (to record DictionaryInits) and
// internal/runtimeabi (to implement the methods and expose the builders).
//
// Grounded on _examples/original_source/src/core_ir/dict_specs.rs's
// CLASS_METHODS table. That table's classes are Num, Fractional, Integral,
// Eq, Ord, BoolLogic — note this differs from spec.md §3.2's class-env
// prose, which names a fifth runtime class `Show` and omits
// Integral/BoolLogic. `Show` is handled entirely in internal/types'
// ClassEnv for display/pretty-printing and never appears here, because no
// codegen rule in spec.md §4.4 ever calls a Show method at native-ABI
// level; Integral and BoolLogic are carried because spec.md §3.3's PrimOp
// dictionary-method mapping needs a dictionary source for integer
// division/modulo and boolean logic that spec.md's prose never names
// explicitly. Method identifiers here are this repo's own stable
// enumeration (sequential per class in catalog order), not a byte-for-byte
// copy of the original's numeric constants.
package classcatalog

// SignaturePattern is a generic method-type template, with %T standing for
// the carrier type (spec.md §3.3 "generic signature template").
type SignaturePattern string

// MethodSpec is one method of a class: its name, its process-wide unique
// numeric method identifier, and its generic signature pattern.
type MethodSpec struct {
	Name      string
	MethodID  int
	Signature SignaturePattern
}

// ClassMethodSet is the ordered method list for one class.
type ClassMethodSet struct {
	ClassName string
	Methods   []MethodSpec
}

// CLASS_METHODS is the committed fallback table (spec.md §6.5): used
// whenever TYPELANG_CLASS_CATALOG is unset. The naming deliberately keeps
// the original's all-caps identifier since it is a direct port of its Rust
// namesake.
var CLASS_METHODS = []ClassMethodSet{
	{
		ClassName: "Num",
		Methods: []MethodSpec{
			{Name: "add", MethodID: 0, Signature: "%T -> %T -> %T"},
			{Name: "sub", MethodID: 1, Signature: "%T -> %T -> %T"},
			{Name: "mul", MethodID: 2, Signature: "%T -> %T -> %T"},
			{Name: "fromInt", MethodID: 3, Signature: "Int -> %T"},
		},
	},
	{
		ClassName: "Fractional",
		Methods: []MethodSpec{
			{Name: "divide", MethodID: 10, Signature: "%T -> %T -> %T"},
			{Name: "recip", MethodID: 11, Signature: "%T -> %T"},
			{Name: "fromRational", MethodID: 12, Signature: "Double -> %T"},
		},
	},
	{
		ClassName: "Integral",
		Methods: []MethodSpec{
			{Name: "div", MethodID: 20, Signature: "%T -> %T -> %T"},
			{Name: "mod", MethodID: 21, Signature: "%T -> %T -> %T"},
			{Name: "quot", MethodID: 22, Signature: "%T -> %T -> %T"},
			{Name: "rem", MethodID: 23, Signature: "%T -> %T -> %T"},
		},
	},
	{
		ClassName: "Eq",
		Methods: []MethodSpec{
			{Name: "eq", MethodID: 30, Signature: "%T -> %T -> Bool"},
			{Name: "neq", MethodID: 31, Signature: "%T -> %T -> Bool"},
		},
	},
	{
		ClassName: "Ord",
		Methods: []MethodSpec{
			{Name: "lt", MethodID: 40, Signature: "%T -> %T -> Bool"},
			{Name: "le", MethodID: 41, Signature: "%T -> %T -> Bool"},
			{Name: "gt", MethodID: 42, Signature: "%T -> %T -> Bool"},
			{Name: "ge", MethodID: 43, Signature: "%T -> %T -> Bool"},
		},
	},
	{
		ClassName: "BoolLogic",
		Methods: []MethodSpec{
			{Name: "and", MethodID: 50, Signature: "Bool -> Bool -> Bool"},
			{Name: "or", MethodID: 51, Signature: "Bool -> Bool -> Bool"},
			{Name: "not", MethodID: 52, Signature: "Bool -> Bool"},
		},
	},
}

// active is the catalog Lookup and MethodByID consult. It starts out as
// CLASS_METHODS and is replaced wholesale by Activate when a compile
// supplies its own table (spec.md §6.5's TYPELANG_CLASS_CATALOG, or the
// typelang.yaml classCatalogPath key).
var active = CLASS_METHODS

// Activate replaces the catalog used by Lookup and MethodByID for the
// rest of the process. A nil or empty catalog is ignored, so a failed
// or absent override leaves CLASS_METHODS in effect.
func Activate(catalog []ClassMethodSet) {
	if len(catalog) > 0 {
		active = catalog
	}
}

// Lookup returns the method set for a class name, if the catalog carries one.
func Lookup(class string) (ClassMethodSet, bool) {
	for _, cms := range active {
		if cms.ClassName == class {
			return cms, true
		}
	}
	return ClassMethodSet{}, false
}

// MethodByID finds the (class, method) pair owning a numeric method
// identifier, used by internal/runtimeabi's dict_lookup implementation.
func MethodByID(id int) (class string, method MethodSpec, ok bool) {
	for _, cms := range active {
		for _, m := range cms.Methods {
			if m.MethodID == id {
				return cms.ClassName, m, true
			}
		}
	}
	return "", MethodSpec{}, false
}

// BuilderSymbol is the stable runtime symbol name for a class/carrier
// dictionary builder (spec.md §6.3): `dict_build_<Class>_<Type>`.
func BuilderSymbol(class, typeName string) string {
	return "tl_dict_build_" + class + "_" + typeName
}

// MethodSymbol is the stable runtime symbol name for one concrete method
// implementation (spec.md §4.3 "DictionaryInit"):
// `<runtimePrefix>_<className>_<typeName>_<method>`.
func MethodSymbol(class, typeName, method string) string {
	return "tl_" + class + "_" + typeName + "_" + method
}
