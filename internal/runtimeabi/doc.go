// Package runtimeabi implements the native runtime a compiled program links
// against: boxed values, cons lists, algebraic data, and type-class
// dictionaries, all exported under the `tl_` prefix via cgo so that
// `go build -buildmode=c-archive` produces the static library internal/codegen's
// link step hands to the system linker alongside the emitted object file
// (spec.md §4.4 "Binary emission", §4.5 "Runtime ABI contracts").
//
// Grounded on _examples/original_source/runtime_native/src/{value,list,data,
// dict,dict_fallback,error}.rs: the same four structures (box, list node,
// algebraic record, dictionary) and the same four-value status enum, carried
// over to Go idiom rather than translated line for line. Every exported
// function the emitted code calls directly has a corresponding external
// declaration in internal/codegen/runtime.go (the tl_dict_build_* builders
// are declared per module from its DictionaryInit list); the two tables
// are kept in sync by hand since
// neither package imports the other (the codegen package only ever sees
// these symbols at link time, never at compile time).
package runtimeabi
