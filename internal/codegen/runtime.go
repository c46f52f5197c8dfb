package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/core"
)

// runtimeFn is one imported ABI symbol (spec.md §4.5 "Runtime ABI
// contracts"). params/result are built lazily against the codegen's type
// shorthands since those don't exist until newCodegen has run.
type runtimeFn struct {
	name   string
	params func(cg *codegen) []llvm.Type
	result func(cg *codegen) llvm.Type
}

func ptrParams(n int) func(cg *codegen) []llvm.Type {
	return func(cg *codegen) []llvm.Type {
		ps := make([]llvm.Type, n)
		for i := range ps {
			ps[i] = cg.ptrTy
		}
		return ps
	}
}

var runtimeTable = []runtimeFn{
	// Boxed values (spec.md §4.5 "Boxed values").
	{"tl_value_from_int", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.iTy} }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_value_from_double", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.dTy} }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_value_from_bool", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.i8Ty} }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_value_to_int", ptrParams(1), func(cg *codegen) llvm.Type { return cg.iTy }},
	{"tl_value_to_double", ptrParams(1), func(cg *codegen) llvm.Type { return cg.dTy }},
	{"tl_value_to_bool", ptrParams(1), func(cg *codegen) llvm.Type { return cg.i8Ty }},
	{"tl_value_to_ptr", ptrParams(1), func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_value_release", ptrParams(1), func(cg *codegen) llvm.Type { return cg.i8Ty }},

	// Lists (spec.md §4.5 "Lists").
	{"tl_list_empty", func(cg *codegen) []llvm.Type { return nil }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_list_cons", ptrParams(2), func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_list_is_empty", ptrParams(1), func(cg *codegen) llvm.Type { return cg.i8Ty }},
	{"tl_list_head", ptrParams(1), func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_list_tail", ptrParams(1), func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_list_free", ptrParams(1), func(cg *codegen) llvm.Type { return cg.i8Ty }},

	// Algebraic data (spec.md §4.5 "Algebraic data").
	{"tl_data_pack", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.iTy, llvm.PointerType(cg.ptrTy, 0), cg.iTy} }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_data_tag", ptrParams(1), func(cg *codegen) llvm.Type { return cg.iTy }},
	{"tl_data_arity", ptrParams(1), func(cg *codegen) llvm.Type { return cg.iTy }},
	{"tl_data_field", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.ptrTy, cg.iTy} }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_data_free", ptrParams(1), func(cg *codegen) llvm.Type { return cg.i8Ty }},

	// Dictionaries (spec.md §4.5 "Dictionaries").
	{"tl_dict_lookup", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.ptrTy, cg.iTy} }, func(cg *codegen) llvm.Type { return cg.ptrTy }},
	{"tl_dict_free", ptrParams(1), func(cg *codegen) llvm.Type { return cg.i8Ty }},

	// Error slot / abort (spec.md §4.5 "Error slot").
	{"tl_abort_with_code", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.iTy} }, func(cg *codegen) llvm.Type { return cg.i8Ty }},

	// Entry-wrapper output (spec.md §4.4 "Entry wrapper synthesis").
	{"tl_print_int", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.iTy} }, func(cg *codegen) llvm.Type { return cg.i8Ty }},
	{"tl_print_double", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.dTy} }, func(cg *codegen) llvm.Type { return cg.i8Ty }},
	{"tl_print_bool", func(cg *codegen) []llvm.Type { return []llvm.Type{cg.i8Ty} }, func(cg *codegen) llvm.Type { return cg.i8Ty }},
}

// declareRuntime imports every ABI symbol as an external function (spec.md
// §5 "codegen owns the module, each runtime symbol declared once").
func (cg *codegen) declareRuntime() error {
	for _, rf := range runtimeTable {
		ft := llvm.FunctionType(rf.result(cg), rf.params(cg), false)
		fn := llvm.AddFunction(cg.m, rf.name, ft)
		fn.SetLinkage(llvm.ExternalLinkage)
		cg.runtime[rf.name] = fn
	}

	// Per-carrier builtin method implementations (Num-Int-add, etc.) are
	// never called by name: spec.md §4.4's PrimOp dict_fallback rule always
	// resolves through tl_dict_lookup plus an indirect call, even when the
	// dictionary's own Builder is resolved. So only the builder functions
	// that materialize a concrete Dictionary pointer need declaring here.
	for _, d := range cg.mod.Dicts {
		if d.Builder != core.BuilderResolved {
			continue
		}
		if _, exists := cg.dictBuilders[d.BuilderSymbol]; exists {
			continue
		}
		ft := llvm.FunctionType(cg.ptrTy, nil, false)
		fn := llvm.AddFunction(cg.m, d.BuilderSymbol, ft)
		fn.SetLinkage(llvm.ExternalLinkage)
		cg.dictBuilders[d.BuilderSymbol] = fn
	}
	return nil
}
