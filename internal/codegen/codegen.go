// Package codegen lowers a Core IR Module into a standalone native
// executable, grounded on the teacher-adjacent LLVM backend in
// _examples/other_examples/730544c1_hhramberg-go-vslc's
// src/ir/llvm/transform.go: one llvm.Context/llvm.Module/llvm.Builder per
// compile, package-level type shorthands, a declare-all-then-define-all
// pass over functions, and target-machine object emission via
// tm.EmitToMemoryBuffer. Unlike that example's symTab, nothing here is
// guarded by a mutex: compilation is strictly single-threaded (spec.md §5).
package codegen

import (
	"fmt"
	"os"

	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// Backend selects the code generation target. Only Native is implemented;
// spec.md §6.1 reserves the selector for future backends.
type Backend string

const (
	BackendNative Backend = "native"
)

// Options configures one Emit call (spec.md §6.1 "build subcommand").
type Options struct {
	OutPath    string
	Backend    Backend
	Optim      int
	WorkDir    string // scratch directory for the intermediate object file
	CC         string // C compiler driver; defaults to $CC or "cc"
	RuntimeLib string // path to the runtime static archive (spec.md §6.5 search path)
}

// Result reports what Emit produced, enough to populate the --json shape of
// spec.md §6.1.
type Result struct {
	OutputPath  string
	Backend     Backend
	Optim       int
	Dictionaries []DictionarySummary
}

// DictionarySummary is one line of --print-dictionaries output (spec.md
// §6.1).
type DictionarySummary struct {
	ClassName          string
	TypeRepresentation string
	Resolved           bool
}

// codegen carries the per-compile LLVM handles and symbol tables that the
// teacher's transform.go keeps as package globals; here they are fields so
// nothing leaks across independent Emit calls.
type codegen struct {
	mod *core.Module
	ctx llvm.Context
	m   llvm.Module
	b   llvm.Builder

	// Type shorthands, computed once (mirrors transform.go's package-level
	// i/f globals).
	iTy   llvm.Type // i64, the Int machine representation
	i1Ty  llvm.Type // i1, branch conditions
	i8Ty  llvm.Type // i8, Bool/Unit storage
	dTy   llvm.Type // double
	ptrTy llvm.Type // i8*, the generic boxed/ref representation

	runtime map[string]llvm.Value // declared runtime symbols, by name
	fns     map[string]llvm.Value // declared Core functions, by name
	sigs    map[string]funcSig

	dictBuilders map[string]llvm.Value // BuilderSymbol -> declared function
	dictGlobals  map[string]llvm.Value // "class::typeRepr" -> per-function memoized dict pointer (reset per function)
}

type funcSig struct {
	paramTys []llvm.Type
	resultTy llvm.Type
	llvmFn   llvm.Type
}

// Emit compiles mod into a standalone executable at opts.OutPath, returning
// a Result describing what was produced.
func Emit(mod *core.Module, opts Options) (*Result, error) {
	if opts.Backend == "" {
		opts.Backend = BackendNative
	}
	if opts.Backend != BackendNative {
		return nil, tlerrors.WrapReport(tlerrors.New("codegen", tlerrors.CODEGEN070,
			"unsupported backend "+string(opts.Backend), nil))
	}
	if mod.Entry == "" {
		return nil, tlerrors.WrapReport(tlerrors.New("codegen", tlerrors.CODEGEN001, "no entry function", nil))
	}
	entryFn := mod.Functions[mod.Entry]
	for _, p := range entryFn.Params {
		if p.Kind == core.PKDictionary {
			return nil, tlerrors.WrapReport(tlerrors.New("codegen", tlerrors.CODEGEN002,
				"entry function "+mod.Entry+" is polymorphic", nil))
		}
	}
	switch entryFn.Result.Kind {
	case core.VInt, core.VDouble, core.VBool, core.VUnit:
	default:
		return nil, tlerrors.WrapReport(tlerrors.New("codegen", tlerrors.CODEGEN003,
			"entry function result type "+entryFn.Result.Kind.String()+" is unsupported", nil))
	}

	cg := newCodegen(mod)
	defer cg.dispose()

	if err := cg.declareRuntime(); err != nil {
		return nil, err
	}
	if err := cg.declareFunctions(); err != nil {
		return nil, err
	}
	for _, name := range mod.FuncOrder {
		if err := cg.defineFunction(mod.Functions[name]); err != nil {
			return nil, err
		}
	}
	if err := cg.synthesizeMain(entryFn); err != nil {
		return nil, err
	}

	if llvm.VerifyModule(cg.m, llvm.ReturnStatusAction) != nil {
		return nil, tlerrors.WrapReport(tlerrors.New("codegen", tlerrors.CODEGEN006, "module verification failed", nil))
	}

	objPath, err := cg.emitObject(opts)
	if err != nil {
		return nil, err
	}
	defer os.Remove(objPath)

	if err := link(objPath, opts); err != nil {
		return nil, err
	}

	return &Result{
		OutputPath:   opts.OutPath,
		Backend:      opts.Backend,
		Optim:        opts.Optim,
		Dictionaries: summarizeDictionaries(mod),
	}, nil
}

func newCodegen(mod *core.Module) *codegen {
	ctx := llvm.NewContext()
	m := ctx.NewModule("typelang")
	b := ctx.NewBuilder()

	return &codegen{
		mod:   mod,
		ctx:   ctx,
		m:     m,
		b:     b,
		iTy:   ctx.Int64Type(),
		i1Ty:  ctx.Int1Type(),
		i8Ty:  ctx.Int8Type(),
		dTy:   ctx.DoubleType(),
		ptrTy: llvm.PointerType(ctx.Int8Type(), 0),

		runtime:      map[string]llvm.Value{},
		fns:          map[string]llvm.Value{},
		sigs:         map[string]funcSig{},
		dictBuilders: map[string]llvm.Value{},
		dictGlobals:  map[string]llvm.Value{},
	}
}

func (cg *codegen) dispose() {
	cg.b.Dispose()
	cg.m.Dispose()
	cg.ctx.Dispose()
}

func summarizeDictionaries(mod *core.Module) []DictionarySummary {
	out := make([]DictionarySummary, 0, len(mod.Dicts))
	for _, d := range mod.Dicts {
		out = append(out, DictionarySummary{
			ClassName:          d.ClassName,
			TypeRepresentation: d.TypeRepresentation,
			Resolved:           d.Builder == core.BuilderResolved,
		})
	}
	return out
}

func codegenErr(code, msg string) error {
	return tlerrors.WrapReport(tlerrors.New("codegen", code, msg, nil))
}

func codegenErrf(code, format string, args ...any) error {
	return codegenErr(code, fmt.Sprintf(format, args...))
}
