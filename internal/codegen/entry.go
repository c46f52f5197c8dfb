package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// synthesizeMain builds the C-style `main` spec.md §4.4 "Entry wrapper"
// describes: call the IR entry function, print its result through the
// matching runtime print function (for non-Unit results), and return 0.
func (cg *codegen) synthesizeMain(entryFn *core.Function) error {
	mainTy := llvm.FunctionType(cg.iTy, nil, false)
	mainFn := llvm.AddFunction(cg.m, "main", mainTy)
	mainFn.SetLinkage(llvm.ExternalLinkage)

	entry := cg.ctx.AddBasicBlock(mainFn, "entry")
	cg.b.SetInsertPointAtEnd(entry)

	result := cg.b.CreateCall(cg.fns[entryFn.Name], nil, "entry_result")

	switch entryFn.Result.Kind {
	case core.VInt:
		cg.b.CreateCall(cg.runtime["tl_print_int"], []llvm.Value{result}, "")
	case core.VDouble:
		cg.b.CreateCall(cg.runtime["tl_print_double"], []llvm.Value{result}, "")
	case core.VBool:
		cg.b.CreateCall(cg.runtime["tl_print_bool"], []llvm.Value{result}, "")
	case core.VUnit:
		// No output for Unit (spec.md §4.4: "For non-Unit returns, main
		// invokes the corresponding runtime print function").
	default:
		return codegenErrf(tlerrors.CODEGEN003, "unsupported entry result type %s", entryFn.Result.Kind.String())
	}

	cg.b.CreateRet(llvm.ConstInt(cg.iTy, 0, false))
	return nil
}
