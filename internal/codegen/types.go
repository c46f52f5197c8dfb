package codegen

import (
	"tinygo.org/x/go-llvm"

	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// machineType maps a Core IR ValueTy to its native LLVM representation
// (spec.md §4.4 "machine-type mapping"). Char, String, Tuple, and Function
// never reach the native boundary in this backend (spec.md §3.3 Non-goals:
// no closures, no packed aggregates) and fail with CODEGEN100.
func (cg *codegen) machineType(vt core.ValueTy) (llvm.Type, error) {
	switch vt.Kind {
	case core.VInt:
		return cg.iTy, nil
	case core.VDouble:
		return cg.dTy, nil
	case core.VBool, core.VUnit:
		return cg.i8Ty, nil
	case core.VList, core.VData, core.VDictionary, core.VUnknown:
		return cg.ptrTy, nil
	case core.VChar, core.VString, core.VTuple, core.VFunction:
		return llvm.Type{}, codegenErrf(tlerrors.CODEGEN100, "unsupported native type %s", vt.Kind.String())
	default:
		return llvm.Type{}, codegenErrf(tlerrors.CODEGEN100, "unsupported native type %s", vt.Kind.String())
	}
}

// buildSignature precomputes one Function's LLVM signature, dictionary
// parameters first (spec.md §4.4 "Signature precomputation" mirrors the
// Core IR parameter order: dictionaries, then values).
func (cg *codegen) buildSignature(fn *core.Function) (funcSig, error) {
	var paramTys []llvm.Type
	for _, p := range fn.Params {
		if p.Kind == core.PKDictionary {
			paramTys = append(paramTys, cg.ptrTy)
			continue
		}
		ty, err := cg.machineType(p.Ty)
		if err != nil {
			return funcSig{}, err
		}
		paramTys = append(paramTys, ty)
	}
	resultTy, err := cg.machineType(fn.Result)
	if err != nil {
		return funcSig{}, err
	}
	llvmFnTy := llvm.FunctionType(resultTy, paramTys, false)
	return funcSig{paramTys: paramTys, resultTy: resultTy, llvmFn: llvmFnTy}, nil
}
