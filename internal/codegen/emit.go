package codegen

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"tinygo.org/x/go-llvm"

	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// emitObject compiles cg.m to a temporary object file, grounded on
// _examples/other_examples/730544c1_hhramberg-go-vslc's target-machine
// setup (InitializeAllTarget*, CreateTargetMachine at CodeGenLevelNone,
// EmitToMemoryBuffer) and write-to-file pattern. The returned path is
// named with a fresh UUID (spec.md §6.4 "temporary" object artifacts),
// grounded on funvibe-funxy's use of github.com/google/uuid for generated
// identifiers.
func (cg *codegen) emitObject(opts Options) (string, error) {
	llvm.InitializeAllTargetInfos()
	llvm.InitializeAllTargets()
	llvm.InitializeAllTargetMCs()
	llvm.InitializeAllAsmParsers()
	llvm.InitializeAllAsmPrinters()

	triple := llvm.DefaultTargetTriple()
	target, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return "", codegenErrf(tlerrors.CODEGEN004, "target lookup failed for %s: %v", triple, err)
	}

	optLevel := llvm.CodeGenLevelNone
	tm := target.CreateTargetMachine(triple, "generic", "", optLevel, llvm.RelocDefault, llvm.CodeModelDefault)
	if tm.IsNil() {
		return "", codegenErr(tlerrors.CODEGEN005, "target machine creation failed")
	}
	defer tm.Dispose()

	td := tm.CreateTargetData()
	defer td.Dispose()
	cg.m.SetDataLayout(td.String())
	cg.m.SetTarget(triple)

	buf, err := tm.EmitToMemoryBuffer(cg.m, llvm.ObjectFile)
	if err != nil {
		return "", codegenErrf(tlerrors.CODEGEN105, "object emission failed: %v", err)
	}
	defer buf.Dispose()

	workDir := opts.WorkDir
	if workDir == "" {
		workDir = os.TempDir()
	}
	objPath := filepath.Join(workDir, "typelang-"+uuid.NewString()+".o")
	if err := os.WriteFile(objPath, buf.Bytes(), 0o644); err != nil {
		return "", codegenErrf(tlerrors.CODEGEN105, "writing object file: %v", err)
	}
	return objPath, nil
}
