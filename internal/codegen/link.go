package codegen

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	tlerrors "github.com/sunholo/typelang/internal/errors"
)

// link shells out to a C-compiler-compatible driver to combine the emitted
// object with the runtime static library into the final executable
// (spec.md §4.4 "Binary emission"). Grounded on
// _examples/other_examples/730544c1_hhramberg-go-vslc's linking stage,
// which likewise drives the system compiler via os/exec rather than
// implementing a linker.
func link(objPath string, opts Options) error {
	cc := opts.CC
	if cc == "" {
		cc = os.Getenv("CC")
	}
	if cc == "" {
		cc = "cc"
	}
	runtimeLib := opts.RuntimeLib
	if runtimeLib == "" {
		runtimeLib = os.Getenv("TYPELANG_RUNTIME_LIB")
	}

	args := []string{objPath, "-o", opts.OutPath}
	if runtimeLib != "" {
		args = append(args, runtimeLib)
	}

	cmd := exec.Command(cc, args...)
	var stderr strings.Builder
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		exitCode := -1
		if ee, ok := err.(*exec.ExitError); ok {
			exitCode = ee.ExitCode()
		}
		return codegenErrf(tlerrors.CODEGEN300, "link command %q failed (exit %d): %s",
			fmt.Sprintf("%s %s", cc, strings.Join(args, " ")), exitCode, stderr.String())
	}
	return nil
}
