// Package pipeline sequences the toolchain's compile-unit stages, grounded
// on the teacher's own internal/pipeline: one package owning "what runs
// after what", so cmd/typelangc never calls internal/infer or internal/lower
// directly.
package pipeline

import (
	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/core"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/infer"
	"github.com/sunholo/typelang/internal/lower"
	"github.com/sunholo/typelang/internal/types"
	"github.com/sunholo/typelang/internal/xlog"
)

var log = xlog.New("pipeline")

// Options configures one Compile call. It is currently empty — spec.md §6.2
// reserves it for future front-end flags (e.g. module search paths) — but
// is kept as a struct rather than dropped so Compile's signature does not
// have to change when those arrive.
type Options struct{}

// CheckResult is what the `check` subcommand (spec.md §6.1) needs: the
// generalized top-level Schemes, pretty-printed, without running codegen.
type CheckResult struct {
	Schemes map[string]types.Scheme
}

// Compile runs the inferencer then the lowerer over prog, in that order,
// stopping at the first classified *errors.Report failure (spec.md §5
// "Top-level declarations are processed in source order").
func Compile(prog *ast.Program, _ Options) (*core.Module, error) {
	log.Debug("inferring program", "decls", len(prog.Decls))
	ctx, schemes, err := infer.InferProgram(prog)
	if err != nil {
		return nil, err
	}
	log.Debug("lowering program", "functions", len(schemes))
	mod, err := lower.Lower(prog, ctx, schemes)
	if err != nil {
		return nil, err
	}
	return mod, nil
}

// Check runs only the inferencer, for the `check` subcommand: a fast
// well-typedness pass that never touches internal/lower or internal/codegen.
func Check(prog *ast.Program, _ Options) (*CheckResult, error) {
	_, schemes, err := infer.InferProgram(prog)
	if err != nil {
		return nil, err
	}
	return &CheckResult{Schemes: schemes}, nil
}

// WrapUnclassified adapts an error internal/pipeline did not itself
// classify (there should be none on the success paths above, but Compile's
// callers — the CLI — may still hand this a parser error from a future
// front end) into the shared Report shape.
func WrapUnclassified(phase string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := tlerrors.AsReport(err); ok {
		return err
	}
	return tlerrors.WrapReport(tlerrors.NewGeneric(phase, err))
}
