package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/classcatalog"
	"github.com/sunholo/typelang/internal/config"
	"github.com/sunholo/typelang/internal/pipeline"
	"github.com/sunholo/typelang/internal/types"
)

// newCheckCmd wires the type-check-only subcommand (spec.md §6.1), printing
// each top-level binding's pretty-printed Scheme, following the teacher's
// cmd/typecheck as precedent for a checker-only entry point.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <input>",
		Short: "Type-check a program (given as its JSON AST) without compiling it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(args[0])
		},
	}
}

func runCheck(input string) error {
	cfg, err := config.Load("typelang.yaml")
	if err != nil {
		return err
	}
	catalog, err := classcatalog.Load(cfg.ClassCatalogPath)
	if err != nil {
		return err
	}
	classcatalog.Activate(catalog)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}
	prog, err := ast.DecodeProgram(data)
	if err != nil {
		return pipeline.WrapUnclassified("frontend", err)
	}

	result, err := pipeline.Check(prog, pipeline.Options{})
	if err != nil {
		return err
	}

	names := make([]string, 0, len(result.Schemes))
	for name := range result.Schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		scheme := result.Schemes[name]
		fmt.Printf("%s : %s\n", name, types.PrettyPrint(scheme.Qual))
	}
	return nil
}
