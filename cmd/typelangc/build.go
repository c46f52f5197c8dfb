package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sunholo/typelang/internal/ast"
	"github.com/sunholo/typelang/internal/classcatalog"
	"github.com/sunholo/typelang/internal/codegen"
	"github.com/sunholo/typelang/internal/config"
	tlerrors "github.com/sunholo/typelang/internal/errors"
	"github.com/sunholo/typelang/internal/pipeline"
)

type buildFlags struct {
	out                string
	emit               string
	backend            string
	optim              int
	printDictionaries  bool
	jsonOutput         bool
}

// newBuildCmd wires the flags spec.md §6.1 names: --out, --emit, --backend,
// --optim, --print-dictionaries, --json.
func newBuildCmd() *cobra.Command {
	f := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Compile a program (given as its JSON AST) to a native executable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], f, cmd.Flags().Changed("optim"))
		},
	}
	cmd.Flags().StringVar(&f.out, "out", "", "output executable path (default <target-dir>/typelang/<stem>)")
	cmd.Flags().StringVar(&f.emit, "emit", "native", "emit format (only \"native\" is supported)")
	cmd.Flags().StringVar(&f.backend, "backend", string(codegen.BackendNative), "codegen backend")
	cmd.Flags().IntVar(&f.optim, "optim", 0, "optimization level (passthrough hint)")
	cmd.Flags().BoolVar(&f.printDictionaries, "print-dictionaries", false, "print resolved/unresolved dictionaries")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "print a single JSON result object")
	return cmd
}

func runBuild(input string, f *buildFlags, optimFlagSet bool) error {
	if f.emit != "native" {
		return fmt.Errorf("unsupported --emit %q: only \"native\" is implemented", f.emit)
	}

	fileCfg, err := config.Load("typelang.yaml")
	if err != nil {
		return err
	}
	override := config.BuildConfig{}
	if f.out != "" {
		override.OutDir = filepath.Dir(f.out)
	}
	if optimFlagSet {
		override.Optim = f.optim
	}
	cfg := config.Merge(fileCfg, override)

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

	mod, err := pipeline.Compile(prog, pipeline.Options{})
	if err != nil {
		return reportError(err, f.jsonOutput)
	}

	out := f.out
	if out == "" {
		stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
		out = filepath.Join(cfg.OutDir, stem)
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}

	result, err := codegen.Emit(mod, codegen.Options{
		OutPath:    out,
		Backend:    codegen.Backend(f.backend),
		Optim:      cfg.Optim,
		RuntimeLib: cfg.RuntimeLib,
	})
	if err != nil {
		return reportError(err, f.jsonOutput)
	}

	if f.printDictionaries {
		for _, d := range result.Dictionaries {
			fmt.Printf("%s[%s]: resolved=%t\n", d.ClassName, d.TypeRepresentation, d.Resolved)
		}
	}

	if f.jsonOutput {
		type jsonResult struct {
			Status       string                       `json:"status"`
			Input        string                       `json:"input"`
			Output       string                       `json:"output"`
			Backend      string                       `json:"backend"`
			Optim        int                          `json:"optim"`
			Dictionaries []codegen.DictionarySummary `json:"dictionaries"`
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(jsonResult{
			Status: "ok", Input: input, Output: result.OutputPath,
			Backend: string(result.Backend), Optim: result.Optim,
			Dictionaries: result.Dictionaries,
		})
	}

	fmt.Println(result.OutputPath)
	return nil
}

// reportError renders a classified *errors.Report as JSON when --json was
// requested, matching spec.md §6.1's "non-zero exit on any classified
// error"; otherwise it is returned as-is for cobra's own error printer.
func reportError(err error, asJSON bool) error {
	if !asJSON {
		return err
	}
	rep, ok := tlerrors.AsReport(err)
	if !ok {
		return err
	}
	body, jsonErr := rep.ToJSON(true)
	if jsonErr != nil {
		return err
	}
	fmt.Println(body)
	return err
}
