// Command typelangc is the host-facing CLI (spec.md §6.1): a thin cobra
// dispatcher over internal/pipeline and internal/codegen, grounded on the
// teacher's cmd/typecheck and cmd/ailang as precedent for a checker-only
// subcommand and a build-and-run subcommand respectively, unified here
// behind github.com/spf13/cobra instead of the teacher's hand-rolled `flag`
// dispatch (see SPEC_FULL.md §10 and DESIGN.md for why).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errColor = color.New(color.FgRed, color.Bold).SprintFunc()
)

func main() {
	root := &cobra.Command{
		Use:   "typelangc",
		Short: "Compile typelang programs to native executables",
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newCheckCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errColor("error:"), err)
		os.Exit(1)
	}
}
