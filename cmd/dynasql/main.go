// Command dynasql is a debug CLI for compiling and emitting templates
// outside of a Go program, grounded on the pack's Cobra-based CLIs
// (termfx-morfx, vippsas-sqlcode) since the teacher's own cmd/juice
// argv handling predates Cobra's adoption across the pack.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dynasql",
		Short: "Compile and emit dynasql templates from the command line",
	}
	root.AddCommand(newRenderCmd())
	return root
}
