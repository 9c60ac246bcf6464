// Package cmd implements the brewin CLI's command tree, grounded on the
// teacher's cmd/dwscript/cmd Cobra layout: a root command with shared
// persistent flags and one subcommand per tool action (SPEC_FULL.md §2.4).
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportFormat string

// Execute runs the brewin CLI, returning the process exit code.
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return exitCode
}

// exitCode is set by a subcommand (via setExitCode) when the interpreted
// program terminated with a structured error, so Execute can still return
// a nonzero status after Cobra itself reports success.
var exitCode int

func setExitCode(code int) {
	exitCode = code
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "brewin",
		Short:         "Brewin: a tree-walking interpreter for the Brewin class-based language",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&reportFormat, "report", "text", "error report format: text or yaml")
	root.AddCommand(newRunCmd())
	root.AddCommand(newLexCmd())
	root.AddCommand(newASTCmd())
	root.AddCommand(newClassesCmd())
	root.AddCommand(newVersionCmd())
	return root
}
