package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RuralBrick/brewin-interpreter/internal/classdump"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
	"github.com/RuralBrick/brewin-interpreter/internal/report"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

func newClassesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classes <program.brewin>",
		Short: "List a Brewin program's classes, fields, and methods",
		Args:  cobra.ExactArgs(1),
		RunE:  runClasses,
	}
}

func runClasses(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	forms, parseErr := parser.ParseProgram(string(source))
	if parseErr != nil {
		return emitErrorReport(report.FromError(parseErr))
	}
	reg, loadErr := runtime.LoadProgram(forms)
	if loadErr != nil {
		return emitErrorReport(report.FromError(loadErr))
	}

	for _, summary := range classdump.Dump(reg, reg.ClassNames()) {
		header := summary.Name
		if summary.Parent != "" {
			header += " inherits " + summary.Parent
		}
		fmt.Println(header)
		if len(summary.Fields) > 0 {
			fmt.Println("  fields: " + strings.Join(summary.Fields, ", "))
		}
		if len(summary.Methods) > 0 {
			fmt.Println("  methods: " + strings.Join(summary.Methods, ", "))
		}
	}
	return nil
}
