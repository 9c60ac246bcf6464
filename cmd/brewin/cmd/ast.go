package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RuralBrick/brewin-interpreter/internal/astquery"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
	"github.com/RuralBrick/brewin-interpreter/internal/report"
)

var (
	astJSON  bool
	astQuery string
)

func newASTCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ast <program.brewin>",
		Short: "Parse a Brewin source file and print its AST",
		Args:  cobra.ExactArgs(1),
		RunE:  runAST,
	}
	cmd.Flags().BoolVar(&astJSON, "json", false, "dump the AST as JSON")
	cmd.Flags().StringVar(&astQuery, "query", "", "gjson path to extract from the JSON AST (implies --json)")
	return cmd
}

func runAST(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	forms, parseErr := parser.ParseProgram(string(source))
	if parseErr != nil {
		return emitErrorReport(report.FromError(parseErr))
	}

	if astQuery != "" || astJSON {
		doc, err := astquery.ToJSON(forms)
		if err != nil {
			return err
		}
		if astQuery != "" {
			fmt.Println(astquery.Query(doc, astQuery).String())
			return nil
		}
		fmt.Println(doc)
		return nil
	}

	for _, form := range forms {
		fmt.Println(form.String())
	}
	return nil
}
