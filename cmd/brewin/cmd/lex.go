package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RuralBrick/brewin-interpreter/internal/lexer"
	"github.com/RuralBrick/brewin-interpreter/internal/report"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex <program.brewin>",
		Short: "Tokenize a Brewin source file and print its token stream",
		Args:  cobra.ExactArgs(1),
		RunE:  runLex,
	}
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	toks, lexErr := lexer.Tokenize(string(source))
	if lexErr != nil {
		return emitErrorReport(report.FromError(lexErr))
	}
	for _, t := range toks {
		fmt.Printf("%4d  %s\n", t.Line, t.Text)
	}
	return nil
}
