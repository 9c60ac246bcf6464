package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RuralBrick/brewin-interpreter/internal/host"
	"github.com/RuralBrick/brewin-interpreter/internal/interp"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
	"github.com/RuralBrick/brewin-interpreter/internal/report"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
	"github.com/RuralBrick/brewin-interpreter/internal/trace"
)

var (
	inputPath string
	traceFlag bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <program.brewin>",
		Short: "Run a Brewin program",
		Args:  cobra.ExactArgs(1),
		RunE:  runRun,
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "file supplying queued input lines (default: stdin)")
	cmd.Flags().BoolVar(&traceFlag, "trace", false, "record an execution trace to stderr on exit")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
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

	in, err := resolveInput()
	if err != nil {
		return err
	}
	out := host.NewWriter(os.Stdout)
	sink := &host.PanicSink{}

	ip := interp.New(reg, in, out, sink)
	if traceFlag {
		ip.Trace = trace.New()
		defer func() { fmt.Fprintln(os.Stderr, ip.Trace.JSON()) }()
	}
	ip.RunMain()

	if sink.Err != nil {
		return emitErrorReport(report.FromError(sink.Err))
	}
	return nil
}

func resolveInput() (host.InputProvider, error) {
	if inputPath == "" {
		return host.NewLineReader(os.Stdin), nil
	}
	f, err := os.Open(inputPath)
	if err != nil {
		return nil, err
	}
	return host.NewLineReader(f), nil
}

func emitErrorReport(rep *report.ErrorReport) error {
	if reportFormat == "yaml" {
		text, err := rep.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(os.Stderr, text)
		setExitCode(1)
		return nil
	}
	return fmt.Errorf("%s error on line %d: %s", rep.Kind, rep.Line, rep.Message)
}
