// Package report renders a *errors.BrewinError (or a full run summary) as
// YAML for the CLI's --report=yaml flag, grounded on the teacher's
// human-readable CompilerError formatting but using a pack-provided
// structured-data library for the machine-readable path instead of
// hand-rolled string formatting (SPEC_FULL.md §2.3).
package report

import (
	"github.com/goccy/go-yaml"

	"github.com/RuralBrick/brewin-interpreter/internal/errors"
)

// ErrorReport is the YAML-serializable shape of a terminating error.
type ErrorReport struct {
	Kind    string `yaml:"kind"`
	Line    int    `yaml:"line"`
	Message string `yaml:"message"`
}

// RunReport summarizes one interpreter run: the output lines produced
// before termination, and the error that ended it, if any. The CLI's
// --report=yaml path renders only ErrorReport, not RunReport.
type RunReport struct {
	Output []string     `yaml:"output"`
	Error  *ErrorReport `yaml:"error,omitempty"`
}

// FromError builds an ErrorReport from a BrewinError.
func FromError(err *errors.BrewinError) *ErrorReport {
	if err == nil {
		return nil
	}
	return &ErrorReport{Kind: string(err.Kind), Line: err.Line, Message: err.Message}
}

// YAML renders r as a YAML document.
func (r *RunReport) YAML() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// YAML renders an ErrorReport on its own, used when the caller only needs
// the error half of a run (e.g. a failed `brewin lex`/`brewin ast`).
func (r *ErrorReport) YAML() (string, error) {
	out, err := yaml.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
