// Package errors implements Brewin's four-kind structured error taxonomy
// (spec.md §7). It is grounded on the teacher's
// internal/interp/errors.InterpreterError / internal/errors.CompilerError
// constructor families: a small struct carrying a category, a message, and
// a source position, built through one constructor per category instead of
// constructing the struct literal by hand at every call site.
package errors

import "fmt"

// Kind is one of Brewin's four terminal error categories. Exactly four
// exist; there is no "unknown" or "internal" catch-all category the way
// the teacher's richer ErrorCategory has, because spec.md §7 closes the
// set.
type Kind string

const (
	// Syntax means the AST shape does not match any recognized form.
	Syntax Kind = "SYNTAX"
	// Type means an assignment/return/operator/input conversion is
	// incompatible with declared types, or a class/template name is
	// duplicated or unknown where a class is required.
	Type Kind = "TYPE"
	// Name means an identifier, field, method, or parameter was not
	// found, or was declared twice where uniqueness is required, or
	// `exception` was referenced outside a catch block.
	Name Kind = "NAME"
	// Fault means a null dereference, an uncaught user exception
	// reaching the top of the program, or integer division/modulo by
	// zero.
	Fault Kind = "FAULT"
)

// BrewinError is a terminal, user-visible failure. Every BrewinError
// carries the line number of the offending AST node (spec.md §7).
type BrewinError struct {
	Kind    Kind
	Line    int
	Message string
}

// Error implements the error interface.
func (e *BrewinError) Error() string {
	return fmt.Sprintf("%s error on line %d: %s", e.Kind, e.Line, e.Message)
}

// NewSyntax creates a SYNTAX error.
func NewSyntax(line int, format string, args ...any) *BrewinError {
	return &BrewinError{Kind: Syntax, Line: line, Message: fmt.Sprintf(format, args...)}
}

// NewType creates a TYPE error.
func NewType(line int, format string, args ...any) *BrewinError {
	return &BrewinError{Kind: Type, Line: line, Message: fmt.Sprintf(format, args...)}
}

// NewName creates a NAME error.
func NewName(line int, format string, args ...any) *BrewinError {
	return &BrewinError{Kind: Name, Line: line, Message: fmt.Sprintf(format, args...)}
}

// NewFault creates a FAULT error.
func NewFault(line int, format string, args ...any) *BrewinError {
	return &BrewinError{Kind: Fault, Line: line, Message: fmt.Sprintf(format, args...)}
}
