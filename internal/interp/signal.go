package interp

import "github.com/RuralBrick/brewin-interpreter/internal/runtime"

// Signal is the returning/exception sentinel bubbled out of statement
// (and, through nested `call` expressions, expression) evaluation
// (spec.md §4.7, Design Notes: "represent as a sentinel pair (returning,
// value?) ... do not conflate with user exceptions"). A nil *Signal means
// normal completion; exactly one of Returning or Exception is set
// otherwise.
type Signal struct {
	Returning bool
	Value     runtime.Value // set when Returning and the return had an expression

	Exception bool
	ExcValue  string // set when Exception: the thrown string (spec.md §3 "Exception value — any Str Value")
	Line      int    // the `throw` statement's line, carried so an uncaught exception can blame it (spec.md §8 scenario 5)
}

// ReturnSignal builds a Signal for `(return expr)`; value is nil for a
// bare `(return)`.
func ReturnSignal(value runtime.Value) *Signal {
	return &Signal{Returning: true, Value: value}
}

// ThrowSignal builds a Signal for a raised exception carrying msg, raised
// at the given source line.
func ThrowSignal(msg string, line int) *Signal {
	return &Signal{Exception: true, ExcValue: msg, Line: line}
}
