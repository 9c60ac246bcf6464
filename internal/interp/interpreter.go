// Package interp implements Brewin's expression and statement evaluators,
// method dispatch, and the top-level program entry point (spec.md §4.5–
// §4.8). It is the only package that imports internal/runtime for
// evaluation purposes — internal/runtime stays a pure data model.
package interp

import (
	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/host"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
	"github.com/RuralBrick/brewin-interpreter/internal/trace"
)

// maxCallDepth bounds recursion so pathological recursion surfaces as a
// FAULT error instead of exhausting the host stack (spec.md §5).
const maxCallDepth = 4000

// Interpreter wires the pure evaluator to its host collaborators and the
// class registry built by a prior runtime.LoadProgram call. Grounded on
// the teacher's internal/interp.Interpreter, which holds the same shape:
// a program (here, the registry), an output sink, and a tracer.
type Interpreter struct {
	Registry *runtime.ClassRegistry
	Input    host.InputProvider
	Output   host.OutputSink
	Errors   host.ErrorSink
	Trace    *trace.Execution

	depth int
}

// New creates an Interpreter over an already-loaded registry.
func New(reg *runtime.ClassRegistry, in host.InputProvider, out host.OutputSink, errSink host.ErrorSink) *Interpreter {
	return &Interpreter{Registry: reg, Input: in, Output: out, Errors: errSink}
}

// Run parses+loads source, locates class main's zero-argument method
// main, and invokes it (spec.md §4.1). Every outcome — a structured error
// from loading or evaluation, or an uncaught exception reaching the top
// of the program — is reported through errSink rather than returned,
// matching the host collaborator contract in spec.md §6.
func Run(source string, in host.InputProvider, out host.OutputSink, errSink host.ErrorSink) {
	forms, err := parser.ParseProgram(source)
	if err != nil {
		errSink.Fail(err)
		return
	}
	reg, err := runtime.LoadProgram(forms)
	if err != nil {
		errSink.Fail(err)
		return
	}
	interp := New(reg, in, out, errSink)
	interp.RunMain()
}

// RunMain locates and invokes main.main on an already-loaded registry.
func (interp *Interpreter) RunMain() {
	mainClass, ok := interp.Registry.LookupClass("main")
	if !ok {
		interp.Errors.Fail(errors.NewType(0, "no class named 'main' is defined"))
		return
	}
	mainObj, err := runtime.NewObject(interp.Registry, mainClass)
	if err != nil {
		interp.Errors.Fail(err)
		return
	}
	method, ok := mainClass.LookupMethodLocal("main")
	if !ok {
		interp.Errors.Fail(errors.NewName(mainClass.Line, "class 'main' must define a method named 'main'"))
		return
	}
	if len(method.Formals) != 0 {
		interp.Errors.Fail(errors.NewName(method.Line, "method 'main' must take zero parameters"))
		return
	}

	_, sig, callErr := interp.CallMethod(runtime.NewObjectValue(mainObj), "main", nil, mainClass.Line)
	if callErr != nil {
		interp.Errors.Fail(callErr)
		return
	}
	if sig != nil && sig.Exception {
		interp.Errors.Fail(errors.NewFault(sig.Line, "uncaught exception: %s", sig.ExcValue))
		return
	}
}
