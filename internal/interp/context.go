package interp

import "github.com/RuralBrick/brewin-interpreter/internal/runtime"

// Context carries everything a statement or expression evaluation needs
// about where it is running: the receiver, the class whose method body is
// currently executing (so `super` resolves relative to the method's
// defining class rather than the receiver's concrete class), the current
// method's parameter bindings, the innermost lexical frame, and — while
// evaluating a `try` handler — the caught exception string (spec.md §4.6,
// §4.7). Grounded on the teacher's internal/interp Environment-plus-scope
// threading, generalized into one immutable-per-step value that Exec/Eval
// pass down and occasionally fork (WithFrame, WithException) rather than
// mutate in place.
type Context struct {
	Interp       *Interpreter
	Me           *runtime.Object
	Class        *runtime.ClassDef
	Params       map[string]*runtime.Variable
	Frame        *runtime.Frame
	ExceptionVal *string
}

// WithFrame returns a copy of c scoped to a new innermost lexical frame,
// used by `let` to push a scope without disturbing the caller's Context.
func (c *Context) WithFrame(f *runtime.Frame) *Context {
	next := *c
	next.Frame = f
	return &next
}

// WithException returns a copy of c with the `exception` identifier bound
// to s, used while evaluating a `try` handler.
func (c *Context) WithException(s *string) *Context {
	next := *c
	next.ExceptionVal = s
	return &next
}

// Lookup resolves an identifier using spec.md §4.6's order: innermost
// lexical frame outward, then the current method's parameters, then the
// receiver's fields.
func (c *Context) Lookup(name string) (*runtime.Variable, bool) {
	if c.Frame != nil {
		if v, ok := c.Frame.Lookup(name); ok {
			return v, true
		}
	}
	if v, ok := c.Params[name]; ok {
		return v, true
	}
	if c.Me != nil {
		if v, ok := c.Me.GetField(name); ok {
			return v, true
		}
	}
	return nil, false
}
