package interp

import (
	"strconv"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

// Exec executes a statement node (spec.md §4.7). A nil *Signal means the
// statement ran to completion; otherwise the caller must stop executing
// its own remaining sub-statements and propagate the Signal outward.
func (interp *Interpreter) Exec(ctx *Context, node ast.Node) (*Signal, *errors.BrewinError) {
	list, ok := node.(*ast.List)
	if !ok {
		return nil, errors.NewSyntax(node.Line(), "a statement must be a parenthesized form")
	}
	if len(list.Items) == 0 {
		return nil, errors.NewSyntax(list.Line(), "empty statement")
	}
	head, ok := list.Head()
	if !ok {
		return nil, errors.NewSyntax(list.Line(), "malformed statement")
	}

	switch head.Text() {
	case "begin":
		return interp.execBegin(ctx, list)
	case "call":
		_, sig, err := interp.evalCall(ctx, list)
		return sig, err
	case "if":
		return interp.execIf(ctx, list)
	case "while":
		return interp.execWhile(ctx, list)
	case "inputi":
		return nil, interp.execInput(ctx, list, true)
	case "inputs":
		return nil, interp.execInput(ctx, list, false)
	case "print":
		return interp.execPrint(ctx, list)
	case "return":
		return interp.execReturn(ctx, list)
	case "set":
		return interp.execSet(ctx, list)
	case "let":
		return interp.execLet(ctx, list)
	case "throw":
		return interp.execThrow(ctx, list)
	case "try":
		return interp.execTry(ctx, list)
	default:
		return nil, errors.NewSyntax(list.Line(), "unrecognized statement form '%s'", head.Text())
	}
}

func (interp *Interpreter) execBegin(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	if len(list.Items) < 2 {
		return nil, errors.NewSyntax(list.Line(), "'begin' requires at least one statement")
	}
	for _, stmt := range list.Rest() {
		sig, err := interp.Exec(ctx, stmt)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

func (interp *Interpreter) execIf(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) != 3 && len(items) != 4 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'if' statement")
	}
	cond, sig, err := interp.Eval(ctx, items[1])
	if err != nil || sig != nil {
		return sig, err
	}
	b, err := requireBool(cond, items[1].Line())
	if err != nil {
		return nil, err
	}
	if b {
		return interp.Exec(ctx, items[2])
	}
	if len(items) == 4 {
		return interp.Exec(ctx, items[3])
	}
	return nil, nil
}

func (interp *Interpreter) execWhile(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) != 3 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'while' statement")
	}
	for {
		cond, sig, err := interp.Eval(ctx, items[1])
		if err != nil || sig != nil {
			return sig, err
		}
		b, err := requireBool(cond, items[1].Line())
		if err != nil {
			return nil, err
		}
		if !b {
			return nil, nil
		}
		sig, err = interp.Exec(ctx, items[2])
		if err != nil || sig != nil {
			return sig, err
		}
	}
}

func requireBool(v runtime.Value, line int) (bool, *errors.BrewinError) {
	v, err := requireValue(v, line)
	if err != nil {
		return false, err
	}
	b, ok := v.(runtime.BoolValue)
	if !ok {
		return false, errors.NewType(line, "condition must be a bool")
	}
	return b.B, nil
}

func (interp *Interpreter) execInput(ctx *Context, list *ast.List, asInt bool) *errors.BrewinError {
	items := list.Items
	if len(items) != 2 {
		return errors.NewSyntax(list.Line(), "malformed input statement")
	}
	nameAtom, ok := items[1].(*ast.Atom)
	if !ok {
		return errors.NewSyntax(items[1].Line(), "input target must be a variable name")
	}
	v, ok := ctx.Lookup(nameAtom.Text())
	if !ok {
		return errors.NewName(nameAtom.Line(), "undefined identifier '%s'", nameAtom.Text())
	}
	line, ok := interp.Input.NextInput()
	if !ok {
		return errors.NewType(list.Line(), "no more input available")
	}
	var val runtime.Value
	if asInt {
		n, convErr := strconv.ParseInt(line, 10, 64)
		if convErr != nil {
			return errors.NewType(list.Line(), "input '%s' is not a valid int", line)
		}
		val = runtime.NewInt(n)
	} else {
		val = runtime.NewString(line)
	}
	return v.Set(interp.Registry, val, list.Line())
}

func (interp *Interpreter) execPrint(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	var out string
	for _, part := range list.Rest() {
		val, sig, err := interp.Eval(ctx, part)
		if err != nil || sig != nil {
			return sig, err
		}
		val, err = requireValue(val, part.Line())
		if err != nil {
			return nil, err
		}
		out += val.String()
	}
	interp.Output.Emit(out)
	return nil, nil
}

func (interp *Interpreter) execReturn(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) == 1 {
		return ReturnSignal(nil), nil
	}
	if len(items) != 2 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'return' statement")
	}
	val, sig, err := interp.Eval(ctx, items[1])
	if err != nil || sig != nil {
		return sig, err
	}
	return ReturnSignal(val), nil
}

func (interp *Interpreter) execSet(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) != 3 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'set' statement")
	}
	nameAtom, ok := items[1].(*ast.Atom)
	if !ok {
		return nil, errors.NewSyntax(items[1].Line(), "'set' target must be a variable name")
	}
	v, ok := ctx.Lookup(nameAtom.Text())
	if !ok {
		return nil, errors.NewName(nameAtom.Line(), "undefined identifier '%s'", nameAtom.Text())
	}
	val, sig, err := interp.Eval(ctx, items[2])
	if err != nil || sig != nil {
		return sig, err
	}
	val, err = requireValue(val, items[2].Line())
	if err != nil {
		return nil, err
	}
	return nil, v.Set(interp.Registry, val, list.Line())
}

// execLet pushes a fresh frame, declares each local (spec.md §4.7),
// executes the body, and tears the frame down on every exit path by
// simply letting it fall out of scope with the function return — Go's
// garbage collector reclaims it once the child Context is discarded,
// matching the "pop frame on every exit path" requirement without needing
// an explicit deferred teardown call.
func (interp *Interpreter) execLet(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) < 2 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'let' statement")
	}
	declList, ok := items[1].(*ast.List)
	if !ok {
		return nil, errors.NewSyntax(items[1].Line(), "'let' declarations must be parenthesized")
	}

	frame := runtime.NewFrame(ctx.Frame)
	for _, d := range declList.Items {
		decl, ok := d.(*ast.List)
		if !ok || (len(decl.Items) != 2 && len(decl.Items) != 3) {
			return nil, errors.NewSyntax(d.Line(), "malformed 'let' local declaration")
		}
		typeAtom, ok1 := decl.Items[0].(*ast.Atom)
		nameAtom, ok2 := decl.Items[1].(*ast.Atom)
		if !ok1 || !ok2 {
			return nil, errors.NewSyntax(d.Line(), "malformed 'let' local declaration")
		}
		if runtime.IsReserved(nameAtom.Text()) {
			return nil, errors.NewSyntax(nameAtom.Line(), "'%s' is a reserved word and cannot name a local", nameAtom.Text())
		}
		var initial runtime.Value
		childCtx := ctx.WithFrame(frame)
		if len(decl.Items) == 3 {
			val, sig, err := interp.Eval(childCtx, decl.Items[2])
			if err != nil {
				return nil, err
			}
			if sig != nil {
				return sig, nil
			}
			initial = val
		} else {
			initial = runtime.DefaultValueForType(typeAtom.Text())
		}
		v, err := runtime.NewVariable(interp.Registry, nameAtom.Text(), typeAtom.Text(), initial, nameAtom.Line())
		if err != nil {
			return nil, err
		}
		if !frame.Declare(nameAtom.Text(), v) {
			return nil, errors.NewName(nameAtom.Line(), "duplicate local '%s' in 'let'", nameAtom.Text())
		}
	}

	bodyCtx := ctx.WithFrame(frame)
	for _, stmt := range items[2:] {
		sig, err := interp.Exec(bodyCtx, stmt)
		if err != nil || sig != nil {
			return sig, err
		}
	}
	return nil, nil
}

func (interp *Interpreter) execThrow(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) != 2 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'throw' statement")
	}
	val, sig, err := interp.Eval(ctx, items[1])
	if err != nil || sig != nil {
		return sig, err
	}
	s, ok := val.(runtime.StringValue)
	if !ok {
		return nil, errors.NewType(list.Line(), "'throw' requires a string value")
	}
	if interp.Trace != nil && ctx.Me != nil {
		interp.Trace.Exception(interp.objectID(ctx.Me), "throw", list.Line(), s.S)
	}
	return ThrowSignal(s.S, list.Line()), nil
}

func (interp *Interpreter) execTry(ctx *Context, list *ast.List) (*Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) != 3 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'try' statement")
	}
	sig, err := interp.Exec(ctx, items[1])
	if err != nil {
		return nil, err
	}
	if sig == nil || !sig.Exception {
		return sig, nil
	}
	handlerCtx := ctx.WithException(&sig.ExcValue)
	return interp.Exec(handlerCtx, items[2])
}
