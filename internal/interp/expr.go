package interp

import (
	"strings"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

// Eval evaluates an expression node (spec.md §4.6) to a Value. The
// returned *Signal is non-nil only when evaluating node invoked a method
// (via a nested `call`) whose body raised an uncaught exception; callers
// must check it and propagate before inspecting the returned Value.
func (interp *Interpreter) Eval(ctx *Context, node ast.Node) (runtime.Value, *Signal, *errors.BrewinError) {
	switch n := node.(type) {
	case *ast.Atom:
		v, err := interp.evalAtom(ctx, n)
		return v, nil, err
	case *ast.List:
		return interp.evalList(ctx, n)
	default:
		return nil, nil, errors.NewSyntax(node.Line(), "unrecognized expression")
	}
}

func isLiteralStart(text string) bool {
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "\"") {
		return true
	}
	c := text[0]
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '-' && len(text) > 1 && text[1] >= '0' && text[1] <= '9'
}

func (interp *Interpreter) evalAtom(ctx *Context, a *ast.Atom) (runtime.Value, *errors.BrewinError) {
	text := a.Text()
	switch text {
	case "me":
		if ctx.Me == nil {
			return nil, errors.NewName(a.Line(), "'me' is not available outside a method body")
		}
		return runtime.NewObjectValue(ctx.Me), nil
	case "super":
		if ctx.Class == nil || ctx.Class.Parent == nil {
			name := ""
			if ctx.Class != nil {
				name = ctx.Class.Name
			}
			return nil, errors.NewType(a.Line(), "class '%s' has no parent class for 'super'", name)
		}
		return runtime.SuperRef{Obj: ctx.Me, StartClass: ctx.Class.Parent}, nil
	case "exception":
		if ctx.ExceptionVal == nil {
			return nil, errors.NewName(a.Line(), "'exception' is not available outside a catch handler")
		}
		return runtime.NewString(*ctx.ExceptionVal), nil
	case "true":
		return runtime.NewBool(true), nil
	case "false":
		return runtime.NewBool(false), nil
	case "null":
		return runtime.NewNull(""), nil
	}

	if isLiteralStart(text) {
		return runtime.ParseLiteralAtom(a)
	}

	v, ok := ctx.Lookup(text)
	if !ok {
		return nil, errors.NewName(a.Line(), "undefined identifier '%s'", text)
	}
	return v.Get(), nil
}

func (interp *Interpreter) evalList(ctx *Context, list *ast.List) (runtime.Value, *Signal, *errors.BrewinError) {
	if len(list.Items) == 0 {
		return nil, nil, errors.NewSyntax(list.Line(), "empty expression")
	}
	head, ok := list.Head()
	if !ok {
		return nil, nil, errors.NewSyntax(list.Line(), "malformed expression")
	}

	switch head.Text() {
	case "new":
		v, err := interp.evalNew(list)
		return v, nil, err
	case "call":
		return interp.evalCall(ctx, list)
	case "!":
		return interp.evalUnary(ctx, list)
	default:
		if isOperator(head.Text()) {
			return interp.evalBinary(ctx, list)
		}
		return nil, nil, errors.NewSyntax(list.Line(), "unrecognized expression form '%s'", head.Text())
	}
}

func isOperator(op string) bool {
	switch op {
	case "+", "-", "*", "/", "%", "<", ">", "<=", ">=", "!=", "==", "&", "|":
		return true
	}
	return false
}

func (interp *Interpreter) evalNew(list *ast.List) (runtime.Value, *errors.BrewinError) {
	if len(list.Items) != 2 {
		return nil, errors.NewSyntax(list.Line(), "malformed 'new' expression")
	}
	typeAtom, ok := list.Items[1].(*ast.Atom)
	if !ok {
		return nil, errors.NewSyntax(list.Items[1].Line(), "malformed 'new' expression")
	}
	classDef, err := interp.Registry.ResolveClassLike(typeAtom.Text(), typeAtom.Line())
	if err != nil {
		return nil, err
	}
	obj, err := runtime.NewObject(interp.Registry, classDef)
	if err != nil {
		return nil, err
	}
	return runtime.NewObjectValue(obj), nil
}

// evalCall implements `(call target method arg...)` as a value-producing
// expression (spec.md §4.6). The statement evaluator's bare `call` reuses
// this and discards the returned value.
func (interp *Interpreter) evalCall(ctx *Context, list *ast.List) (runtime.Value, *Signal, *errors.BrewinError) {
	items := list.Items
	if len(items) < 3 {
		return nil, nil, errors.NewSyntax(list.Line(), "malformed 'call' expression")
	}
	targetVal, sig, err := interp.Eval(ctx, items[1])
	if err != nil || sig != nil {
		return nil, sig, err
	}
	methodAtom, ok := items[2].(*ast.Atom)
	if !ok {
		return nil, nil, errors.NewSyntax(items[2].Line(), "malformed method name in 'call'")
	}

	var args []runtime.Value
	for _, argNode := range items[3:] {
		val, sig, err := interp.Eval(ctx, argNode)
		if err != nil || sig != nil {
			return nil, sig, err
		}
		args = append(args, val)
	}

	return interp.CallMethod(targetVal, methodAtom.Text(), args, list.Line())
}

func (interp *Interpreter) evalUnary(ctx *Context, list *ast.List) (runtime.Value, *Signal, *errors.BrewinError) {
	if len(list.Items) != 2 {
		return nil, nil, errors.NewSyntax(list.Line(), "malformed unary expression")
	}
	val, sig, err := interp.Eval(ctx, list.Items[1])
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if val, err = requireValue(val, list.Line()); err != nil {
		return nil, nil, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return nil, nil, errors.NewType(list.Line(), "'!' requires a bool operand")
	}
	return runtime.NewBool(!b.B), nil, nil
}

func (interp *Interpreter) evalBinary(ctx *Context, list *ast.List) (runtime.Value, *Signal, *errors.BrewinError) {
	if len(list.Items) != 3 {
		return nil, nil, errors.NewSyntax(list.Line(), "malformed binary expression")
	}
	op := list.Items[0].(*ast.Atom).Text()
	left, sig, err := interp.Eval(ctx, list.Items[1])
	if err != nil || sig != nil {
		return nil, sig, err
	}
	right, sig, err := interp.Eval(ctx, list.Items[2])
	if err != nil || sig != nil {
		return nil, sig, err
	}
	if left, err = requireValue(left, list.Line()); err != nil {
		return nil, nil, err
	}
	if right, err = requireValue(right, list.Line()); err != nil {
		return nil, nil, err
	}
	v, err := applyBinary(interp.Registry, list.Line(), op, left, right)
	return v, nil, err
}

func applyBinary(reg *runtime.ClassRegistry, line int, op string, left, right runtime.Value) (runtime.Value, *errors.BrewinError) {
	if li, lok := left.(runtime.IntValue); lok {
		if ri, rok := right.(runtime.IntValue); rok {
			return applyIntOp(line, op, li.N, ri.N)
		}
	}
	if ls, lok := left.(runtime.StringValue); lok {
		if rs, rok := right.(runtime.StringValue); rok {
			return applyStringOp(line, op, ls.S, rs.S)
		}
	}
	if lb, lok := left.(runtime.BoolValue); lok {
		if rb, rok := right.(runtime.BoolValue); rok {
			return applyBoolOp(line, op, lb.B, rb.B)
		}
	}
	if isReferenceOperand(left) && isReferenceOperand(right) {
		return applyReferenceOp(reg, line, op, left, right)
	}
	return nil, errors.NewType(line, "operator '%s' is not defined for this combination of operand types", op)
}

func applyIntOp(line int, op string, a, b int64) (runtime.Value, *errors.BrewinError) {
	switch op {
	case "+":
		return runtime.NewInt(a + b), nil
	case "-":
		return runtime.NewInt(a - b), nil
	case "*":
		return runtime.NewInt(a * b), nil
	case "/":
		if b == 0 {
			return nil, errors.NewFault(line, "division by zero")
		}
		return runtime.NewInt(a / b), nil
	case "%":
		if b == 0 {
			return nil, errors.NewFault(line, "modulo by zero")
		}
		return runtime.NewInt(a % b), nil
	case "<":
		return runtime.NewBool(a < b), nil
	case ">":
		return runtime.NewBool(a > b), nil
	case "<=":
		return runtime.NewBool(a <= b), nil
	case ">=":
		return runtime.NewBool(a >= b), nil
	case "==":
		return runtime.NewBool(a == b), nil
	case "!=":
		return runtime.NewBool(a != b), nil
	default:
		return nil, errors.NewType(line, "operator '%s' is not defined for int operands", op)
	}
}

func applyStringOp(line int, op string, a, b string) (runtime.Value, *errors.BrewinError) {
	switch op {
	case "+":
		return runtime.NewString(a + b), nil
	case "<":
		return runtime.NewBool(a < b), nil
	case ">":
		return runtime.NewBool(a > b), nil
	case "<=":
		return runtime.NewBool(a <= b), nil
	case ">=":
		return runtime.NewBool(a >= b), nil
	case "==":
		return runtime.NewBool(a == b), nil
	case "!=":
		return runtime.NewBool(a != b), nil
	default:
		return nil, errors.NewType(line, "operator '%s' is not defined for string operands", op)
	}
}

func applyBoolOp(line int, op string, a, b bool) (runtime.Value, *errors.BrewinError) {
	switch op {
	case "==":
		return runtime.NewBool(a == b), nil
	case "!=":
		return runtime.NewBool(a != b), nil
	case "&":
		return runtime.NewBool(a && b), nil
	case "|":
		return runtime.NewBool(a || b), nil
	default:
		return nil, errors.NewType(line, "operator '%s' is not defined for bool operands", op)
	}
}

func isReferenceOperand(v runtime.Value) bool {
	switch v.(type) {
	case runtime.ObjectValue, runtime.NullValue:
		return true
	default:
		return false
	}
}

// applyReferenceOp implements spec.md §4.6's `== !=` on object references
// (or a reference and `null`): reference identity, requiring both sides
// be related by inheritance either via their live class or their declared
// type tag, else TYPE error (Design Notes: "recommend TYPE error when
// neither side is assignable to the other").
func applyReferenceOp(reg *runtime.ClassRegistry, line int, op string, left, right runtime.Value) (runtime.Value, *errors.BrewinError) {
	if op != "==" && op != "!=" {
		return nil, errors.NewType(line, "operator '%s' is not defined for object references", op)
	}
	if !referencesRelated(reg, left, right) {
		return nil, errors.NewType(line, "cannot compare unrelated object types")
	}
	equal := referenceEquals(left, right)
	if op == "!=" {
		equal = !equal
	}
	return runtime.NewBool(equal), nil
}

func referenceEquals(left, right runtime.Value) bool {
	lo, lok := left.(runtime.ObjectValue)
	ro, rok := right.(runtime.ObjectValue)
	if lok && rok {
		return lo.Obj == ro.Obj
	}
	// at least one side is null: equal only if both are null.
	return !lok && !rok
}

func referencesRelated(reg *runtime.ClassRegistry, left, right runtime.Value) bool {
	lClass, lOK := referenceClassName(left)
	rClass, rOK := referenceClassName(right)
	if !lOK || !rOK {
		// an untagged null is compatible with anything.
		return true
	}
	if lClass == rClass {
		return true
	}
	lDef, lFound := resolveNamedClass(reg, lClass)
	rDef, rFound := resolveNamedClass(reg, rClass)
	if lFound && lDef.IsInstanceNamed(rClass) {
		return true
	}
	if rFound && rDef.IsInstanceNamed(lClass) {
		return true
	}
	return false
}

func referenceClassName(v runtime.Value) (string, bool) {
	switch val := v.(type) {
	case runtime.ObjectValue:
		return val.Obj.Class.Name, true
	case runtime.NullValue:
		if val.Tag() == "" {
			return "", false
		}
		return val.Tag(), true
	}
	return "", false
}

func resolveNamedClass(reg *runtime.ClassRegistry, name string) (*runtime.ClassDef, bool) {
	if c, ok := reg.LookupClass(name); ok {
		return c, true
	}
	return reg.LookupCompiled(name)
}

// requireValue rejects a void method-call result used where a value is
// required (spec.md §4.6: "missing return value where one is required →
// TYPE error").
func requireValue(v runtime.Value, line int) (runtime.Value, *errors.BrewinError) {
	if v.Kind() == runtime.KindVoid {
		return nil, errors.NewType(line, "a void method call does not produce a value")
	}
	return v, nil
}
