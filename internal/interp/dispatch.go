package interp

import (
	"reflect"

	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

// CallMethod dispatches a method call on targetVal (spec.md §4.4): target
// must evaluate to an object reference or a `super` marker. Dispatch walks
// the class chain starting at the appropriate class, retrying on the
// parent only when the current class's candidate fails with a recoverable
// signature mismatch (arity or parameter type) — a return-type mismatch
// or a runtime error inside the body is not recoverable, since the body
// may already have produced side effects by the time either is detected
// (Design Notes, spec.md §9).
func (interp *Interpreter) CallMethod(targetVal runtime.Value, methodName string, args []runtime.Value, line int) (runtime.Value, *Signal, *errors.BrewinError) {
	var meObj *runtime.Object
	var startClass *runtime.ClassDef

	switch v := targetVal.(type) {
	case runtime.ObjectValue:
		meObj = v.Obj
		startClass = meObj.Class
	case runtime.SuperRef:
		meObj = v.Obj
		startClass = v.StartClass
	case runtime.NullValue:
		return nil, nil, errors.NewFault(line, "null dereference calling method '%s'", methodName)
	default:
		return nil, nil, errors.NewType(line, "cannot call method '%s' on a non-object value", methodName)
	}

	if startClass == nil || !startClass.HasMethodInChain(methodName) {
		return nil, nil, errors.NewName(line, "no method '%s' found", methodName)
	}

	var lastErr *errors.BrewinError
	for cur := startClass; cur != nil; cur = cur.Parent {
		method, ok := cur.LookupMethodLocal(methodName)
		if !ok {
			continue
		}
		val, sig, err, recoverable := interp.invoke(meObj, cur, method, args, line)
		if err == nil {
			return val, sig, nil
		}
		if !recoverable {
			return nil, nil, err
		}
		lastErr = err
	}
	return nil, nil, lastErr
}

// invoke binds args to method's formals and executes its body in a fresh
// Context (spec.md §4.5). recoverable is true only for arity mismatch and
// parameter-type mismatch, both detectable before the body runs; once the
// body has executed, any failure (return-type mismatch or an error raised
// inside the body) is final.
func (interp *Interpreter) invoke(meObj *runtime.Object, definingClass *runtime.ClassDef, method *runtime.Method, args []runtime.Value, line int) (runtime.Value, *Signal, *errors.BrewinError, bool) {
	if len(args) != len(method.Formals) {
		return nil, nil, errors.NewName(line, "method '%s' expects %d argument(s), got %d",
			method.Name, len(method.Formals), len(args)), true
	}

	interp.depth++
	defer func() { interp.depth-- }()
	if interp.depth > maxCallDepth {
		return nil, nil, errors.NewFault(line, "recursion limit exceeded calling method '%s'", method.Name), false
	}

	if interp.Trace != nil {
		interp.Trace.CallEnter(interp.objectID(meObj), method.Name, line)
		defer interp.Trace.CallExit(interp.objectID(meObj), method.Name, line)
	}

	params := make(map[string]*runtime.Variable, len(method.Formals))
	for i, formal := range method.Formals {
		v, err := runtime.NewVariable(interp.Registry, formal.Name, formal.Type, args[i], line)
		if err != nil {
			return nil, nil, err, true
		}
		params[formal.Name] = v
	}

	ctx := &Context{Interp: interp, Me: meObj, Class: definingClass, Params: params}
	sig, err := interp.Exec(ctx, method.Body)
	if err != nil {
		return nil, nil, err, false
	}
	if sig != nil && sig.Exception {
		return nil, sig, nil, false
	}

	if sig != nil && sig.Returning {
		if method.ReturnType == "void" {
			if sig.Value != nil {
				return nil, nil, errors.NewType(line, "method '%s' is void and cannot return a value", method.Name), false
			}
			return runtime.VoidValue{}, nil, nil, false
		}
		if sig.Value == nil {
			return nil, nil, errors.NewType(line, "method '%s' must return a value of type '%s'", method.Name, method.ReturnType), false
		}
		if !runtime.Assignable(interp.Registry, method.ReturnType, sig.Value) {
			return nil, nil, errors.NewType(line, "method '%s' returned a value incompatible with declared type '%s'",
				method.Name, method.ReturnType), false
		}
		return sig.Value.WithTag(method.ReturnType), nil, nil, false
	}

	if method.ReturnType == "void" {
		return runtime.VoidValue{}, nil, nil, false
	}
	return runtime.DefaultValueForType(method.ReturnType), nil, nil, false
}

func (interp *Interpreter) objectID(obj *runtime.Object) string {
	return interp.Trace.ObjectID(reflect.ValueOf(obj).Pointer())
}
