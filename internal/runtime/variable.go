package runtime

import "github.com/RuralBrick/brewin-interpreter/internal/errors"

// Variable is a named, type-annotated cell (spec.md §3, §4.3). Its value
// is always compatible with its declared type; Set is the only mutator,
// and it re-tags the stored value with the slot's declared type on every
// write, mirroring Variable.Set() in spec.md: "update the stored value
// and its tag to the slot's declared type."
type Variable struct {
	Name         string
	DeclaredType string
	value        Value
}

// NewVariable creates a typed slot. It validates that declaredType is
// known in the current context and that initial is assignable to it,
// producing a TYPE error otherwise (spec.md §4.3). Used for field
// declarations, parameter binding, and `let` locals alike.
func NewVariable(reg *ClassRegistry, name, declaredType string, initial Value, line int) (*Variable, *errors.BrewinError) {
	if err := reg.ValidateTypeName(declaredType, line); err != nil {
		return nil, err
	}
	v := &Variable{Name: name, DeclaredType: declaredType}
	if err := v.Set(reg, initial, line); err != nil {
		return nil, err
	}
	return v, nil
}

// Get returns the slot's current value.
func (v *Variable) Get() Value {
	return v.value
}

// Set enforces spec.md §4.2 assignment compatibility and, on success,
// updates the stored value and re-tags it with the slot's declared type.
func (v *Variable) Set(reg *ClassRegistry, value Value, line int) *errors.BrewinError {
	if !Assignable(reg, v.DeclaredType, value) {
		return errors.NewType(line, "cannot assign value of kind '%s' to slot '%s' of declared type '%s'",
			value.Kind(), v.Name, v.DeclaredType)
	}
	v.value = value.WithTag(v.DeclaredType)
	return nil
}

// Assignable implements spec.md §4.2's compatibility rule: a value v with
// raw kind k and optional tag τ is assignable to a slot of declared type
// D.
func Assignable(reg *ClassRegistry, declared string, v Value) bool {
	if IsPrimitiveType(declared) {
		switch declared {
		case "int":
			return v.Kind() == KindInt
		case "string":
			return v.Kind() == KindString
		case "bool":
			return v.Kind() == KindBool
		}
		return false
	}

	// declared is a class (or template instantiation) type.
	switch val := v.(type) {
	case NullValue:
		if val.tag == "" {
			// An untagged null (e.g. the `null` literal) is always
			// assignable to any class-typed slot.
			return true
		}
		return classTypeAssignable(reg, declared, val.tag)
	case ObjectValue:
		return classTypeAssignable(reg, declared, val.Obj.Class.Name)
	default:
		return false
	}
}

// classTypeAssignable reports whether a value whose actual (or tagged)
// class is actualOrTagged may be stored in a slot declared as declared:
// actualOrTagged must name declared itself or a class that transitively
// inherits from it.
func classTypeAssignable(reg *ClassRegistry, declared, actualOrTagged string) bool {
	if declared == actualOrTagged {
		return true
	}
	actualDef, ok := reg.LookupClass(actualOrTagged)
	if !ok {
		actualDef, ok = reg.LookupCompiled(actualOrTagged)
		if !ok {
			return false
		}
	}
	return actualDef.IsInstanceNamed(declared)
}
