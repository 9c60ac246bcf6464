package runtime

import "github.com/RuralBrick/brewin-interpreter/internal/errors"

// Object is a runtime instance of a class: a reference to its immutable
// ClassDef plus an owned map of field values, one typed Variable slot per
// field (spec.md §3). Grounded on the teacher's
// internal/interp/runtime.ObjectInstance, with the Design Notes (spec.md
// §9) applied literally: Object is a distinct struct from ClassDef, never
// a mutated copy of one.
type Object struct {
	Class  *ClassDef
	Fields map[string]*Variable
}

// NewObject allocates a fresh instance of class, initializing every field
// in its hierarchy (spec.md §4.4): primitive fields to their zero value,
// class-typed fields to Null tagged with the declared class, or to the
// field's literal initializer when one was declared.
func NewObject(reg *ClassRegistry, class *ClassDef) (*Object, *errors.BrewinError) {
	obj := &Object{Class: class, Fields: make(map[string]*Variable)}
	for _, schema := range class.AllFields() {
		initial := DefaultValueForType(schema.Type)
		if owner := fieldOwner(class, schema.Name); owner != nil {
			if lit, ok := owner.FieldInits[schema.Name]; ok {
				initial = lit
			}
		}
		v, err := NewVariable(reg, schema.Name, schema.Type, initial, class.Line)
		if err != nil {
			return nil, err
		}
		obj.Fields[schema.Name] = v
	}
	return obj, nil
}

// fieldOwner finds the most-derived class in c's chain that declares
// fieldName directly, so its literal initializer (if any) can be reused.
func fieldOwner(c *ClassDef, fieldName string) *ClassDef {
	for cur := c; cur != nil; cur = cur.Parent {
		if _, ok := cur.FieldTypes[fieldName]; ok {
			return cur
		}
	}
	return nil
}

// GetField looks up a field's Variable slot by name.
func (o *Object) GetField(name string) (*Variable, bool) {
	v, ok := o.Fields[name]
	return v, ok
}

// DefaultValueForType returns the zero value for a declared type: 0 for
// int, "" for string, false for bool, or a Null tagged with the declared
// class for any class/template-instantiation type (spec.md §4.4).
func DefaultValueForType(declaredType string) Value {
	switch declaredType {
	case "int":
		return NewInt(0)
	case "string":
		return NewString("")
	case "bool":
		return NewBool(false)
	default:
		return NewNull(declaredType)
	}
}
