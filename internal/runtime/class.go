package runtime

import "github.com/RuralBrick/brewin-interpreter/internal/ast"

// Formal is one method parameter: a declared type and a name, in the
// order they appear in the method's parameter list (spec.md §4.5).
type Formal struct {
	Name string
	Type string
}

// Method is a typed callable: an ordered formal parameter list, a
// declared return type (spec.md §4.2 — "void" for methods with no
// return value), and an AST body statement. Grounded on the teacher's
// ast.FunctionDecl shape but trimmed to what Brewin methods need.
type Method struct {
	Name       string
	ReturnType string
	Formals    []Formal
	Body       ast.Node
	Line       int
}

// FieldSchema is one field's declared type, used when building a fresh
// Object's field set.
type FieldSchema struct {
	Name string
	Type string
}

// ClassDef is immutable metadata for a class: fields schema, methods
// table, and an optional parent. Grounded on the teacher's
// internal/interp/class.go ClassInfo, but — per the Design Notes in
// spec.md §9 — kept strictly as metadata: a ClassDef never becomes an
// "instance" by mutation the way the original Python source clones a
// class definition. Object (object.go) is the distinct runtime type for
// instances.
type ClassDef struct {
	Name       string
	Parent     *ClassDef
	FieldOrder []string
	FieldTypes map[string]string
	FieldInits map[string]Value // fields declared with an explicit initial literal
	Methods    map[string]*Method
	Line       int
}

// NewClassDef creates an empty class definition ready to have fields and
// methods attached during loading.
func NewClassDef(name string, parent *ClassDef, line int) *ClassDef {
	return &ClassDef{
		Name:       name,
		Parent:     parent,
		FieldTypes: make(map[string]string),
		FieldInits: make(map[string]Value),
		Methods:    make(map[string]*Method),
		Line:       line,
	}
}

// IsInstance reports whether c is other, or transitively inherits from
// other (spec.md §8: "For every class C and its transitive parent P,
// C.isInstance(P) = true").
func (c *ClassDef) IsInstance(other *ClassDef) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur == other {
			return true
		}
	}
	return false
}

// IsInstanceNamed is IsInstance by name, used when only a declared type
// name (not a resolved *ClassDef) is in hand.
func (c *ClassDef) IsInstanceNamed(name string) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur.Name == name {
			return true
		}
	}
	return false
}

// LookupMethodLocal looks up a method defined directly on c, without
// consulting the parent chain. Dispatch (dispatch.go) walks the chain
// itself so it can apply the recoverable-mismatch fallthrough rule at
// each step (spec.md §4.4).
func (c *ClassDef) LookupMethodLocal(name string) (*Method, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// HasMethodInChain reports whether name is defined anywhere in c's
// inheritance chain, used to distinguish "no such method" (NAME error)
// from "found, but every candidate's signature mismatched" during
// dispatch.
func (c *ClassDef) HasMethodInChain(name string) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if _, ok := cur.Methods[name]; ok {
			return true
		}
	}
	return false
}

// AllFields returns the object's full field schema: this class's own
// fields layered over its ancestors', root-first, so a field a subclass
// redeclares shadows the ancestor's slot of the same name (an Open
// Question spec.md leaves unresolved — see DESIGN.md).
func (c *ClassDef) AllFields() []FieldSchema {
	var chain []*ClassDef
	for cur := c; cur != nil; cur = cur.Parent {
		chain = append(chain, cur)
	}
	seen := make(map[string]bool)
	groups := make([][]FieldSchema, len(chain))
	for i, cls := range chain {
		for _, name := range cls.FieldOrder {
			if seen[name] {
				continue
			}
			seen[name] = true
			groups[i] = append(groups[i], FieldSchema{Name: name, Type: cls.FieldTypes[name]})
		}
	}
	// Present root-first so a freshly allocated Object initializes
	// ancestor fields before the fields the most-derived class adds,
	// matching field declaration order a reader would expect.
	var fields []FieldSchema
	for i := len(groups) - 1; i >= 0; i-- {
		fields = append(fields, groups[i]...)
	}
	return fields
}
