package runtime

import (
	"strings"

	"github.com/RuralBrick/brewin-interpreter/internal/errors"
)

// ClassRegistry owns every registered class definition and every
// memoized compiled template instantiation. Grounded on the teacher's
// internal/interp/types.ClassRegistry, but case-sensitive (Brewin,
// unlike DWScript, is a case-sensitive language — spec.md §6) and
// generalized to also hold Template definitions and their compiled
// instantiations (spec.md §4.8).
type ClassRegistry struct {
	classes   map[string]*ClassDef
	templates map[string]*Template
	compiled  map[string]*ClassDef // mangled name -> memoized concrete class
}

// NewClassRegistry creates an empty registry.
func NewClassRegistry() *ClassRegistry {
	return &ClassRegistry{
		classes:   make(map[string]*ClassDef),
		templates: make(map[string]*Template),
		compiled:  make(map[string]*ClassDef),
	}
}

// DeclareName reserves name as a forward-declared class or template
// during the loader's first pass (spec.md §4.1), before any body has
// been built. It is a TYPE error to reserve a name already reserved —
// this also covers a class and a template sharing a name, per the
// original reference implementation's combined forward-declaration
// bookkeeping (SPEC_FULL.md §4).
func (r *ClassRegistry) DeclareName(name string, line int) *errors.BrewinError {
	if r.nameReserved(name) {
		return errors.NewType(line, "duplicate class or template name '%s'", name)
	}
	r.classes[name] = nil
	return nil
}

// DeclareTemplateName is DeclareName for a template's forward
// declaration slot.
func (r *ClassRegistry) DeclareTemplateName(name string, line int) *errors.BrewinError {
	if r.nameReserved(name) {
		return errors.NewType(line, "duplicate class or template name '%s'", name)
	}
	r.templates[name] = nil
	return nil
}

func (r *ClassRegistry) nameReserved(name string) bool {
	if _, ok := r.classes[name]; ok {
		return true
	}
	if _, ok := r.templates[name]; ok {
		return true
	}
	return false
}

// RegisterClass fills in a previously forward-declared class name with
// its built definition.
func (r *ClassRegistry) RegisterClass(def *ClassDef) {
	r.classes[def.Name] = def
}

// RegisterTemplate fills in a previously forward-declared template name.
func (r *ClassRegistry) RegisterTemplate(t *Template) {
	r.templates[t.Name] = t
}

// LookupClass finds a registered, fully-built class by name.
func (r *ClassRegistry) LookupClass(name string) (*ClassDef, bool) {
	c, ok := r.classes[name]
	return c, ok && c != nil
}

// ClassNameReserved reports whether name was reserved as a class (built
// or still a forward-declaration placeholder). Field, formal, and return
// type references are allowed to forward-reference a class name this way
// (spec.md §4.1: "class and template names are visible for forward
// reference in any class body"); only resolving the name to an actual
// *ClassDef (LookupClass/ResolveClassLike) requires the body to have been
// built, which the loader guarantees by the time main.main runs.
func (r *ClassRegistry) ClassNameReserved(name string) bool {
	_, ok := r.classes[name]
	return ok
}

// ClassNames returns the names of every fully-built class in the
// registry, in no particular order (used by internal/classdump to build
// a sorted listing).
func (r *ClassRegistry) ClassNames() []string {
	names := make([]string, 0, len(r.classes))
	for name, def := range r.classes {
		if def != nil {
			names = append(names, name)
		}
	}
	return names
}

// LookupTemplate finds a registered template definition by name.
func (r *ClassRegistry) LookupTemplate(name string) (*Template, bool) {
	t, ok := r.templates[name]
	return t, ok && t != nil
}

// LookupCompiled finds an already-memoized template instantiation by its
// mangled name.
func (r *ClassRegistry) LookupCompiled(mangled string) (*ClassDef, bool) {
	c, ok := r.compiled[mangled]
	return c, ok
}

// RegisterCompiled memoizes a freshly compiled template instantiation
// under its mangled name.
func (r *ClassRegistry) RegisterCompiled(mangled string, def *ClassDef) {
	r.compiled[mangled] = def
}

// IsKnownType reports whether t names a primitive type, a registered
// class, an uncompiled-but-known template instantiation name, or an
// already-compiled one. Used by Variable creation and method/template
// signature validation (spec.md §4.2, §4.5).
func (r *ClassRegistry) IsKnownType(t string) bool {
	return r.ValidateTypeName(t, 0) == nil
}

// ValidateTypeName is the full TYPE-error-producing check behind
// IsKnownType (spec.md §4.3: "fail with TYPE error if declaredType is
// not a defined class/primitive/template instantiation"). A template
// instantiation name is only valid once its template has been built (so
// its parameter count is known) and every type argument is itself a
// known primitive or reserved class name — this is what makes
// `(field box@nonesuch b)` a TYPE error at the field's own line (spec.md
// §8 scenario 6) even though "box" itself is a valid template.
func (r *ClassRegistry) ValidateTypeName(t string, line int) *errors.BrewinError {
	if IsPrimitiveType(t) {
		return nil
	}
	if r.ClassNameReserved(t) {
		return nil
	}
	if _, ok := r.LookupCompiled(t); ok {
		return nil
	}
	parts := strings.Split(t, TypeConcat)
	if len(parts) >= 2 {
		if tmpl, ok := r.LookupTemplate(parts[0]); ok && len(parts)-1 == len(tmpl.TypeParameters) {
			for _, arg := range parts[1:] {
				if !IsPrimitiveType(arg) && !r.ClassNameReserved(arg) {
					return errors.NewType(line, "unknown type argument '%s' in '%s'", arg, t)
				}
			}
			return nil
		}
	}
	return errors.NewType(line, "unknown type '%s'", t)
}

// ResolveClassLike resolves a declared type name that names a class or a
// template instantiation into a *ClassDef, compiling the template first
// if necessary (spec.md §4.4, §4.8). It returns a TYPE error for
// primitive type names or unknown names.
func (r *ClassRegistry) ResolveClassLike(t string, line int) (*ClassDef, *errors.BrewinError) {
	if c, ok := r.LookupClass(t); ok {
		return c, nil
	}
	if c, ok := r.LookupCompiled(t); ok {
		return c, nil
	}
	if r.isTemplateInstantiationName(t) {
		return r.compileInstantiationName(t, line)
	}
	return nil, errors.NewType(line, "unknown class '%s'", t)
}
