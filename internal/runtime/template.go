package runtime

import (
	"strings"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/token"
)

// TypeConcat is the type concatenation character for template
// instantiation names (spec.md §6): node@int.
const TypeConcat = "@"

// Template is a generic class: a parameterized class body recorded as
// raw AST, plus the ordered names of its type parameters. Compiling it
// with concrete type arguments substitutes those parameter names
// throughout the body and produces (and memoizes) a concrete ClassDef
// (spec.md §3, §4.8).
type Template struct {
	Name           string
	TypeParameters []string
	Parent         *ast.Atom // parent type, substituted like any other type reference by Compile; the loader does not parse an `inherits` clause on tclass, so it is nil for loaded templates
	Body           []ast.Node
	Line           int
}

// Mangle joins a template name with its type arguments using the
// type concatenation character, e.g. Mangle("box", []string{"int"}) ==
// "box@int".
func Mangle(name string, typeArgs []string) string {
	return name + TypeConcat + strings.Join(typeArgs, TypeConcat)
}

// isTemplateInstantiationName reports whether t has the shape
// TemplateName@Arg1@Arg2... for a registered template TemplateName, with
// the right number of type arguments.
func (r *ClassRegistry) isTemplateInstantiationName(t string) bool {
	parts := strings.Split(t, TypeConcat)
	if len(parts) < 2 {
		return false
	}
	tmpl, ok := r.LookupTemplate(parts[0])
	if !ok {
		return false
	}
	return len(parts)-1 == len(tmpl.TypeParameters)
}

// compileInstantiationName parses a mangled type name like "box@int" and
// compiles (or fetches the memoized compilation of) the named template
// with those type arguments.
func (r *ClassRegistry) compileInstantiationName(t string, line int) (*ClassDef, *errors.BrewinError) {
	parts := strings.Split(t, TypeConcat)
	tmpl, ok := r.LookupTemplate(parts[0])
	if !ok {
		return nil, errors.NewType(line, "unknown template '%s'", parts[0])
	}
	return r.Compile(tmpl, parts[1:], line)
}

// Compile instantiates tmpl with typeArgs, memoizing the result under its
// mangled name so repeated compilations of the same (template, args) pair
// return the identical *ClassDef (spec.md §8: "compile(T, [A,B]) ==
// compile(T, [A,B]) returns the same class").
func (r *ClassRegistry) Compile(tmpl *Template, typeArgs []string, line int) (*ClassDef, *errors.BrewinError) {
	if len(typeArgs) != len(tmpl.TypeParameters) {
		return nil, errors.NewType(line, "template '%s' expects %d type argument(s), got %d",
			tmpl.Name, len(tmpl.TypeParameters), len(typeArgs))
	}

	mangled := Mangle(tmpl.Name, typeArgs)
	if existing, ok := r.LookupCompiled(mangled); ok {
		return existing, nil
	}

	for _, arg := range typeArgs {
		if !r.IsKnownType(arg) {
			return nil, errors.NewType(line, "unknown type argument '%s' for template '%s'", arg, tmpl.Name)
		}
	}

	subst := make(map[string]string, len(tmpl.TypeParameters))
	for i, param := range tmpl.TypeParameters {
		subst[param] = typeArgs[i]
	}

	// Reserve the mangled name before recursing into field/method
	// construction so a self-referential template body (a field or
	// method referring back to the instantiation by name) resolves
	// against a stable, if still-being-built, ClassDef.
	def := NewClassDef(mangled, nil, tmpl.Line)
	r.RegisterCompiled(mangled, def)

	if tmpl.Parent != nil {
		parentName := substituteTypeAtomText(tmpl.Parent.Text(), subst)
		parentDef, err := r.ResolveClassLike(parentName, tmpl.Parent.Line())
		if err != nil {
			return nil, err
		}
		def.Parent = parentDef
	}

	for _, member := range tmpl.Body {
		substituted := substituteTree(member, subst)
		if err := r.attachMember(def, substituted); err != nil {
			return nil, err
		}
	}

	return def, nil
}

// substituteTypeAtomText performs the leaf-level substitution described
// in spec.md §4.8 and §9: an identifier equal to a type parameter
// becomes the corresponding concrete type; a compound type name
// A@B@... is split, each segment substituted, and rejoined.
func substituteTypeAtomText(text string, subst map[string]string) string {
	segments := strings.Split(text, TypeConcat)
	for i, seg := range segments {
		if replacement, ok := subst[seg]; ok {
			segments[i] = replacement
		}
	}
	return strings.Join(segments, TypeConcat)
}

// substituteTree walks an AST subtree, replacing every Atom whose text
// matches a type parameter (recognized via paramMatches) or is a compound
// A@B@... type name with a type-parameter segment, since a template body
// mixes type references with plain identifiers and literals that must not
// be touched.
func substituteTree(node ast.Node, subst map[string]string) ast.Node {
	switch n := node.(type) {
	case *ast.Atom:
		if strings.Contains(n.Text(), TypeConcat) || paramMatches(n.Text(), subst) {
			replaced := substituteTypeAtomText(n.Text(), subst)
			if replaced != n.Text() {
				return &ast.Atom{Tok: token.Token{Text: replaced, Line: n.Tok.Line}}
			}
		}
		return n
	case *ast.List:
		items := make([]ast.Node, len(n.Items))
		for i, item := range n.Items {
			items[i] = substituteTree(item, subst)
		}
		return &ast.List{Items: items, LineNum: n.LineNum}
	default:
		return node
	}
}

func paramMatches(text string, subst map[string]string) bool {
	_, ok := subst[text]
	return ok
}
