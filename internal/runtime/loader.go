package runtime

import (
	"strconv"
	"strings"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/errors"
)

// reserved keywords that must not be used as identifier names (spec.md
// §6). `me` and `super` are additionally rejected as declaration names
// per SPEC_FULL.md §4, since the original reference implementation
// tokenizes them the same way.
var reservedWords = map[string]bool{
	"class": true, "tclass": true, "inherits": true, "method": true,
	"field": true, "begin": true, "call": true, "if": true, "while": true,
	"let": true, "set": true, "return": true, "inputi": true, "inputs": true,
	"print": true, "new": true, "me": true, "super": true, "exception": true,
	"throw": true, "try": true, "null": true, "true": true, "false": true,
	"void": true, "int": true, "string": true, "bool": true,
}

// IsReserved reports whether name is a reserved keyword and so may not be
// used as a class, field, method, parameter, or local name.
func IsReserved(name string) bool {
	return reservedWords[name]
}

// LoadProgram builds the class registry from a parsed AST (spec.md §4.1):
// a forward-declaration pass that makes every class/template name visible
// for forward reference, followed by a pass that builds each class or
// template's body.
func LoadProgram(forms []ast.Node) (*ClassRegistry, *errors.BrewinError) {
	reg := NewClassRegistry()

	for _, form := range forms {
		list, ok := form.(*ast.List)
		if !ok || len(list.Items) == 0 {
			return nil, errors.NewSyntax(form.Line(), "top-level form must be a class or template declaration")
		}
		switch list.HeadText() {
		case "class":
			name, ok := classNameAtom(list, 1)
			if !ok {
				return nil, errors.NewSyntax(list.Line(), "malformed class declaration")
			}
			if err := reg.DeclareName(name.Text(), name.Line()); err != nil {
				return nil, err
			}
		case "tclass":
			name, ok := classNameAtom(list, 1)
			if !ok {
				return nil, errors.NewSyntax(list.Line(), "malformed template declaration")
			}
			if err := reg.DeclareTemplateName(name.Text(), name.Line()); err != nil {
				return nil, err
			}
		default:
			return nil, errors.NewSyntax(list.Line(), "expected 'class' or 'tclass', found '%s'", list.HeadText())
		}
	}

	for _, form := range forms {
		list := form.(*ast.List)
		switch list.HeadText() {
		case "class":
			if err := reg.buildClass(list); err != nil {
				return nil, err
			}
		case "tclass":
			if err := reg.buildTemplate(list); err != nil {
				return nil, err
			}
		}
	}

	return reg, nil
}

func classNameAtom(list *ast.List, idx int) (*ast.Atom, bool) {
	if idx >= len(list.Items) {
		return nil, false
	}
	a, ok := list.Items[idx].(*ast.Atom)
	return a, ok
}

// buildClass builds a (class Name [inherits Parent] Member...) form into
// a registered ClassDef.
func (r *ClassRegistry) buildClass(list *ast.List) *errors.BrewinError {
	items := list.Items
	nameAtom := items[1].(*ast.Atom)
	name := nameAtom.Text()
	if IsReserved(name) {
		return errors.NewSyntax(nameAtom.Line(), "'%s' is a reserved word and cannot name a class", name)
	}

	memberStart := 2
	var parent *ClassDef
	if len(items) >= 4 {
		if a, ok := items[2].(*ast.Atom); ok && a.Text() == "inherits" {
			parentAtom, ok := items[3].(*ast.Atom)
			if !ok {
				return errors.NewSyntax(items[3].Line(), "malformed inherits clause")
			}
			p, ok := r.LookupClass(parentAtom.Text())
			if !ok {
				return errors.NewType(parentAtom.Line(), "unknown parent class '%s'", parentAtom.Text())
			}
			parent = p
			memberStart = 4
		}
	}

	def := NewClassDef(name, parent, nameAtom.Line())
	for _, member := range items[memberStart:] {
		if err := r.attachMember(def, member); err != nil {
			return err
		}
	}
	r.RegisterClass(def)
	return nil
}

// buildTemplate builds a (tclass Name (TypeParam...) Member...) form.
func (r *ClassRegistry) buildTemplate(list *ast.List) *errors.BrewinError {
	items := list.Items
	nameAtom := items[1].(*ast.Atom)
	name := nameAtom.Text()
	if IsReserved(name) {
		return errors.NewSyntax(nameAtom.Line(), "'%s' is a reserved word and cannot name a template", name)
	}
	if len(items) < 3 {
		return errors.NewSyntax(list.Line(), "malformed template declaration")
	}
	paramList, ok := items[2].(*ast.List)
	if !ok {
		return errors.NewSyntax(items[2].Line(), "template type parameter list must be parenthesized")
	}
	seen := map[string]bool{}
	var params []string
	for _, p := range paramList.Items {
		a, ok := p.(*ast.Atom)
		if !ok {
			return errors.NewSyntax(p.Line(), "malformed template type parameter")
		}
		if seen[a.Text()] {
			return errors.NewName(a.Line(), "duplicate template type parameter '%s'", a.Text())
		}
		seen[a.Text()] = true
		params = append(params, a.Text())
	}

	tmpl := &Template{Name: name, TypeParameters: params, Body: items[3:], Line: nameAtom.Line()}
	r.RegisterTemplate(tmpl)
	return nil
}

// attachMember builds one field or method declaration onto def.
func (r *ClassRegistry) attachMember(def *ClassDef, node ast.Node) *errors.BrewinError {
	list, ok := node.(*ast.List)
	if !ok || len(list.Items) == 0 {
		return errors.NewSyntax(node.Line(), "malformed class member")
	}
	switch list.HeadText() {
	case "field":
		return r.attachField(def, list)
	case "method":
		return r.attachMethod(def, list)
	default:
		return errors.NewSyntax(list.Line(), "expected 'field' or 'method', found '%s'", list.HeadText())
	}
}

func (r *ClassRegistry) attachField(def *ClassDef, list *ast.List) *errors.BrewinError {
	items := list.Items
	if len(items) != 3 && len(items) != 4 {
		return errors.NewSyntax(list.Line(), "malformed field declaration")
	}
	typeAtom, ok := items[1].(*ast.Atom)
	if !ok {
		return errors.NewSyntax(items[1].Line(), "malformed field type")
	}
	nameAtom, ok := items[2].(*ast.Atom)
	if !ok {
		return errors.NewSyntax(items[2].Line(), "malformed field name")
	}
	name := nameAtom.Text()
	if IsReserved(name) {
		return errors.NewSyntax(nameAtom.Line(), "'%s' is a reserved word and cannot name a field", name)
	}
	if _, exists := def.FieldTypes[name]; exists {
		return errors.NewName(nameAtom.Line(), "duplicate field '%s' in class '%s'", name, def.Name)
	}
	if err := r.ValidateTypeName(typeAtom.Text(), typeAtom.Line()); err != nil {
		return err
	}
	if r.isTemplateInstantiationName(typeAtom.Text()) {
		if _, err := r.ResolveClassLike(typeAtom.Text(), typeAtom.Line()); err != nil {
			return err
		}
	}
	def.FieldOrder = append(def.FieldOrder, name)
	def.FieldTypes[name] = typeAtom.Text()
	if len(items) == 4 {
		litAtom, ok := items[3].(*ast.Atom)
		if !ok {
			return errors.NewSyntax(items[3].Line(), "field initializer must be a literal")
		}
		val, err := ParseLiteralAtom(litAtom)
		if err != nil {
			return err
		}
		def.FieldInits[name] = val.WithTag(typeAtom.Text())
	}
	return nil
}

func (r *ClassRegistry) attachMethod(def *ClassDef, list *ast.List) *errors.BrewinError {
	items := list.Items
	if len(items) != 5 {
		return errors.NewSyntax(list.Line(), "malformed method declaration")
	}
	retAtom, ok := items[1].(*ast.Atom)
	if !ok {
		return errors.NewSyntax(items[1].Line(), "malformed method return type")
	}
	nameAtom, ok := items[2].(*ast.Atom)
	if !ok {
		return errors.NewSyntax(items[2].Line(), "malformed method name")
	}
	name := nameAtom.Text()
	if IsReserved(name) {
		return errors.NewSyntax(nameAtom.Line(), "'%s' is a reserved word and cannot name a method", name)
	}
	if _, exists := def.Methods[name]; exists {
		return errors.NewName(nameAtom.Line(), "duplicate method '%s' in class '%s'", name, def.Name)
	}
	retType := retAtom.Text()
	if retType != "void" {
		if err := r.ValidateTypeName(retType, retAtom.Line()); err != nil {
			return err
		}
	}

	formalsList, ok := items[3].(*ast.List)
	if !ok {
		return errors.NewSyntax(items[3].Line(), "malformed method parameter list")
	}
	seen := map[string]bool{}
	var formals []Formal
	for _, f := range formalsList.Items {
		fl, ok := f.(*ast.List)
		if !ok || len(fl.Items) != 2 {
			return errors.NewSyntax(f.Line(), "malformed method parameter")
		}
		fTypeAtom, ok1 := fl.Items[0].(*ast.Atom)
		fNameAtom, ok2 := fl.Items[1].(*ast.Atom)
		if !ok1 || !ok2 {
			return errors.NewSyntax(f.Line(), "malformed method parameter")
		}
		if IsReserved(fNameAtom.Text()) {
			return errors.NewSyntax(fNameAtom.Line(), "'%s' is a reserved word and cannot name a parameter", fNameAtom.Text())
		}
		if seen[fNameAtom.Text()] {
			return errors.NewName(fNameAtom.Line(), "duplicate parameter '%s' in method '%s'", fNameAtom.Text(), name)
		}
		seen[fNameAtom.Text()] = true
		if err := r.ValidateTypeName(fTypeAtom.Text(), fTypeAtom.Line()); err != nil {
			return err
		}
		formals = append(formals, Formal{Name: fNameAtom.Text(), Type: fTypeAtom.Text()})
	}

	def.Methods[name] = &Method{
		Name:       name,
		ReturnType: retType,
		Formals:    formals,
		Body:       items[4],
		Line:       nameAtom.Line(),
	}
	return nil
}

// ParseLiteralAtom parses a leaf token into the Value it denotes: an
// integer, a quoted string (quotes stripped), true, false, or null
// (spec.md §4.6). It is used for field initial literals, which the
// grammar restricts to bare literals rather than general expressions.
func ParseLiteralAtom(a *ast.Atom) (Value, *errors.BrewinError) {
	text := a.Text()
	switch {
	case text == "true":
		return NewBool(true), nil
	case text == "false":
		return NewBool(false), nil
	case text == "null":
		return NewNull(""), nil
	case strings.HasPrefix(text, "\"") && strings.HasSuffix(text, "\"") && len(text) >= 2:
		return NewString(text[1 : len(text)-1]), nil
	default:
		if n, convErr := strconv.ParseInt(text, 10, 64); convErr == nil {
			return NewInt(n), nil
		}
		return nil, errors.NewSyntax(a.Line(), "'%s' is not a valid literal", text)
	}
}
