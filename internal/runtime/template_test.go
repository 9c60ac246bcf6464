package runtime_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/parser"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

func TestCompileMemoizesIdenticalInstantiation(t *testing.T) {
	reg := loadOrFatal(t, `
(tclass box (T) (field T v) (method T get () (return v)))
(class main (field box@int b null))
`)
	tmpl, ok := reg.LookupTemplate("box")
	if !ok {
		t.Fatal("expected template box to be registered")
	}
	a, err := reg.Compile(tmpl, []string{"int"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := reg.Compile(tmpl, []string{"int"}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Error("compiling the same template with the same type arguments twice should return the identical *ClassDef")
	}
}

func TestCompileSubstitutesTypeParameterInFieldAndReturnType(t *testing.T) {
	reg := loadOrFatal(t, `
(tclass box (T) (field T v) (method T get () (return v)))
(class main (field box@int b null))
`)
	def, ok := reg.LookupCompiled("box@int")
	if !ok {
		t.Fatal("expected box@int to have been compiled during load")
	}
	if def.FieldTypes["v"] != "int" {
		t.Errorf("field v type = %q, want int", def.FieldTypes["v"])
	}
	method, ok := def.LookupMethodLocal("get")
	if !ok {
		t.Fatal("expected method get to survive substitution")
	}
	if method.ReturnType != "int" {
		t.Errorf("return type = %q, want int", method.ReturnType)
	}
}

func TestCompileDifferentArgumentsProduceDistinctClasses(t *testing.T) {
	reg := loadOrFatal(t, `
(tclass box (T) (field T v))
(class main (field box@int bi null) (field box@string bs null))
`)
	intBox, _ := reg.LookupCompiled("box@int")
	strBox, _ := reg.LookupCompiled("box@string")
	if intBox == strBox {
		t.Error("box@int and box@string should compile to distinct ClassDefs")
	}
}

func TestCompileWrongArityIsTypeError(t *testing.T) {
	forms, _ := parser.ParseProgram(`(tclass pair (K V) (field K k) (field V v))`)
	reg, err := runtime.LoadProgram(forms)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	tmpl, _ := reg.LookupTemplate("pair")
	if _, err := reg.Compile(tmpl, []string{"int"}, 1); err == nil {
		t.Fatal("expected a TYPE error when instantiating with the wrong number of type arguments")
	}
}

func TestMangleJoinsWithTypeConcatCharacter(t *testing.T) {
	if got := runtime.Mangle("box", []string{"int"}); got != "box@int" {
		t.Errorf("Mangle = %q, want box@int", got)
	}
	if got := runtime.Mangle("pair", []string{"int", "string"}); got != "pair@int@string" {
		t.Errorf("Mangle = %q, want pair@int@string", got)
	}
}
