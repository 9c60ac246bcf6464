package runtime_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

func TestDeclareNameRejectsReReservation(t *testing.T) {
	reg := runtime.NewClassRegistry()
	if err := reg.DeclareName("box", 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := reg.DeclareName("box", 2); err == nil {
		t.Fatal("expected a TYPE error reserving an already-reserved name")
	}
}

func TestValidateTypeNameAcceptsPrimitives(t *testing.T) {
	reg := runtime.NewClassRegistry()
	for _, p := range []string{"int", "string", "bool"} {
		if err := reg.ValidateTypeName(p, 1); err != nil {
			t.Errorf("%s: unexpected error: %v", p, err)
		}
	}
}

func TestValidateTypeNameRejectsUnknownName(t *testing.T) {
	reg := runtime.NewClassRegistry()
	if err := reg.ValidateTypeName("nonesuch", 1); err == nil {
		t.Fatal("expected a TYPE error for an unknown type name")
	}
}

func TestResolveClassLikeCompilesTemplateOnDemand(t *testing.T) {
	reg := loadOrFatal(t, `(tclass box (T) (field T v))`)
	def, err := reg.ResolveClassLike("box@int", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Name != "box@int" {
		t.Errorf("Name = %q, want box@int", def.Name)
	}
}

func TestClassNamesListsOnlyFullyBuiltClasses(t *testing.T) {
	reg := loadOrFatal(t, `(class a) (class b)`)
	names := reg.ClassNames()
	if len(names) != 2 {
		t.Fatalf("got %d names, want 2: %v", len(names), names)
	}
}
