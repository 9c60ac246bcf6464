package runtime_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

func TestWithTagPreservesValuePayload(t *testing.T) {
	v := runtime.NewInt(42).WithTag("int")
	iv, ok := v.(runtime.IntValue)
	if !ok {
		t.Fatalf("WithTag changed the concrete type: %T", v)
	}
	if iv.N != 42 {
		t.Errorf("N = %d, want 42", iv.N)
	}
	if v.Tag() != "int" {
		t.Errorf("Tag() = %q, want int", v.Tag())
	}
}

func TestNullValueTagRecordsDeclaredClass(t *testing.T) {
	n := runtime.NewNull("person")
	if n.Tag() != "person" {
		t.Errorf("Tag() = %q, want person", n.Tag())
	}
	if n.Kind() != runtime.KindNull {
		t.Errorf("Kind() = %v, want KindNull", n.Kind())
	}
}

func TestVoidValueCannotCarryATag(t *testing.T) {
	v := runtime.VoidValue{}
	tagged := v.WithTag("int")
	if tagged.Tag() != "" {
		t.Errorf("VoidValue.WithTag should be a no-op, got tag %q", tagged.Tag())
	}
}

func TestBoolValueString(t *testing.T) {
	if runtime.NewBool(true).String() != "true" {
		t.Error("expected true to stringify as \"true\"")
	}
	if runtime.NewBool(false).String() != "false" {
		t.Error("expected false to stringify as \"false\"")
	}
}

func TestIsPrimitiveType(t *testing.T) {
	for _, p := range []string{"int", "string", "bool"} {
		if !runtime.IsPrimitiveType(p) {
			t.Errorf("%q should be primitive", p)
		}
	}
	if runtime.IsPrimitiveType("person") {
		t.Error("person should not be primitive")
	}
}
