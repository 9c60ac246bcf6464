package runtime_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

func TestNewObjectDefaultsPrimitiveFieldsToZeroValue(t *testing.T) {
	reg := runtime.NewClassRegistry()
	class := runtime.NewClassDef("point", nil, 1)
	class.FieldOrder = []string{"x", "active", "label"}
	class.FieldTypes = map[string]string{"x": "int", "active": "bool", "label": "string"}

	obj, err := runtime.NewObject(reg, class)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.Fields["x"].Get().(runtime.IntValue).N != 0 {
		t.Error("int field should default to 0")
	}
	if obj.Fields["active"].Get().(runtime.BoolValue).B != false {
		t.Error("bool field should default to false")
	}
	if obj.Fields["label"].Get().(runtime.StringValue).S != "" {
		t.Error("string field should default to \"\"")
	}
}

func TestNewObjectDefaultsClassFieldToTaggedNull(t *testing.T) {
	reg := runtime.NewClassRegistry()
	registerClass(reg, "person", nil)
	class := runtime.NewClassDef("main", nil, 1)
	class.FieldOrder = []string{"p"}
	class.FieldTypes = map[string]string{"p": "person"}

	obj, err := runtime.NewObject(reg, class)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	null, ok := obj.Fields["p"].Get().(runtime.NullValue)
	if !ok {
		t.Fatalf("expected a NullValue, got %T", obj.Fields["p"].Get())
	}
	if null.Tag() != "person" {
		t.Errorf("Tag() = %q, want person", null.Tag())
	}
}

func TestNewObjectUsesLiteralFieldInitializer(t *testing.T) {
	reg := runtime.NewClassRegistry()
	class := runtime.NewClassDef("counter", nil, 1)
	class.FieldOrder = []string{"n"}
	class.FieldTypes = map[string]string{"n": "int"}
	class.FieldInits["n"] = runtime.NewInt(5)

	obj, err := runtime.NewObject(reg, class)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if obj.Fields["n"].Get().(runtime.IntValue).N != 5 {
		t.Errorf("got %v, want initializer value 5", obj.Fields["n"].Get())
	}
}

func TestNewObjectInitializesInheritedFields(t *testing.T) {
	reg := runtime.NewClassRegistry()
	parent := registerClass(reg, "parent", nil)
	parent.FieldOrder = []string{"id"}
	parent.FieldTypes = map[string]string{"id": "int"}
	child := registerClass(reg, "child", parent)
	child.FieldOrder = []string{"name"}
	child.FieldTypes = map[string]string{"name": "string"}

	obj, err := runtime.NewObject(reg, child)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := obj.GetField("id"); !ok {
		t.Error("expected inherited field 'id' to be initialized")
	}
	if _, ok := obj.GetField("name"); !ok {
		t.Error("expected own field 'name' to be initialized")
	}
}
