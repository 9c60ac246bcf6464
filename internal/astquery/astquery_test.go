package astquery_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/astquery"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
)

func TestToJSONAndQueryRoundTrip(t *testing.T) {
	forms, err := parser.ParseProgram(`(class main (field int n 0))`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	doc, err := astquery.ToJSON(forms)
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	result := astquery.Query(doc, "forms.0.items.0.atom")
	if result.String() != "class" {
		t.Errorf("got %q, want class", result.String())
	}
}

func TestToJSONPreservesLineNumbers(t *testing.T) {
	forms, err := parser.ParseProgram("(class main\n  (field int n 0))")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	doc, err := astquery.ToJSON(forms)
	if err != nil {
		t.Fatalf("ToJSON error: %v", err)
	}
	result := astquery.Query(doc, "forms.0.items.2.line")
	if result.Int() != 2 {
		t.Errorf("got %d, want 2", result.Int())
	}
}
