package parser_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
)

func TestParseProgramNestsLists(t *testing.T) {
	forms, err := parser.ParseProgram(`(class main (method void main () (print "hi")))`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 1 {
		t.Fatalf("got %d top-level forms, want 1", len(forms))
	}
	class, ok := forms[0].(*ast.List)
	if !ok {
		t.Fatalf("top-level form is not a list")
	}
	if class.HeadText() != "class" {
		t.Errorf("head = %q, want class", class.HeadText())
	}
	if len(class.Items) != 3 {
		t.Fatalf("got %d items, want 3: %s", len(class.Items), class.String())
	}
}

func TestParseProgramMultipleTopLevelForms(t *testing.T) {
	forms, err := parser.ParseProgram(`(class a) (class b)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("got %d forms, want 2", len(forms))
	}
}

func TestParseProgramUnexpectedCloseParen(t *testing.T) {
	_, err := parser.ParseProgram(`)`)
	if err == nil {
		t.Fatal("expected a SYNTAX error")
	}
}

func TestParseProgramAtomLine(t *testing.T) {
	forms, err := parser.ParseProgram("(class main\n  (field int n 0))")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	class := forms[0].(*ast.List)
	field := class.Items[2].(*ast.List)
	if field.Line() != 2 {
		t.Errorf("field line = %d, want 2", field.Line())
	}
}
