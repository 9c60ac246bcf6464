package classdump_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/classdump"
	"github.com/RuralBrick/brewin-interpreter/internal/parser"
	"github.com/RuralBrick/brewin-interpreter/internal/runtime"
)

func TestDumpSortsClassesAndMembers(t *testing.T) {
	forms, err := parser.ParseProgram(`
(class zebra (method void z ()(print "z")) (method void a ()(print "a")))
(class apple inherits zebra (field int x 0))
`)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	reg, lerr := runtime.LoadProgram(forms)
	if lerr != nil {
		t.Fatalf("load error: %v", lerr)
	}

	summaries := classdump.Dump(reg, reg.ClassNames())
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[0].Name != "apple" || summaries[1].Name != "zebra" {
		t.Errorf("classes not sorted: got %q then %q", summaries[0].Name, summaries[1].Name)
	}
	if summaries[1].Methods[0] != "a" || summaries[1].Methods[1] != "z" {
		t.Errorf("methods not sorted: %v", summaries[1].Methods)
	}
	if summaries[0].Parent != "zebra" {
		t.Errorf("Parent = %q, want zebra", summaries[0].Parent)
	}
}
