package ast_test

import (
	"testing"

	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/token"
)

func TestAtomTextAndLine(t *testing.T) {
	a := &ast.Atom{Tok: token.Token{Text: "n", Line: 3}}
	if a.Text() != "n" {
		t.Errorf("Text() = %q, want n", a.Text())
	}
	if a.Line() != 3 {
		t.Errorf("Line() = %d, want 3", a.Line())
	}
}

func TestListHeadAndRest(t *testing.T) {
	list := &ast.List{
		Items: []ast.Node{
			&ast.Atom{Tok: token.Token{Text: "call"}},
			&ast.Atom{Tok: token.Token{Text: "me"}},
			&ast.Atom{Tok: token.Token{Text: "greet"}},
		},
		LineNum: 5,
	}
	head, ok := list.Head()
	if !ok || head.Text() != "call" {
		t.Fatalf("Head() = (%v, %v), want (call, true)", head, ok)
	}
	if list.HeadText() != "call" {
		t.Errorf("HeadText() = %q, want call", list.HeadText())
	}
	if len(list.Rest()) != 2 {
		t.Errorf("Rest() has %d items, want 2", len(list.Rest()))
	}
}

func TestListHeadOnEmptyList(t *testing.T) {
	list := &ast.List{}
	if _, ok := list.Head(); ok {
		t.Error("Head() on an empty list should report false")
	}
	if list.HeadText() != "" {
		t.Errorf("HeadText() on an empty list = %q, want \"\"", list.HeadText())
	}
}

func TestListStringRendersSExpression(t *testing.T) {
	list := &ast.List{
		Items: []ast.Node{
			&ast.Atom{Tok: token.Token{Text: "+"}},
			&ast.Atom{Tok: token.Token{Text: "1"}},
			&ast.Atom{Tok: token.Token{Text: "2"}},
		},
	}
	if got := list.String(); got != "(+ 1 2)" {
		t.Errorf("String() = %q, want (+ 1 2)", got)
	}
}
