// Package ast defines the AST surface the interpreter core consumes
// (spec.md §6): a recursively-nested ordered sequence whose leaves are
// line-annotated tokens. Unlike the teacher's per-construct node hierarchy
// (ClassDecl, MethodDecl, IfStatement, ...), Brewin's concrete syntax is
// itself a generic S-expression grammar, so the AST stays a single
// two-case sum type — Atom and List — and the interpreter's evaluator
// pattern-matches on a List's leading Atom to decide which construct it's
// looking at, the same way the language's original reference
// implementation walks its parsed token tree.
package ast

import "github.com/RuralBrick/brewin-interpreter/internal/token"

// Node is either an Atom (a leaf token) or a List (an ordered sequence of
// child Nodes). Every Node knows its source line for error reporting.
type Node interface {
	Line() int
	String() string
}

// Atom is a leaf token: an identifier, keyword, integer literal, quoted
// string literal, or operator symbol.
type Atom struct {
	Tok token.Token
}

// Line returns the line the atom's token was scanned on.
func (a *Atom) Line() int { return a.Tok.Line }

// Text returns the atom's literal text.
func (a *Atom) Text() string { return a.Tok.Text }

// String implements Node.
func (a *Atom) String() string { return a.Tok.Text }

// List is an ordered, parenthesized sequence of child nodes, e.g.
// (call target method arg).
type List struct {
	Items   []Node
	LineNum int
}

// Line returns the line the list's opening parenthesis was scanned on.
func (l *List) Line() int { return l.LineNum }

// String renders the list back out in S-expression form.
func (l *List) String() string {
	s := "("
	for i, item := range l.Items {
		if i > 0 {
			s += " "
		}
		s += item.String()
	}
	return s + ")"
}

// Head returns the list's first element as an Atom, and whether that
// succeeded (the list is non-empty and its first element is an Atom).
func (l *List) Head() (*Atom, bool) {
	if len(l.Items) == 0 {
		return nil, false
	}
	a, ok := l.Items[0].(*Atom)
	return a, ok
}

// HeadText returns the text of the list's leading atom, or "" if the list
// is empty or does not start with an atom.
func (l *List) HeadText() string {
	if a, ok := l.Head(); ok {
		return a.Text()
	}
	return ""
}

// Rest returns the list's elements after the first.
func (l *List) Rest() []Node {
	if len(l.Items) == 0 {
		return nil
	}
	return l.Items[1:]
}
