// Package parser consumes the lexer's flat token stream and nests it into
// the ast.Node tree described by spec.md §6. This is the boundary the core
// never crosses: internal/runtime and internal/interp only ever see
// ast.Node, never a token.Token stream or raw source text.
package parser

import (
	"github.com/RuralBrick/brewin-interpreter/internal/ast"
	"github.com/RuralBrick/brewin-interpreter/internal/errors"
	"github.com/RuralBrick/brewin-interpreter/internal/lexer"
	"github.com/RuralBrick/brewin-interpreter/internal/token"
)

// Parser builds nested ast.List/ast.Atom trees from a token stream.
type Parser struct {
	tokens []token.Token
	pos    int
}

// New creates a Parser over an already-tokenized stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseProgram lexes and parses Brewin source text into the top-level
// sequence of forms (class and tclass declarations).
func ParseProgram(source string) ([]ast.Node, *errors.BrewinError) {
	toks, err := lexer.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := New(toks)
	var forms []ast.Node
	for !p.atEnd() {
		node, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		forms = append(forms, node)
	}
	return forms, nil
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() (token.Token, bool) {
	if p.atEnd() {
		return token.Token{}, false
	}
	return p.tokens[p.pos], true
}

// parseNode parses a single top-level S-expression: either an atom or a
// fully-nested parenthesized list. Unbalanced parens were already rejected
// by the lexer's bracket-balance check, so a ")" can only appear here as a
// parseList return path, never as a bare top-level token.
func (p *Parser) parseNode() (ast.Node, *errors.BrewinError) {
	tok, ok := p.peek()
	if !ok {
		return nil, errors.NewSyntax(0, "unexpected end of input")
	}
	if tok.Text == "(" {
		return p.parseList()
	}
	if tok.Text == ")" {
		return nil, errors.NewSyntax(tok.Line, "unexpected ')'")
	}
	p.pos++
	return &ast.Atom{Tok: tok}, nil
}

func (p *Parser) parseList() (ast.Node, *errors.BrewinError) {
	open, _ := p.peek()
	p.pos++ // consume "("
	list := &ast.List{LineNum: open.Line}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, errors.NewSyntax(open.Line, "unterminated list starting on this line")
		}
		if tok.Text == ")" {
			p.pos++
			return list, nil
		}
		child, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, child)
	}
}
