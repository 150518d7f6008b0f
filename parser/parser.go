/*
File   : mixi/parser/parser.go

Package parser implements the recursive-descent grammar of spec.md §4.2
over the token stream spec.md's Lexer produces. Grounded on
go-mix/parser/parser.go's two-token-lookahead/advance shape and its
expect-then-advance helper pattern, restructured around the peek/match
token-stream utilities spec.md §4.2 names explicitly (each pattern either a
token kind or a literal text; success requires every pattern to match a
consecutive token).
*/
package parser

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/lexer"
)

// tokenPattern matches one token in a peek/match call: either a token Kind
// or a specific literal text (used for keywords and operator spellings).
type tokenPattern func(lexer.Token) bool

func kind(k lexer.Kind) tokenPattern {
	return func(t lexer.Token) bool { return t.Kind == k }
}

func lit(s string) tokenPattern {
	return func(t lexer.Token) bool { return t.Literal == s }
}

// Parser consumes a flat token slice (spec.md §4.2's Parser.parse(tokens)
// and Parser.parseExpr(tokens) entry points) and produces an ast.Source or
// ast.Expr.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser wraps an already-lexed token sequence.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseSource lexes nothing itself; it consumes the whole token stream
// spec.md §4.2 describes, including the empty sequence (valid, yielding no
// statements).
func ParseSource(tokens []lexer.Token) (*ast.Source, error) {
	p := NewParser(tokens)
	src, err := p.parseSource()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() {
		return nil, p.errorf("unexpected trailing input %q", p.current().Literal)
	}
	return src, nil
}

// ParseExpr consumes a token stream down to a single expression, per
// spec.md §6's Parser.parseExpr entry point (used by the round-trip
// testable properties of spec.md §8).
func ParseExpr(tokens []lexer.Token) (ast.Expr, error) {
	p := NewParser(tokens)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (p *Parser) current() lexer.Token {
	if p.pos >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// peek reports whether the upcoming tokens, starting at the current
// position, match patterns one-for-one, without advancing.
func (p *Parser) peek(patterns ...tokenPattern) bool {
	for i, pat := range patterns {
		idx := p.pos + i
		var tok lexer.Token
		if idx < len(p.tokens) {
			tok = p.tokens[idx]
		} else {
			tok = lexer.Token{Kind: lexer.EOF}
		}
		if !pat(tok) {
			return false
		}
	}
	return true
}

// match behaves like peek but advances past the matched tokens on
// success.
func (p *Parser) match(patterns ...tokenPattern) bool {
	if !p.peek(patterns...) {
		return false
	}
	p.pos += len(patterns)
	return true
}

// expect requires the current token to match pattern, advances past it,
// and otherwise fails with a ParseError describing what was expected.
func (p *Parser) expect(pattern tokenPattern, what string) (lexer.Token, error) {
	tok := p.current()
	if !pattern(tok) {
		return lexer.Token{}, p.errorf("expected %s, got %q", what, tok.Literal)
	}
	p.pos++
	return tok, nil
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	tok := p.current()
	return newParseError(tok.Line, tok.Column, format, args...)
}

// keywordPattern reports whether the current token is an IDENTIFIER-kind
// token (the only kind keywords and plain identifiers ever share) whose
// literal is exactly text — spec.md §4.2's "keyword tokens are recognized
// by their literal text over tokens of kind IDENTIFIER."
func keywordPattern(text string) tokenPattern {
	return func(t lexer.Token) bool { return t.Kind == lexer.IDENTIFIER && t.Literal == text }
}

func (p *Parser) parseSource() (*ast.Source, error) {
	src := &ast.Source{}
	for !p.atEnd() {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		src.Statements = append(src.Statements, stmt)
	}
	return src, nil
}
