package parser

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/lexer"
)

// parseNumberLiteral decodes an INTEGER- or DECIMAL-kind token's literal
// text into the boxed value an ast.Literal carries. A DECIMAL-kind token
// (one with a '.') always decodes to a decimal.Decimal. An INTEGER-kind
// token normally decodes to a *big.Int, except that an exponent can still
// push its value off the integer line (e.g. "2e-1"); spec.md §6 resolves
// that edge case by decoding through decimal.Decimal first and only then
// narrowing to *big.Int when the result is exact.
func (p *Parser) parseNumberLiteral() (ast.Expr, error) {
	tok := p.current()
	p.pos++

	if tok.Kind == lexer.DECIMAL {
		d, err := decimal.NewFromString(tok.Literal)
		if err != nil {
			return nil, newParseError(tok.Line, tok.Column, "malformed decimal literal %q", tok.Literal)
		}
		return &ast.Literal{Value: d}, nil
	}

	// INTEGER-kind: fast path for the common case with no exponent.
	if !strings.ContainsAny(tok.Literal, "eE") {
		i := new(big.Int)
		if _, ok := i.SetString(tok.Literal, 10); !ok {
			return nil, newParseError(tok.Line, tok.Column, "malformed integer literal %q", tok.Literal)
		}
		return &ast.Literal{Value: i}, nil
	}

	d, err := decimal.NewFromString(tok.Literal)
	if err != nil {
		return nil, newParseError(tok.Line, tok.Column, "malformed integer literal %q", tok.Literal)
	}
	if d.IsInteger() {
		return &ast.Literal{Value: d.BigInt()}, nil
	}
	return &ast.Literal{Value: d}, nil
}

// parseCharLiteral decodes a CHARACTER-kind token (quotes included in its
// literal text) into a single rune.
func (p *Parser) parseCharLiteral() (ast.Expr, error) {
	tok := p.current()
	p.pos++
	body := tok.Literal[1 : len(tok.Literal)-1]
	decoded, err := decodeEscapes(body)
	if err != nil {
		return nil, newParseError(tok.Line, tok.Column, "%s", err.Error())
	}
	runes := []rune(decoded)
	if len(runes) != 1 {
		return nil, newParseError(tok.Line, tok.Column, "character literal %q must decode to exactly one character", tok.Literal)
	}
	return &ast.Literal{Value: runes[0]}, nil
}

// parseStringLiteral decodes a STRING-kind token (quotes included) into a
// string with every escape sequence resolved.
func (p *Parser) parseStringLiteral() (ast.Expr, error) {
	tok := p.current()
	p.pos++
	body := tok.Literal[1 : len(tok.Literal)-1]
	decoded, err := decodeEscapes(body)
	if err != nil {
		return nil, newParseError(tok.Line, tok.Column, "%s", err.Error())
	}
	return &ast.Literal{Value: decoded}, nil
}

// decodeEscapes resolves the backslash escapes the Lexer already validated
// (\b \f \n \r \t \' \" \\) into their literal byte values.
func decodeEscapes(s string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '\'':
			b.WriteByte('\'')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
