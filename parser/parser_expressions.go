package parser

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/lexer"
)

func op(s string) tokenPattern {
	return func(t lexer.Token) bool { return t.Kind == lexer.OPERATOR && t.Literal == s }
}

// parseExpr: "expr := logical" (spec.md §4.2).
func (p *Parser) parseExpr() (ast.Expr, error) {
	return p.parseLogical()
}

// parseLogical: "logical := comparison (("AND"|"OR") comparison)*", left-associative.
func (p *Parser) parseLogical() (ast.Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for {
		var opText string
		switch {
		case p.match(keywordPattern("AND")):
			opText = "AND"
		case p.match(keywordPattern("OR")):
			opText = "OR"
		default:
			return left, nil
		}
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opText, Left: left, Right: right}
	}
}

// parseComparison: "comparison := additive (("<="|">="|"=="|"!="|"<"|">") additive)*"
// — the two-character forms are probed first (spec.md §4.2's "longer
// operator first" rule).
func (p *Parser) parseComparison() (ast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		var opText string
		switch {
		case p.match(op("<=")):
			opText = "<="
		case p.match(op(">=")):
			opText = ">="
		case p.match(op("==")):
			opText = "=="
		case p.match(op("!=")):
			opText = "!="
		case p.match(op("<")):
			opText = "<"
		case p.match(op(">")):
			opText = ">"
		default:
			return left, nil
		}
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opText, Left: left, Right: right}
	}
}

// parseAdditive: "additive := multiplicative (("+"|"-") multiplicative)*"
func (p *Parser) parseAdditive() (ast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var opText string
		switch {
		case p.match(op("+")):
			opText = "+"
		case p.match(op("-")):
			opText = "-"
		default:
			return left, nil
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opText, Left: left, Right: right}
	}
}

// parseMultiplicative: "multiplicative := secondary (("*"|"/") secondary)*"
func (p *Parser) parseMultiplicative() (ast.Expr, error) {
	left, err := p.parseSecondary()
	if err != nil {
		return nil, err
	}
	for {
		var opText string
		switch {
		case p.match(op("*")):
			opText = "*"
		case p.match(op("/")):
			opText = "/"
		default:
			return left, nil
		}
		right, err := p.parseSecondary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Op: opText, Left: left, Right: right}
	}
}

// parseSecondary: "secondary := primary ("." IDENT ("(" args? ")")? )*" —
// chained property/method access.
func (p *Parser) parseSecondary() (ast.Expr, error) {
	receiver, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.match(lit(".")) {
		nameTok, err := p.expect(kind(lexer.IDENTIFIER), "member name")
		if err != nil {
			return nil, err
		}
		if p.match(lit("(")) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lit(")"), "')'"); err != nil {
				return nil, err
			}
			receiver = &ast.Method{Receiver: receiver, Name: nameTok.Literal, Args: args}
		} else {
			receiver = &ast.Property{Receiver: receiver, Name: nameTok.Literal}
		}
	}
	return receiver, nil
}

// parseArgs: "args := expr ("," expr)*", possibly empty: it returns no
// arguments when the next token is ")", which it leaves for the caller.
func (p *Parser) parseArgs() ([]ast.Expr, error) {
	var args []ast.Expr
	if p.peek(lit(")")) {
		return args, nil
	}
	for {
		a, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if !p.match(lit(",")) {
			break
		}
	}
	return args, nil
}

// parsePrimary: "primary := literal | "(" expr ")" | objectExpr | IDENT ("(" args? ")")?"
func (p *Parser) parsePrimary() (ast.Expr, error) {
	tok := p.current()

	switch {
	case p.match(keywordPattern("NIL")):
		return &ast.Literal{Value: nil}, nil
	case p.match(keywordPattern("TRUE")):
		return &ast.Literal{Value: true}, nil
	case p.match(keywordPattern("FALSE")):
		return &ast.Literal{Value: false}, nil
	case p.peek(kind(lexer.INTEGER)):
		return p.parseNumberLiteral()
	case p.peek(kind(lexer.DECIMAL)):
		return p.parseNumberLiteral()
	case p.peek(kind(lexer.CHARACTER)):
		return p.parseCharLiteral()
	case p.peek(kind(lexer.STRING)):
		return p.parseStringLiteral()
	case p.match(lit("(")):
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lit(")"), "')'"); err != nil {
			return nil, err
		}
		return &ast.Group{Inner: inner}, nil
	case p.peek(keywordPattern("OBJECT")):
		return p.parseObjectExpr()
	case p.peek(kind(lexer.IDENTIFIER)):
		return p.parseIdentOrCall()
	default:
		return nil, p.errorf("unexpected token %q while parsing an expression", tok.Literal)
	}
}

func (p *Parser) parseIdentOrCall() (ast.Expr, error) {
	nameTok, err := p.expect(kind(lexer.IDENTIFIER), "identifier")
	if err != nil {
		return nil, err
	}
	if p.match(lit("(")) {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lit(")"), "')'"); err != nil {
			return nil, err
		}
		return &ast.Function{Name: nameTok.Literal, Args: args}, nil
	}
	return &ast.Variable{Name: nameTok.Literal}, nil
}

// parseObjectExpr: "objectExpr := "OBJECT" (IDENT but not "DO")? "DO" letStmt* defStmt* "END""
func (p *Parser) parseObjectExpr() (ast.Expr, error) {
	if _, err := p.expect(keywordPattern("OBJECT"), "OBJECT"); err != nil {
		return nil, err
	}
	node := &ast.ObjectExpr{}
	if p.peek(kind(lexer.IDENTIFIER)) && !p.peek(keywordPattern("DO")) {
		nameTok, _ := p.expect(kind(lexer.IDENTIFIER), "object name")
		node.Name = nameTok.Literal
	}
	if _, err := p.expect(keywordPattern("DO"), "DO"); err != nil {
		return nil, err
	}
	for p.peek(keywordPattern("LET")) {
		field, err := p.parseLetStmt()
		if err != nil {
			return nil, err
		}
		node.Fields = append(node.Fields, field)
	}
	for p.peek(keywordPattern("DEF")) {
		method, err := p.parseDefStmt()
		if err != nil {
			return nil, err
		}
		node.Methods = append(node.Methods, method)
	}
	if _, err := p.expect(keywordPattern("END"), "END"); err != nil {
		return nil, err
	}
	return node, nil
}
