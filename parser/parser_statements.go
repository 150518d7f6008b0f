package parser

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/lexer"
)

// parseStmt implements the "stmt" production of spec.md §4.2's grammar.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch {
	case p.peek(keywordPattern("LET")):
		return p.parseLetStmt()
	case p.peek(keywordPattern("DEF")):
		return p.parseDefStmt()
	case p.peek(keywordPattern("IF")):
		return p.parseIfStmt()
	case p.peek(keywordPattern("FOR")):
		return p.parseForStmt()
	case p.peek(keywordPattern("RETURN")):
		return p.parseReturnStmt()
	default:
		return p.parseExprOrAssignStmt()
	}
}

// parseBlock parses statements until one of the given terminator keywords
// is the upcoming token (without consuming the terminator).
func (p *Parser) parseBlock(terminators ...string) ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		if p.atEnd() {
			return nil, p.errorf("unexpected end of input inside block")
		}
		for _, term := range terminators {
			if p.peek(keywordPattern(term)) {
				return stmts, nil
			}
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

// parseLetStmt: "LET" IDENT (":" IDENT)? ("=" expr)? ";"
func (p *Parser) parseLetStmt() (*ast.Let, error) {
	if _, err := p.expect(keywordPattern("LET"), "LET"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(kind(lexer.IDENTIFIER), "identifier")
	if err != nil {
		return nil, err
	}
	node := &ast.Let{Name: nameTok.Literal}

	if p.match(lit(":")) {
		typeTok, err := p.expect(kind(lexer.IDENTIFIER), "type name")
		if err != nil {
			return nil, err
		}
		node.DeclaredType = typeTok.Literal
	}
	if p.match(lit("=")) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Value = value
	}
	if _, err := p.expect(lit(";"), "';'"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseDefStmt: "DEF" IDENT "(" params? ")" (":" IDENT)? "DO" stmt* "END"
func (p *Parser) parseDefStmt() (*ast.Def, error) {
	if _, err := p.expect(keywordPattern("DEF"), "DEF"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(kind(lexer.IDENTIFIER), "identifier")
	if err != nil {
		return nil, err
	}
	node := &ast.Def{Name: nameTok.Literal}

	if _, err := p.expect(lit("("), "'('"); err != nil {
		return nil, err
	}
	if !p.peek(lit(")")) {
		for {
			param, err := p.parseParam()
			if err != nil {
				return nil, err
			}
			node.Params = append(node.Params, param)
			if !p.match(lit(",")) {
				break
			}
		}
	}
	if _, err := p.expect(lit(")"), "')'"); err != nil {
		return nil, err
	}
	if p.match(lit(":")) {
		typeTok, err := p.expect(kind(lexer.IDENTIFIER), "type name")
		if err != nil {
			return nil, err
		}
		node.ReturnType = typeTok.Literal
	}
	if _, err := p.expect(keywordPattern("DO"), "DO"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("END")
	if err != nil {
		return nil, err
	}
	node.Body = body
	if _, err := p.expect(keywordPattern("END"), "END"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseParam: IDENT (":" IDENT)?
func (p *Parser) parseParam() (ast.Param, error) {
	nameTok, err := p.expect(kind(lexer.IDENTIFIER), "identifier")
	if err != nil {
		return ast.Param{}, err
	}
	param := ast.Param{Name: nameTok.Literal}
	if p.match(lit(":")) {
		typeTok, err := p.expect(kind(lexer.IDENTIFIER), "type name")
		if err != nil {
			return ast.Param{}, err
		}
		param.DeclaredType = typeTok.Literal
	}
	return param, nil
}

// parseIfStmt: "IF" expr "DO" stmt* ("ELSE" stmt*)? "END"
func (p *Parser) parseIfStmt() (*ast.If, error) {
	if _, err := p.expect(keywordPattern("IF"), "IF"); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(keywordPattern("DO"), "DO"); err != nil {
		return nil, err
	}
	then, err := p.parseBlock("ELSE", "END")
	if err != nil {
		return nil, err
	}
	node := &ast.If{Cond: cond, Then: then}
	if p.match(keywordPattern("ELSE")) {
		elseBody, err := p.parseBlock("END")
		if err != nil {
			return nil, err
		}
		node.Else = elseBody
	}
	if _, err := p.expect(keywordPattern("END"), "END"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseForStmt: "FOR" IDENT "IN" expr "DO" stmt* "END"
func (p *Parser) parseForStmt() (*ast.For, error) {
	if _, err := p.expect(keywordPattern("FOR"), "FOR"); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(kind(lexer.IDENTIFIER), "identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(keywordPattern("IN"), "IN"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(keywordPattern("DO"), "DO"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("END")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(keywordPattern("END"), "END"); err != nil {
		return nil, err
	}
	return &ast.For{Name: nameTok.Literal, Iterable: iterable, Body: body}, nil
}

// parseReturnStmt: "RETURN" expr? ";"
func (p *Parser) parseReturnStmt() (*ast.Return, error) {
	if _, err := p.expect(keywordPattern("RETURN"), "RETURN"); err != nil {
		return nil, err
	}
	node := &ast.Return{}
	if !p.peek(lit(";")) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Value = value
	}
	if _, err := p.expect(lit(";"), "';'"); err != nil {
		return nil, err
	}
	return node, nil
}

// parseExprOrAssignStmt: expr ("=" expr)? ";" — the trailing semicolon is
// always required (spec.md §9 resolves the teacher's two historical
// variants in favor of the stricter one).
func (p *Parser) parseExprOrAssignStmt() (ast.Stmt, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	var stmt ast.Stmt = &ast.Expression{Value: first}
	if p.match(lit("=")) {
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		stmt = &ast.Assignment{Target: first, Value: value}
	}
	if _, err := p.expect(lit(";"), "';'"); err != nil {
		return nil, err
	}
	return stmt, nil
}
