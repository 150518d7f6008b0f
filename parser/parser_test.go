/*
File   : mixi/parser/parser_test.go
*/
package parser

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/lexer"
)

func mustLex(t *testing.T, src string) []lexer.Token {
	t.Helper()
	toks, err := lexer.Lex(src)
	require.NoError(t, err)
	return toks
}

func TestParseExpr_LiteralForms(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want interface{}
	}{
		{"integer", "1", big.NewInt(1)},
		{"decimal", "1.5", mustDecimal(t, "1.5")},
		{"integer with exponent", "1e10", big.NewInt(10000000000)},
		{"decimal with negative exponent", "1.5e-2", mustDecimal(t, "0.015")},
		{"string", `"abc"`, "abc"},
		{"escaped character", `'\n'`, '\n'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			expr, err := ParseExpr(mustLex(t, tc.in))
			require.NoError(t, err)
			lit, ok := expr.(*ast.Literal)
			require.True(t, ok, "expected *ast.Literal, got %T", expr)
			switch want := tc.want.(type) {
			case *big.Int:
				got, ok := lit.Value.(*big.Int)
				require.True(t, ok, "expected *big.Int, got %T", lit.Value)
				assert.Equal(t, 0, want.Cmp(got))
			case decimal.Decimal:
				got, ok := lit.Value.(decimal.Decimal)
				require.True(t, ok, "expected decimal.Decimal, got %T", lit.Value)
				assert.True(t, want.Equal(got))
			default:
				assert.Equal(t, tc.want, lit.Value)
			}
		})
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestParseSource_PrecedenceChain(t *testing.T) {
	src, err := ParseSource(mustLex(t, "1 + 2 * 3;"))
	require.NoError(t, err)
	require.Len(t, src.Statements, 1)

	exprStmt, ok := src.Statements[0].(*ast.Expression)
	require.True(t, ok)

	top, ok := exprStmt.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "+", top.Op)

	left, ok := top.Left.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, 0, big.NewInt(1).Cmp(left.Value.(*big.Int)))

	right, ok := top.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", right.Op)
}

func TestParseSource_EmptyInputYieldsNoStatements(t *testing.T) {
	src, err := ParseSource(nil)
	require.NoError(t, err)
	assert.Empty(t, src.Statements)
}

func TestParseSource_LetStatement(t *testing.T) {
	src, err := ParseSource(mustLex(t, "LET x: Integer = 1;"))
	require.NoError(t, err)
	require.Len(t, src.Statements, 1)
	let, ok := src.Statements[0].(*ast.Let)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.Equal(t, "Integer", let.DeclaredType)
	require.NotNil(t, let.Value)
}

func TestParseSource_DefStatement(t *testing.T) {
	src, err := ParseSource(mustLex(t, "DEF fact(n) DO RETURN n; END"))
	require.NoError(t, err)
	require.Len(t, src.Statements, 1)
	def, ok := src.Statements[0].(*ast.Def)
	require.True(t, ok)
	assert.Equal(t, "fact", def.Name)
	require.Len(t, def.Params, 1)
	assert.Equal(t, "n", def.Params[0].Name)
	require.Len(t, def.Body, 1)
}

func TestParseSource_IfElseStatement(t *testing.T) {
	src, err := ParseSource(mustLex(t, "IF n == 0 DO RETURN 1; ELSE RETURN 2; END"))
	require.NoError(t, err)
	ifStmt, ok := src.Statements[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifStmt.Then, 1)
	assert.Len(t, ifStmt.Else, 1)
}

func TestParseSource_ForStatement(t *testing.T) {
	src, err := ParseSource(mustLex(t, "FOR i IN range(1, 4) DO r = r + i; END"))
	require.NoError(t, err)
	forStmt, ok := src.Statements[0].(*ast.For)
	require.True(t, ok)
	assert.Equal(t, "i", forStmt.Name)
	_, ok = forStmt.Iterable.(*ast.Function)
	assert.True(t, ok)
}

func TestParseSource_AssignmentStatement(t *testing.T) {
	src, err := ParseSource(mustLex(t, "x = 1;"))
	require.NoError(t, err)
	assign, ok := src.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	_, ok = assign.Target.(*ast.Variable)
	assert.True(t, ok)
}

func TestParseSource_PropertyAndMethodChain(t *testing.T) {
	src, err := ParseSource(mustLex(t, "o.bump();"))
	require.NoError(t, err)
	exprStmt := src.Statements[0].(*ast.Expression)
	method, ok := exprStmt.Value.(*ast.Method)
	require.True(t, ok)
	assert.Equal(t, "bump", method.Name)
	_, ok = method.Receiver.(*ast.Variable)
	assert.True(t, ok)
}

func TestParseSource_ObjectExpr(t *testing.T) {
	src, err := ParseSource(mustLex(t, `LET o = OBJECT DO LET x = 10; DEF bump() DO this.x = this.x + 1; RETURN this.x; END END;`))
	require.NoError(t, err)
	let := src.Statements[0].(*ast.Let)
	obj, ok := let.Value.(*ast.ObjectExpr)
	require.True(t, ok)
	require.Len(t, obj.Fields, 1)
	require.Len(t, obj.Methods, 1)
	assert.Equal(t, "x", obj.Fields[0].Name)
	assert.Equal(t, "bump", obj.Methods[0].Name)
}

func TestParseSource_MissingSemicolonFails(t *testing.T) {
	_, err := ParseSource(mustLex(t, "LET x = 1"))
	assert.Error(t, err)
}

func TestParseSource_TrailingInputFails(t *testing.T) {
	_, err := ParseSource(mustLex(t, "1; )"))
	assert.Error(t, err)
}

func TestParseSource_ComparisonOperatorsPreferLongerForm(t *testing.T) {
	src, err := ParseSource(mustLex(t, "a <= b;"))
	require.NoError(t, err)
	exprStmt := src.Statements[0].(*ast.Expression)
	bin, ok := exprStmt.Value.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "<=", bin.Op)
}
