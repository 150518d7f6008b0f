/*
File   : mixi/analyzer/analyzer_test.go
*/
package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mixi/ir"
	"github.com/akashmaji946/mixi/lexer"
	"github.com/akashmaji946/mixi/parser"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/stdlib"
	"github.com/akashmaji946/mixi/types"
)

func analyzeSource(t *testing.T, src string) (*ir.Source, error) {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	tree, err := parser.ParseSource(tokens)
	require.NoError(t, err)
	return Analyze(tree, scope.New[types.Type](nil))
}

func TestAnalyze_EveryExpressionHasAType(t *testing.T) {
	out, err := analyzeSource(t, "LET x = 1 + 2 * 3;")
	require.NoError(t, err)
	require.Len(t, out.Statements, 1)
	let, ok := out.Statements[0].(*ir.Let)
	require.True(t, ok)
	require.NotNil(t, let.Value)
	assert.Equal(t, types.INTEGER, let.Value.Type().Kind())
}

func TestAnalyze_ReflexiveSubtyping(t *testing.T) {
	_, err := analyzeSource(t, "LET x: Integer = 1;")
	assert.NoError(t, err)
}

func TestAnalyze_DeclaredTypeMismatchFails(t *testing.T) {
	_, err := analyzeSource(t, `LET x: String = 1;`)
	assert.Error(t, err)
}

func TestAnalyze_RedeclarationInSameScopeFails(t *testing.T) {
	_, err := analyzeSource(t, "LET x = 1; LET x = 2;")
	assert.Error(t, err)
	var analyzeErr *AnalyzeError
	assert.ErrorAs(t, err, &analyzeErr)
}

func TestAnalyze_RedeclarationInNestedScopeSucceeds(t *testing.T) {
	_, err := analyzeSource(t, "LET x = 1; IF TRUE DO LET x = 2; END")
	assert.NoError(t, err)
}

func TestAnalyze_RecursiveFunctionSelfReferenceAccepted(t *testing.T) {
	_, err := analyzeSource(t, "DEF f(n: Integer): Integer DO RETURN f(n); END")
	assert.NoError(t, err)
}

func TestAnalyze_ReturnOutsideFunctionFails(t *testing.T) {
	_, err := analyzeSource(t, "RETURN 1;")
	assert.Error(t, err)
}

func TestAnalyze_UndeclaredVariableFails(t *testing.T) {
	_, err := analyzeSource(t, "x;")
	assert.Error(t, err)
}

func TestAnalyze_IfConditionMustBeBoolean(t *testing.T) {
	_, err := analyzeSource(t, "IF 1 DO RETURN; END")
	assert.Error(t, err)
}

func TestAnalyze_ForIterableMustBeIterable(t *testing.T) {
	_, err := analyzeSource(t, "FOR i IN 1 DO END")
	assert.Error(t, err)
}

func TestAnalyze_ForLoopVariableIsInteger(t *testing.T) {
	s := scope.New[types.Type](nil)
	stdlib.InstallTypes(s)
	tokens, err := lexer.Lex("LET items = list(); FOR i IN items DO i + 1; END")
	require.NoError(t, err)
	tree, err := parser.ParseSource(tokens)
	require.NoError(t, err)
	out, err := Analyze(tree, s)
	require.NoError(t, err)
	forStmt := out.Statements[1].(*ir.For)
	inner := forStmt.Body[0].(*ir.Expression)
	assert.Equal(t, types.INTEGER, inner.Value.Type().Kind())
}

func TestAnalyze_ObjectFieldAndMethodTypes(t *testing.T) {
	out, err := analyzeSource(t, `LET o = OBJECT DO LET x = 10; DEF bump() DO this.x = this.x + 1; RETURN this.x; END END;`)
	require.NoError(t, err)
	let := out.Statements[0].(*ir.Let)
	obj, ok := let.Value.(*ir.ObjectExpr)
	require.True(t, ok)
	require.Len(t, obj.Fields, 1)
	require.Len(t, obj.Methods, 1)
	assert.Equal(t, types.INTEGER, obj.Fields[0].Value.Type().Kind())
}

func TestAnalyze_BareVariableShadowingThisMemberIsRejected(t *testing.T) {
	_, err := analyzeSource(t, `LET o = OBJECT DO LET x = 10; DEF bump() DO RETURN x; END END;`)
	assert.Error(t, err)
}

func TestAnalyze_PlusRequiresMatchingNumericOrStringOperand(t *testing.T) {
	_, err := analyzeSource(t, `LET s = "hi "; LET r = s + 1;`)
	assert.NoError(t, err, "String + anything is always legal")

	_, err = analyzeSource(t, `LET r = TRUE + 1;`)
	assert.Error(t, err)
}

func TestAnalyze_ComparisonRequiresComparableSameKind(t *testing.T) {
	_, err := analyzeSource(t, "LET r = 1 < 2;")
	assert.NoError(t, err)

	_, err = analyzeSource(t, `LET r = 1 < "x";`)
	assert.Error(t, err)
}

func TestAnalyze_EqualityRequiresEquatable(t *testing.T) {
	out, err := analyzeSource(t, "LET r = 1 == 2;")
	require.NoError(t, err)
	let := out.Statements[0].(*ir.Let)
	assert.Equal(t, types.BOOLEAN, let.Value.Type().Kind())
}

func TestAnalyze_LogicalOperatorsRequireBoolean(t *testing.T) {
	_, err := analyzeSource(t, "LET r = TRUE AND FALSE;")
	assert.NoError(t, err)

	_, err = analyzeSource(t, "LET r = 1 AND TRUE;")
	assert.Error(t, err)
}
