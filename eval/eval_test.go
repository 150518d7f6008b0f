/*
File   : mixi/eval/eval_test.go

End-to-end evaluator scenarios, grounded on spec.md §8's testable-properties
table: each runs the full Lexer->Parser->Evaluator pipeline (the Evaluator
never depends on a prior Analyzer pass) and checks the exact resulting
RuntimeValue.
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mixi/lexer"
	"github.com/akashmaji946/mixi/parser"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/stdlib"
	"github.com/akashmaji946/mixi/value"
)

func run(t *testing.T, src string) (value.RuntimeValue, error) {
	t.Helper()
	tokens, err := lexer.Lex(src)
	require.NoError(t, err)
	tree, err := parser.ParseSource(tokens)
	require.NoError(t, err)
	s := scope.New[value.RuntimeValue](nil)
	stdlib.InstallValues(s, &discardWriter{})
	return Evaluate(tree, s)
}

type discardWriter struct{}

func (*discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestEvaluate_Scenario1_ArithmeticPrecedence(t *testing.T) {
	result, err := run(t, "LET x = 1 + 2 * 3; x;")
	require.NoError(t, err)
	assert.Equal(t, "7", result.String())
	assert.Equal(t, value.NewInt(7), result)
}

func TestEvaluate_Scenario2_RecursiveFactorial(t *testing.T) {
	result, err := run(t, "DEF fact(n) DO IF n == 0 DO RETURN 1; ELSE RETURN n * fact(n - 1); END END fact(5);")
	require.NoError(t, err)
	assert.Equal(t, "120", result.String())
}

func TestEvaluate_Scenario3_StringConcatWithStringify(t *testing.T) {
	result, err := run(t, `LET s = "hi "; s + 1;`)
	require.NoError(t, err)
	assert.Equal(t, value.Str{Value: "hi 1"}, result)
}

func TestEvaluate_Scenario4_HalfOpenRange(t *testing.T) {
	result, err := run(t, "LET r = 0; FOR i IN range(1, 4) DO r = r + i; END r;")
	require.NoError(t, err)
	assert.Equal(t, "6", result.String())
}

func TestEvaluate_Scenario5_ObjectMutationThroughThis(t *testing.T) {
	result, err := run(t, `LET o = OBJECT DO LET x = 10; DEF bump() DO this.x = this.x + 1; RETURN this.x; END END; o.bump(); o.bump();`)
	require.NoError(t, err)
	assert.Equal(t, "12", result.String())
}

func TestEvaluate_Scenario6_OrShortCircuitsDivisionByZero(t *testing.T) {
	result, err := run(t, "TRUE OR (1 / 0);")
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: true}, result)
}

func TestEvaluate_AndShortCircuitsOnFalse(t *testing.T) {
	result, err := run(t, "FALSE AND (1 / 0);")
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: false}, result)
}

func TestEvaluate_ScopeRestoredAfterIfBlock(t *testing.T) {
	_, err := run(t, "IF TRUE DO LET y = 1; END y;")
	assert.Error(t, err, "y should not be visible after the IF block exits")
}

func TestEvaluate_DivisionByZeroIsAnError(t *testing.T) {
	_, err := run(t, "1 / 0;")
	assert.Error(t, err)
	var evalErr *EvaluateError
	assert.ErrorAs(t, err, &evalErr)
}

func TestEvaluate_DecimalDivisionRoundsHalfEven(t *testing.T) {
	// 1.00 / 8.00 = 0.125 exactly; rounded to the operands' shared scale
	// (2 digits) that lands exactly halfway between 0.12 and 0.13, so
	// banker's rounding picks the even neighbor, 0.12.
	result, err := run(t, "1.00 / 8.00;")
	require.NoError(t, err)
	assert.Equal(t, "0.12", result.String())
}

func TestEvaluate_DecimalDivisionExact(t *testing.T) {
	result, err := run(t, "1.0 / 2.0;")
	require.NoError(t, err)
	assert.Equal(t, "0.5", result.String())
}

func TestEvaluate_ReturnOutsideFunctionIsAnError(t *testing.T) {
	_, err := run(t, "RETURN 1;")
	assert.Error(t, err)
}

func TestEvaluate_UndefinedVariableIsAnError(t *testing.T) {
	_, err := run(t, "x;")
	assert.Error(t, err)
}

func TestEvaluate_ObjectEqualityIsReferenceIdentity(t *testing.T) {
	result, err := run(t, `
LET a = OBJECT DO LET x = 1; END;
a == a;
`)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: true}, result)

	result, err = run(t, `
LET a = OBJECT DO LET x = 1; END;
LET b = OBJECT DO LET x = 1; END;
a == b;
`)
	require.NoError(t, err)
	assert.Equal(t, value.Bool{Value: false}, result, "distinct object instances are never equal, even with identical fields")
}

func TestEvaluate_EmptySourceYieldsNil(t *testing.T) {
	result, err := run(t, "")
	require.NoError(t, err)
	assert.Equal(t, value.Nil{}, result)
}

func TestEvaluate_LeftToRightArgumentEvaluationOrder(t *testing.T) {
	result, err := run(t, `
LET trace = "";
DEF note(s) DO trace = trace + s; RETURN 0; END
DEF first(a, b) DO RETURN 0; END
first(note("a"), note("b"));
trace;
`)
	require.NoError(t, err)
	assert.Equal(t, value.Str{Value: "ab"}, result)
}
