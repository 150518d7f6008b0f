/*
File   : mixi/eval/eval.go

Package eval implements spec.md §4.4: a direct tree-walk over the untyped
AST (the Evaluator never relies on a prior Analyzer pass) producing
RuntimeValues, with non-local Return modeled as a distinguished control
value rather than a panic, and guaranteed scope restoration on every exit
path via defer. Grounded on go-mix/eval/evaluator.go's single-Scope-field
driver and its objects.ReturnValue "wrap, don't panic" convention
(eval_controls.go), generalized to arbitrary-precision numerics.
*/
package eval

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/value"
)

// evaluator holds the single mutable current-scope pointer spec.md §5
// names as the pipeline's only piece of state.
type evaluator struct {
	scope *scope.Scope[value.RuntimeValue]
}

// Evaluate runs the Evaluator over a parsed source and returns the value
// of the last statement executed (NIL for an empty source), or the first
// EvaluateError encountered. A top-level RETURN is rejected, since nothing
// outside of a function call consumes non-local control transfers.
func Evaluate(source *ast.Source, initial *scope.Scope[value.RuntimeValue]) (value.RuntimeValue, error) {
	e := &evaluator{scope: initial}
	result, ret, err := e.evalBlock(source.Statements)
	if err != nil {
		return nil, err
	}
	if ret != nil {
		return nil, newEvalError("RETURN outside function")
	}
	return result, nil
}

// pushScope creates a child of the current scope, makes it current, and
// returns a restore function the caller must defer immediately — this is
// the unwind-safe mechanism spec.md §4.4 requires ("scope restoration is
// guaranteed on all exit paths, including non-local Return and error").
func (e *evaluator) pushScope() func() {
	parent := e.scope
	e.scope = scope.New(parent)
	return func() { e.scope = parent }
}

// pushScopeOn is pushScope but the child's parent is an explicit captured
// scope rather than e.scope — used when invoking a function/method value,
// whose body must run as a child of the scope it was defined in, not the
// caller's scope.
func (e *evaluator) pushScopeOn(parent *scope.Scope[value.RuntimeValue]) func() {
	saved := e.scope
	e.scope = scope.New(parent)
	return func() { e.scope = saved }
}

// evalBlock runs stmts in order, stopping immediately if a statement
// raises a returnSignal or an error. Its own result is the value of the
// last statement it actually ran, or NIL for an empty block.
func (e *evaluator) evalBlock(stmts []ast.Stmt) (value.RuntimeValue, *returnSignal, error) {
	var result value.RuntimeValue = value.Nil{}
	for _, stmt := range stmts {
		v, ret, err := e.evalStmt(stmt)
		if err != nil {
			return nil, nil, err
		}
		if ret != nil {
			return nil, ret, nil
		}
		result = v
	}
	return result, nil, nil
}

// runBlockInChildScope pushes a fresh child scope, runs stmts, and
// restores the prior scope on every exit path before returning.
func (e *evaluator) runBlockInChildScope(stmts []ast.Stmt) (value.RuntimeValue, *returnSignal, error) {
	restore := e.pushScope()
	defer restore()
	return e.evalBlock(stmts)
}
