/*
File   : mixi/analyzer/analyzer.go

Package analyzer implements spec.md §4.3: a single top-to-bottom pass over
an ast.Source that produces an ir.Source with every expression carrying a
resolved types.Type, or fails fatally with an AnalyzeError. Grounded on
go-mix/scope.go's LetTypes/GetLetType mechanism (generalized here into the
full Scope[types.Type] instantiation) and on
gaarutyunov-guix/pkg/visitors/semantic_analyzer.go's scope-stack shape for
the push/pop-on-block-entry discipline.
*/
package analyzer

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/ir"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/types"
)

// returnsSentinel is the scope binding name the "RETURN" statement rule
// checks for, per spec.md §4.3 ("the sentinel name $RETURNS").
const returnsSentinel = "$RETURNS"

const thisName = "this"

// analyzer holds the single mutable scope pointer spec.md §4.3's
// "Environment" section describes. The restore function pushScope returns
// is always deferred, so scope restoration is guaranteed on every exit path —
// normal return, analyze error, or (impossible here, but kept as the same
// discipline the Evaluator needs) panic.
type analyzer struct {
	scope *scope.Scope[types.Type]
}

// Analyze runs the Analyzer over a parsed source, returning the typed IR
// or the first AnalyzeError encountered.
func Analyze(source *ast.Source, initial *scope.Scope[types.Type]) (*ir.Source, error) {
	a := &analyzer{scope: initial}
	out := &ir.Source{}
	for _, stmt := range source.Statements {
		irStmt, err := a.analyzeStmt(stmt)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, irStmt)
	}
	return out, nil
}

// pushScope creates a child of the current scope, makes it current, and
// returns a restore function the caller must defer immediately.
func (a *analyzer) pushScope() func() {
	parent := a.scope
	a.scope = scope.New(parent)
	return func() { a.scope = parent }
}

// pushScopeOn is pushScope but the child's parent is an explicit scope
// rather than a.scope (used for OBJECT/METHOD bodies, which extend the
// object's own scope, not the lexical scope where the literal appears).
func (a *analyzer) pushScopeOn(parent *scope.Scope[types.Type]) func() {
	saved := a.scope
	a.scope = scope.New(parent)
	return func() { a.scope = saved }
}

// resolveType implements spec.md §4.3's resolveType(typeName?, exprIR?)
// helper: (a) named type if given, erroring if unknown; (b) else the
// expression's inferred type; (c) if both given, require exprIR.Type() <=
// namedType and return namedType; (d) if neither, ANY.
func (a *analyzer) resolveType(typeName string, exprIR ir.Expr) (types.Type, error) {
	var named types.Type
	if typeName != "" {
		t, ok := types.TYPES.Resolve(typeName)
		if !ok {
			return nil, newAnalyzeError("unknown type %q", typeName)
		}
		named = t
	}
	switch {
	case named != nil && exprIR != nil:
		if !types.IsSubtype(exprIR.Type(), named) {
			return nil, newAnalyzeError("cannot assign %s to declared type %s", exprIR.Type(), named)
		}
		return named, nil
	case named != nil:
		return named, nil
	case exprIR != nil:
		return exprIR.Type(), nil
	default:
		return types.Any, nil
	}
}
