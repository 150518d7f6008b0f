/*
File   : mixi/cmd/mixi/run.go

The shared pipeline driver: Lexer -> Parser -> Analyzer -> Evaluator,
wired end to end the way go-mix/main/main.go and go-mix/eval/evaluator.go
wire their own stages together. The Analyzer pass is run for error
reporting only (spec.md §1: "a typical front-end runs the Analyzer first
purely for diagnostics") and never gates evaluation: per spec.md §4.4 the
Evaluator walks the original untyped AST independently of the Analyzer,
so an analyze error is reported on w and evaluation proceeds regardless.
*/
package main

import (
	"fmt"
	"io"

	"github.com/akashmaji946/mixi/analyzer"
	"github.com/akashmaji946/mixi/eval"
	"github.com/akashmaji946/mixi/lexer"
	"github.com/akashmaji946/mixi/parser"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/stdlib"
	"github.com/akashmaji946/mixi/types"
	"github.com/akashmaji946/mixi/value"
)

// run lexes, parses, type-checks, and evaluates one source string,
// writing builtin output (print/log) and any analyze diagnostic to w. It
// returns the value of the last statement evaluated, or the first lex,
// parse, or evaluate error produced. An analyze error is reported on w
// but does not prevent evaluation (spec.md §4.4: the Evaluator does not
// depend on a prior Analyzer pass).
func run(source string, w io.Writer) (value.RuntimeValue, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, fmt.Errorf("lex error: %w", err)
	}

	ast, err := parser.ParseSource(tokens)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	typeScope := scope.New[types.Type](nil)
	stdlib.InstallTypes(typeScope)
	if _, err := analyzer.Analyze(ast, typeScope); err != nil {
		fmt.Fprintf(w, "analyze error: %v\n", err)
	}

	valueScope := scope.New[value.RuntimeValue](nil)
	stdlib.InstallValues(valueScope, w)
	result, err := eval.Evaluate(ast, valueScope)
	if err != nil {
		return nil, fmt.Errorf("evaluate error: %w", err)
	}
	return result, nil
}
