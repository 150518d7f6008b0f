/*
File   : mixi/stdlib/stdlib.go

Package stdlib is the "populate a scope with named values" external
collaborator spec.md §1/§6 describe: the standard-library binding layer
that installs print, log, list, and range into the initial scope the
Analyzer and Evaluator are handed. Its contract is deliberately thin — it
is specified only through the Evaluator's use of it — and is grounded on
go-mix/std/builtins.go's Builtin{Name, Callback} registration pattern,
simplified to two direct scope-installer functions rather than a global
registry, since this package has no REPL-introspection use case the
teacher's registry serves.
*/
package stdlib

import (
	"fmt"
	"io"
	"math/big"

	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/types"
	"github.com/akashmaji946/mixi/value"
)

// InstallTypes defines print/log/list/range's Function types in s, for use
// as (or under) an Analyzer's initial Scope<Type>.
func InstallTypes(s *scope.Scope[types.Type]) {
	s.Define("print", types.FunctionType{Params: []types.Type{types.Any}, Returns: types.Nil})
	s.Define("log", types.FunctionType{Params: []types.Type{types.Any}, Returns: types.Nil})
	s.Define("list", types.FunctionType{Params: nil, Returns: types.Iterable})
	s.Define("range", types.FunctionType{Params: []types.Type{types.Integer, types.Integer}, Returns: types.Iterable})
}

// InstallValues defines print/log/list/range as callable RuntimeValues in
// s, for use as (or under) an Evaluator's initial Scope<RuntimeValue>.
// print and log write to w, the way go-mix's builtins write to an injected
// io.Writer rather than directly to os.Stdout.
func InstallValues(s *scope.Scope[value.RuntimeValue], w io.Writer) {
	s.Define("print", value.Function{Name: "print", Call: func(args []value.RuntimeValue) (value.RuntimeValue, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("print: expected 1 argument, got %d", len(args))
		}
		fmt.Fprintln(w, value.Stringify(args[0]))
		return value.Nil{}, nil
	}})
	s.Define("log", value.Function{Name: "log", Call: func(args []value.RuntimeValue) (value.RuntimeValue, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("log: expected 1 argument, got %d", len(args))
		}
		fmt.Fprintln(w, "[log] "+value.Stringify(args[0]))
		return value.Nil{}, nil
	}})
	s.Define("list", value.Function{Name: "list", Call: func(args []value.RuntimeValue) (value.RuntimeValue, error) {
		if len(args) != 0 {
			return nil, fmt.Errorf("list: expected 0 arguments, got %d", len(args))
		}
		return value.List{}, nil
	}})
	s.Define("range", value.Function{Name: "range", Call: rangeBuiltin})
}

// rangeBuiltin implements the half-open integer range spec.md §8's
// testable scenario 4 exercises (`range(1, 4)` yields `[1, 2, 3]`).
func rangeBuiltin(args []value.RuntimeValue) (value.RuntimeValue, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("range: expected 2 arguments, got %d", len(args))
	}
	from, ok := args[0].(value.Int)
	if !ok {
		return nil, fmt.Errorf("range: both arguments must be Integer, got %s", args[0].Type())
	}
	to, ok := args[1].(value.Int)
	if !ok {
		return nil, fmt.Errorf("range: both arguments must be Integer, got %s", args[1].Type())
	}
	var elements []value.RuntimeValue
	cursor := new(big.Int).Set(from.Value)
	one := big.NewInt(1)
	for cursor.Cmp(to.Value) < 0 {
		elements = append(elements, value.Int{Value: new(big.Int).Set(cursor)})
		cursor.Add(cursor, one)
	}
	return value.List{Elements: elements}, nil
}
