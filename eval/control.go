package eval

import "github.com/akashmaji946/mixi/value"

// returnSignal is the non-local control transfer spec.md §4.4's "Return"
// rule describes: a distinguished value carried alongside (not instead of)
// the normal (value, error) result of statement evaluation, so a raised
// Return can be told apart from an ordinary computed value without
// resorting to panic/recover. evalStmt and evalBlock thread it as a third
// return value; every block-running call site (If branch, For body, Def
// and method bodies) checks it immediately after each statement and stops
// the block early when it is non-nil, propagating it to its own caller
// unless that caller is the function-call boundary that should consume it.
type returnSignal struct {
	Value value.RuntimeValue
}
