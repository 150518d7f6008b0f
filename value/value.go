/*
File   : mixi/value/value.go

Package value defines RuntimeValue, the sum type the Evaluator produces and
consumes: boxed primitives (nil, bool, arbitrary-precision integer and
decimal, char, string, list), callables, and object instances. Grounded on
go-mix/objects/objects.go's GoMixObject interface (GetType/ToString/
ToObject) and concrete value structs, generalized to arbitrary-precision
numerics per spec.md §9.
*/
package value

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/akashmaji946/mixi/types"
)

// RuntimeValue is implemented by every runtime value. Type() reports a
// types.Kind: primitives reuse the types.Kind values directly and
// Function/Object report FUNCTION/OBJECT, so a RuntimeValue and its static
// Type agree on kind.
type RuntimeValue interface {
	Type() types.Kind
	// String returns the plain textual form used by string concatenation
	// and the "print" builtin (go-mix's ToString).
	String() string
	// Inspect returns a debug-oriented rendering (go-mix's ToObject).
	Inspect() string
}

// ---- Primitive values ----

// Nil is the single NIL value.
type Nil struct{}

func (Nil) Type() types.Kind  { return types.NIL }
func (Nil) String() string    { return "nil" }
func (Nil) Inspect() string   { return "<nil>" }

// Bool wraps a boolean.
type Bool struct{ Value bool }

func (b Bool) Type() types.Kind { return types.BOOLEAN }
func (b Bool) String() string   { return fmt.Sprintf("%t", b.Value) }
func (b Bool) Inspect() string  { return fmt.Sprintf("<bool %t>", b.Value) }

// Int wraps an arbitrary-precision integer.
type Int struct{ Value *big.Int }

func NewInt(i int64) Int { return Int{Value: big.NewInt(i)} }

func (i Int) Type() types.Kind { return types.INTEGER }
func (i Int) String() string   { return i.Value.String() }
func (i Int) Inspect() string  { return fmt.Sprintf("<int %s>", i.Value.String()) }

// Dec wraps an arbitrary-precision fixed-point decimal. Scale is the
// number of digits after the decimal point, tracked internally by
// decimal.Decimal's exponent.
type Dec struct{ Value decimal.Decimal }

func (d Dec) Type() types.Kind { return types.DECIMAL }
func (d Dec) String() string   { return d.Value.String() }
func (d Dec) Inspect() string  { return fmt.Sprintf("<decimal %s>", d.Value.String()) }

// Scale returns the number of digits after the decimal point, per
// spec.md §6 ("scale of a decimal literal equals the number of digits
// after its decimal point").
func (d Dec) Scale() int32 {
	return -d.Value.Exponent()
}

// Char wraps a single character literal.
type Char struct{ Value rune }

func (c Char) Type() types.Kind { return types.STRING } // comparable as a scalar, see the RuntimeValue note above
func (c Char) String() string   { return string(c.Value) }
func (c Char) Inspect() string  { return fmt.Sprintf("<char %q>", c.Value) }

// Str wraps a string value.
type Str struct{ Value string }

func (s Str) Type() types.Kind { return types.STRING }
func (s Str) String() string   { return s.Value }
func (s Str) Inspect() string  { return fmt.Sprintf("<string %q>", s.Value) }

// List wraps an ordered collection of RuntimeValues — the runtime shape
// ITERABLE protocols (spec.md's "for" loops, the "range"/"list" builtins)
// produce and consume.
type List struct{ Elements []RuntimeValue }

func (l List) Type() types.Kind { return types.ITERABLE }

func (l List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

func (l List) Inspect() string {
	var b strings.Builder
	b.WriteString("<list [")
	for i, e := range l.Elements {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.Inspect())
	}
	b.WriteString("]>")
	return b.String()
}

// ---- Callables ----

// Callable is the signature every invocable RuntimeValue implements:
// evaluated arguments in, a result or an error out. Both user-defined
// functions/methods and stdlib builtins satisfy it.
type Callable func(args []RuntimeValue) (RuntimeValue, error)

// Function is a named callable value (spec.md §3's "Function(name,
// callable)").
type Function struct {
	Name string
	Call Callable
}

func (f Function) Type() types.Kind { return types.FUNCTION }
func (f Function) String() string   { return fmt.Sprintf("func(%s)", f.Name) }
func (f Function) Inspect() string  { return fmt.Sprintf("<func %s>", f.Name) }

// ---- Objects ----

// ObjectValue is a struct/object literal instance: an optional name and
// its own parentless member Scope, per spec.md §3 ("Object types/values
// each own a dedicated Scope with no parent"). Scope is the ValueScope
// interface declared below — any comparable handle whose identity
// defines object equality; concretely it is always a
// *scope.Scope[value.RuntimeValue].
type ObjectValue struct {
	Name  string
	Scope ValueScope
}

// ValueScope is the minimal surface ObjectValue needs from a
// *scope.Scope[RuntimeValue]: member lookup/mutation by name, and a stable
// identity for equality. Declared as an interface here (rather than
// importing package scope directly) only to keep value's public API
// expressed in its own vocabulary; *scope.Scope[value.RuntimeValue]
// satisfies it structurally, with no import of package scope and no
// cycle.
type ValueScope interface {
	Lookup(name string) (RuntimeValue, bool)
	Set(name string, v RuntimeValue) bool
	Define(name string, v RuntimeValue)
}

func (o ObjectValue) Type() types.Kind { return types.OBJECT }

func (o ObjectValue) String() string {
	if o.Name != "" {
		return fmt.Sprintf("object(%s)", o.Name)
	}
	return "object(anonymous)"
}

func (o ObjectValue) Inspect() string {
	return fmt.Sprintf("<%s>", o.String())
}

// SameObject reports whether two ObjectValues are the same instance, per
// spec.md's "reference equality of their scope" equality rule for "==".
func SameObject(a, b ObjectValue) bool {
	return a.Scope == b.Scope
}

// Stringify renders any RuntimeValue the way the "+" operator does when
// one operand is a String (spec.md §4.4): NIL becomes the literal "NIL".
func Stringify(v RuntimeValue) string {
	if _, ok := v.(Nil); ok {
		return "NIL"
	}
	return v.String()
}
