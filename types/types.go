/*
File   : mixi/types/types.go

Package types defines the small type algebra the Analyzer checks and the
Evaluator's values ultimately conform to: nine primitive/abstract types plus
two structural type families, Function and Object, joined by a subtype
lattice.
*/
package types

import "fmt"

// Kind identifies which member of the type algebra a Type value is.
type Kind string

const (
	NIL        Kind = "Nil"
	BOOLEAN    Kind = "Boolean"
	INTEGER    Kind = "Integer"
	DECIMAL    Kind = "Decimal"
	STRING     Kind = "String"
	ANY        Kind = "Any"
	EQUATABLE  Kind = "Equatable"
	COMPARABLE Kind = "Comparable"
	ITERABLE   Kind = "Iterable"
	FUNCTION   Kind = "Function"
	OBJECT     Kind = "Object"
)

// Type is the interface every member of the algebra implements. Primitive
// and abstract kinds are values of PrimitiveType; Function and Object carry
// extra structure.
type Type interface {
	Kind() Kind
	String() string
}

// PrimitiveType is every member of the algebra that isn't Function or
// Object: NIL, BOOLEAN, INTEGER, DECIMAL, STRING, ANY, EQUATABLE,
// COMPARABLE, ITERABLE.
type PrimitiveType struct {
	kind Kind
}

func (p PrimitiveType) Kind() Kind    { return p.kind }
func (p PrimitiveType) String() string { return string(p.kind) }

var (
	Nil        Type = PrimitiveType{NIL}
	Boolean    Type = PrimitiveType{BOOLEAN}
	Integer    Type = PrimitiveType{INTEGER}
	Decimal    Type = PrimitiveType{DECIMAL}
	String     Type = PrimitiveType{STRING}
	Any        Type = PrimitiveType{ANY}
	Equatable  Type = PrimitiveType{EQUATABLE}
	Comparable Type = PrimitiveType{COMPARABLE}
	Iterable   Type = PrimitiveType{ITERABLE}
)

// FunctionType describes a callable's parameter types and return type.
// Two FunctionTypes are structurally equal when their parameter lists and
// return types are, field by field (spec.md §3).
type FunctionType struct {
	Params  []Type
	Returns Type
}

func (f FunctionType) Kind() Kind { return FUNCTION }

func (f FunctionType) String() string {
	s := "Function("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + f.Returns.String()
}

// ObjectType is the typed half of an OBJECT value's shape: the scope that
// holds its field and method types. Two ObjectTypes are compared by
// identity of the Scope pointer (spec.md §3) — an object's type is "the
// object it was built from," not a structural record of field names.
type ObjectType struct {
	Name  string // optional; "" if the object literal had no name
	Scope ObjectScope
}

// ObjectScope is the minimal view the types package needs of an object's
// member table; the analyzer's object scope (a *scope.Scope[types.Type]
// with no parent) satisfies it. Kept as an interface here so types has no import
// dependency on scope.
type ObjectScope interface {
	Lookup(name string) (Type, bool)
}

func (o ObjectType) Kind() Kind { return OBJECT }

func (o ObjectType) String() string {
	if o.Name != "" {
		return "Object(" + o.Name + ")"
	}
	return "Object(anonymous)"
}

// SameObjectScope reports whether two ObjectTypes were built from the same
// underlying scope (reference identity), per spec.md §3's Object-type
// equality rule.
func SameObjectScope(a, b ObjectType) bool {
	return a.Scope == b.Scope
}

// IsSubtype reports whether tau <= sigma under the lattice of spec.md §3:
//
//	- ANY is top: every type <= ANY.
//	- EQUATABLE: NIL, ITERABLE, and every subtype of COMPARABLE are <= EQUATABLE.
//	- COMPARABLE: BOOLEAN, INTEGER, DECIMAL, STRING are <= COMPARABLE.
//	- Otherwise tau <= sigma iff tau == sigma (structural equality for
//	  Function/Object, reference equality of the Object's Scope).
func IsSubtype(tau, sigma Type) bool {
	if sigma.Kind() == ANY {
		return true
	}
	if tau.Kind() == sigma.Kind() && tau.Kind() != FUNCTION && tau.Kind() != OBJECT {
		return true
	}
	switch sigma.Kind() {
	case COMPARABLE:
		return isComparable(tau.Kind())
	case EQUATABLE:
		return tau.Kind() == NIL || tau.Kind() == ITERABLE || IsSubtype(tau, Comparable)
	}
	switch tau.Kind() {
	case FUNCTION:
		tf, ok1 := tau.(FunctionType)
		sf, ok2 := sigma.(FunctionType)
		return ok1 && ok2 && sameFunctionShape(tf, sf)
	case OBJECT:
		to, ok1 := tau.(ObjectType)
		so, ok2 := sigma.(ObjectType)
		return ok1 && ok2 && SameObjectScope(to, so)
	}
	return false
}

func isComparable(k Kind) bool {
	switch k {
	case BOOLEAN, INTEGER, DECIMAL, STRING:
		return true
	default:
		return false
	}
}

func sameFunctionShape(a, b FunctionType) bool {
	if len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i].Kind() != b.Params[i].Kind() {
			return false
		}
	}
	return a.Returns.Kind() == b.Returns.Kind()
}

// Registry is the process-wide name->Type mapping spec.md §6 requires the
// Analyzer to consult when resolving a declared-type identifier
// ("LET x: Integer = 1;"). It is seeded with every primitive/abstract type
// at package init and can be extended by a host program registering
// Object/Function types under user-visible names.
type Registry struct {
	named map[string]Type
}

// NewRegistry returns a Registry pre-populated with the primitive and
// abstract types spec.md §3/§6 require ("must contain at least the
// primitive and abstract types listed").
func NewRegistry() *Registry {
	r := &Registry{named: make(map[string]Type)}
	r.Define("Nil", Nil)
	r.Define("Boolean", Boolean)
	r.Define("Integer", Integer)
	r.Define("Decimal", Decimal)
	r.Define("String", String)
	r.Define("Any", Any)
	r.Define("Equatable", Equatable)
	r.Define("Comparable", Comparable)
	r.Define("Iterable", Iterable)
	return r
}

// Define registers (or overwrites) a name in the registry.
func (r *Registry) Define(name string, t Type) {
	r.named[name] = t
}

// Resolve looks up a type by its declared name, as used in ": Integer"
// style annotations.
func (r *Registry) Resolve(name string) (Type, bool) {
	t, ok := r.named[name]
	return t, ok
}

// Has reports whether name collides with a registered type name — used by
// the Analyzer to reject an OBJECT literal whose name shadows a built-in
// type (spec.md §4.3).
func (r *Registry) Has(name string) bool {
	_, ok := r.named[name]
	return ok
}

// TYPES is the default process-wide registry spec.md §6 refers to as
// "TYPES". Host programs may Define additional names on it before running
// the Analyzer.
var TYPES = NewRegistry()

// MustResolve is a convenience wrapper for callers (tests, the stdlib
// populator) that know the name is registered.
func MustResolve(name string) Type {
	t, ok := TYPES.Resolve(name)
	if !ok {
		panic(fmt.Sprintf("types: unregistered type name %q", name))
	}
	return t
}
