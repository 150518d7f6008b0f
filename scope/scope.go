/*
File   : mixi/scope/scope.go

Package scope implements the lexically nested name table shared by the
Analyzer (over types.Type) and the Evaluator (over value.RuntimeValue).
Grounded on go-mix/scope/scope.go's chain-walking Bind/LookUp/Assign shape,
generalized to a type parameter because spec.md requires literally the same
mechanism instantiated over two unrelated value kinds.
*/
package scope

// Scope is a mutable name->T table with an optional parent. Two lookup
// modes are exposed: Lookup walks the parent chain (spec.md's "inherited"
// lookup); LookupLocal is restricted to this scope's own bindings (the
// "current only" mode used to detect redeclaration).
type Scope[T any] struct {
	bindings map[string]T
	parent   *Scope[T]
}

// New creates a scope with the given parent (nil for a root scope).
func New[T any](parent *Scope[T]) *Scope[T] {
	return &Scope[T]{
		bindings: make(map[string]T),
		parent:   parent,
	}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope[T]) Parent() *Scope[T] {
	return s.parent
}

// Define adds a binding to this scope, shadowing any parent binding of the
// same name. Callers that must reject redeclaration check LookupLocal
// first (spec.md's Let/Def statement rules do exactly this).
func (s *Scope[T]) Define(name string, v T) {
	s.bindings[name] = v
}

// LookupLocal returns the binding for name restricted to this scope only,
// per spec.md §4.5's "current only" mode.
func (s *Scope[T]) LookupLocal(name string) (T, bool) {
	v, ok := s.bindings[name]
	return v, ok
}

// Lookup walks the parent chain and returns the nearest binding for name,
// per spec.md §4.5's "inherited" mode.
func (s *Scope[T]) Lookup(name string) (T, bool) {
	if v, ok := s.bindings[name]; ok {
		return v, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	var zero T
	return zero, false
}

// Set rebinds the nearest existing binding for name (found via inherited
// lookup) in place, and fails if no such binding exists anywhere in the
// chain. This is the mechanism behind variable assignment, as distinct
// from Define's declaration semantics.
func (s *Scope[T]) Set(name string, v T) bool {
	if _, ok := s.bindings[name]; ok {
		s.bindings[name] = v
		return true
	}
	if s.parent != nil {
		return s.parent.Set(name, v)
	}
	return false
}

// Names returns the names bound directly in this scope. Iteration order is
// not part of the contract (spec.md §4.5); this is for debugging/printing
// only.
func (s *Scope[T]) Names() []string {
	names := make([]string, 0, len(s.bindings))
	for n := range s.bindings {
		names = append(names, n)
	}
	return names
}
