package eval

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/value"
)

// evalStmt runs one statement and reports its value (used when it is the
// last statement of a block), any raised non-local Return, or an error.
func (e *evaluator) evalStmt(stmt ast.Stmt) (value.RuntimeValue, *returnSignal, error) {
	switch s := stmt.(type) {
	case *ast.Let:
		return e.evalLet(s)
	case *ast.Def:
		return e.evalDef(s)
	case *ast.If:
		return e.evalIf(s)
	case *ast.For:
		return e.evalFor(s)
	case *ast.Return:
		return e.evalReturn(s)
	case *ast.Expression:
		v, err := e.evalExpr(s.Value)
		if err != nil {
			return nil, nil, err
		}
		return v, nil, nil
	case *ast.Assignment:
		return e.evalAssignment(s)
	default:
		return nil, nil, newEvalError("unrecognized statement node")
	}
}

// evalLet: error if name already bound in the current scope; define with
// the evaluated initializer or NIL.
func (e *evaluator) evalLet(s *ast.Let) (value.RuntimeValue, *returnSignal, error) {
	if _, ok := e.scope.LookupLocal(s.Name); ok {
		return nil, nil, newEvalError("%q is already declared in this scope", s.Name)
	}
	var v value.RuntimeValue = value.Nil{}
	if s.Value != nil {
		val, err := e.evalExpr(s.Value)
		if err != nil {
			return nil, nil, err
		}
		v = val
	}
	e.scope.Define(s.Name, v)
	return value.Nil{}, nil, nil
}

// evalDef constructs a callable closing over the scope it is defined in
// (captured once, here, not re-read from e.scope at call time) and defines
// it under its name in the current scope.
func (e *evaluator) evalDef(s *ast.Def) (value.RuntimeValue, *returnSignal, error) {
	if _, ok := e.scope.LookupLocal(s.Name); ok {
		return nil, nil, newEvalError("%q is already declared in this scope", s.Name)
	}
	seen := map[string]bool{}
	for _, p := range s.Params {
		if seen[p.Name] {
			return nil, nil, newEvalError("duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = true
	}
	captured := e.scope
	params := s.Params
	body := s.Body
	name := s.Name

	fn := value.Function{Name: name, Call: func(args []value.RuntimeValue) (value.RuntimeValue, error) {
		if len(args) != len(params) {
			return nil, newEvalError("%s: expected %d argument(s), got %d", name, len(params), len(args))
		}
		restore := e.pushScopeOn(captured)
		defer restore()
		for i, p := range params {
			e.scope.Define(p.Name, args[i])
		}
		_, ret, err := e.evalBlock(body)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret.Value, nil
		}
		return value.Nil{}, nil
	}}
	e.scope.Define(name, fn)
	return value.Nil{}, nil, nil
}

// evalIf evaluates the condition, requires BOOLEAN, and runs the taken
// branch in a fresh child scope; its value is that branch's last statement
// value, or NIL if the branch is empty/absent.
func (e *evaluator) evalIf(s *ast.If) (value.RuntimeValue, *returnSignal, error) {
	cond, err := e.evalExpr(s.Cond)
	if err != nil {
		return nil, nil, err
	}
	b, ok := cond.(value.Bool)
	if !ok {
		return nil, nil, newEvalError("IF condition must be Boolean, got %s", cond.Type())
	}
	if b.Value {
		return e.runBlockInChildScope(s.Then)
	}
	if s.Else != nil {
		return e.runBlockInChildScope(s.Else)
	}
	return value.Nil{}, nil, nil
}

// evalFor evaluates the iterable (must be a List), then for each element
// runs the body in a fresh child scope with the loop variable bound. A
// Return raised inside the body stops iteration and propagates immediately.
func (e *evaluator) evalFor(s *ast.For) (value.RuntimeValue, *returnSignal, error) {
	iter, err := e.evalExpr(s.Iterable)
	if err != nil {
		return nil, nil, err
	}
	list, ok := iter.(value.List)
	if !ok {
		return nil, nil, newEvalError("FOR iterable must be a list, got %s", iter.Type())
	}
	for _, elem := range list.Elements {
		ret, err := e.runForIteration(s.Name, elem, s.Body)
		if err != nil {
			return nil, nil, err
		}
		if ret != nil {
			return nil, ret, nil
		}
	}
	return value.Nil{}, nil, nil
}

func (e *evaluator) runForIteration(name string, elem value.RuntimeValue, body []ast.Stmt) (*returnSignal, error) {
	restore := e.pushScope()
	defer restore()
	e.scope.Define(name, elem)
	_, ret, err := e.evalBlock(body)
	return ret, err
}

// evalReturn raises the non-local control transfer carrying the evaluated
// value (or NIL if absent).
func (e *evaluator) evalReturn(s *ast.Return) (value.RuntimeValue, *returnSignal, error) {
	var v value.RuntimeValue = value.Nil{}
	if s.Value != nil {
		val, err := e.evalExpr(s.Value)
		if err != nil {
			return nil, nil, err
		}
		v = val
	}
	return nil, &returnSignal{Value: v}, nil
}

// evalAssignment: Variable must already be bound somewhere in the scope
// chain; Property requires the receiver to be an ObjectValue whose field
// already exists.
func (e *evaluator) evalAssignment(s *ast.Assignment) (value.RuntimeValue, *returnSignal, error) {
	val, err := e.evalExpr(s.Value)
	if err != nil {
		return nil, nil, err
	}
	switch target := s.Target.(type) {
	case *ast.Variable:
		if !e.scope.Set(target.Name, val) {
			return nil, nil, newEvalError("undefined variable %q", target.Name)
		}
		return value.Nil{}, nil, nil
	case *ast.Property:
		receiver, err := e.evalExpr(target.Receiver)
		if err != nil {
			return nil, nil, err
		}
		obj, ok := receiver.(value.ObjectValue)
		if !ok {
			return nil, nil, newEvalError("property assignment target must be an object, got %s", receiver.Type())
		}
		if !obj.Scope.Set(target.Name, val) {
			return nil, nil, newEvalError("object has no field %q", target.Name)
		}
		return value.Nil{}, nil, nil
	default:
		return nil, nil, newEvalError("assignment target must be a variable or property")
	}
}
