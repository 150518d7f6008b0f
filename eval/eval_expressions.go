package eval

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/value"
)

func (e *evaluator) evalExpr(expr ast.Expr) (value.RuntimeValue, error) {
	switch ex := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(ex)
	case *ast.Group:
		return e.evalExpr(ex.Inner)
	case *ast.Binary:
		return e.evalBinary(ex)
	case *ast.Variable:
		return e.evalVariable(ex)
	case *ast.Property:
		return e.evalProperty(ex)
	case *ast.Function:
		return e.evalFunctionCall(ex)
	case *ast.Method:
		return e.evalMethodCall(ex)
	case *ast.ObjectExpr:
		return e.evalObjectExpr(ex)
	default:
		return nil, newEvalError("unrecognized expression node")
	}
}

// evalLiteral wraps the Parser's decoded literal value as the matching
// RuntimeValue.
func (e *evaluator) evalLiteral(ex *ast.Literal) (value.RuntimeValue, error) {
	switch v := ex.Value.(type) {
	case nil:
		return value.Nil{}, nil
	case bool:
		return value.Bool{Value: v}, nil
	case *big.Int:
		return value.Int{Value: v}, nil
	case decimal.Decimal:
		return value.Dec{Value: v}, nil
	case rune:
		return value.Char{Value: v}, nil
	case string:
		return value.Str{Value: v}, nil
	default:
		return nil, newEvalError("literal holds an unrecognized value type")
	}
}

func (e *evaluator) evalVariable(ex *ast.Variable) (value.RuntimeValue, error) {
	v, ok := e.scope.Lookup(ex.Name)
	if !ok {
		return nil, newEvalError("undefined variable %q", ex.Name)
	}
	return v, nil
}

func (e *evaluator) evalProperty(ex *ast.Property) (value.RuntimeValue, error) {
	receiver, err := e.evalExpr(ex.Receiver)
	if err != nil {
		return nil, err
	}
	obj, ok := receiver.(value.ObjectValue)
	if !ok {
		return nil, newEvalError("property access requires an object, got %s", receiver.Type())
	}
	v, ok := obj.Scope.Lookup(ex.Name)
	if !ok {
		return nil, newEvalError("object has no member %q", ex.Name)
	}
	return v, nil
}

func (e *evaluator) evalFunctionCall(ex *ast.Function) (value.RuntimeValue, error) {
	callee, ok := e.scope.Lookup(ex.Name)
	if !ok {
		return nil, newEvalError("undefined function %q", ex.Name)
	}
	fn, ok := callee.(value.Function)
	if !ok {
		return nil, newEvalError("%q is not callable", ex.Name)
	}
	args, err := e.evalArgsLeftToRight(ex.Args)
	if err != nil {
		return nil, err
	}
	return fn.Call(args)
}

func (e *evaluator) evalMethodCall(ex *ast.Method) (value.RuntimeValue, error) {
	receiver, err := e.evalExpr(ex.Receiver)
	if err != nil {
		return nil, err
	}
	obj, ok := receiver.(value.ObjectValue)
	if !ok {
		return nil, newEvalError("method call requires an object receiver, got %s", receiver.Type())
	}
	method, ok := obj.Scope.Lookup(ex.Name)
	if !ok {
		return nil, newEvalError("object has no method %q", ex.Name)
	}
	fn, ok := method.(value.Function)
	if !ok {
		return nil, newEvalError("%q is not a method", ex.Name)
	}
	args, err := e.evalArgsLeftToRight(ex.Args)
	if err != nil {
		return nil, err
	}
	callArgs := make([]value.RuntimeValue, 0, len(args)+1)
	callArgs = append(callArgs, receiver)
	callArgs = append(callArgs, args...)
	return fn.Call(callArgs)
}

// evalArgsLeftToRight evaluates a call's argument expressions strictly
// left-to-right (spec.md §5's ordering guarantee).
func (e *evaluator) evalArgsLeftToRight(argExprs []ast.Expr) ([]value.RuntimeValue, error) {
	args := make([]value.RuntimeValue, len(argExprs))
	for i, argExpr := range argExprs {
		v, err := e.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalObjectExpr builds a fresh object scope, defines each field
// (evaluating its initializer in the enclosing scope, not the object
// scope) and each method (as a Function bound to this object scope), per
// spec.md §4.4's ObjectExpr rule.
func (e *evaluator) evalObjectExpr(ex *ast.ObjectExpr) (value.RuntimeValue, error) {
	objScope := scope.New[value.RuntimeValue](nil)

	for _, field := range ex.Fields {
		if _, ok := objScope.LookupLocal(field.Name); ok {
			return nil, newEvalError("duplicate field name %q", field.Name)
		}
		var v value.RuntimeValue = value.Nil{}
		if field.Value != nil {
			val, err := e.evalExpr(field.Value)
			if err != nil {
				return nil, err
			}
			v = val
		}
		objScope.Define(field.Name, v)
	}

	for _, method := range ex.Methods {
		if _, ok := objScope.LookupLocal(method.Name); ok {
			return nil, newEvalError("%q collides with a field or prior method", method.Name)
		}
		objScope.Define(method.Name, e.buildMethodCallable(method, objScope))
	}

	return value.ObjectValue{Name: ex.Name, Scope: objScope}, nil
}

// buildMethodCallable constructs the Function value for one OBJECT method:
// its callable validates arity (parameters + 1, the leading "this"), binds
// "this" and the parameters in a child of the object scope, runs the body
// with full Return handling, and restores the enclosing scope on every
// exit path via defer.
func (e *evaluator) buildMethodCallable(method *ast.Def, objScope *scope.Scope[value.RuntimeValue]) value.Function {
	params := method.Params
	body := method.Body
	name := method.Name
	return value.Function{Name: name, Call: func(args []value.RuntimeValue) (value.RuntimeValue, error) {
		if len(args) != len(params)+1 {
			return nil, newEvalError("%s: expected %d argument(s), got %d", name, len(params), len(args)-1)
		}
		restore := e.pushScopeOn(objScope)
		defer restore()
		e.scope.Define("this", args[0])
		for i, p := range params {
			e.scope.Define(p.Name, args[i+1])
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
}
