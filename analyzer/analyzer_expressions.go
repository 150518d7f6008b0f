package analyzer

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/ir"
	"github.com/akashmaji946/mixi/scope"
	"github.com/akashmaji946/mixi/types"
)

func (a *analyzer) analyzeExpr(expr ast.Expr) (ir.Expr, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return a.analyzeLiteral(e)
	case *ast.Group:
		inner, err := a.analyzeExpr(e.Inner)
		if err != nil {
			return nil, err
		}
		return &ir.Group{Inner: inner}, nil
	case *ast.Binary:
		return a.analyzeBinary(e)
	case *ast.Variable:
		return a.analyzeVariable(e)
	case *ast.Property:
		return a.analyzeProperty(e)
	case *ast.Function:
		return a.analyzeFunctionCall(e)
	case *ast.Method:
		return a.analyzeMethodCall(e)
	case *ast.ObjectExpr:
		return a.analyzeObjectExpr(e)
	default:
		return nil, newAnalyzeError("unrecognized expression node")
	}
}

// analyzeLiteral: "type follows the boxed value" (spec.md §4.3).
func (a *analyzer) analyzeLiteral(e *ast.Literal) (*ir.Literal, error) {
	var t types.Type
	switch e.Value.(type) {
	case nil:
		t = types.Nil
	case bool:
		t = types.Boolean
	case *big.Int:
		t = types.Integer
	case decimal.Decimal:
		t = types.Decimal
	case rune:
		t = types.String
	case string:
		t = types.String
	default:
		return nil, newAnalyzeError("literal holds an unrecognized value type")
	}
	return &ir.Literal{Value: e.Value, Typ: t}, nil
}

func isNumeric(k types.Kind) bool { return k == types.INTEGER || k == types.DECIMAL }

// analyzeBinary implements the per-operator rules of spec.md §4.3.
func (a *analyzer) analyzeBinary(e *ast.Binary) (*ir.Binary, error) {
	left, err := a.analyzeExpr(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := a.analyzeExpr(e.Right)
	if err != nil {
		return nil, err
	}
	lt, rt := left.Type(), right.Type()

	var result types.Type
	switch e.Op {
	case "+":
		if lt.Kind() == types.STRING || rt.Kind() == types.STRING {
			result = types.String
		} else if isNumeric(lt.Kind()) && isNumeric(rt.Kind()) && lt.Kind() == rt.Kind() {
			result = lt
		} else {
			return nil, newAnalyzeError("operands to '+' must both be numeric of the same type, or either a String; got %s and %s", lt, rt)
		}
	case "-", "*", "/":
		if !isNumeric(lt.Kind()) || !isNumeric(rt.Kind()) || lt.Kind() != rt.Kind() {
			return nil, newAnalyzeError("operands to %q must be the same numeric type; got %s and %s", e.Op, lt, rt)
		}
		result = lt
	case "<", "<=", ">", ">=":
		if !types.IsSubtype(lt, types.Comparable) {
			return nil, newAnalyzeError("left operand of %q must be Comparable, got %s", e.Op, lt)
		}
		if lt.Kind() != rt.Kind() {
			return nil, newAnalyzeError("operands to %q must be the same type; got %s and %s", e.Op, lt, rt)
		}
		result = types.Boolean
	case "==", "!=":
		if !types.IsSubtype(lt, types.Equatable) || !types.IsSubtype(rt, types.Equatable) {
			return nil, newAnalyzeError("operands to %q must be Equatable; got %s and %s", e.Op, lt, rt)
		}
		result = types.Boolean
	case "AND", "OR":
		if !types.IsSubtype(lt, types.Boolean) || !types.IsSubtype(rt, types.Boolean) {
			return nil, newAnalyzeError("operands to %q must be Boolean; got %s and %s", e.Op, lt, rt)
		}
		result = types.Boolean
	default:
		return nil, newAnalyzeError("unrecognized binary operator %q", e.Op)
	}
	return &ir.Binary{Op: e.Op, Left: left, Right: right, Typ: result}, nil
}

// analyzeVariable implements spec.md §4.3's "use this.name" rule: a bare
// name that shadows an object member of an in-scope "this" without being
// itself a current-scope local is rejected.
func (a *analyzer) analyzeVariable(e *ast.Variable) (*ir.Variable, error) {
	if thisType, ok := a.scope.Lookup(thisName); ok {
		if objType, ok := thisType.(types.ObjectType); ok {
			if _, isMember := objType.Scope.Lookup(e.Name); isMember {
				if _, isLocal := a.scope.LookupLocal(e.Name); !isLocal {
					return nil, newAnalyzeError("%q is a member of the enclosing object; use this.%s", e.Name, e.Name)
				}
			}
		}
	}
	t, ok := a.scope.Lookup(e.Name)
	if !ok {
		return nil, newAnalyzeError("undefined variable %q", e.Name)
	}
	return &ir.Variable{Name: e.Name, Typ: t}, nil
}

func (a *analyzer) analyzeProperty(e *ast.Property) (*ir.Property, error) {
	receiver, err := a.analyzeExpr(e.Receiver)
	if err != nil {
		return nil, err
	}
	objType, ok := receiver.Type().(types.ObjectType)
	if !ok {
		return nil, newAnalyzeError("property access requires an Object, got %s", receiver.Type())
	}
	memberType, ok := objType.Scope.Lookup(e.Name)
	if !ok {
		return nil, newAnalyzeError("object has no member %q", e.Name)
	}
	return &ir.Property{Receiver: receiver, Name: e.Name, Typ: memberType}, nil
}

func (a *analyzer) analyzeFunctionCall(e *ast.Function) (*ir.Function, error) {
	calleeType, ok := a.scope.Lookup(e.Name)
	if !ok {
		return nil, newAnalyzeError("undefined function %q", e.Name)
	}
	fn, ok := calleeType.(types.FunctionType)
	if !ok {
		return nil, newAnalyzeError("%q is not a function", e.Name)
	}
	args, err := a.analyzeArgs(e.Args, fn.Params)
	if err != nil {
		return nil, err
	}
	return &ir.Function{Name: e.Name, Args: args, Typ: fn.Returns}, nil
}

func (a *analyzer) analyzeMethodCall(e *ast.Method) (*ir.Method, error) {
	receiver, err := a.analyzeExpr(e.Receiver)
	if err != nil {
		return nil, err
	}
	objType, ok := receiver.Type().(types.ObjectType)
	if !ok {
		return nil, newAnalyzeError("method call requires an Object receiver, got %s", receiver.Type())
	}
	methodType, ok := objType.Scope.Lookup(e.Name)
	if !ok {
		return nil, newAnalyzeError("object has no method %q", e.Name)
	}
	fn, ok := methodType.(types.FunctionType)
	if !ok {
		return nil, newAnalyzeError("%q is not a method", e.Name)
	}
	args, err := a.analyzeArgs(e.Args, fn.Params)
	if err != nil {
		return nil, err
	}
	return &ir.Method{Receiver: receiver, Name: e.Name, Args: args, Typ: fn.Returns}, nil
}

// analyzeArgs type-checks a call's argument list against a callee's
// declared parameter types: arity must match and each argument's type
// must be a subtype of the corresponding parameter type. params excludes
// any implicit receiver — callers pass the user-visible parameter list.
func (a *analyzer) analyzeArgs(argExprs []ast.Expr, params []types.Type) ([]ir.Expr, error) {
	if len(argExprs) != len(params) {
		return nil, newAnalyzeError("expected %d argument(s), got %d", len(params), len(argExprs))
	}
	args := make([]ir.Expr, len(argExprs))
	for i, argExpr := range argExprs {
		arg, err := a.analyzeExpr(argExpr)
		if err != nil {
			return nil, err
		}
		if !types.IsSubtype(arg.Type(), params[i]) {
			return nil, newAnalyzeError("argument %d has type %s, expected %s", i+1, arg.Type(), params[i])
		}
		args[i] = arg
	}
	return args, nil
}

// analyzeObjectExpr implements spec.md §4.3's ObjectExpr rule: a fresh
// parentless object scope, fields analyzed against the enclosing scope
// but defined into the object scope, methods defined in a first pass
// (for mutual/self reference) and their bodies analyzed in a second pass
// under a scope that extends the object scope and binds "this".
func (a *analyzer) analyzeObjectExpr(e *ast.ObjectExpr) (*ir.ObjectExpr, error) {
	if e.Name != "" && types.TYPES.Has(e.Name) {
		return nil, newAnalyzeError("object name %q collides with a built-in type", e.Name)
	}
	objScope := scope.New[types.Type](nil)
	objType := types.ObjectType{Name: e.Name, Scope: objScope}

	irFields := make([]*ir.Let, 0, len(e.Fields))
	for _, field := range e.Fields {
		if _, ok := objScope.LookupLocal(field.Name); ok {
			return nil, newAnalyzeError("duplicate field name %q", field.Name)
		}
		var valueIR ir.Expr
		if field.Value != nil {
			v, err := a.analyzeExpr(field.Value)
			if err != nil {
				return nil, err
			}
			valueIR = v
		}
		resolved, err := a.resolveType(field.DeclaredType, valueIR)
		if err != nil {
			return nil, err
		}
		objScope.Define(field.Name, resolved)
		irFields = append(irFields, &ir.Let{Name: field.Name, DeclaredType: resolved, Value: valueIR})
	}

	funcTypes := make([]types.FunctionType, len(e.Methods))
	for i, method := range e.Methods {
		if _, ok := objScope.LookupLocal(method.Name); ok {
			return nil, newAnalyzeError("%q collides with a field or prior method", method.Name)
		}
		paramTypes := make([]types.Type, len(method.Params))
		for j, p := range method.Params {
			t, err := a.resolveType(p.DeclaredType, nil)
			if err != nil {
				return nil, err
			}
			paramTypes[j] = t
		}
		returnType, err := a.resolveType(method.ReturnType, nil)
		if err != nil {
			return nil, err
		}
		funcTypes[i] = types.FunctionType{Params: paramTypes, Returns: returnType}
		objScope.Define(method.Name, funcTypes[i])
	}

	irMethods := make([]*ir.Def, len(e.Methods))
	for i, method := range e.Methods {
		funcType := funcTypes[i]
		irParams := make([]ir.Param, len(method.Params))
		for j, p := range method.Params {
			irParams[j] = ir.Param{Name: p.Name, Type: funcType.Params[j]}
		}

		body, err := func() ([]ir.Stmt, error) {
			restore := a.pushScopeOn(objScope)
			defer restore()
			a.scope.Define(thisName, objType)
			for _, p := range irParams {
				a.scope.Define(p.Name, p.Type)
			}
			a.scope.Define(returnsSentinel, funcType.Returns)
			return a.analyzeBlock(method.Body)
		}()
		if err != nil {
			return nil, err
		}
		irMethods[i] = &ir.Def{Name: method.Name, Params: irParams, Returns: funcType.Returns, FuncType: funcType, Body: body}
	}

	return &ir.ObjectExpr{Name: e.Name, Fields: irFields, Methods: irMethods, Typ: objType}, nil
}
