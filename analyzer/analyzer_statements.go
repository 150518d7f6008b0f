package analyzer

import (
	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/ir"
	"github.com/akashmaji946/mixi/types"
)

func (a *analyzer) analyzeStmt(stmt ast.Stmt) (ir.Stmt, error) {
	switch s := stmt.(type) {
	case *ast.Let:
		return a.analyzeLet(s)
	case *ast.Def:
		return a.analyzeDef(s)
	case *ast.If:
		return a.analyzeIf(s)
	case *ast.For:
		return a.analyzeFor(s)
	case *ast.Return:
		return a.analyzeReturn(s)
	case *ast.Expression:
		value, err := a.analyzeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		return &ir.Expression{Value: value}, nil
	case *ast.Assignment:
		return a.analyzeAssignment(s)
	default:
		return nil, newAnalyzeError("unrecognized statement node")
	}
}

func (a *analyzer) analyzeBlock(stmts []ast.Stmt) ([]ir.Stmt, error) {
	var out []ir.Stmt
	for _, s := range stmts {
		irStmt, err := a.analyzeStmt(s)
		if err != nil {
			return nil, err
		}
		out = append(out, irStmt)
	}
	return out, nil
}

// analyzeLet: name must not exist in the current scope; analyze the
// initializer first; declared type resolved against it; define in scope.
func (a *analyzer) analyzeLet(s *ast.Let) (*ir.Let, error) {
	if _, ok := a.scope.LookupLocal(s.Name); ok {
		return nil, newAnalyzeError("%q is already declared in this scope", s.Name)
	}
	var valueIR ir.Expr
	if s.Value != nil {
		v, err := a.analyzeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		valueIR = v
	}
	resolved, err := a.resolveType(s.DeclaredType, valueIR)
	if err != nil {
		return nil, err
	}
	a.scope.Define(s.Name, resolved)
	return &ir.Let{Name: s.Name, DeclaredType: resolved, Value: valueIR}, nil
}

// analyzeDef: defines the function's type in the enclosing scope before
// analyzing its body (so recursive self-reference resolves), per
// spec.md §4.3.
func (a *analyzer) analyzeDef(s *ast.Def) (*ir.Def, error) {
	if _, ok := a.scope.LookupLocal(s.Name); ok {
		return nil, newAnalyzeError("%q is already declared in this scope", s.Name)
	}
	seen := map[string]bool{}
	for _, p := range s.Params {
		if seen[p.Name] {
			return nil, newAnalyzeError("duplicate parameter name %q", p.Name)
		}
		seen[p.Name] = true
	}

	paramTypes := make([]types.Type, len(s.Params))
	irParams := make([]ir.Param, len(s.Params))
	for i, p := range s.Params {
		t, err := a.resolveType(p.DeclaredType, nil)
		if err != nil {
			return nil, err
		}
		paramTypes[i] = t
		irParams[i] = ir.Param{Name: p.Name, Type: t}
	}
	returnType, err := a.resolveType(s.ReturnType, nil)
	if err != nil {
		return nil, err
	}
	funcType := types.FunctionType{Params: paramTypes, Returns: returnType}
	a.scope.Define(s.Name, funcType)

	restore := a.pushScope()
	defer restore()
	for _, p := range irParams {
		a.scope.Define(p.Name, p.Type)
	}
	a.scope.Define(returnsSentinel, returnType)

	body, err := a.analyzeBlock(s.Body)
	if err != nil {
		return nil, err
	}
	return &ir.Def{Name: s.Name, Params: irParams, Returns: returnType, FuncType: funcType, Body: body}, nil
}

// analyzeIf: condition must be a subtype of BOOLEAN; then/else each in a
// fresh child scope.
func (a *analyzer) analyzeIf(s *ast.If) (*ir.If, error) {
	cond, err := a.analyzeExpr(s.Cond)
	if err != nil {
		return nil, err
	}
	if !types.IsSubtype(cond.Type(), types.Boolean) {
		return nil, newAnalyzeError("IF condition must be Boolean, got %s", cond.Type())
	}

	then, err := func() ([]ir.Stmt, error) {
		restore := a.pushScope()
		defer restore()
		return a.analyzeBlock(s.Then)
	}()
	if err != nil {
		return nil, err
	}

	var elseBody []ir.Stmt
	if s.Else != nil {
		elseBody, err = func() ([]ir.Stmt, error) {
			restore := a.pushScope()
			defer restore()
			return a.analyzeBlock(s.Else)
		}()
		if err != nil {
			return nil, err
		}
	}
	return &ir.If{Cond: cond, Then: then, Else: elseBody}, nil
}

// analyzeFor: iterable must be a subtype of ITERABLE; loop variable always
// binds to INTEGER (spec.md §4.3/§9 — a known simplification, not a bug).
func (a *analyzer) analyzeFor(s *ast.For) (*ir.For, error) {
	iterable, err := a.analyzeExpr(s.Iterable)
	if err != nil {
		return nil, err
	}
	if !types.IsSubtype(iterable.Type(), types.Iterable) {
		return nil, newAnalyzeError("FOR iterable must be Iterable, got %s", iterable.Type())
	}

	restore := a.pushScope()
	defer restore()
	a.scope.Define(s.Name, types.Integer)
	body, err := a.analyzeBlock(s.Body)
	if err != nil {
		return nil, err
	}
	return &ir.For{Name: s.Name, Iterable: iterable, Body: body}, nil
}

// analyzeReturn requires $RETURNS to be bound (else "Return outside
// function") and the value's type to be a subtype of the declared return.
func (a *analyzer) analyzeReturn(s *ast.Return) (*ir.Return, error) {
	declared, ok := a.scope.Lookup(returnsSentinel)
	if !ok {
		return nil, newAnalyzeError("RETURN outside function")
	}
	var valueIR ir.Expr
	if s.Value != nil {
		v, err := a.analyzeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		valueIR = v
	} else {
		valueIR = &ir.Literal{Value: nil, Typ: types.Nil}
	}
	if !types.IsSubtype(valueIR.Type(), declared) {
		return nil, newAnalyzeError("RETURN value type %s is not assignable to declared return type %s", valueIR.Type(), declared)
	}
	return &ir.Return{Value: valueIR}, nil
}

// analyzeAssignment splits ast.Assignment into the Variable or Property IR
// form, per spec.md §4.3.
func (a *analyzer) analyzeAssignment(s *ast.Assignment) (ir.Stmt, error) {
	switch target := s.Target.(type) {
	case *ast.Variable:
		declared, ok := a.scope.Lookup(target.Name)
		if !ok {
			return nil, newAnalyzeError("undefined variable %q", target.Name)
		}
		value, err := a.analyzeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		if !types.IsSubtype(value.Type(), declared) {
			return nil, newAnalyzeError("cannot assign %s to %q of type %s", value.Type(), target.Name, declared)
		}
		return &ir.AssignVariable{Name: target.Name, Value: value}, nil
	case *ast.Property:
		receiver, err := a.analyzeExpr(target.Receiver)
		if err != nil {
			return nil, err
		}
		objType, ok := receiver.Type().(types.ObjectType)
		if !ok {
			return nil, newAnalyzeError("property assignment target must be an Object, got %s", receiver.Type())
		}
		fieldType, ok := objType.Scope.Lookup(target.Name)
		if !ok {
			return nil, newAnalyzeError("object has no field %q", target.Name)
		}
		value, err := a.analyzeExpr(s.Value)
		if err != nil {
			return nil, err
		}
		if !types.IsSubtype(value.Type(), fieldType) {
			return nil, newAnalyzeError("cannot assign %s to field %q of type %s", value.Type(), target.Name, fieldType)
		}
		return &ir.AssignProperty{Receiver: receiver, Name: target.Name, Value: value}, nil
	default:
		return nil, newAnalyzeError("assignment target must be a variable or property")
	}
}
