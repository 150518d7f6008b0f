package eval

import (
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/akashmaji946/mixi/ast"
	"github.com/akashmaji946/mixi/value"
)

// evalBinary implements spec.md §4.4's Binary expression semantics:
// short-circuit AND/OR, String-stringifying "+", arbitrary-precision
// arithmetic on matching numeric kinds, and the Equatable/Comparable
// comparison rules.
func (e *evaluator) evalBinary(ex *ast.Binary) (value.RuntimeValue, error) {
	switch ex.Op {
	case "AND":
		return e.evalShortCircuit(ex, false)
	case "OR":
		return e.evalShortCircuit(ex, true)
	}

	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op {
	case "+":
		return evalPlus(left, right)
	case "-", "*", "/":
		return evalArithmetic(ex.Op, left, right)
	case "==":
		return value.Bool{Value: valuesEqual(left, right)}, nil
	case "!=":
		return value.Bool{Value: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return evalComparison(ex.Op, left, right)
	default:
		return nil, newEvalError("unrecognized binary operator %q", ex.Op)
	}
}

// evalShortCircuit implements AND (shortOn=false) and OR (shortOn=true):
// the left operand is always evaluated and must be BOOLEAN; the right
// operand is evaluated only when the left doesn't already decide the
// result.
func (e *evaluator) evalShortCircuit(ex *ast.Binary, shortOn bool) (value.RuntimeValue, error) {
	left, err := e.evalExpr(ex.Left)
	if err != nil {
		return nil, err
	}
	lb, ok := left.(value.Bool)
	if !ok {
		return nil, newEvalError("left operand of %q must be Boolean, got %s", ex.Op, left.Type())
	}
	if lb.Value == shortOn {
		return lb, nil
	}
	right, err := e.evalExpr(ex.Right)
	if err != nil {
		return nil, err
	}
	rb, ok := right.(value.Bool)
	if !ok {
		return nil, newEvalError("right operand of %q must be Boolean, got %s", ex.Op, right.Type())
	}
	return rb, nil
}

// evalPlus implements "+": String-stringifying concatenation if either
// operand is textual, else numeric addition on matching operand kinds.
func evalPlus(left, right value.RuntimeValue) (value.RuntimeValue, error) {
	if isTextual(left) || isTextual(right) {
		return value.Str{Value: value.Stringify(left) + value.Stringify(right)}, nil
	}
	return evalArithmetic("+", left, right)
}

func isTextual(v value.RuntimeValue) bool {
	switch v.(type) {
	case value.Str, value.Char:
		return true
	default:
		return false
	}
}

// evalArithmetic implements "+" (numeric case), "-", "*", "/" over two
// operands of the same numeric kind (big integer or big decimal).
func evalArithmetic(op string, left, right value.RuntimeValue) (value.RuntimeValue, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return nil, newEvalError("operands to %q must both be Integer, got Integer and %s", op, right.Type())
		}
		return evalIntArithmetic(op, l, r)
	case value.Dec:
		r, ok := right.(value.Dec)
		if !ok {
			return nil, newEvalError("operands to %q must both be Decimal, got Decimal and %s", op, right.Type())
		}
		return evalDecArithmetic(op, l, r)
	default:
		return nil, newEvalError("operands to %q must be numeric, got %s", op, left.Type())
	}
}

func evalIntArithmetic(op string, l, r value.Int) (value.RuntimeValue, error) {
	result := new(big.Int)
	switch op {
	case "+":
		result.Add(l.Value, r.Value)
	case "-":
		result.Sub(l.Value, r.Value)
	case "*":
		result.Mul(l.Value, r.Value)
	case "/":
		if r.Value.Sign() == 0 {
			return nil, newEvalError("division by zero")
		}
		result.Quo(l.Value, r.Value)
	default:
		return nil, newEvalError("unrecognized arithmetic operator %q", op)
	}
	return value.Int{Value: result}, nil
}

// evalDecArithmetic implements "+ - *" exactly via shopspring/decimal's
// native arithmetic, and "/" per spec.md §4.4's explicit rule: scale is
// max(left.scale, right.scale), rounded half-even. The quotient is first
// truncated to that scale by QuoRem, and the exact remainder then decides
// the rounding, so no intermediate rounding step can shift the result.
func evalDecArithmetic(op string, l, r value.Dec) (value.RuntimeValue, error) {
	switch op {
	case "+":
		return value.Dec{Value: l.Value.Add(r.Value)}, nil
	case "-":
		return value.Dec{Value: l.Value.Sub(r.Value)}, nil
	case "*":
		return value.Dec{Value: l.Value.Mul(r.Value)}, nil
	case "/":
		if r.Value.IsZero() {
			return nil, newEvalError("division by zero")
		}
		scale := l.Scale()
		if r.Scale() > scale {
			scale = r.Scale()
		}
		q, rem := l.Value.QuoRem(r.Value, scale)
		// Round half-even: compare 2*|rem|*10^scale against |divisor|.
		twiceRem := rem.Abs().Add(rem.Abs()).Shift(scale)
		c := twiceRem.Cmp(r.Value.Abs())
		if c > 0 || (c == 0 && q.Shift(scale).BigInt().Bit(0) == 1) {
			step := decimal.New(1, -scale)
			if l.Value.Sign()*r.Value.Sign() < 0 {
				step = step.Neg()
			}
			q = q.Add(step)
		}
		return value.Dec{Value: q}, nil
	default:
		return nil, newEvalError("unrecognized arithmetic operator %q", op)
	}
}

// evalComparison implements "< <= > >=": both operands must be the same
// primitive kind and mutually ordered.
func evalComparison(op string, left, right value.RuntimeValue) (value.RuntimeValue, error) {
	sign, err := compareValues(left, right)
	if err != nil {
		return nil, err
	}
	var result bool
	switch op {
	case "<":
		result = sign < 0
	case "<=":
		result = sign <= 0
	case ">":
		result = sign > 0
	case ">=":
		result = sign >= 0
	}
	return value.Bool{Value: result}, nil
}

// compareValues returns -1/0/1 per the usual sign-of-comparison contract.
func compareValues(left, right value.RuntimeValue) (int, error) {
	switch l := left.(type) {
	case value.Int:
		r, ok := right.(value.Int)
		if !ok {
			return 0, newEvalError("cannot compare Integer with %s", right.Type())
		}
		return l.Value.Cmp(r.Value), nil
	case value.Dec:
		r, ok := right.(value.Dec)
		if !ok {
			return 0, newEvalError("cannot compare Decimal with %s", right.Type())
		}
		return l.Value.Cmp(r.Value), nil
	case value.Bool:
		r, ok := right.(value.Bool)
		if !ok {
			return 0, newEvalError("cannot compare Boolean with %s", right.Type())
		}
		return boolSign(l.Value) - boolSign(r.Value), nil
	default:
		if isTextual(left) && isTextual(right) {
			ls, rs := left.String(), right.String()
			switch {
			case ls < rs:
				return -1, nil
			case ls > rs:
				return 1, nil
			default:
				return 0, nil
			}
		}
		return 0, newEvalError("%s is not comparable", left.Type())
	}
}

func boolSign(b bool) int {
	if b {
		return 1
	}
	return 0
}

// valuesEqual implements "==" / "!=": ObjectValues compare by reference
// identity of their scope; exactly one ObjectValue operand is always
// unequal; everything else compares structurally, recursively for List.
func valuesEqual(left, right value.RuntimeValue) bool {
	lo, lIsObj := left.(value.ObjectValue)
	ro, rIsObj := right.(value.ObjectValue)
	if lIsObj || rIsObj {
		if lIsObj && rIsObj {
			return value.SameObject(lo, ro)
		}
		return false
	}

	switch l := left.(type) {
	case value.Nil:
		_, ok := right.(value.Nil)
		return ok
	case value.Bool:
		r, ok := right.(value.Bool)
		return ok && l.Value == r.Value
	case value.Int:
		r, ok := right.(value.Int)
		return ok && l.Value.Cmp(r.Value) == 0
	case value.Dec:
		r, ok := right.(value.Dec)
		return ok && l.Value.Equal(r.Value)
	case value.List:
		r, ok := right.(value.List)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	default:
		if isTextual(left) && isTextual(right) {
			return left.String() == right.String()
		}
		return false
	}
}
