package interp

import (
	"math/big"

	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/lex"
)

// binary applies op to operands of the same type. Both operands are already
// evaluated, so && and || never short circuit.
func binary(op ast.BinOp, left, right Value) (Value, error) {
	if left.Type() != right.Type() {
		return nil, &TypeMismatchError{
			Op:    op,
			Left:  left.Type(),
			Right: right.Type(),
		}
	}

	switch left := left.(type) {
	case String:
		return stringBinary(op, left, right.(String))
	case Bool:
		return boolBinary(op, left, right.(Bool))
	case Integer:
		return integerBinary(op, left, right.(Integer))
	case Float:
		return floatBinary(op, left, right.(Float))
	}

	return nil, &InvalidBinaryApplicationError{
		Op:   op,
		Type: left.Type(),
	}
}

func stringBinary(op ast.BinOp, a, b String) (Value, error) {
	switch op {
	case ast.Eq:
		return Bool(a == b), nil
	case ast.Ne:
		return Bool(a != b), nil
	}
	return nil, &InvalidBinaryApplicationError{
		Op:   op,
		Type: TypeString,
	}
}

func boolBinary(op ast.BinOp, a, b Bool) (Value, error) {
	switch op {
	case ast.And:
		return a && b, nil
	case ast.Or:
		return a || b, nil
	case ast.Eq:
		return Bool(a == b), nil
	case ast.Ne:
		return Bool(a != b), nil
	}
	return nil, &InvalidBinaryApplicationError{
		Op:   op,
		Type: TypeBool,
	}
}

func integerBinary(op ast.BinOp, a, b Integer) (Value, error) {
	switch op {

	case ast.Add:
		return checkedInteger(op, new(big.Int).Add(a.Int, b.Int))
	case ast.Sub:
		return checkedInteger(op, new(big.Int).Sub(a.Int, b.Int))
	case ast.Mul:
		return checkedInteger(op, new(big.Int).Mul(a.Int, b.Int))

	case ast.Div:
		// true division
		if b.Int.Sign() == 0 {
			x, _ := new(big.Float).SetInt(a.Int).Float64()
			var zero float64
			return Float(x / zero), nil
		}
		f, _ := new(big.Rat).SetFrac(a.Int, b.Int).Float64()
		return Float(f), nil

	case ast.Eq:
		return Bool(a.Int.Cmp(b.Int) == 0), nil
	case ast.Ne:
		return Bool(a.Int.Cmp(b.Int) != 0), nil
	case ast.Lt:
		return Bool(a.Int.Cmp(b.Int) < 0), nil
	case ast.Le:
		return Bool(a.Int.Cmp(b.Int) <= 0), nil
	case ast.Gt:
		return Bool(a.Int.Cmp(b.Int) > 0), nil
	case ast.Ge:
		return Bool(a.Int.Cmp(b.Int) >= 0), nil

	}
	return nil, &InvalidBinaryApplicationError{
		Op:   op,
		Type: TypeInteger,
	}
}

func checkedInteger(op ast.BinOp, result *big.Int) (Value, error) {
	if !lex.InInt128(result) {
		return nil, &IntegerOverflowError{
			Op:     op.String(),
			Result: result,
		}
	}
	return Integer{
		Int: result,
	}, nil
}

func floatBinary(op ast.BinOp, a, b Float) (Value, error) {
	switch op {
	case ast.Add:
		return a + b, nil
	case ast.Sub:
		return a - b, nil
	case ast.Mul:
		return a * b, nil
	case ast.Div:
		return a / b, nil
	case ast.Eq:
		return Bool(a == b), nil
	case ast.Ne:
		return Bool(a != b), nil
	case ast.Lt:
		return Bool(a < b), nil
	case ast.Le:
		return Bool(a <= b), nil
	case ast.Gt:
		return Bool(a > b), nil
	case ast.Ge:
		return Bool(a >= b), nil
	}
	return nil, &InvalidBinaryApplicationError{
		Op:   op,
		Type: TypeFloat,
	}
}
