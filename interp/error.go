package interp

import (
	"fmt"
	"math/big"

	"github.com/reusee/mypl/ast"
)

type SymbolNotFoundError struct {
	Name string
}

func (e *SymbolNotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s", e.Name)
}

type SymbolAlreadyDefinedError struct {
	Name string
}

func (e *SymbolAlreadyDefinedError) Error() string {
	return fmt.Sprintf("symbol already defined: %s", e.Name)
}

type ImmutableAssignmentError struct {
	Name string
}

func (e *ImmutableAssignmentError) Error() string {
	return fmt.Sprintf("cannot assign to immutable symbol: %s", e.Name)
}

type InvalidUnaryApplicationError struct {
	Op   ast.UnOp
	Type ValueType
}

func (e *InvalidUnaryApplicationError) Error() string {
	return fmt.Sprintf("invalid operand for unary %s: %s", e.Op, e.Type)
}

type InvalidBinaryApplicationError struct {
	Op   ast.BinOp
	Type ValueType
}

func (e *InvalidBinaryApplicationError) Error() string {
	return fmt.Sprintf("invalid operands for %s: %s", e.Op, e.Type)
}

// TypeMismatchError reports binary operands of different types.
// There is no implicit conversion between Integer and Float.
type TypeMismatchError struct {
	Op    ast.BinOp
	Left  ValueType
	Right ValueType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("mismatched operand types for %s: %s and %s", e.Op, e.Left, e.Right)
}

type IntegerOverflowError struct {
	Op     string
	Result *big.Int
}

func (e *IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer overflow in %s: %v", e.Op, e.Result)
}
