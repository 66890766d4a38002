package interp

import (
	"fmt"
	"io"
	"math/big"

	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/lex"
)

// Interpreter executes statements against an Env. Print output goes to the
// writer given to New; nothing else is written.
type Interpreter struct {
	env *Env
	out io.Writer
}

// New creates an interpreter. A nil env starts empty; a nil out discards
// print output.
func New(env *Env, out io.Writer) *Interpreter {
	if env == nil {
		env = NewEnv()
	}
	if out == nil {
		out = io.Discard
	}
	return &Interpreter{
		env: env,
		out: out,
	}
}

func (i *Interpreter) Env() *Env {
	return i.env
}

func (i *Interpreter) Evaluate(expr ast.Expr) (Value, error) {
	switch expr := expr.(type) {

	case *ast.Literal:
		return FromLiteral(expr.Value)

	case *ast.Variable:
		return i.env.Get(expr.Name)

	case *ast.Unary:
		operand, err := i.Evaluate(expr.Operand)
		if err != nil {
			return nil, err
		}
		return unary(expr.Op, operand)

	case *ast.Binary:
		left, err := i.Evaluate(expr.Left)
		if err != nil {
			return nil, err
		}
		right, err := i.Evaluate(expr.Right)
		if err != nil {
			return nil, err
		}
		return binary(expr.Op, left, right)

	}
	return nil, fmt.Errorf("unknown expression: %T", expr)
}

func unary(op ast.UnOp, operand Value) (Value, error) {
	switch op {

	case ast.Not:
		if b, ok := operand.(Bool); ok {
			return !b, nil
		}

	case ast.Neg:
		switch operand := operand.(type) {
		case Integer:
			result := new(big.Int).Neg(operand.Int)
			if !lex.InInt128(result) {
				return nil, &IntegerOverflowError{
					Op:     op.String(),
					Result: result,
				}
			}
			return Integer{
				Int: result,
			}, nil
		case Float:
			return -operand, nil
		}

	}
	return nil, &InvalidUnaryApplicationError{
		Op:   op,
		Type: operand.Type(),
	}
}

// Exec executes one statement. For expression statements the value is
// returned; other statements return nil.
func (i *Interpreter) Exec(stmt ast.Stmt) (Value, error) {
	switch stmt := stmt.(type) {

	case *ast.ExprStmt:
		return i.Evaluate(stmt.Expr)

	case *ast.PrintStmt:
		value, err := i.Evaluate(stmt.Expr)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Fprintln(i.out, value.String()); err != nil {
			return nil, err
		}
		return nil, nil

	case *ast.DeclStmt:
		// initializer first, so a declaration never sees itself
		value, err := i.Evaluate(stmt.Decl.DeclInit())
		if err != nil {
			return nil, err
		}
		mutability := Mutable
		if _, ok := stmt.Decl.(*ast.ConstDecl); ok {
			mutability = Immutable
		}
		return nil, i.env.Define(stmt.Decl.DeclName(), mutability, value)

	case *ast.AssignStmt:
		value, err := i.Evaluate(stmt.Value)
		if err != nil {
			return nil, err
		}
		return nil, i.env.Assign(stmt.Name, value)

	}
	return nil, fmt.Errorf("unknown statement: %T", stmt)
}

func (i *Interpreter) Interpret(stmt ast.Stmt) error {
	_, err := i.Exec(stmt)
	return err
}

// InterpretAll stops at the first failing statement. Effects of the
// statements before it are kept.
func (i *Interpreter) InterpretAll(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := i.Interpret(stmt); err != nil {
			return err
		}
	}
	return nil
}
