package interp

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/reusee/mypl/lex"
)

type ValueType uint8

const (
	TypeInvalid ValueType = iota
	TypeString
	TypeFloat
	TypeInteger
	TypeBool
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "String"
	case TypeFloat:
		return "Float"
	case TypeInteger:
		return "Integer"
	case TypeBool:
		return "Bool"
	}
	return "Invalid"
}

// Value is one of String, Float, Integer or Bool.
// String returns the form written by print.
type Value interface {
	Type() ValueType
	String() string
}

type String string

type Float float64

// Integer holds a value in the signed 128 bit range. The pointed big.Int is
// never mutated after construction.
type Integer struct {
	Int *big.Int
}

type Bool bool

var (
	_ Value = String("")
	_ Value = Float(0)
	_ Value = Integer{}
	_ Value = Bool(false)
)

func (String) Type() ValueType  { return TypeString }
func (Float) Type() ValueType   { return TypeFloat }
func (Integer) Type() ValueType { return TypeInteger }
func (Bool) Type() ValueType    { return TypeBool }

func (s String) String() string {
	return string(s)
}

func (f Float) String() string {
	return lex.FormatFloat(float64(f))
}

func (i Integer) String() string {
	if i.Int == nil {
		return "0"
	}
	return i.Int.String()
}

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func NewInteger(i int64) Integer {
	return Integer{
		Int: big.NewInt(i),
	}
}

// Debug renders v with its type, as in Integer(6) or String("a").
func Debug(v Value) string {
	if v == nil {
		return "<nil>"
	}
	if s, ok := v.(String); ok {
		return fmt.Sprintf("String(%s)", strconv.Quote(string(s)))
	}
	return fmt.Sprintf("%s(%s)", v.Type(), v.String())
}

// Equal reports whether a and b have the same type and value.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Integer:
		b, ok := b.(Integer)
		if !ok {
			return false
		}
		return a.Int.Cmp(b.Int) == 0
	case nil:
		return b == nil
	}
	return a == b
}

// FromLiteral converts a literal payload to the matching value.
func FromLiteral(literal lex.Literal) (Value, error) {
	switch literal.Kind {
	case lex.LiteralString:
		return String(literal.String), nil
	case lex.LiteralBool:
		return Bool(literal.Bool), nil
	case lex.LiteralFloat:
		return Float(literal.Float), nil
	case lex.LiteralInteger:
		if literal.Integer == nil || !lex.InInt128(literal.Integer) {
			return nil, &IntegerOverflowError{
				Op:     "literal",
				Result: literal.Integer,
			}
		}
		return Integer{
			Int: literal.Integer,
		}, nil
	}
	return nil, fmt.Errorf("invalid literal: %v", literal.Kind)
}
