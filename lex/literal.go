package lex

import (
	"fmt"
	"math/big"
	"strconv"
)

type LiteralKind uint8

const (
	LiteralInvalid LiteralKind = iota
	LiteralString
	LiteralBool
	LiteralInteger
	LiteralFloat
)

func (k LiteralKind) String() string {
	switch k {
	case LiteralString:
		return "String"
	case LiteralBool:
		return "Bool"
	case LiteralInteger:
		return "Integer"
	case LiteralFloat:
		return "Float"
	}
	return "Invalid"
}

// Literal is the payload of a literal token.
// Only the field matching Kind is meaningful.
type Literal struct {
	Kind    LiteralKind
	String  string
	Bool    bool
	Integer *big.Int
	Float   float64
}

var (
	MinInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	MaxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

// InInt128 reports whether i fits in a signed 128-bit integer.
func InInt128(i *big.Int) bool {
	return i.Cmp(MinInt128) >= 0 && i.Cmp(MaxInt128) <= 0
}

func StringLiteral(s string) Literal {
	return Literal{Kind: LiteralString, String: s}
}

func BoolLiteral(b bool) Literal {
	return Literal{Kind: LiteralBool, Bool: b}
}

func IntegerLiteral(i *big.Int) Literal {
	return Literal{Kind: LiteralInteger, Integer: i}
}

func Int64Literal(i int64) Literal {
	return IntegerLiteral(big.NewInt(i))
}

func FloatLiteral(f float64) Literal {
	return Literal{Kind: LiteralFloat, Float: f}
}

func (l Literal) Equal(other Literal) bool {
	if l.Kind != other.Kind {
		return false
	}
	switch l.Kind {
	case LiteralString:
		return l.String == other.String
	case LiteralBool:
		return l.Bool == other.Bool
	case LiteralInteger:
		if l.Integer == nil || other.Integer == nil {
			return l.Integer == other.Integer
		}
		return l.Integer.Cmp(other.Integer) == 0
	case LiteralFloat:
		return l.Float == other.Float
	}
	return true
}

// Code renders the literal as source text that lexes back to an equal literal.
func (l Literal) Code() string {
	switch l.Kind {
	case LiteralString:
		return `"` + l.String + `"`
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	case LiteralInteger:
		return l.Integer.String()
	case LiteralFloat:
		return FormatFloat(l.Float)
	}
	return "<invalid>"
}

func (l Literal) GoString() string {
	return fmt.Sprintf("%s(%s)", l.Kind, l.Code())
}

// FormatFloat formats f in plain decimal notation, always with a fractional part.
func FormatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	for _, r := range s {
		if r == '.' || r == 'N' || r == 'I' {
			return s
		}
	}
	return s + ".0"
}
