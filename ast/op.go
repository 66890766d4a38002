package ast

type BinOp uint8

const (
	BinInvalid BinOp = iota
	Add
	Sub
	Mul
	Div
	Rem
	And
	Or
	Eq
	Lt
	Le
	Ne
	Ge
	Gt
)

var binOpCode = [...]string{
	BinInvalid: "?",
	Add:        "+",
	Sub:        "-",
	Mul:        "*",
	Div:        "/",
	Rem:        "%",
	And:        "&&",
	Or:         "||",
	Eq:         "==",
	Lt:         "<",
	Le:         "<=",
	Ne:         "!=",
	Ge:         ">=",
	Gt:         ">",
}

func (o BinOp) String() string {
	if int(o) < len(binOpCode) {
		return binOpCode[o]
	}
	return "?"
}

type UnOp uint8

const (
	UnInvalid UnOp = iota
	// Not is the logical inversion "!"
	Not
	// Neg is the numeric negation "-"
	Neg
)

func (o UnOp) String() string {
	switch o {
	case Not:
		return "!"
	case Neg:
		return "-"
	}
	return "?"
}
