package lex

import (
	"fmt"
	"strconv"
)

// Token is one lexical unit. Payload fields are set according to Kind:
// Text for identifiers, comments and unknown input, Keyword for keywords,
// Delim for delimiters and Literal for literals.
type Token struct {
	Kind    TokenKind
	Span    Span
	Text    string
	Keyword Keyword
	Delim   Delim
	Literal Literal
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota

	TokenEq     // =
	TokenLt     // <
	TokenLe     // <=
	TokenEqEq   // ==
	TokenNe     // !=
	TokenGe     // >=
	TokenGt     // >
	TokenAndAnd // &&
	TokenOrOr   // ||
	TokenNot    // !

	TokenDot       // .
	TokenDotDot    // ..
	TokenComma     // ,
	TokenColon     // :
	TokenSemiColon // ;

	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %
	TokenCaret   // ^
	TokenAnd     // &
	TokenOr      // |
	TokenLtLt    // <<
	TokenGtGt    // >>

	TokenPlusEq    // +=
	TokenMinusEq   // -=
	TokenStarEq    // *=
	TokenSlashEq   // /=
	TokenPercentEq // %=
	TokenCaretEq   // ^=
	TokenAndEq     // &=
	TokenOrEq      // |=

	TokenDelim
	TokenComment
	TokenKeyword
	TokenLiteral
	TokenIdentifier
	TokenEOF
	TokenUnknown
)

var operatorText = map[TokenKind]string{
	TokenEq:        "=",
	TokenLt:        "<",
	TokenLe:        "<=",
	TokenEqEq:      "==",
	TokenNe:        "!=",
	TokenGe:        ">=",
	TokenGt:        ">",
	TokenAndAnd:    "&&",
	TokenOrOr:      "||",
	TokenNot:       "!",
	TokenDot:       ".",
	TokenDotDot:    "..",
	TokenComma:     ",",
	TokenColon:     ":",
	TokenSemiColon: ";",
	TokenPlus:      "+",
	TokenMinus:     "-",
	TokenStar:      "*",
	TokenSlash:     "/",
	TokenPercent:   "%",
	TokenCaret:     "^",
	TokenAnd:       "&",
	TokenOr:        "|",
	TokenLtLt:      "<<",
	TokenGtGt:      ">>",
	TokenPlusEq:    "+=",
	TokenMinusEq:   "-=",
	TokenStarEq:    "*=",
	TokenSlashEq:   "/=",
	TokenPercentEq: "%=",
	TokenCaretEq:   "^=",
	TokenAndEq:     "&=",
	TokenOrEq:      "|=",
}

func (k TokenKind) String() string {
	if text, ok := operatorText[k]; ok {
		return strconv.Quote(text)
	}
	switch k {
	case TokenDelim:
		return "delimiter"
	case TokenComment:
		return "comment"
	case TokenKeyword:
		return "keyword"
	case TokenLiteral:
		return "literal"
	case TokenIdentifier:
		return "identifier"
	case TokenEOF:
		return "end of input"
	case TokenUnknown:
		return "unknown"
	}
	return "invalid"
}

type DelimDir uint8

const (
	Open DelimDir = iota + 1
	Close
)

type DelimType uint8

const (
	Paren DelimType = iota + 1
	Brace
	Bracket
)

type Delim struct {
	Dir  DelimDir
	Type DelimType
}

var delimText = map[Delim]string{
	{Open, Paren}:    "(",
	{Open, Brace}:    "{",
	{Open, Bracket}:  "[",
	{Close, Paren}:   ")",
	{Close, Brace}:   "}",
	{Close, Bracket}: "]",
}

func (d Delim) String() string {
	if text, ok := delimText[d]; ok {
		return text
	}
	return "?"
}

func (t Token) String() string {
	switch t.Kind {
	case TokenDelim:
		return strconv.Quote(t.Delim.String())
	case TokenKeyword:
		return "keyword " + t.Keyword.String()
	case TokenLiteral:
		return t.Literal.GoString()
	case TokenIdentifier:
		return "identifier " + t.Text
	case TokenComment:
		return "comment " + strconv.Quote(t.Text)
	case TokenUnknown:
		return "unknown " + strconv.Quote(t.Text)
	}
	return t.Kind.String()
}

// GoString is the form printed by token dumps.
func (t Token) GoString() string {
	return fmt.Sprintf("%s @ %s", t, t.Span)
}
