package parse

import (
	"fmt"

	"github.com/reusee/mypl/lex"
)

// Error is a syntax error. Parsing stops at the first one.
type Error struct {
	Production string
	Expected   string
	Found      lex.Token
}

func (e *Error) Error() string {
	if e.Found.Kind == lex.TokenUnknown {
		return fmt.Sprintf("parse %s: expected %s, found unrecognized input %q", e.Production, e.Expected, e.Found.Text)
	}
	return fmt.Sprintf("parse %s: expected %s, found %v", e.Production, e.Expected, e.Found)
}

func (e *Error) Span() lex.Span {
	return e.Found.Span
}
