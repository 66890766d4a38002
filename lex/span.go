package lex

import "fmt"

// Span is a half-open byte range [Start, End) over the source text.
type Span struct {
	Start int
	End   int
}

func NewSpan(start, end int) Span {
	if end < start {
		panic(fmt.Errorf("bad span: %d > %d", start, end))
	}
	return Span{
		Start: start,
		End:   end,
	}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) Text(source string) string {
	return source[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
