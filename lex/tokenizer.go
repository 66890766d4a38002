package lex

import (
	"iter"
	"regexp"
)

type reader struct {
	source string
	pos    int
}

func (r *reader) rest() string {
	return r.source[r.pos:]
}

func (r *reader) atEOF() bool {
	return r.pos == len(r.source)
}

func (r *reader) span(size int) Span {
	return NewSpan(r.pos, r.pos+size)
}

var whitespace = regexp.MustCompile(`^[\t\n\r ]+`)

// Tokenizer produces tokens lazily. It never fails: input no rule accepts
// becomes TokenUnknown.
type Tokenizer struct {
	reader reader
	done   bool
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		reader: reader{
			source: source,
		},
	}
}

// Next returns the next token. The EOF token is returned exactly once;
// later calls report false.
func (t *Tokenizer) Next() (Token, bool) {
	if t.done {
		return Token{}, false
	}

	if loc := whitespace.FindStringIndex(t.reader.rest()); loc != nil {
		t.reader.pos += loc[1]
	}

	for _, rule := range rules {
		token, ok := rule.tokenize(&t.reader)
		if !ok {
			continue
		}
		t.reader.pos += token.Span.Len()
		if token.Kind == TokenEOF {
			t.done = true
		}
		return token, true
	}

	panic("impossible: fallback rule did not match")
}

func (t *Tokenizer) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for {
			token, ok := t.Next()
			if !ok {
				return
			}
			if !yield(token) {
				return
			}
		}
	}
}

// Tokenize drains a new tokenizer over source. The last token is always TokenEOF.
func Tokenize(source string) []Token {
	var ret []Token
	for token := range NewTokenizer(source).All() {
		ret = append(ret, token)
	}
	return ret
}
