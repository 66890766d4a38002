package lex

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

type Source struct {
	Name    string
	Content string
	Lines   []string

	lineStarts []int
}

func NewSource(name string, content string) *Source {
	lineStarts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{
		Name:       name,
		Content:    content,
		Lines:      strings.Split(content, "\n"),
		lineStarts: lineStarts,
	}
}

// Position maps a byte offset to a 1-based line and rune column.
func (s *Source) Position(offset int) (line, column int) {
	offset = max(0, min(offset, len(s.Content)))
	idx := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	}) - 1
	column = utf8.RuneCountInString(s.Content[s.lineStarts[idx]:offset]) + 1
	return idx + 1, column
}

type SpanError struct {
	Err    error
	Span   Span
	Source *Source
}

func (p SpanError) Error() string {
	if p.Source == nil {
		return p.Err.Error()
	}

	lineNum, column := p.Source.Position(p.Span.Start)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at %s:%d:%d\n", p.Err.Error(), p.Source.Name, lineNum, column))

	// line content
	idx := lineNum - 1
	if idx >= 0 && idx < len(p.Source.Lines) {
		line := p.Source.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		// caret
		runes := []rune(line)
		for i, r := range runes {
			if i >= column-1 {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runeWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

func (p SpanError) Unwrap() error {
	return p.Err
}

func WithSpan(err error, span Span, source *Source) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(SpanError); ok {
		return err
	}
	return SpanError{
		Err:    err,
		Span:   span,
		Source: source,
	}
}

// runeWidth is the number of terminal cells r occupies.
func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}
