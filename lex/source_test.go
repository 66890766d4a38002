package lex

import (
	"errors"
	"strings"
	"testing"
)

func TestSourcePosition(t *testing.T) {
	source := NewSource("test", "ab\nc世d\n\nx")
	cases := []struct {
		offset       int
		line, column int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{7, 2, 3}, // after the wide rune
		{9, 3, 1},
		{10, 4, 1},
		{100, 4, 2},
	}
	for _, c := range cases {
		line, column := source.Position(c.offset)
		if line != c.line || column != c.column {
			t.Fatalf("offset %d: got %d:%d, want %d:%d", c.offset, line, column, c.line, c.column)
		}
	}
}

func TestRuneWidth(t *testing.T) {
	for r, expected := range map[rune]int{
		0:   0,
		'a': 1,
		'é': 1,
		'世': 2,
		'한': 2,
		'Ａ': 2,
		'ｱ': 1,
	} {
		if got := runeWidth(r); got != expected {
			t.Fatalf("%q: got %d", r, got)
		}
	}

	source := NewSource("wide", "print 世界 @;")
	err := WithSpan(errors.New("bad"), NewSpan(13, 14), source)
	lines := strings.Split(err.Error(), "\n")
	if lines[2] != "           ^" {
		t.Fatalf("got %q", lines[2])
	}
}

func TestSpanError(t *testing.T) {
	source := NewSource("main.mypl", "var x = 1;\nprint @;")
	inner := errors.New("bad token")
	err := WithSpan(inner, NewSpan(17, 18), source)
	if !errors.Is(err, inner) {
		t.Fatal()
	}
	lines := strings.Split(err.Error(), "\n")
	if lines[0] != "bad token at main.mypl:2:7" {
		t.Fatalf("got %q", lines[0])
	}
	if lines[1] != "print @;" {
		t.Fatalf("got %q", lines[1])
	}
	if lines[2] != "      ^" {
		t.Fatalf("got %q", lines[2])
	}

	// not wrapped twice
	if again := WithSpan(err, NewSpan(0, 1), source); again != err {
		t.Fatalf("got %v", again)
	}
	if WithSpan(nil, NewSpan(0, 0), source) != nil {
		t.Fatal()
	}
}
