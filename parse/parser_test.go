package parse

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/lex"
)

var cmpOptions = []cmp.Option{
	cmp.Comparer(func(a, b *big.Int) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.Cmp(b) == 0
	}),
}

func intLit(i int64) ast.Expr {
	return &ast.Literal{Value: lex.Int64Literal(i)}
}

func variable(name string) ast.Expr {
	return &ast.Variable{Name: name}
}

func binary(op ast.BinOp, l, r ast.Expr) ast.Expr {
	return &ast.Binary{Op: op, Left: l, Right: r}
}

func TestParse(t *testing.T) {
	cases := []struct {
		source   string
		expected []ast.Stmt
	}{
		{
			source: "1 + 2 * 3;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: binary(ast.Add, intLit(1), binary(ast.Mul, intLit(2), intLit(3))),
				},
			},
		},
		{
			source: "(1 + 2) * 3;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: binary(ast.Mul, binary(ast.Add, intLit(1), intLit(2)), intLit(3)),
				},
			},
		},
		{
			source: "1 - 2 - 3;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: binary(ast.Sub, binary(ast.Sub, intLit(1), intLit(2)), intLit(3)),
				},
			},
		},
		{
			source: "const x = 1; var y = x;",
			expected: []ast.Stmt{
				&ast.DeclStmt{Decl: &ast.ConstDecl{Name: "x", Init: intLit(1)}},
				&ast.DeclStmt{Decl: &ast.VarDecl{Name: "y", Init: variable("x")}},
			},
		},
		{
			source: `print "hi";`,
			expected: []ast.Stmt{
				&ast.PrintStmt{
					Expr: &ast.Literal{Value: lex.StringLiteral("hi")},
				},
			},
		},
		{
			source: "!!true;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: &ast.Unary{
						Op: ast.Not,
						Operand: &ast.Unary{
							Op:      ast.Not,
							Operand: &ast.Literal{Value: lex.BoolLiteral(true)},
						},
					},
				},
			},
		},
		{
			source: "--x;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: &ast.Unary{
						Op: ast.Neg,
						Operand: &ast.Unary{
							Op:      ast.Neg,
							Operand: variable("x"),
						},
					},
				},
			},
		},
		{
			source: "a == b < c;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: binary(ast.Eq, variable("a"), binary(ast.Lt, variable("b"), variable("c"))),
				},
			},
		},
		{
			source: "a || b && c;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: binary(ast.Or, variable("a"), binary(ast.And, variable("b"), variable("c"))),
				},
			},
		},
		{
			source: "x = 2;",
			expected: []ast.Stmt{
				&ast.AssignStmt{Name: "x", Value: intLit(2)},
			},
		},
		{
			source: "x += 2;",
			expected: []ast.Stmt{
				&ast.AssignStmt{
					Name:  "x",
					Value: binary(ast.Add, variable("x"), intLit(2)),
				},
			},
		},
		{
			source: "x == 2;",
			expected: []ast.Stmt{
				&ast.ExprStmt{
					Expr: binary(ast.Eq, variable("x"), intLit(2)),
				},
			},
		},
		{
			source: "// nothing\n1; // one\n",
			expected: []ast.Stmt{
				&ast.ExprStmt{Expr: intLit(1)},
			},
		},
		{
			source:   "",
			expected: nil,
		},
	}

	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			stmts, err := Source(c.source)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(c.expected, stmts, cmpOptions...); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	cases := []struct {
		source     string
		production string
		expected   string
		found      lex.TokenKind
	}{
		{"1 + 2", "expression statement", `";"`, lex.TokenEOF},
		{"print 1", "print statement", `";"`, lex.TokenEOF},
		{"const = 1;", "const declaration", "identifier", lex.TokenEq},
		{"var x 1;", "var declaration", `"="`, lex.TokenLiteral},
		{"var x = ;", "primary", "expression", lex.TokenSemiColon},
		{"(1 + 2;", "group", `")"`, lex.TokenSemiColon},
		{"1 + @;", "primary", "expression", lex.TokenUnknown},
		{"x = 1", "assignment", `";"`, lex.TokenEOF},
		{"1 + ;", "primary", "expression", lex.TokenSemiColon},
	}

	for _, c := range cases {
		t.Run(c.source, func(t *testing.T) {
			_, err := Source(c.source)
			var parseErr *Error
			if !errors.As(err, &parseErr) {
				t.Fatalf("got %v", err)
			}
			if parseErr.Production != c.production {
				t.Fatalf("got %v", parseErr.Production)
			}
			if parseErr.Expected != c.expected {
				t.Fatalf("got %v", parseErr.Expected)
			}
			if parseErr.Found.Kind != c.found {
				t.Fatalf("got %v", parseErr.Found.Kind)
			}
		})
	}
}

func TestParseErrorSpan(t *testing.T) {
	source := "var x = 1;\nprint $;"
	_, err := Source(source)
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if got := parseErr.Span().Text(source); got != "$" {
		t.Fatalf("got %q", got)
	}
}

func TestNestingLimit(t *testing.T) {
	for _, source := range []string{
		strings.Repeat("(", 1<<20) + "1;",
		strings.Repeat("(", 1<<20) + "1" + strings.Repeat(")", 1<<20) + ";",
		strings.Repeat("-", 1<<20) + "1;",
	} {
		_, err := Source(source)
		var parseErr *Error
		if !errors.As(err, &parseErr) {
			t.Fatalf("got %v", err)
		}
		if parseErr.Expected != "shallower nesting" {
			t.Fatalf("got %v", parseErr)
		}
	}

	source := strings.Repeat("(", MaxDepth-1) + "1" + strings.Repeat(")", MaxDepth-1) + ";"
	if _, err := Source(source); err != nil {
		t.Fatal(err)
	}
}

func TestMissingEOF(t *testing.T) {
	tokens := lex.Tokenize("1;")
	_, err := New(tokens[:len(tokens)-1]).Parse()
	var parseErr *Error
	if !errors.As(err, &parseErr) {
		t.Fatalf("got %v", err)
	}
	if parseErr.Production != "program" {
		t.Fatalf("got %v", parseErr.Production)
	}
}

func TestTrailingAfterEOF(t *testing.T) {
	tokens := lex.Tokenize("1;")
	tokens = append(tokens, tokens[0])
	_, err := New(tokens).Parse()
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRoundTrip(t *testing.T) {
	sources := []string{
		"1 + 2 * 3;",
		"(1 + 2) * 3;",
		"var x = 1 - (2 - 3);",
		"const s = \"a b\"; print s == \"a b\";",
		"x = -x;",
		"print !(true && false) || true;",
		"1.5 / 2.0 >= 0.5;",
		"x *= 2 + 3;",
	}
	for _, source := range sources {
		t.Run(source, func(t *testing.T) {
			stmts, err := Source(source)
			if err != nil {
				t.Fatal(err)
			}
			printed := ast.Format(stmts)
			again, err := Source(printed)
			if err != nil {
				t.Fatalf("reparse %q: %v", printed, err)
			}
			if diff := cmp.Diff(stmts, again, cmpOptions...); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
