package ast

import (
	"fmt"
	"strings"
)

// Format renders statements as source text. Binary expressions are fully
// parenthesized, so parsing the output yields an equal tree.
func Format(stmts []Stmt) string {
	var sb strings.Builder
	for _, stmt := range stmts {
		sb.WriteString(FormatStmt(stmt))
		sb.WriteString("\n")
	}
	return sb.String()
}

func FormatStmt(stmt Stmt) string {
	switch stmt := stmt.(type) {
	case *ExprStmt:
		return FormatExpr(stmt.Expr) + ";"
	case *PrintStmt:
		return "print " + FormatExpr(stmt.Expr) + ";"
	case *AssignStmt:
		return stmt.Name + " = " + FormatExpr(stmt.Value) + ";"
	case *DeclStmt:
		switch decl := stmt.Decl.(type) {
		case *ConstDecl:
			return "const " + decl.Name + " = " + FormatExpr(decl.Init) + ";"
		case *VarDecl:
			return "var " + decl.Name + " = " + FormatExpr(decl.Init) + ";"
		}
	}
	panic(fmt.Errorf("unknown statement: %T", stmt))
}

func FormatExpr(expr Expr) string {
	switch expr := expr.(type) {
	case *Literal:
		return expr.Value.Code()
	case *Variable:
		return expr.Name
	case *Unary:
		return expr.Op.String() + FormatExpr(expr.Operand)
	case *Binary:
		return "(" + FormatExpr(expr.Left) + " " + expr.Op.String() + " " + FormatExpr(expr.Right) + ")"
	}
	panic(fmt.Errorf("unknown expression: %T", expr))
}
