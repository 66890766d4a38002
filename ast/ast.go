package ast

import "github.com/reusee/mypl/lex"

// Expr is one of *Literal, *Variable, *Unary or *Binary.
type Expr interface {
	exprNode()
}

type Literal struct {
	Value lex.Literal
}

type Variable struct {
	Name string
}

type Unary struct {
	Op      UnOp
	Operand Expr
}

type Binary struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

func (*Literal) exprNode()  {}
func (*Variable) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}

// Stmt is one of *ExprStmt, *PrintStmt, *DeclStmt or *AssignStmt.
type Stmt interface {
	stmtNode()
}

type ExprStmt struct {
	Expr Expr
}

type PrintStmt struct {
	Expr Expr
}

type DeclStmt struct {
	Decl Decl
}

type AssignStmt struct {
	Name  string
	Value Expr
}

func (*ExprStmt) stmtNode()   {}
func (*PrintStmt) stmtNode()  {}
func (*DeclStmt) stmtNode()   {}
func (*AssignStmt) stmtNode() {}

// Decl is one of *ConstDecl or *VarDecl.
type Decl interface {
	declNode()
	DeclName() string
	DeclInit() Expr
}

type ConstDecl struct {
	Name string
	Init Expr
}

type VarDecl struct {
	Name string
	Init Expr
}

func (*ConstDecl) declNode() {}
func (*VarDecl) declNode()   {}

func (d *ConstDecl) DeclName() string { return d.Name }
func (d *VarDecl) DeclName() string   { return d.Name }

func (d *ConstDecl) DeclInit() Expr { return d.Init }
func (d *VarDecl) DeclInit() Expr   { return d.Init }
