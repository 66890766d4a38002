package parse

import (
	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/lex"
)

// Parser is a recursive descent parser. Each binary precedence tier is one
// method recursing into the next tighter tier.
type Parser struct {
	tokens []lex.Token
	pos    int
	depth  int
}

// MaxDepth bounds the nesting of groups and unary operators.
const MaxDepth = 10000

// New creates a parser over tokens. Comment tokens are dropped; the token
// slice is expected to end with exactly one EOF token.
func New(tokens []lex.Token) *Parser {
	filtered := make([]lex.Token, 0, len(tokens))
	for _, token := range tokens {
		if token.Kind == lex.TokenComment {
			continue
		}
		filtered = append(filtered, token)
	}
	return &Parser{
		tokens: filtered,
	}
}

// Source tokenizes and parses source.
func Source(source string) ([]ast.Stmt, error) {
	return New(lex.Tokenize(source)).Parse()
}

func (p *Parser) Parse() ([]ast.Stmt, error) {
	return p.program()
}

var (
	orOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenOrOr: ast.Or,
	}
	andOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenAndAnd: ast.And,
	}
	equalityOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenEqEq: ast.Eq,
		lex.TokenNe:   ast.Ne,
	}
	comparisonOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenLt: ast.Lt,
		lex.TokenLe: ast.Le,
		lex.TokenGt: ast.Gt,
		lex.TokenGe: ast.Ge,
	}
	termOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenPlus:  ast.Add,
		lex.TokenMinus: ast.Sub,
	}
	factorOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenStar:  ast.Mul,
		lex.TokenSlash: ast.Div,
	}
	unaryOps = map[lex.TokenKind]ast.UnOp{
		lex.TokenNot:   ast.Not,
		lex.TokenMinus: ast.Neg,
	}
	// compound assignments desugar to name = name op value
	assignOps = map[lex.TokenKind]ast.BinOp{
		lex.TokenPlusEq:  ast.Add,
		lex.TokenMinusEq: ast.Sub,
		lex.TokenStarEq:  ast.Mul,
		lex.TokenSlashEq: ast.Div,
	}
)

func (p *Parser) program() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		if p.atEnd() {
			return nil, p.errorf("program", "end of input token")
		}
		if p.matchKind(lex.TokenEOF) {
			break
		}
		stmt, err := p.declaration()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if !p.atEnd() {
		return nil, p.errorf("program", "nothing after end of input")
	}
	return stmts, nil
}

func (p *Parser) declaration() (ast.Stmt, error) {
	if p.matchKeyword(lex.KeywordConst) {
		name, init, err := p.binding("const declaration")
		if err != nil {
			return nil, err
		}
		return &ast.DeclStmt{
			Decl: &ast.ConstDecl{
				Name: name,
				Init: init,
			},
		}, nil
	}

	if p.matchKeyword(lex.KeywordVar) {
		name, init, err := p.binding("var declaration")
		if err != nil {
			return nil, err
		}
		return &ast.DeclStmt{
			Decl: &ast.VarDecl{
				Name: name,
				Init: init,
			},
		}, nil
	}

	return p.statement()
}

// binding parses IDENT "=" expression ";"
func (p *Parser) binding(production string) (string, ast.Expr, error) {
	name, ok := p.matchIdentifier()
	if !ok {
		return "", nil, p.errorf(production, "identifier")
	}
	if !p.matchKind(lex.TokenEq) {
		return "", nil, p.errorf(production, `"="`)
	}
	init, err := p.expression()
	if err != nil {
		return "", nil, err
	}
	if !p.matchKind(lex.TokenSemiColon) {
		return "", nil, p.errorf(production, `";"`)
	}
	return name, init, nil
}

func (p *Parser) statement() (ast.Stmt, error) {
	if p.matchKeyword(lex.KeywordPrint) {
		return p.printStatement()
	}
	if stmt, ok, err := p.assignStatement(); ok || err != nil {
		return stmt, err
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.matchKind(lex.TokenSemiColon) {
		return nil, p.errorf("print statement", `";"`)
	}
	return &ast.PrintStmt{
		Expr: expr,
	}, nil
}

// assignStatement needs two tokens of lookahead; without an assignment
// operator after the identifier the cursor is restored.
func (p *Parser) assignStatement() (ast.Stmt, bool, error) {
	start := p.pos
	name, ok := p.matchIdentifier()
	if !ok {
		return nil, false, nil
	}

	compound, isCompound := p.matchBinaryOp(assignOps)
	if !isCompound && !p.matchKind(lex.TokenEq) {
		p.pos = start
		return nil, false, nil
	}

	value, err := p.expression()
	if err != nil {
		return nil, true, err
	}
	if !p.matchKind(lex.TokenSemiColon) {
		return nil, true, p.errorf("assignment", `";"`)
	}

	if isCompound {
		value = &ast.Binary{
			Op:    compound,
			Left:  &ast.Variable{Name: name},
			Right: value,
		}
	}
	return &ast.AssignStmt{
		Name:  name,
		Value: value,
	}, true, nil
}

func (p *Parser) expressionStatement() (ast.Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if !p.matchKind(lex.TokenSemiColon) {
		return nil, p.errorf("expression statement", `";"`)
	}
	return &ast.ExprStmt{
		Expr: expr,
	}, nil
}

func (p *Parser) expression() (ast.Expr, error) {
	return p.logicOr()
}

// binary parses a left associative tier: next (op next)*
func (p *Parser) binary(next func() (ast.Expr, error), ops map[lex.TokenKind]ast.BinOp) (ast.Expr, error) {
	lhs, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.matchBinaryOp(ops)
		if !ok {
			return lhs, nil
		}
		rhs, err := next()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Binary{
			Op:    op,
			Left:  lhs,
			Right: rhs,
		}
	}
}

func (p *Parser) logicOr() (ast.Expr, error) {
	return p.binary(p.logicAnd, orOps)
}

func (p *Parser) logicAnd() (ast.Expr, error) {
	return p.binary(p.equality, andOps)
}

func (p *Parser) equality() (ast.Expr, error) {
	return p.binary(p.comparison, equalityOps)
}

func (p *Parser) comparison() (ast.Expr, error) {
	return p.binary(p.term, comparisonOps)
}

func (p *Parser) term() (ast.Expr, error) {
	return p.binary(p.factor, termOps)
}

func (p *Parser) factor() (ast.Expr, error) {
	return p.binary(p.unary, factorOps)
}

func (p *Parser) unary() (ast.Expr, error) {
	if op, ok := p.matchUnaryOp(unaryOps); ok {
		if err := p.enter("unary"); err != nil {
			return nil, err
		}
		defer p.leave()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &ast.Unary{
			Op:      op,
			Operand: operand,
		}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (ast.Expr, error) {
	if literal, ok := p.matchLiteral(); ok {
		return &ast.Literal{
			Value: literal,
		}, nil
	}

	if name, ok := p.matchIdentifier(); ok {
		return &ast.Variable{
			Name: name,
		}, nil
	}

	if p.matchDelim(lex.Open, lex.Paren) {
		if err := p.enter("group"); err != nil {
			return nil, err
		}
		defer p.leave()
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if !p.matchDelim(lex.Close, lex.Paren) {
			return nil, p.errorf("group", `")"`)
		}
		return expr, nil
	}

	return nil, p.errorf("primary", "expression")
}

func (p *Parser) enter(production string) error {
	if p.depth >= MaxDepth {
		return p.errorf(production, "shallower nesting")
	}
	p.depth++
	return nil
}

func (p *Parser) leave() {
	p.depth--
}
