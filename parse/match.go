package parse

import (
	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/lex"
)

// token returns the current token. Past the end it returns an EOF token
// positioned after the last one.
func (p *Parser) token() lex.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	var end int
	if len(p.tokens) > 0 {
		end = p.tokens[len(p.tokens)-1].Span.End
	}
	return lex.Token{
		Kind: lex.TokenEOF,
		Span: lex.NewSpan(end, end),
	}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

// match advances past the current token if predicate accepts it.
func (p *Parser) match(predicate func(lex.Token) bool) (lex.Token, bool) {
	if p.atEnd() {
		return lex.Token{}, false
	}
	token := p.tokens[p.pos]
	if !predicate(token) {
		return lex.Token{}, false
	}
	p.pos++
	return token, true
}

func (p *Parser) matchKind(kind lex.TokenKind) bool {
	_, ok := p.match(func(t lex.Token) bool {
		return t.Kind == kind
	})
	return ok
}

func (p *Parser) matchKeyword(keyword lex.Keyword) bool {
	_, ok := p.match(func(t lex.Token) bool {
		return t.Kind == lex.TokenKeyword && t.Keyword == keyword
	})
	return ok
}

func (p *Parser) matchDelim(dir lex.DelimDir, typ lex.DelimType) bool {
	_, ok := p.match(func(t lex.Token) bool {
		return t.Kind == lex.TokenDelim && t.Delim == lex.Delim{Dir: dir, Type: typ}
	})
	return ok
}

func (p *Parser) matchLiteral() (lex.Literal, bool) {
	token, ok := p.match(func(t lex.Token) bool {
		return t.Kind == lex.TokenLiteral
	})
	return token.Literal, ok
}

func (p *Parser) matchIdentifier() (string, bool) {
	token, ok := p.match(func(t lex.Token) bool {
		return t.Kind == lex.TokenIdentifier
	})
	return token.Text, ok
}

func (p *Parser) matchBinaryOp(ops map[lex.TokenKind]ast.BinOp) (ast.BinOp, bool) {
	token, ok := p.match(func(t lex.Token) bool {
		_, ok := ops[t.Kind]
		return ok
	})
	return ops[token.Kind], ok
}

func (p *Parser) matchUnaryOp(ops map[lex.TokenKind]ast.UnOp) (ast.UnOp, bool) {
	token, ok := p.match(func(t lex.Token) bool {
		_, ok := ops[t.Kind]
		return ok
	})
	return ops[token.Kind], ok
}

func (p *Parser) errorf(production string, expected string) error {
	return &Error{
		Production: production,
		Expected:   expected,
		Found:      p.token(),
	}
}
