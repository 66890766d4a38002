package lex

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

type rule interface {
	tokenize(r *reader) (Token, bool)
}

type funcRule func(r *reader) (Token, bool)

func (f funcRule) tokenize(r *reader) (Token, bool) {
	return f(r)
}

type exactRule struct {
	exact string
	token Token
}

func exact(text string, kind TokenKind) exactRule {
	return exactRule{
		exact: text,
		token: Token{Kind: kind},
	}
}

func (e exactRule) tokenize(r *reader) (Token, bool) {
	if !strings.HasPrefix(r.rest(), e.exact) {
		return Token{}, false
	}
	token := e.token
	token.Span = r.span(len(e.exact))
	return token, true
}

type regexpRule struct {
	re     *regexp.Regexp
	create func(text string) Token
}

func pattern(expr string, create func(text string) Token) regexpRule {
	return regexpRule{
		re:     regexp.MustCompile(`^(?:` + expr + `)`),
		create: create,
	}
}

func (p regexpRule) tokenize(r *reader) (Token, bool) {
	loc := p.re.FindStringIndex(r.rest())
	if loc == nil || loc[1] == 0 {
		return Token{}, false
	}
	token := p.create(r.rest()[:loc[1]])
	token.Span = r.span(loc[1])
	return token, true
}

// rules are tried in order and the first match wins, regardless of length.
var rules = func() []rule {
	var ret []rule

	// end of input
	ret = append(ret, funcRule(func(r *reader) (Token, bool) {
		if !r.atEOF() {
			return Token{}, false
		}
		return Token{
			Kind: TokenEOF,
			Span: r.span(0),
		}, true
	}))

	// comments, before "/"
	ret = append(ret, pattern(`//.*`, func(text string) Token {
		return Token{
			Kind: TokenComment,
			Text: text,
		}
	}))

	// keywords, matched as plain prefixes
	for _, kw := range keywords {
		ret = append(ret, exactRule{
			exact: kw.Text,
			token: Token{
				Kind:    TokenKeyword,
				Keyword: kw.Keyword,
			},
		})
	}

	// two characters, before their one character prefixes
	for _, kind := range []TokenKind{
		TokenEqEq, TokenLe, TokenGe, TokenNe, TokenDotDot, TokenAndAnd, TokenOrOr,
		TokenGtGt, TokenLtLt, TokenPlusEq, TokenMinusEq, TokenStarEq, TokenSlashEq,
		TokenPercentEq, TokenCaretEq, TokenAndEq, TokenOrEq,
	} {
		ret = append(ret, exact(operatorText[kind], kind))
	}

	// one character
	for _, kind := range []TokenKind{
		TokenEq, TokenLt, TokenGt, TokenNot, TokenDot, TokenComma, TokenColon,
		TokenSemiColon, TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent,
		TokenCaret, TokenAnd, TokenOr,
	} {
		ret = append(ret, exact(operatorText[kind], kind))
	}
	for _, delim := range []Delim{
		{Open, Paren}, {Open, Brace}, {Open, Bracket},
		{Close, Paren}, {Close, Brace}, {Close, Bracket},
	} {
		ret = append(ret, exactRule{
			exact: delim.String(),
			token: Token{
				Kind:  TokenDelim,
				Delim: delim,
			},
		})
	}

	// string
	ret = append(ret, pattern(`"[^"]*"`, func(text string) Token {
		return Token{
			Kind:    TokenLiteral,
			Literal: StringLiteral(text[1 : len(text)-1]),
		}
	}))

	// float, before integer
	ret = append(ret, pattern(`\d+\.\d+|\d+\.|\.\d+`, func(text string) Token {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Token{
				Kind: TokenUnknown,
				Text: text,
			}
		}
		return Token{
			Kind:    TokenLiteral,
			Literal: FloatLiteral(f),
		}
	}))

	// integer
	ret = append(ret, pattern(`\d+`, func(text string) Token {
		i, ok := new(big.Int).SetString(text, 10)
		if !ok || !InInt128(i) {
			return Token{
				Kind: TokenUnknown,
				Text: text,
			}
		}
		return Token{
			Kind:    TokenLiteral,
			Literal: IntegerLiteral(i),
		}
	}))

	// bool
	ret = append(ret,
		exactRule{
			exact: "true",
			token: Token{Kind: TokenLiteral, Literal: BoolLiteral(true)},
		},
		exactRule{
			exact: "false",
			token: Token{Kind: TokenLiteral, Literal: BoolLiteral(false)},
		},
	)

	// identifier
	ret = append(ret, pattern(`[a-zA-Z]\w*`, func(text string) Token {
		return Token{
			Kind: TokenIdentifier,
			Text: text,
		}
	}))

	// anything else, one rune at a time
	ret = append(ret, funcRule(func(r *reader) (Token, bool) {
		_, size := utf8.DecodeRuneInString(r.rest())
		return Token{
			Kind: TokenUnknown,
			Text: r.rest()[:size],
			Span: r.span(size),
		}, true
	}))

	return ret
}()
