package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/interp"
	"github.com/reusee/mypl/lex"
	"github.com/reusee/mypl/logs"
	"github.com/reusee/mypl/parse"
)

// Session owns one environment for the whole run. Chunks passed to Run see
// the bindings of earlier chunks. A Session is not safe for concurrent use.
type Session struct {
	env         *interp.Env
	interpreter *interp.Interpreter
	out         io.Writer
	logger      *slog.Logger
	newSpan     logs.NewSpan
	echo        bool
}

type Option func(*Session)

// Output sets where print statements and echoed values are written.
func Output(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

func Logger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// Spans makes every Run open a log span.
func Spans(newSpan logs.NewSpan) Option {
	return func(s *Session) {
		s.newSpan = newSpan
	}
}

// Echo writes the debug form of each expression statement value.
func Echo(echo bool) Option {
	return func(s *Session) {
		s.echo = echo
	}
}

func Env(env *interp.Env) Option {
	return func(s *Session) {
		s.env = env
	}
}

func New(opts ...Option) *Session {
	s := &Session{
		out: io.Discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.env == nil {
		s.env = interp.NewEnv()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	s.interpreter = interp.New(s.env, s.out)
	return s
}

func (s *Session) Env() *interp.Env {
	return s.env
}

func (s *Session) Tokens(source string) []lex.Token {
	return lex.Tokenize(source)
}

func (s *Session) Tree(source string) ([]ast.Stmt, error) {
	return parse.Source(source)
}

// Run parses the whole chunk before executing any of it, so a syntax error
// has no effects. Execution stops at the first runtime error; effects of the
// statements before it are kept.
func (s *Session) Run(ctx context.Context, name string, source string) error {
	if s.newSpan != nil {
		ctx, _ = s.newSpan(ctx, "")
	}
	src := lex.NewSource(name, source)

	stmts, err := parse.New(lex.Tokenize(source)).Parse()
	if err != nil {
		var parseErr *parse.Error
		if errors.As(err, &parseErr) {
			err = lex.WithSpan(err, parseErr.Span(), src)
		}
		s.logger.InfoContext(ctx, "parse",
			"source", name,
			"error", err,
		)
		return logs.WrapSpan(ctx, err)
	}
	s.logger.DebugContext(ctx, "parsed",
		"source", name,
		"statements", len(stmts),
	)

	for i, stmt := range stmts {
		value, err := s.interpreter.Exec(stmt)
		if err != nil {
			err = fmt.Errorf("%s: statement %d: %w", name, i+1, err)
			s.logger.InfoContext(ctx, "execute",
				"source", name,
				"statement", i+1,
				"error", err,
			)
			return logs.WrapSpan(ctx, err)
		}
		if s.echo && value != nil {
			if _, err := fmt.Fprintln(s.out, interp.Debug(value)); err != nil {
				return err
			}
		}
	}

	s.logger.DebugContext(ctx, "executed",
		"source", name,
		"bindings", s.env.Len(),
	)
	return nil
}
