package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/reusee/mypl/ast"
	"github.com/reusee/mypl/logs"
	"github.com/reusee/mypl/session"
)

// input is a -i file or an -e source, kept in command line order.
type input struct {
	path   string
	source string
}

func (i input) load() (name string, source string, err error) {
	if i.path == "" {
		return "-e", i.source, nil
	}
	content, err := os.ReadFile(i.path)
	if err != nil {
		return "", "", err
	}
	return i.path, string(content), nil
}

type runner struct {
	session *session.Session
	out     io.Writer
	tokens  bool
	tree    bool
}

// runInputs runs inputs in order in the runner's session, stopping at the
// first failure.
func (r *runner) runInputs(ctx context.Context, logger logs.Logger, inputs []input) error {
	for _, in := range inputs {
		name, source, err := in.load()
		if err != nil {
			return err
		}
		logger.DebugContext(ctx, "input", "name", name, "len", len(source))
		if err := r.run(ctx, name, source); err != nil {
			return err
		}
	}
	return nil
}

// run executes source, or only dumps it when a dump mode is on.
func (r *runner) run(ctx context.Context, name string, source string) error {
	if !r.tokens && !r.tree {
		return r.session.Run(ctx, name, source)
	}
	if r.tokens {
		r.writeTokens(source)
	}
	if r.tree {
		if err := r.writeTree(source); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) writeTokens(source string) {
	for _, token := range r.session.Tokens(source) {
		fmt.Fprintf(r.out, "%#v\n", token)
	}
}

func (r *runner) writeTree(source string) error {
	stmts, err := r.session.Tree(source)
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, ast.Dump(stmts))
	fmt.Fprint(r.out, ast.Format(stmts))
	return nil
}
