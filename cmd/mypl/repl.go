package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/mypl/debugs"
	"github.com/reusee/mypl/interp"
)

func runREPL(
	ctx context.Context,
	r *runner,
	prompt string,
	historyFile string,
	tap debugs.Tap,
) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	h := &repl{
		runner: r,
		tap:    tap,
	}
	for {
		line, err := rl.Readline()
		if err != nil { // Ctrl-C or Ctrl-D
			return nil
		}
		if h.handle(ctx, line) {
			return nil
		}
	}
}

type repl struct {
	runner *runner
	tap    debugs.Tap
}

// handle processes one line and reports whether the REPL should quit.
// Errors are printed and the session continues.
func (r *repl) handle(ctx context.Context, line string) (quit bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	out := r.runner.out

	command, arg, _ := strings.Cut(line, " ")
	switch command {

	case ":quit", ":q":
		return true

	case ":help":
		fmt.Fprint(out, replHelp)

	case ":env":
		for name, symbol := range r.runner.session.Env().All() {
			fmt.Fprintf(out, "%s %s = %s\n", symbol.Mutability, name, interp.Debug(symbol.Value))
		}

	case ":tokens":
		r.runner.writeTokens(arg)

	case ":ast":
		if err := r.runner.writeTree(arg); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}

	case ":tap":
		if r.tap == nil {
			break
		}
		err := r.tap(ctx, "repl", debugs.EnvGlobals(
			r.runner.session.Env(),
			func(source string) string {
				if err := r.runner.session.Run(ctx, "<tap>", source); err != nil {
					return err.Error()
				}
				return ""
			},
		))
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}

	default:
		if strings.HasPrefix(command, ":") {
			fmt.Fprintf(out, "unknown command: %s\n", command)
			break
		}
		if err := r.runner.session.Run(ctx, "<repl>", line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}

	}
	return false
}

const replHelp = `:env             list bindings
:tokens <source> print tokens
:ast <source>    print syntax tree
:tap             inspect bindings in a starlark REPL
:quit            exit
`
