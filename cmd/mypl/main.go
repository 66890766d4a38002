package main

import (
	"context"
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/mypl/cmds"
	"github.com/reusee/mypl/debugs"
	"github.com/reusee/mypl/logs"
	"github.com/reusee/mypl/modes"
	"github.com/reusee/mypl/myplconfigs"
	"github.com/reusee/mypl/session"
	"golang.org/x/term"
)

var (
	inputs     []input
	dumpTokens = cmds.Switch("-tokens", "print tokens instead of running")
	dumpTree   = cmds.Switch("-ast", "print the syntax tree instead of running")
)

func init() {
	file := func(path string) {
		inputs = append(inputs, input{path: path})
	}
	cmds.Define("-i", cmds.Func(file).Desc("run a source file"))
	cmds.Define("-input", cmds.Func(file).Desc("run a source file, same as -i"))
	cmds.Define("-e", cmds.Func(func(source string) {
		inputs = append(inputs, input{source: source})
	}).Desc("run a source string"))
}

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)
	scope, err := myplconfigs.ScriptFork(ctx, scope)
	ce(err)

	scope.Call(func(
		logger logs.Logger,
		newSession session.NewSession,
		prompt myplconfigs.Prompt,
		historyFile myplconfigs.HistoryFile,
		echo myplconfigs.Echo,
		tap debugs.Tap,
	) {
		r := &runner{
			session: newSession(),
			out:     os.Stdout,
			tokens:  *dumpTokens,
			tree:    *dumpTree,
		}

		if len(inputs) > 0 {
			if err := r.runInputs(ctx, logger, inputs); err != nil {
				fatal(err)
			}
			return
		}

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			content, err := io.ReadAll(os.Stdin)
			ce(err)
			if err := r.run(ctx, "<stdin>", string(content)); err != nil {
				fatal(err)
			}
			return
		}

		r.session = newSession(session.Echo(bool(echo)))
		ce(runREPL(ctx, r, string(prompt), string(historyFile), tap))
	})
}

// fatal reports a program error and exits. Program errors carry their own
// location, so no stack trace is attached.
func fatal(err error) {
	os.Stderr.WriteString(err.Error())
	os.Stderr.WriteString("\n")
	os.Exit(1)
}
