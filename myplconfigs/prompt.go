package myplconfigs

import (
	"github.com/reusee/mypl/cmds"
	"github.com/reusee/mypl/configs"
	"github.com/reusee/mypl/vars"
)

type Prompt string

var _ configs.Configurable = Prompt("")

func (Prompt) ConfigExpr() string {
	return "prompt"
}

var promptFlag = cmds.Var[string]("-prompt", "REPL prompt")

func init() {
	flagOverrides = append(flagOverrides, func() (any, bool) {
		return func() Prompt {
			return Prompt(*promptFlag)
		}, *promptFlag != ""
	})
}

func (Module) Prompt(
	loader configs.Loader,
) Prompt {
	prompt, _ := first[string](loader, "prompt")
	return Prompt(vars.FirstNonZero(
		*promptFlag,
		prompt,
		"> ",
	))
}
