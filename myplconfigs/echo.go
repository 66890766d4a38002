package myplconfigs

import (
	"fmt"

	"github.com/reusee/mypl/cmds"
	"github.com/reusee/mypl/configs"
	"github.com/reusee/mypl/vars"
)

// Echo makes the REPL write the value of each expression statement.
type Echo bool

var _ configs.Configurable = Echo(false)

func (Echo) ConfigExpr() string {
	return "echo"
}

// nil when -echo is not given
var echoFlag *bool

func init() {
	cmds.Define("-echo", cmds.Func(func(str string) error {
		echo, ok := vars.ParseBool(str)
		if !ok {
			return fmt.Errorf("not a boolean: %q", str)
		}
		echoFlag = &echo
		return nil
	}).Desc("echo expression values in the REPL"))
	cmds.Define("-echo.", cmds.Func(func() {
		echoFlag = nil
	}).Desc("reset -echo"))

	flagOverrides = append(flagOverrides, func() (any, bool) {
		if echoFlag == nil {
			return nil, false
		}
		echo := Echo(*echoFlag)
		return func() Echo {
			return echo
		}, true
	})
}

func (Module) Echo(
	loader configs.Loader,
) Echo {
	if echoFlag != nil {
		return Echo(*echoFlag)
	}
	echo, ok := first[bool](loader, "echo")
	if !ok {
		return true
	}
	return Echo(echo)
}
