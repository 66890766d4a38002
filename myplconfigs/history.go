package myplconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/mypl/cmds"
	"github.com/reusee/mypl/configs"
)

// HistoryFile is where the REPL keeps line history. Empty disables history.
type HistoryFile string

var _ configs.Configurable = HistoryFile("")

func (HistoryFile) ConfigExpr() string {
	return "history_file"
}

var historyFlag = cmds.Var[string]("-history", "REPL history file")

func init() {
	flagOverrides = append(flagOverrides, func() (any, bool) {
		return func() HistoryFile {
			return HistoryFile(*historyFlag)
		}, *historyFlag != ""
	})
}

func (Module) HistoryFile(
	loader configs.Loader,
) HistoryFile {
	if *historyFlag != "" {
		return HistoryFile(*historyFlag)
	}
	// an empty history_file in config disables history
	if path, ok := first[string](loader, "history_file"); ok {
		return HistoryFile(path)
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return HistoryFile(filepath.Join(dir, "mypl_history"))
	}
	return ""
}
