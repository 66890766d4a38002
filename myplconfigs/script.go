package myplconfigs

import (
	"context"
	"os"
	"slices"

	"github.com/reusee/dscope"
	"github.com/reusee/mypl/configs"
	"github.com/reusee/mypl/session"
)

var scriptFilenames = []string{
	"init.mypl",
	".init.mypl",
}

// flagOverrides return a provider for each command line flag that was set.
var flagOverrides []func() (any, bool)

// ScriptFork runs the init scripts found in ConfigDirs, the most general
// first, then the ones listed by init_scripts. scope is forked with the
// configurable values they bind. Each script runs in its own environment and
// later scripts override earlier ones. Command line flags still take
// precedence.
func ScriptFork(ctx context.Context, scope dscope.Scope) (dscope.Scope, error) {
	dirs := slices.Clone(dscope.Get[ConfigDirs](scope))
	slices.Reverse(dirs)
	paths := existingFiles(dirs, scriptFilenames)

	// scripts listed in config files, the least specific file first
	var listed [][]string
	for list, err := range configs.All[[]string](dscope.Get[configs.Loader](scope), "init_scripts") {
		if err != nil {
			return scope, err
		}
		listed = append(listed, list)
	}
	slices.Reverse(listed)
	paths = slices.Concat(append([][]string{paths}, listed...)...)

	newSession := dscope.Get[session.NewSession](scope)
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return scope, err
		}
		s := newSession()
		if err := s.Run(ctx, path, string(content)); err != nil {
			return scope, err
		}
		scope, err = configs.ScriptFork(scope, s.Env())
		if err != nil {
			return scope, err
		}
	}

	var defs []any
	for _, override := range flagOverrides {
		if def, ok := override(); ok {
			defs = append(defs, def)
		}
	}
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}

	return scope, nil
}
