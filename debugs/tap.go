package debugs

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/reusee/mypl/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin with globals predeclared. It returns
// when stdin reaches EOF, or at once if a global has no starlark form.
type Tap func(ctx context.Context, what string, globals map[string]any) error

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) error {
		dict, err := toStringDict(globals)
		if err != nil {
			return err
		}

		names := slices.Sorted(maps.Keys(globals))
		logger.InfoContext(ctx, "tap: "+what,
			"globals", names,
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, thread, dict)
		return nil
	}
}

func toStringDict(globals map[string]any) (starlark.StringDict, error) {
	ret := make(starlark.StringDict, len(globals))
	for name, value := range globals {
		v, err := toStarlarkValue(value)
		if err != nil {
			return nil, fmt.Errorf("global %s: %w", name, err)
		}
		ret[name] = v
	}
	return ret, nil
}
