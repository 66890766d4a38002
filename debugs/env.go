package debugs

import "github.com/reusee/mypl/interp"

// EnvGlobals returns the bindings of env as tap globals. When run is not nil
// it is bound as mypl, so the tap can evaluate source in the same session.
func EnvGlobals(env *interp.Env, run func(source string) string) map[string]any {
	globals := make(map[string]any, env.Len()+1)
	for name, symbol := range env.All() {
		globals[name] = symbol.Value
	}
	if run != nil {
		globals["mypl"] = run
	}
	return globals
}
