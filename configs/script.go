package configs

import (
	"fmt"
	"reflect"

	"github.com/reusee/dscope"
	"github.com/reusee/mypl/interp"
)

// ScriptFork forks scope with the configurable values bound in env.
// A binding is used when its name equals the ConfigExpr of a configurable
// type provided by scope.
func ScriptFork(scope dscope.Scope, env *interp.Env) (dscope.Scope, error) {
	var defs []any
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		name := reflect.Zero(t).Interface().(Configurable).ConfigExpr()
		symbol, ok := env.Lookup(name)
		if !ok {
			continue
		}
		value, err := convertValue(symbol.Value, t)
		if err != nil {
			return scope, fmt.Errorf("config %s: %w", name, err)
		}
		defs = append(defs, provider(value))
	}
	if len(defs) == 0 {
		return scope, nil
	}
	return scope.Fork(defs...), nil
}

func provider(value reflect.Value) any {
	return reflect.MakeFunc(
		reflect.FuncOf(nil, []reflect.Type{value.Type()}, false),
		func([]reflect.Value) []reflect.Value {
			return []reflect.Value{value}
		},
	).Interface()
}

func convertValue(value interp.Value, t reflect.Type) (ret reflect.Value, err error) {
	ret = reflect.New(t).Elem()

	switch value := value.(type) {

	case interp.String:
		if t.Kind() == reflect.String {
			ret.SetString(string(value))
			return ret, nil
		}

	case interp.Bool:
		if t.Kind() == reflect.Bool {
			ret.SetBool(bool(value))
			return ret, nil
		}

	case interp.Integer:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if !value.Int.IsInt64() || ret.OverflowInt(value.Int.Int64()) {
				return ret, fmt.Errorf("%v overflows %v", value, t)
			}
			ret.SetInt(value.Int.Int64())
			return ret, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if value.Int.Sign() < 0 || !value.Int.IsUint64() || ret.OverflowUint(value.Int.Uint64()) {
				return ret, fmt.Errorf("%v overflows %v", value, t)
			}
			ret.SetUint(value.Int.Uint64())
			return ret, nil
		}

	case interp.Float:
		if t.Kind() == reflect.Float32 || t.Kind() == reflect.Float64 {
			ret.SetFloat(float64(value))
			return ret, nil
		}

	}

	return ret, fmt.Errorf("cannot use %s as %v", interp.Debug(value), t)
}
