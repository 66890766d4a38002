package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/mypl/interp"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) (starlark.Value, error) {
	switch v := v.(type) {

	case nil:
		return starlark.None, nil

	case interp.Integer:
		if v.Int == nil {
			return starlark.None, nil
		}
		return starlark.MakeBigInt(v.Int), nil
	case interp.Float:
		return starlark.Float(v), nil
	case interp.String:
		return starlark.String(v), nil
	case interp.Bool:
		return starlark.Bool(v), nil

	}

	if reflect.ValueOf(v).Kind() == reflect.Func {
		return starlarkutil.MakeFunc("", v), nil
	}

	return nil, fmt.Errorf("unsupported type for starlark: %T", v)
}
