package configs

import (
	"errors"
	"fmt"
)

// First decodes path from the most specific file defining it. ok is false
// when no file does.
func First[T any](loader Loader, path string) (value T, ok bool, err error) {
	err = loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		return value, false, nil
	}
	if err != nil {
		return value, false, fmt.Errorf("config %s: %w", path, err)
	}
	return value, true, nil
}
