package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the span of ctx to err, if any.
func WrapSpan(ctx context.Context, err error) error {
	span, ok := SpanFromContext(ctx)
	if !ok || err == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", span))
}
