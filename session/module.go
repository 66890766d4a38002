package session

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/mypl/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}

// NewSession creates sessions logging to the scope logger and writing to
// Stdout. opts are applied after those defaults.
type NewSession func(opts ...Option) *Session

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	stdout Stdout,
) NewSession {
	return func(opts ...Option) *Session {
		return New(append([]Option{
			Logger(logger),
			Spans(newSpan),
			Output(stdout),
		}, opts...)...)
	}
}
