package main

import (
	"fmt"
	"os"

	"github.com/reusee/e5"
)

var wrap = e5.Wrap.With(e5.WrapStacktrace)

// ce exits on error.
func ce(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "%v\n", wrap(err))
	os.Exit(1)
}
