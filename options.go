package econfig

import (
	"io"
	"log/slog"
)

// Option defines a function type for configuring an Asserter.
type Option func(*Asserter)

// WithOutput sets where diagnostic lines are written. Defaults to os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(a *Asserter) {
		a.output = w
	}
}

// WithExitFunc replaces os.Exit, for embedding or tests.
func WithExitFunc(exit func(code int)) Option {
	return func(a *Asserter) {
		a.exit = exit
	}
}

// WithExitCode sets the exit status of a failed check. Non-positive codes are ignored.
func WithExitCode(code int) Option {
	return func(a *Asserter) {
		if code > 0 {
			a.code = code
		}
	}
}

// WithLogger makes the Asserter log a structured record before terminating.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Asserter) {
		a.logger = logger
	}
}
