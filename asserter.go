package econfig

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

// DefaultExitCode is the status a failed mandatory check terminates the process with.
const DefaultExitCode = 1

// Asserter turns accessor errors into process termination.
//
// Check writes the error's diagnostic line to the output, logs it when a
// logger is configured, and calls the exit function. The exit function is
// expected not to return; if it does, the Must accessors return zero values.
// An *InvariantError is a programming error and panics instead.
type Asserter struct {
	output io.Writer
	exit   func(code int)
	code   int
	logger *slog.Logger
}

// NewAsserter creates an Asserter writing to os.Stderr and exiting through os.Exit with DefaultExitCode.
func NewAsserter(opts ...Option) *Asserter {
	asserter := &Asserter{
		output: os.Stderr,
		exit:   os.Exit,
		code:   DefaultExitCode,
		logger: nil,
	}

	for _, apply := range opts {
		apply(asserter)
	}

	return asserter
}

// Check does nothing for a nil error and terminates otherwise.
func (a *Asserter) Check(err error) {
	if err == nil {
		return
	}

	var invariantErr *InvariantError
	if errors.As(err, &invariantErr) {
		panic(err)
	}

	if a.logger != nil {
		a.logger.Error("mandatory configuration check failed", diagnosticAttrs(err)...)
	}

	_, _ = fmt.Fprintln(a.output, err.Error())

	a.exit(a.code)
}

func diagnosticAttrs(err error) []any {
	attrs := []any{slog.String("error", err.Error())}

	var (
		lookupErr  *LookupError
		readErr    *ReadError
		settingErr *SettingError
	)

	switch {
	case errors.As(err, &lookupErr):
		attrs = append(attrs, slog.String("file", lookupErr.File), slog.String("path", lookupErr.Path))
	case errors.As(err, &readErr):
		attrs = append(attrs, slog.String("file", readErr.File), slog.Int("line", readErr.Line))
	case errors.As(err, &settingErr):
		attrs = append(attrs,
			slog.String("file", settingErr.File),
			slog.Int("line", settingErr.Line),
			slog.String("path", settingErr.Path),
		)
	}

	if cause := errors.Unwrap(err); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}

	return attrs
}

//nolint:gochecknoglobals // process-wide default, like slog.Default.
var (
	fallbackAsserter = NewAsserter()
	defaultAsserter  atomic.Pointer[Asserter]
)

// Default returns the Asserter used by the package-level Must functions.
func Default() *Asserter {
	asserter := defaultAsserter.Load()
	if asserter == nil {
		return fallbackAsserter
	}

	return asserter
}

// SetDefault replaces the Asserter used by the package-level Must functions.
// A nil asserter restores the stderr/os.Exit default.
func SetDefault(asserter *Asserter) {
	defaultAsserter.Store(asserter)
}
