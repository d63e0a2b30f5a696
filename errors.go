package econfig

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by LookupError when a path does not resolve.
	ErrNotFound = errors.New("setting not found")
	// ErrTypeMismatch is wrapped when a setting exists but cannot be extracted as the requested type.
	ErrTypeMismatch = errors.New("setting type mismatch")
	// ErrIndexOutOfRange is wrapped by SettingError when an element index is invalid.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrEmptySetting is wrapped by SettingError when a mandatory container has no elements.
	ErrEmptySetting = errors.New("setting has no elements")
	// ErrInvariant is wrapped by InvariantError.
	ErrInvariant = errors.New("invariant violated")
)

// LookupError reports a path that could not be resolved or extracted.
type LookupError struct {
	File string
	Path string
	Err  error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("error occurred in %s: unable to find %s", e.File, e.Path)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// ReadError reports a source that could not be read or parsed.
// Line is 0 when the failure happened before parsing.
type ReadError struct {
	File string
	Line int
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("error occurred in %s:%d", e.File, e.Line)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// SettingError reports a failed check on a setting that was found, located by the setting itself.
type SettingError struct {
	File string
	Line int
	Path string
	Err  error
}

func (e *SettingError) Error() string {
	return fmt.Sprintf("error occurred in %s:%d", e.File, e.Line)
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

// InvariantError reports misuse of the accessors, such as a nil handle,
// rather than a problem with configuration content.
type InvariantError struct {
	Op  string
	Err error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("econfig.%s: %v", e.Op, e.Err)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func invariant(op, format string, args ...any) *InvariantError {
	return &InvariantError{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{ErrInvariant}, args...)...)}
}
