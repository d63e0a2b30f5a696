// Package logging builds the log/slog loggers used by econfig and its command.
//
// Records go to the writer passed to NewLogger as JSON by default, or as
// logfmt-style text when Format is "text". Levels are case-insensitive and
// fall back to info when empty or unknown.
package logging
