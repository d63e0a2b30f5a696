package econfig

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the module version reported by the econfig command, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// BuildInfo returns the version line printed by the econfig command.
func BuildInfo() string {
	return Version + " (compiled " + CompiledAt + ")"
}
