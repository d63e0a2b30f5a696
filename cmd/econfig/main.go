// Command econfig prints settings of YAML configuration files and fails with
// a one-line diagnostic when a mandatory setting is missing.
package main

import (
	"os"

	"github.com/0xalexb/econfig/internal/cli"
)

// Main runs the command and returns its exit status.
// It's exported to make it testable.
func Main() int {
	return cli.Execute(os.Args[1:], os.Stdout, os.Stderr)
}

func main() {
	os.Exit(Main())
}
