package cli

import (
	"fmt"

	"github.com/0xalexb/econfig/logging"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Environment holds the defaults the command takes from the process environment.
// Command line flags override them.
type Environment struct {
	Logging  logging.LoggerConfig `envPrefix:"ECONFIG_"`
	ExitCode int                  `env:"ECONFIG_EXIT_CODE" envDefault:"1"`
}

// LoadEnvironment loads the given .env files, without overriding variables
// that are already set, and parses the environment.
func LoadEnvironment(files ...string) (Environment, error) {
	if len(files) > 0 {
		err := godotenv.Load(files...)
		if err != nil {
			return Environment{}, fmt.Errorf("loading env files: %w", err)
		}
	}

	environment, err := env.ParseAs[Environment]()
	if err != nil {
		return Environment{}, fmt.Errorf("parsing environment: %w", err)
	}

	return environment, nil
}
