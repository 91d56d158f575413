package config

import (
	"fmt"

	"github.com/alecthomas/kingpin/v2"
)

// Flags carries the command-line arguments that select which settings the
// process loads.
type Flags struct {
	// EnvFile is the path of the .env file to read.
	EnvFile string
	// Environment overrides the ENVIRONMENT variable.
	Environment string
}

// ParseFlags parses args (without the program name).
//
// Flags:
//
//	-e/--env-file     path to a .env file
//	--environment     development|testing|staging|production
func ParseFlags(args []string) (*Flags, error) {
	flags := new(Flags)

	app := kingpin.New("hamkee-server", "Hamkee API server.")
	app.Flag("env-file", "Path to a .env file with settings.").
		Short('e').
		StringVar(&flags.EnvFile)
	app.Flag("environment", "Deployment environment, overrides ENVIRONMENT.").
		EnumVar(&flags.Environment,
			string(Development), string(Testing), string(Staging), string(Production))

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return flags, nil
}
