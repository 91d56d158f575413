package config

import (
	"errors"
	"fmt"
	"maps"
)

// defaultEnvFile is read when no env file is requested explicitly. Its
// absence is not an error.
const defaultEnvFile = ".env"

type configBuilder struct {
	environ     map[string]string
	environment Environment
	err         error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		environ: make(map[string]string),
	}
}

func (b *configBuilder) build() (*Settings, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	settings, err := defaultsFor(b.environment)
	if err != nil {
		return nil, err
	}

	if err = parseEnv(&settings, b.environ); err != nil {
		return nil, err
	}
	// the resolved environment wins over whatever ENVIRONMENT holds
	settings.Environment = b.environment

	if err = settings.validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// withEnvFile layers the values of the env file at path. An empty path
// falls back to [defaultEnvFile], which may be missing.
func (b *configBuilder) withEnvFile(path string) *configBuilder {
	required := path != ""
	if !required {
		path = defaultEnvFile
	}

	values, err := readEnvFile(path, required)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	maps.Copy(b.environ, values)
	return b
}

// withEnviron layers "KEY=VALUE" pairs on top of previously added sources.
func (b *configBuilder) withEnviron(pairs []string) *configBuilder {
	maps.Copy(b.environ, environToMap(pairs))
	return b
}

// withEnvironment resolves the effective environment: explicit wins over
// the value discovered by a base parse of the sources, which wins over
// [Development].
func (b *configBuilder) withEnvironment(explicit string) *configBuilder {
	if explicit != "" {
		b.setEnvironment(explicit)
		return b
	}

	base := baseDefaults()
	if err := parseEnv(&base, b.environ); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.setEnvironment(string(base.Environment))
	return b
}

func (b *configBuilder) setEnvironment(raw string) {
	environment, err := ParseEnvironment(raw)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return
	}

	b.environment = environment
}
