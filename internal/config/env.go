// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environ using the caarlos0/env library.
// Struct fields are mapped via their `env` and `envPrefix` tags defined on
// [Settings] and its nested types. Fields whose variable is absent keep the
// value cfg already holds, which is how variant defaults survive parsing.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// readEnvFile loads the key/value pairs of a .env file with godotenv without
// touching the process environment.
//
// When required is false a missing file yields an empty map; otherwise it
// yields [ErrEnvFileNotFound].
func readEnvFile(path string, required bool) (map[string]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return map[string]string{}, nil
		}
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrEnvFileNotFound, path)
		}
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error parsing env file %s: %w", path, err)
	}

	return values, nil
}

// environToMap converts "KEY=VALUE" pairs as returned by [os.Environ].
func environToMap(pairs []string) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		out[key] = value
	}

	return out
}
