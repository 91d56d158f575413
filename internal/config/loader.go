// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"sync"
)

type cacheKey struct {
	envFile     string
	environment string
}

// Loader produces validated [Settings] and caches them by the
// (envFile, environment) argument pair. It replaces a process-wide
// settings singleton: construct one at startup and pass it around.
type Loader struct {
	environ func() []string

	mu    sync.Mutex
	cache map[cacheKey]*Settings
}

// LoaderOption customises a [Loader].
type LoaderOption func(*Loader)

// WithEnviron replaces the process environment source ([os.Environ] by
// default) with fn.
func WithEnviron(fn func() []string) LoaderOption {
	return func(l *Loader) {
		l.environ = fn
	}
}

// NewLoader constructs an empty [Loader].
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		environ: os.Environ,
		cache:   make(map[cacheKey]*Settings),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load returns the settings for the given env file and environment
// override. Both arguments are optional:
//   - envFile: path of a .env file; empty reads ".env" when present.
//   - environment: explicit environment name; empty uses ENVIRONMENT from
//     the process environment or the env file, then "development".
//
// Process environment variables take precedence over env file values.
// Successful results are cached: repeated calls with the same arguments
// return the same *Settings without reading the environment again.
// Failures are not cached.
func (l *Loader) Load(envFile, environment string) (*Settings, error) {
	key := cacheKey{envFile: envFile, environment: environment}

	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.cache[key]; ok {
		return cached, nil
	}

	settings, err := newConfigBuilder().
		withEnvFile(envFile).
		withEnviron(l.environ()).
		withEnvironment(environment).
		build()
	if err != nil {
		return nil, err
	}

	l.cache[key] = settings
	return settings, nil
}
