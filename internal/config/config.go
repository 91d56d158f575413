// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Environment names the deployment mode the service runs in. Each value
// selects a settings variant with its own defaults (see variants.go).
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment converts raw into a known [Environment].
// Returns [ErrUnknownEnvironment] for any other value.
func ParseEnvironment(raw string) (Environment, error) {
	switch e := Environment(raw); e {
	case Development, Testing, Staging, Production:
		return e, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEnvironment, raw)
	}
}

// String implements [fmt.Stringer].
func (e Environment) String() string {
	return string(e)
}

// Settings is the top-level configuration container of the service. It is
// populated from environment variables (and an optional .env file) on top
// of the defaults of the selected [Environment] variant.
//
// Struct tags:
//   - env       : environment variable name (caarlos0/env).
//   - envPrefix : prefix applied to the nested struct's env lookups.
//   - validate  : go-playground/validator rules checked after loading.
type Settings struct {
	// Debug enables debug behaviour of the HTTP layer (profiler routes,
	// panic stack traces).
	// Env: DEBUG
	Debug bool `env:"DEBUG"`

	// Testing is set by the testing variant only.
	// Env: TESTING
	Testing bool `env:"TESTING"`

	// Host is the interface the HTTP server binds to.
	// Env: API_HOST
	Host string `env:"API_HOST" validate:"required"`

	// Port is the TCP port the HTTP server binds to.
	// Env: API_PORT
	Port int `env:"API_PORT" validate:"min=1,max=65535"`

	// APIPrefix is the path every API route is mounted under (e.g. "/api").
	// Env: API_PREFIX
	APIPrefix string `env:"API_PREFIX" validate:"omitempty,startswith=/,endsnotwith=/"`

	// CORSAllowAllOrigins attaches a wildcard cross-origin policy when true.
	// Env: CORS_ALLOW_ALL_ORIGINS
	CORSAllowAllOrigins bool `env:"CORS_ALLOW_ALL_ORIGINS"`

	// ProjectName is the human-readable service name.
	// Env: PROJECT_NAME
	ProjectName string `env:"PROJECT_NAME" validate:"required"`

	// ProjectVersion is the calendar version of the service (e.g. "2025.01").
	// Env: PROJECT_VERSION
	ProjectVersion string `env:"PROJECT_VERSION" validate:"required"`

	// Environment is the deployment mode the settings were built for.
	// Env: ENVIRONMENT
	Environment Environment `env:"ENVIRONMENT" validate:"oneof=development testing staging production"`

	Log        Log        `envPrefix:"LOG_"`
	HTTPClient HTTPClient `envPrefix:"HTTP_CLIENT_"`
	Server     Server     `envPrefix:"SERVER_"`
	Metrics    Metrics    `envPrefix:"METRICS_"`
}

// Log holds the configuration of the process log sink.
type Log struct {
	// Level is the minimum level written by the primary sink.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"oneof=trace debug info warn warning error critical fatal panic disabled"`

	// Format selects "json" or human-readable "console" output.
	// Env: LOG_FORMAT
	Format string `env:"FORMAT" validate:"oneof=json console"`

	// File is the path of a rotating log file. Empty means stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// MaxSizeMB is the size in megabytes at which the file is rotated.
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB" validate:"min=0"`

	// MaxAgeDays is how long rotated files are retained.
	// Env: LOG_MAX_AGE_DAYS
	MaxAgeDays int `env:"MAX_AGE_DAYS" validate:"min=0"`

	// MaxBackups caps the number of rotated files kept. Zero keeps all.
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS" validate:"min=0"`

	// Compress gzips rotated files.
	// Env: LOG_COMPRESS
	Compress bool `env:"COMPRESS"`
}

// HTTPClient holds the settings of the shared outbound HTTP client.
type HTTPClient struct {
	// Timeout is the default per-attempt request timeout.
	// Env: HTTP_CLIENT_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"gt=0"`

	// MaxRetries is the maximum number of attempts per logical request.
	// Env: HTTP_CLIENT_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES" validate:"min=1"`

	// VerifySSL enables TLS certificate verification.
	// Env: HTTP_CLIENT_VERIFY_SSL
	VerifySSL bool `env:"VERIFY_SSL"`
}

// Server holds inbound HTTP server timeouts.
type Server struct {
	// ReadHeaderTimeout bounds the time allowed to read request headers.
	// Env: SERVER_READ_HEADER_TIMEOUT
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" validate:"gt=0"`

	// ShutdownTimeout bounds the graceful shutdown of the server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`
}

// Metrics controls the Prometheus endpoint.
type Metrics struct {
	// Enabled mounts the metrics handler on the root router.
	// Env: METRICS_ENABLED
	Enabled bool `env:"ENABLED"`

	// Path is where the metrics handler is mounted.
	// Env: METRICS_PATH
	Path string `env:"PATH" validate:"startswith=/"`
}

// IsDevelopment reports whether the settings belong to the development variant.
func (s *Settings) IsDevelopment() bool { return s.Environment == Development }

// IsTesting reports whether the settings belong to the testing variant.
func (s *Settings) IsTesting() bool { return s.Environment == Testing }

// IsStaging reports whether the settings belong to the staging variant.
func (s *Settings) IsStaging() bool { return s.Environment == Staging }

// IsProduction reports whether the settings belong to the production variant.
func (s *Settings) IsProduction() bool { return s.Environment == Production }

// Address returns the "host:port" pair the HTTP server listens on.
func (s *Settings) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// APIURL returns the full base URL of the API, including the path prefix.
func (s *Settings) APIURL() string {
	return fmt.Sprintf("http://%s:%d%s", s.Host, s.Port, s.APIPrefix)
}
