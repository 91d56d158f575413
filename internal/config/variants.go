package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// baseDefaults returns the defaults shared by every environment variant.
func baseDefaults() Settings {
	return Settings{
		Host:           "127.0.0.1",
		Port:           8000,
		APIPrefix:      "/api",
		ProjectName:    "HamkeeFastAPI",
		ProjectVersion: "2025.01",
		Environment:    Development,
		Log: Log{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  10,
			MaxAgeDays: 7,
			Compress:   true,
		},
		HTTPClient: HTTPClient{
			Timeout:    5 * time.Second,
			MaxRetries: 5,
			VerifySSL:  true,
		},
		Server: Server{
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Metrics: Metrics{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// variants maps every environment to the fields it overrides on top of
// [baseDefaults]. Zero-valued fields are filled from the base.
var variants = map[Environment]func() Settings{
	Development: func() Settings {
		return Settings{Debug: true, CORSAllowAllOrigins: true}
	},
	Testing: func() Settings {
		return Settings{Debug: true, Testing: true}
	},
	Staging: func() Settings {
		return Settings{}
	},
	// production keeps Debug and CORSAllowAllOrigins off, same as the base
	Production: func() Settings {
		return Settings{}
	},
}

// defaultsFor builds the complete default settings of env.
// Unknown environments fall back to the development variant.
func defaultsFor(env Environment) (Settings, error) {
	variant, ok := variants[env]
	if !ok {
		variant = variants[Development]
	}

	settings := variant()
	if err := mergo.Merge(&settings, baseDefaults()); err != nil {
		return Settings{}, fmt.Errorf("error merging %s defaults: %w", env, err)
	}
	settings.Environment = env

	return settings, nil
}
