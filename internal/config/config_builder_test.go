package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty environ.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.environ)
	assert.Empty(t, b.environment)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil settings.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EnvironOverridesVariant verifies that environ values win over
// the variant defaults.
func TestBuild_EnvironOverridesVariant(t *testing.T) {
	b := newConfigBuilder().
		withEnviron([]string{"DEBUG=false", "API_PORT=8181"}).
		withEnvironment("development")

	cfg, err := b.build()
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.True(t, cfg.CORSAllowAllOrigins)
	assert.Equal(t, 8181, cfg.Port)
}

// TestBuild_ResolvedEnvironmentWins verifies that ENVIRONMENT in environ does
// not overwrite an explicitly resolved environment.
func TestBuild_ResolvedEnvironmentWins(t *testing.T) {
	cfg, err := newConfigBuilder().
		withEnviron([]string{"ENVIRONMENT=staging"}).
		withEnvironment("production").
		build()

	require.NoError(t, err)
	assert.Equal(t, Production, cfg.Environment)
}

// TestBuild_InvalidSettings verifies that validation failures surface as
// ErrInvalidSettings.
func TestBuild_InvalidSettings(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
	}{
		{"port out of range", []string{"API_PORT=70000"}},
		{"prefix without leading slash", []string{"API_PREFIX=api"}},
		{"prefix with trailing slash", []string{"API_PREFIX=/api/"}},
		{"zero retries", []string{"HTTP_CLIENT_MAX_RETRIES=0"}},
		{"unknown log format", []string{"LOG_FORMAT=xml"}},
		{"metrics path without slash", []string{"METRICS_PATH=metrics"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := newConfigBuilder().
				withEnviron(tt.environ).
				withEnvironment("").
				build()

			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

// TestValidate_EmptyPrefixAllowed verifies that an empty API prefix mounts
// routes at the root and passes validation.
func TestValidate_EmptyPrefixAllowed(t *testing.T) {
	cfg := TestSettings(WithAPIPrefix(""))
	assert.NoError(t, cfg.validate())
}

// ── withEnvFile ───────────────────────────────────────────────────────────────

// TestWithEnvFile_ReturnsBuilder verifies the fluent interface.
func TestWithEnvFile_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnvFile(""))
}

// TestWithEnvFile_AddsValues verifies that file values land in environ.
func TestWithEnvFile_AddsValues(t *testing.T) {
	path := writeEnvFile(t, "API_HOST=10.0.0.1\nENVIRONMENT=testing\n")

	b := newConfigBuilder().withEnvFile(path)

	require.NoError(t, b.err)
	assert.Equal(t, "10.0.0.1", b.environ["API_HOST"])
	assert.Equal(t, "testing", b.environ["ENVIRONMENT"])
}

// TestWithEnvFile_SetsError_WhenFileNotFound verifies that a missing explicit
// file sets b.err.
func TestWithEnvFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder().withEnvFile("/nonexistent/app.env")

	assert.ErrorIs(t, b.err, ErrEnvFileNotFound)
}

// ── withEnviron ───────────────────────────────────────────────────────────────

// TestWithEnviron_OverridesFile verifies that process variables win over
// env file values.
func TestWithEnviron_OverridesFile(t *testing.T) {
	path := writeEnvFile(t, "API_HOST=10.0.0.1\n")

	b := newConfigBuilder().
		withEnvFile(path).
		withEnviron([]string{"API_HOST=10.0.0.2"})

	assert.Equal(t, "10.0.0.2", b.environ["API_HOST"])
}

// ── withEnvironment ───────────────────────────────────────────────────────────

// TestWithEnvironment_Precedence verifies explicit > environ > development.
func TestWithEnvironment_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		environ  []string
		explicit string
		want     Environment
	}{
		{"default", nil, "", Development},
		{"from environ", []string{"ENVIRONMENT=staging"}, "", Staging},
		{"explicit wins", []string{"ENVIRONMENT=staging"}, "production", Production},
		{"explicit only", nil, "testing", Testing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder().withEnviron(tt.environ).withEnvironment(tt.explicit)

			require.NoError(t, b.err)
			assert.Equal(t, tt.want, b.environment)
		})
	}
}

// TestWithEnvironment_Unknown verifies that unknown names set b.err.
func TestWithEnvironment_Unknown(t *testing.T) {
	b := newConfigBuilder().withEnviron([]string{"ENVIRONMENT=qa"}).withEnvironment("")
	assert.ErrorIs(t, b.err, ErrUnknownEnvironment)

	b = newConfigBuilder().withEnvironment("prod")
	assert.ErrorIs(t, b.err, ErrUnknownEnvironment)
}
