package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func environOf(pairs ...string) LoaderOption {
	return WithEnviron(func() []string { return pairs })
}

// ── Load ──────────────────────────────────────────────────────────────────────

// TestLoad_DefaultsToDevelopment verifies the development variant is used
// when nothing selects an environment.
func TestLoad_DefaultsToDevelopment(t *testing.T) {
	loader := NewLoader(environOf())

	cfg, err := loader.Load(missingEnvFileDir(t), "")
	require.Error(t, err, "explicit missing env file must fail")
	assert.Nil(t, cfg)

	cfg, err = loader.Load("", "")
	require.NoError(t, err)
	assert.Equal(t, Development, cfg.Environment)
	assert.True(t, cfg.Debug)
	assert.True(t, cfg.CORSAllowAllOrigins)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, 8000, cfg.Port)
}

// TestLoad_ProductionFromEnviron verifies ENVIRONMENT=production selects a
// variant with debug and CORS disabled.
func TestLoad_ProductionFromEnviron(t *testing.T) {
	loader := NewLoader(environOf("ENVIRONMENT=production"))

	cfg, err := loader.Load("", "")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.CORSAllowAllOrigins)
	assert.False(t, cfg.Testing)
}

// TestLoad_ExplicitEnvironmentWins verifies the explicit argument beats the
// ENVIRONMENT variable.
func TestLoad_ExplicitEnvironmentWins(t *testing.T) {
	loader := NewLoader(environOf("ENVIRONMENT=production"))

	cfg, err := loader.Load("", "testing")
	require.NoError(t, err)
	assert.True(t, cfg.IsTesting())
	assert.True(t, cfg.Testing)
	assert.True(t, cfg.Debug)
}

// TestLoad_CachesByArguments verifies identical arguments return the same
// instance and different arguments return different ones.
func TestLoad_CachesByArguments(t *testing.T) {
	loader := NewLoader(environOf())

	first, err := loader.Load("", "staging")
	require.NoError(t, err)
	second, err := loader.Load("", "staging")
	require.NoError(t, err)
	other, err := loader.Load("", "production")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.NotSame(t, first, other)
}

// TestLoad_DoesNotReReadEnviron verifies cached results ignore later
// environment changes.
func TestLoad_DoesNotReReadEnviron(t *testing.T) {
	calls := 0
	loader := NewLoader(WithEnviron(func() []string {
		calls++
		return []string{"API_PORT=9100"}
	}))

	_, err := loader.Load("", "")
	require.NoError(t, err)
	_, err = loader.Load("", "")
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

// TestLoad_EnvironOverridesEnvFile verifies process variables take
// precedence over env file values.
func TestLoad_EnvironOverridesEnvFile(t *testing.T) {
	path := writeEnvFile(t, "API_HOST=10.1.1.1\nAPI_PORT=7000\nENVIRONMENT=staging\n")
	loader := NewLoader(environOf("API_PORT=7001"))

	cfg, err := loader.Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, "10.1.1.1", cfg.Host)
	assert.Equal(t, 7001, cfg.Port)
	assert.Equal(t, Staging, cfg.Environment)
	assert.Equal(t, "10.1.1.1:7001", cfg.Address())
}

// TestLoad_UnknownEnvironment verifies the error surfaces and is not cached.
func TestLoad_UnknownEnvironment(t *testing.T) {
	loader := NewLoader(environOf())

	_, err := loader.Load("", "qa")
	require.ErrorIs(t, err, ErrUnknownEnvironment)

	_, err = loader.Load("", "qa")
	require.ErrorIs(t, err, ErrUnknownEnvironment)
	assert.Empty(t, loader.cache)
}

// TestLoad_InvalidSettings verifies validation errors from the environment.
func TestLoad_InvalidSettings(t *testing.T) {
	loader := NewLoader(environOf("API_PORT=0"))

	cfg, err := loader.Load("", "")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidSettings)
}

// ── variants ──────────────────────────────────────────────────────────────────

func TestDefaultsFor(t *testing.T) {
	tests := []struct {
		env       Environment
		wantDebug bool
		wantCORS  bool
		wantTest  bool
	}{
		{Development, true, true, false},
		{Testing, true, false, true},
		{Staging, false, false, false},
		{Production, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.env.String(), func(t *testing.T) {
			cfg, err := defaultsFor(tt.env)
			require.NoError(t, err)

			assert.Equal(t, tt.env, cfg.Environment)
			assert.Equal(t, tt.wantDebug, cfg.Debug)
			assert.Equal(t, tt.wantCORS, cfg.CORSAllowAllOrigins)
			assert.Equal(t, tt.wantTest, cfg.Testing)
			assert.Equal(t, "HamkeeFastAPI", cfg.ProjectName)
			assert.Equal(t, 5, cfg.HTTPClient.MaxRetries)
			assert.True(t, cfg.HTTPClient.VerifySSL)
			assert.NoError(t, cfg.validate())
		})
	}
}

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment("staging")
	require.NoError(t, err)
	assert.Equal(t, Staging, env)

	_, err = ParseEnvironment("Production")
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
}

func TestSettings_URLs(t *testing.T) {
	cfg := TestSettings(WithHost("localhost"), WithPort(8080), WithAPIPrefix("/api"))

	assert.Equal(t, "localhost:8080", cfg.Address())
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL())
}

// ── TestSettings ──────────────────────────────────────────────────────────────

// TestTestSettings_IgnoresEnvironment verifies process variables never leak
// into test settings.
func TestTestSettings_IgnoresEnvironment(t *testing.T) {
	t.Setenv("API_PORT", "1234")
	t.Setenv("ENVIRONMENT", "production")

	cfg := TestSettings()
	assert.Equal(t, 8000, cfg.Port)
	assert.True(t, cfg.IsTesting())
	assert.True(t, cfg.Debug)
}

// TestTestSettings_Overrides verifies overrides apply in order and each
// call returns a fresh value.
func TestTestSettings_Overrides(t *testing.T) {
	cfg := TestSettings(
		WithDebug(false),
		WithPort(9001),
		WithPort(9002),
		WithCORSAllowAllOrigins(true),
		WithProjectName("demo"),
		WithProjectVersion("2026.10"),
		WithHTTPClient(0, 2, false),
		WithMetrics(false),
	)

	assert.False(t, cfg.Debug)
	assert.Equal(t, 9002, cfg.Port)
	assert.True(t, cfg.CORSAllowAllOrigins)
	assert.Equal(t, "demo", cfg.ProjectName)
	assert.Equal(t, "2026.10", cfg.ProjectVersion)
	assert.Equal(t, HTTPClient{Timeout: 0, MaxRetries: 2, VerifySSL: false}, cfg.HTTPClient)
	assert.False(t, cfg.Metrics.Enabled)

	assert.NotSame(t, TestSettings(), TestSettings())
}

// TestTestSettings_MatchesTestingDefaults verifies the helper returns the
// testing variant exactly as defaultsFor builds it.
func TestTestSettings_MatchesTestingDefaults(t *testing.T) {
	want, err := defaultsFor(Testing)
	require.NoError(t, err)

	var got *Settings
	require.NotPanics(t, func() { got = TestSettings() })
	assert.Equal(t, want, *got)
}

func missingEnvFileDir(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent.env")
}
