package config

import "time"

// Option overrides a single field of the settings built by [TestSettings].
type Option func(*Settings)

// TestSettings builds testing-variant settings for isolated test
// construction. It never consults the [Loader] cache nor the process
// environment; overrides are applied in order. It panics if the defaults
// cannot be built.
func TestSettings(overrides ...Option) *Settings {
	settings, err := defaultsFor(Testing)
	if err != nil {
		panic(err)
	}
	for _, override := range overrides {
		override(&settings)
	}

	return &settings
}

func WithDebug(debug bool) Option {
	return func(s *Settings) { s.Debug = debug }
}

func WithHost(host string) Option {
	return func(s *Settings) { s.Host = host }
}

func WithPort(port int) Option {
	return func(s *Settings) { s.Port = port }
}

func WithAPIPrefix(prefix string) Option {
	return func(s *Settings) { s.APIPrefix = prefix }
}

func WithCORSAllowAllOrigins(allow bool) Option {
	return func(s *Settings) { s.CORSAllowAllOrigins = allow }
}

func WithProjectName(name string) Option {
	return func(s *Settings) { s.ProjectName = name }
}

func WithProjectVersion(version string) Option {
	return func(s *Settings) { s.ProjectVersion = version }
}

func WithEnvironment(env Environment) Option {
	return func(s *Settings) { s.Environment = env }
}

func WithLog(log Log) Option {
	return func(s *Settings) { s.Log = log }
}

// WithHTTPClient overrides the outbound client timeout and retry budget.
func WithHTTPClient(timeout time.Duration, maxRetries int, verifySSL bool) Option {
	return func(s *Settings) {
		s.HTTPClient = HTTPClient{Timeout: timeout, MaxRetries: maxRetries, VerifySSL: verifySSL}
	}
}

func WithMetrics(enabled bool) Option {
	return func(s *Settings) { s.Metrics.Enabled = enabled }
}
