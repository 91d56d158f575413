package httpclient

import (
	"slices"
	"time"
)

// Defaults applied by [New] to zero fields of [Config].
const (
	DefaultTimeout    = 5 * time.Second
	DefaultMaxRetries = 5
)

// Config is the immutable configuration of a [Client].
type Config struct {
	// DefaultTimeout bounds a single attempt unless the request sets its own.
	DefaultTimeout time.Duration
	// MaxRetries is the maximum number of attempts per request.
	MaxRetries int
	// InsecureSkipVerify disables TLS certificate verification. The zero
	// value verifies.
	InsecureSkipVerify bool
	// Retryable lists the failure kinds that trigger another attempt. A nil
	// slice means [DefaultRetryable]; an empty one disables retries.
	Retryable []FailureKind
}

// DefaultRetryable returns the failure kinds retried by default.
func DefaultRetryable() []FailureKind {
	return []FailureKind{ConnectTimeout, ReadTimeout, RemoteProtocolError}
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DefaultTimeout: DefaultTimeout,
		MaxRetries:     DefaultMaxRetries,
		Retryable:      DefaultRetryable(),
	}
}

// IsRetryable reports whether kind is in the retryable set.
func (c Config) IsRetryable(kind FailureKind) bool {
	return slices.Contains(c.Retryable, kind)
}

func (c Config) normalized() Config {
	if c.DefaultTimeout <= 0 {
		c.DefaultTimeout = DefaultTimeout
	}
	if c.MaxRetries < 1 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Retryable == nil {
		c.Retryable = DefaultRetryable()
	} else {
		c.Retryable = slices.Clone(c.Retryable)
	}

	return c
}
