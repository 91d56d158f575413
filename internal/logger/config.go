package logger

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Sink targets understood by [Config.Sink]. Any other value is a file path.
const (
	SinkStdout = "stdout"
	SinkStderr = "stderr"
)

// Output formats understood by [Config.Format].
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes the primary sink of a [Logger].
type Config struct {
	// Level is the minimum level of the primary sink ("info" when empty).
	Level string
	// Format is either FormatJSON (default) or FormatConsole.
	Format string
	// Sink is SinkStdout, SinkStderr or a file path. Empty means SinkStderr.
	Sink string

	// Rotation and retention apply to file sinks only.
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
	Compress   bool
}

// IsFile reports whether the sink is a file path.
func (c Config) IsFile() bool {
	return c.Sink != "" && c.Sink != SinkStdout && c.Sink != SinkStderr
}

// ParseLevel converts a level name into a zerolog level. Besides zerolog's
// own names it accepts "warning" and "critical" (mapped to fatal, which
// [Logger.Critical] writes without exiting). Matching is case-insensitive
// and an empty name means info.
func ParseLevel(name string) (zerolog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "":
		return zerolog.InfoLevel, nil
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	}

	level, err := zerolog.ParseLevel(normalized)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	return level, nil
}
