// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors, a sink registry and context-aware helpers used
// throughout the hamkee service.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Every Logger built by NewLogger, NewConsoleLogger or NewFileLogger writes
// through a registry of sinks. The primary sink comes from Config; auxiliary
// sinks can be attached with AddHandler and detached with RemoveHandler.
// Each sink filters events by its own minimum level.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Defaults of NewFileLogger.
const (
	DefaultFileMaxSizeMB  = 10
	DefaultFileMaxAgeDays = 7
)

var setupGlobals sync.Once

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger

	sinks *sinkRegistry
}

// NewLogger constructs a *Logger for the given role label (e.g. "server")
// writing to the sink described by cfg.
//
// The logger is configured with:
//   - a "role" field set to role, useful for filtering logs from different
//     application components;
//   - a timestamp field added to every log entry;
//   - a "func" caller field that records the fully-qualified function name
//     (instead of the default file:line format) for easier log navigation.
//
// File sinks are rotated with lumberjack using the size, age, backup and
// compression settings of cfg.
func NewLogger(role string, cfg Config) (*Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var (
		out     io.Writer
		closers []io.Closer
	)
	switch {
	case cfg.Sink == SinkStdout:
		out = os.Stdout
	case cfg.Sink == SinkStderr || cfg.Sink == "":
		out = os.Stderr
	default:
		file := &lumberjack.Logger{
			Filename:   cfg.Sink,
			MaxSize:    cfg.MaxSizeMB,
			MaxAge:     cfg.MaxAgeDays,
			MaxBackups: cfg.MaxBackups,
			Compress:   cfg.Compress,
		}
		out = file
		closers = append(closers, file)
	}

	switch cfg.Format {
	case FormatJSON, "":
	case FormatConsole:
		out = consoleWriter(out, cfg.IsFile())
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, cfg.Format)
	}

	return newLogger(role, newSinkRegistry(out, level, closers...)), nil
}

// NewConsoleLogger returns a human-readable logger writing info and above to
// stderr.
func NewConsoleLogger(role string) *Logger {
	return newLogger(role, newSinkRegistry(consoleWriter(os.Stderr, false), zerolog.InfoLevel))
}

// NewFileLogger returns a JSON logger writing to path, rotated at 10 MB,
// keeping rotated files for 7 days and compressing them.
func NewFileLogger(role, path, level string) (*Logger, error) {
	return NewLogger(role, Config{
		Level:      level,
		Format:     FormatJSON,
		Sink:       path,
		MaxSizeMB:  DefaultFileMaxSizeMB,
		MaxAgeDays: DefaultFileMaxAgeDays,
		Compress:   true,
	})
}

// New wraps w as the primary sink at level. It is mainly useful in tests
// that inspect the output.
func New(role string, w io.Writer, level zerolog.Level) *Logger {
	return newLogger(role, newSinkRegistry(w, level))
}

func newLogger(role string, sinks *sinkRegistry) *Logger {
	setupGlobals.Do(func() {
		zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
			return runtime.FuncForPC(pc).Name() // return function name
		}
		zerolog.CallerFieldName = "func"
	})

	logger := zerolog.New(sinks).
		Level(zerolog.TraceLevel).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{Logger: logger, sinks: sinks}
}

func consoleWriter(out io.Writer, noColor bool) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime, NoColor: noColor}
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Critical starts a new message at the highest severity. Unlike Fatal it
// neither exits the process nor panics.
func (l *Logger) Critical() *zerolog.Event {
	return l.WithLevel(zerolog.FatalLevel)
}

// SetLevel changes the minimum level of the primary sink. The sink
// registration is replaced under a single lock, so no event is ever
// dispatched while the primary sink is detached. The returned id identifies
// the new registration.
func (l *Logger) SetLevel(name string) (HandlerID, error) {
	if l.sinks == nil {
		return 0, ErrNoRegistry
	}
	level, err := ParseLevel(name)
	if err != nil {
		return 0, err
	}

	return l.sinks.swapPrimary(level), nil
}

// AddHandler attaches w as an auxiliary sink receiving events at level and
// above. The primary sink is not affected.
func (l *Logger) AddHandler(w io.Writer, level zerolog.Level) (HandlerID, error) {
	if l.sinks == nil {
		return 0, ErrNoRegistry
	}

	return l.sinks.add(w, level), nil
}

// RemoveHandler detaches the auxiliary sink id.
func (l *Logger) RemoveHandler(id HandlerID) error {
	if l.sinks == nil {
		return ErrNoRegistry
	}
	if err := l.sinks.remove(id); err != nil {
		return fmt.Errorf("error removing handler %d: %w", id, err)
	}

	return nil
}

// PrimaryHandler returns the current id and level of the primary sink.
func (l *Logger) PrimaryHandler() (HandlerID, zerolog.Level) {
	if l.sinks == nil {
		return 0, zerolog.Disabled
	}

	return l.sinks.primaryHandler()
}

// Close releases file sinks. Console sinks are left open.
func (l *Logger) Close() error {
	if l.sinks == nil {
		return nil
	}

	return l.sinks.close()
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger. Both share the same sinks.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{Logger: l.With().Logger(), sinks: l.sinks}
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP handlers behind the logging middleware,
// which attaches a request-scoped logger via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// context logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{Logger: *log.Ctx(ctx)}
}
