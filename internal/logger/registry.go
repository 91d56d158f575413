// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"
)

// HandlerID identifies a sink registered with a [Logger].
type HandlerID uint64

type handler struct {
	id    HandlerID
	w     io.Writer
	level zerolog.Level
}

// sinkRegistry is the single zerolog.LevelWriter behind a Logger. It fans
// every event out to the registered handlers whose minimum level allows it.
type sinkRegistry struct {
	mu       sync.RWMutex
	handlers []handler
	primary  HandlerID
	lastID   HandlerID
	closers  []io.Closer
}

var _ zerolog.LevelWriter = (*sinkRegistry)(nil)

func newSinkRegistry(primary io.Writer, level zerolog.Level, closers ...io.Closer) *sinkRegistry {
	r := &sinkRegistry{closers: closers}
	r.primary = r.register(primary, level)
	return r
}

// register appends a handler. Callers hold mu or own r exclusively.
func (r *sinkRegistry) register(w io.Writer, level zerolog.Level) HandlerID {
	r.lastID++
	r.handlers = append(r.handlers, handler{id: r.lastID, w: w, level: level})
	return r.lastID
}

func (r *sinkRegistry) Write(p []byte) (int, error) {
	return r.WriteLevel(zerolog.NoLevel, p)
}

func (r *sinkRegistry) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs error
	for _, h := range r.handlers {
		if h.level == zerolog.Disabled || level < h.level {
			continue
		}
		if _, err := h.w.Write(p); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return len(p), errs
}

// swapPrimary re-registers the primary writer with level. The old
// registration is replaced in place so the writer is never detached.
func (r *sinkRegistry) swapPrimary(level zerolog.Level) HandlerID {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, h := range r.handlers {
		if h.id != r.primary {
			continue
		}
		r.lastID++
		r.handlers[i] = handler{id: r.lastID, w: h.w, level: level}
		r.primary = r.lastID
		break
	}

	return r.primary
}

func (r *sinkRegistry) add(w io.Writer, level zerolog.Level) HandlerID {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.register(w, level)
}

func (r *sinkRegistry) remove(id HandlerID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == r.primary {
		return ErrPrimaryHandler
	}
	for i, h := range r.handlers {
		if h.id == id {
			r.handlers = append(r.handlers[:i], r.handlers[i+1:]...)
			return nil
		}
	}

	return ErrUnknownHandler
}

func (r *sinkRegistry) primaryHandler() (HandlerID, zerolog.Level) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.handlers {
		if h.id == r.primary {
			return h.id, h.level
		}
	}

	return r.primary, zerolog.Disabled
}

func (r *sinkRegistry) close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs error
	for _, c := range r.closers {
		errs = errors.Join(errs, c.Close())
	}
	r.closers = nil

	return errs
}
