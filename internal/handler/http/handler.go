package http

import (
	"github.com/MKhiriev/hamkee/internal/logger"
	"github.com/MKhiriev/hamkee/internal/service"
)

// RequestObserver records served requests. Implemented by
// metrics.ServerMetrics.
type RequestObserver interface {
	ObserveRequest(method string, status int, seconds float64)
}

type Handler struct {
	services *service.Services

	newTraceID func() string
	observer   RequestObserver

	logger *logger.Logger
}

// HandlerOption customises a [Handler].
type HandlerOption func(*Handler)

// WithRequestObserver reports every served request to o.
func WithRequestObserver(o RequestObserver) HandlerOption {
	return func(h *Handler) {
		h.observer = o
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		services:   services,
		newTraceID: newTraceID,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
