package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/hamkee/internal/config"
	"github.com/MKhiriev/hamkee/internal/logger"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, settings *config.Settings, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              settings.Address(),
			Handler:           handler,
			ReadHeaderTimeout: settings.Server.ReadHeaderTimeout,
		},
		shutdownTimeout: settings.Server.ShutdownTimeout,
		logger:          logger,
	}
}

// listen binds the configured address. Bind errors are returned before
// serving starts.
func (h *httpServer) listen() (net.Listener, error) {
	return net.Listen("tcp", h.server.Addr)
}

// serve blocks until the server is shut down. A graceful shutdown is not
// reported as an error.
func (h *httpServer) serve(ln net.Listener) error {
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Error().Err(err).Msg("HTTP server Shutdown")
	}
}
