package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hamkee/internal/config"
	"github.com/MKhiriev/hamkee/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handler http.Handler, settings *config.Settings, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandler
	}

	logger.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, settings, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves until ctx is done or the listener fails.
func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.listen()
	if err != nil {
		return fmt.Errorf("error binding %s: %w", s.httpServer.server.Addr, err)
	}

	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.serve(ln)
	}()

	select {
	case err = <-served:
		if err != nil {
			return fmt.Errorf("error serving HTTP: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	if err = <-served; err != nil {
		return fmt.Errorf("error serving HTTP: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
