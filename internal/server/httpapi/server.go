package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/nick-0037/workout-tracker-api/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server runs the REST API on a single address until its context is
// cancelled.
type Server struct {
	address string
	handler http.Handler
	logger  logging.Logger
}

// NewServer wires the handler and token decoder into a runnable server.
func NewServer(address string, l logging.Logger, h *Handler, decoder TokenDecoder) *Server {
	return &Server{
		address: address,
		handler: NewRouter(h, decoder),
		logger:  l.With("module", "http_server"),
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests with a
// bounded graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.handler,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
