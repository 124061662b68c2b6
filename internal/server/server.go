package server

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Server wraps the HTTP server with sensible network timeouts. The write
// timeout is generous because a single Gemini call can take tens of seconds.
type Server struct {
	http   *http.Server
	logger *zerolog.Logger
}

// New creates a new server instance
func New(handler http.Handler, port string, logger *zerolog.Logger) *Server {
	return &Server{
		http: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
			IdleTimeout:  time.Minute,
		},
		logger: logger,
	}
}

// Start begins serving and blocks until the server stops.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
