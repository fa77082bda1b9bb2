// Package server implements the local web desk.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/sevigo/review-desk/internal/config"
	"github.com/sevigo/review-desk/internal/server/handler"
)

// Server wraps an HTTP server with graceful shutdown capabilities.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates the web desk server. Review requests may take as long as
// the reviewer timeout, so the write timeout leaves room for it.
func NewServer(cfg *config.Config, desk *handler.DeskHandler, logger *slog.Logger) *Server {
	router := NewRouter(desk, cfg.RequestTimeout+5*time.Second)

	return &Server{
		server: &http.Server{
			Addr:         net.JoinHostPort("localhost", cfg.ServerPort),
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: cfg.RequestTimeout + 10*time.Second,
			IdleTimeout:  120 * time.Second,
		},
		logger: logger,
	}
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start starts the HTTP server and blocks until shutdown or error.
func (s *Server) Start() error {
	s.logger.Info("starting review desk", "address", "http://"+s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed to start: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the server, waiting at most until ctx is done.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down review desk")
	return s.server.Shutdown(ctx)
}
