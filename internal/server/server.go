// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "wiring" layer: it decides which URL patterns map to
// which handlers, what middleware runs, and how the server starts and stops.
//
// DEPENDENCY FLOW:
//
//	main.go creates:  config → Model → Interpreter → Server
//	Server.New creates: OmenHandler(Interpreter) → routes
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/omen/internal/handler"
	"github.com/sakif/omen/internal/middleware"
)

// Config holds the listener settings.
type Config struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Server represents the HTTP server and its router.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
}

// New creates a Server whose /api/omen endpoint is served by interp.
func New(cfg Config, interp handler.Interpreter, logger *slog.Logger) *Server {
	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
	}
	s.setupRoutes(interp)
	return s
}

// Handler returns the root http.Handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTES:
// POST /api/omen   → interpret a symbol (other methods → 405 from the handler)
// GET  /healthz    → liveness probe
//
// MIDDLEWARE ORDER MATTERS:
// 1. RequestID: assigns an id the logger can print
// 2. RealIP: extracts the client IP from proxy headers
// 3. Logger: one line per request
// 4. Recoverer: turns panics into 500s
func (s *Server) setupRoutes(interp handler.Interpreter) {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(middleware.Logger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	omenHandler := handler.NewOmenHandler(interp, s.logger)

	// HandleFunc, not Post: the handler answers non-POST methods itself with
	// the plain-text 405.
	s.router.HandleFunc("/api/omen", omenHandler.HandleInterpret)
	s.router.Get("/healthz", handler.HandleHealth)
}

// Start starts the HTTP server and blocks until it stops.
//
// GRACEFUL SHUTDOWN:
// On SIGINT/SIGTERM the server stops accepting connections and waits up to
// ShutdownTimeout for in-flight requests, including pending model calls.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d/api/omen", s.config.Port)),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
