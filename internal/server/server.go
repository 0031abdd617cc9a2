// Package server exposes package ordering over HTTP.
//
// # Endpoints
//
//	POST /v1/order   order a list of package records
//	GET  /healthz    liveness probe, answers "ok"
//
// A request to /v1/order carries the records and an optional pinned
// starting sequence:
//
//	{
//	  "packages": [
//	    {"location": "web", "name": "web", "dependencies": {"ui": "^2"}},
//	    {"location": "ui", "name": "ui"}
//	  ],
//	  "pin": ["web"]
//	}
//
// The response lists the records in dependency order:
//
//	{"id": "…", "order": [{"location": "ui", "name": "ui", "rank": 0}, …], "cached": false}
//
// Failures use the error codes of package errors. A circular dependency
// answers 409 with code CIRCULAR_DEPENDENCY; malformed bodies and duplicate
// names answer 400.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/pkgorder/pkg/pipeline"
)

// maxBodyBytes caps the size of an order request.
const maxBodyBytes = 8 << 20

// Server is the HTTP API server.
type Server struct {
	router chi.Router
	server *http.Server
	runner *pipeline.Runner
	logger *log.Logger
}

// New creates a server listening on addr that orders packages with runner.
func New(addr string, runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		router: chi.NewRouter(),
		runner: runner,
		logger: logger,
	}
	s.routes()

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.logRequests)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Route("/v1", func(r chi.Router) {
		r.Post("/order", s.handleOrder)
	})
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.server.Addr)
		errc <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
