// package server contains middleware & handlers for the track resolution web service
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amdecker/tapedeck/internal/models"
	"github.com/charmbracelet/log"
)

// Middleware wraps an http.Handler and returns a new http.Handler with additional behavior.
// Common middleware includes logging, CORS, panic recovery, etc.
type Middleware func(http.Handler) http.Handler

// Handler defines the interface for HTTP request handlers in the track resolution service.
type Handler interface {
	http.Handler      // ServeHTTP handles the HTTP request and writes the response
	Routes() []string // Routes returns the path patterns this handler serves
}

// TrackResolver is the contract the search handler depends on.
// *resolver.Resolver satisfies it.
type TrackResolver interface {
	Resolve(ctx context.Context, query models.TrackQuery) models.Resolution
}

// Server is the tapedeck HTTP service: a health route plus the track
// search route, wired through the router's middleware stack.
type Server struct {
	router *BasicRouter
	server *http.Server
	logger *log.Logger
}

// NewServer builds the service around a resolver.
func NewServer(addr string, tracks TrackResolver, logger *log.Logger) *Server {
	router := NewBasicRouter()
	router.Use(RequestLogger(logger), Recover(logger), CORS)
	router.Handler(NewHealthHandler())
	router.Handler(NewSearchTrackHandler(tracks, logger))

	return &Server{
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Router exposes the underlying router, primarily for handler tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Info("starting server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and drains it gracefully on SIGINT/SIGTERM.
func (s *Server) Run() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return err
	}

	s.logger.Info("server stopped")
	return nil
}
