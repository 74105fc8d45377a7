package control

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/deckmock/deckmockd/pkg/deck"
	"github.com/deckmock/deckmockd/pkg/logging"
)

// Engine is the interface the control API uses to inspect the mock server.
// It is implemented by server.Server together with its deck store.
type Engine interface {
	IsRunning() bool
	Uptime() int
	Store() *deck.Store
}

// Server is the control API server.
type Server struct {
	engine     Engine
	httpServer *http.Server
	port       int
	log        *slog.Logger

	listener net.Listener
}

// NewServer creates a control API server for the given engine.
func NewServer(engine Engine, port int) *Server {
	s := &Server{
		engine: engine,
		port:   port,
		log:    logging.Nop(),
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// SetLogger sets the logger.
func (s *Server) SetLogger(log *slog.Logger) {
	if log != nil {
		s.log = log
	}
}

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)
	mux.HandleFunc("GET /decks", s.handleListDecks)
	mux.HandleFunc("POST /reset", s.handleReset)
}

// Handler returns the HTTP handler, useful for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins serving the control API in the background.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = listener

	s.log.Info("control API started", "addr", listener.Addr().String())
	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("control API server error", "error", err)
		}
	}()
	return nil
}

// Stop shuts the control API down.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Addr returns the bound listener address, empty until Start succeeds.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
