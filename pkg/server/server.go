package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/deckmock/deckmockd/pkg/config"
	"github.com/deckmock/deckmockd/pkg/deck"
	"github.com/deckmock/deckmockd/pkg/logging"
)

// Server is the mock deck API server.
type Server struct {
	cfg        *config.Config
	store      *deck.Store
	log        *slog.Logger
	handler    *Handler
	httpServer *http.Server

	mu        sync.RWMutex
	listener  net.Listener
	running   bool
	startTime time.Time
}

// Option is a functional option for configuring a Server.
type Option func(*Server)

// WithLogger sets the operational logger for the server.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithStore sets the deck store. Without this option the server builds its
// own store from the configured seeds.
func WithStore(store *deck.Store) Option {
	return func(s *Server) {
		s.store = store
	}
}

// New creates a Server with the given configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	s := &Server{
		cfg: cfg,
		log: logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		s.store = deck.NewStore(cfg.Seeds)
	}

	s.handler = NewHandler(s.store, cfg.HTMLFile)
	s.handler.SetLogger(s.log)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      withRequestLog(s.log, s.handler),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Store returns the deck store backing the server.
func (s *Server) Store() *deck.Store {
	return s.store
}

// Handler returns the HTTP handler, useful for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start binds the listener and begins serving in the background. Bind errors
// are returned synchronously; serve errors after startup are logged.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return fmt.Errorf("server already running")
	}

	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpServer.Addr, err)
	}
	s.listener = listener
	s.running = true
	s.startTime = time.Now()

	s.log.Info("mock deck server started", "addr", listener.Addr().String(), "decks", s.store.Count())

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.log.Error("server error", "error", err)
		}
	}()
	return nil
}

// Stop gracefully shuts the server down, waiting for in-flight requests up
// to the context deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return nil
	}
	s.running = false
	return s.httpServer.Shutdown(ctx)
}

// IsRunning reports whether the server is accepting requests.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Uptime returns seconds since the server started, 0 when stopped.
func (s *Server) Uptime() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.running {
		return 0
	}
	return int(time.Since(s.startTime).Seconds())
}

// Addr returns the bound listener address, empty until Start succeeds.
func (s *Server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
