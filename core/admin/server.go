// Package admin serves the request monitor over HTTP/1.1 and HTTP/2
// cleartext on a listener separate from the core server.
package admin

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/searchktools/http-lite/core/observability"
)

// ErrServerClosed is returned when serving on a server that was shut down
var ErrServerClosed = errors.New("admin server is closed")

// Config contains admin server configuration
type Config struct {
	Addr                 string
	Monitor              *observability.Monitor
	Logger               zerolog.Logger
	MaxConcurrentStreams uint32
	IdleTimeout          time.Duration
}

// Server exposes GET /stats
type Server struct {
	addr    string
	monitor *observability.Monitor
	logger  zerolog.Logger
	server  *http.Server
	h2      *http2.Server

	mu     sync.Mutex
	closed bool
}

// NewServer creates a new admin server. The monitor must not be nil.
func NewServer(cfg Config) *Server {
	if cfg.MaxConcurrentStreams == 0 {
		cfg.MaxConcurrentStreams = 32
	}
	if cfg.IdleTimeout == 0 {
		cfg.IdleTimeout = 120 * time.Second
	}

	s := &Server{
		addr:    cfg.Addr,
		monitor: cfg.Monitor,
		logger:  cfg.Logger,
	}

	s.h2 = &http2.Server{
		MaxConcurrentStreams: cfg.MaxConcurrentStreams,
		IdleTimeout:          cfg.IdleTimeout,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /stats", s.handleStats)

	s.server = &http.Server{
		Addr:              cfg.Addr,
		Handler:           h2c.NewHandler(mux, s.h2),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       cfg.IdleTimeout,
	}
	return s
}

// Handler returns the h2c-wrapped handler
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	msg, err := SnapshotStruct(s.monitor.Snapshot())
	if err != nil {
		s.logger.Error().Err(err).Msg("build stats")
		http.Error(w, "stats unavailable", http.StatusInternalServerError)
		return
	}

	codec := CodecFor(r.Header.Get("Accept"))
	body, err := codec.Encode(msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("encode stats")
		http.Error(w, "stats unavailable", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", codec.ContentType())
	w.Write(body)
}

// ListenAndServe listens on the configured address and serves until
// Shutdown is called
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("admin listen %s: %w", s.addr, err)
	}
	return s.Serve(ln)
}

// Serve serves on ln. It returns nil once Shutdown has been called.
func (s *Server) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		ln.Close()
		return ErrServerClosed
	}
	s.mu.Unlock()

	s.logger.Info().Str("addr", ln.Addr().String()).Str("protocol", "h2c").Msg("admin listening")
	if err := s.server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	return s.server.Shutdown(ctx)
}
