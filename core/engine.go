package core

import (
	"context"
	"errors"
	"io"
	"net"
	"time"

	"github.com/rs/zerolog"

	"github.com/searchktools/http-lite/core/http"
	"github.com/searchktools/http-lite/core/middleware"
	"github.com/searchktools/http-lite/core/observability"
	"github.com/searchktools/http-lite/core/pools"
	"github.com/searchktools/http-lite/core/router"
)

// Options configures an Engine
type Options struct {
	// Logger receives accept and connection failures. Use zerolog.Nop()
	// to discard them.
	Logger zerolog.Logger

	// Monitor records every dispatched request. Nil disables recording.
	Monitor *observability.Monitor
}

// Engine serves one request per accepted connection. Every connection
// runs on its own goroutine and shares nothing mutable with the others
// besides the read buffer pool and the monitor.
type Engine struct {
	router   *router.Table
	pipeline *middleware.Pipeline
	buffers  *pools.ReadBufferPool
	monitor  *observability.Monitor
	logger   zerolog.Logger
}

// NewEngine creates a new engine instance
func NewEngine(opts Options) *Engine {
	logger := opts.Logger

	e := &Engine{
		router:   router.NewTable(),
		pipeline: middleware.NewPipeline(),
		buffers:  pools.NewReadBufferPool(http.ReadBufferSize),
		monitor:  opts.Monitor,
		logger:   logger,
	}
	e.pipeline.
		Use(middleware.Recovery()).
		Use(middleware.Logger(logger))
	return e
}

// GET registers a GET route
func (e *Engine) GET(pattern string, handler http.HandlerFunc) {
	e.handle("GET", pattern, handler)
}

// POST registers a POST route
func (e *Engine) POST(pattern string, handler http.HandlerFunc) {
	e.handle("POST", pattern, handler)
}

func (e *Engine) handle(method, pattern string, handler http.HandlerFunc) {
	h := e.pipeline.Then(handler)
	e.router.Add(method, pattern, func(ctx any) error {
		return h(ctx.(*http.Context))
	})
}

// Monitor returns the monitor requests are recorded into, or nil
func (e *Engine) Monitor() *observability.Monitor {
	return e.monitor
}

// Listen opens a TCP listener on addr with the engine's socket options
func (e *Engine) Listen(ctx context.Context, addr string) (net.Listener, error) {
	lc := net.ListenConfig{Control: listenControl}
	return lc.Listen(ctx, "tcp", addr)
}

// Run listens on addr and serves until ctx is cancelled. Connections
// already accepted are left to finish on their own.
func (e *Engine) Run(ctx context.Context, addr string) error {
	ln, err := e.Listen(ctx, addr)
	if err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer stop()

	e.logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
	return e.Serve(ln)
}

// Serve accepts connections on ln until it is closed. A failed accept is
// logged and retried with backoff; closing the listener returns nil.
func (e *Engine) Serve(ln net.Listener) error {
	var delay time.Duration
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}

			if delay == 0 {
				delay = 5 * time.Millisecond
			} else {
				delay *= 2
			}
			if delay > time.Second {
				delay = time.Second
			}
			e.logger.Warn().Err(err).Dur("retry_in", delay).Msg("accept failed")
			time.Sleep(delay)
			continue
		}
		delay = 0

		go e.serve(conn)
	}
}

func (e *Engine) serve(conn net.Conn) {
	if err := e.ServeConn(conn); err != nil {
		ev := e.logger.Error().Err(err)
		var ce *ConnError
		if errors.As(err, &ce) {
			ev = ev.Str("op", ce.Op).Str("remote", ce.Remote)
		}
		ev.Msg("connection failed")
	}
}

// ServeConn handles exactly one request on conn and closes it. The request
// is whatever a single read into a fixed-size buffer returns; larger
// requests are truncated. A non-nil error means no response is guaranteed
// to have been written.
func (e *Engine) ServeConn(conn net.Conn) error {
	defer conn.Close()

	bufp := e.buffers.Get()
	defer e.buffers.Put(bufp)
	buf := *bufp

	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return newConnError("read", conn, err)
	}
	if n == 0 {
		return nil
	}

	req, err := http.ParseRequest(buf[:n])
	switch {
	case errors.Is(err, http.ErrMalformedRequestLine):
		return e.write(conn, []byte(http.StatusNotFound))
	case err != nil:
		return newConnError("parse", conn, err)
	}

	match, ok := e.router.Find(req.Method, req.Path)
	if !ok {
		return e.write(conn, []byte(http.StatusNotFound))
	}

	ctx := http.AcquireContext(req)
	defer http.ReleaseContext(ctx)

	if match.Param != "" {
		ctx.SetParam(match.Param, match.Value)
	}
	ctx.SetRoute(req.Method + " " + match.Pattern)

	start := time.Now()
	err = match.Handler(ctx)
	e.monitor.RecordRequest(ctx.Route(), time.Since(start), err != nil)
	if err != nil {
		return newConnError("handle", conn, err)
	}

	return e.write(conn, ctx.Response())
}

func (e *Engine) write(conn net.Conn, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := conn.Write(b); err != nil {
		return newConnError("write", conn, err)
	}
	return nil
}
