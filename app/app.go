package app

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/searchktools/http-lite/config"
	"github.com/searchktools/http-lite/core"
	"github.com/searchktools/http-lite/core/admin"
	"github.com/searchktools/http-lite/core/files"
	"github.com/searchktools/http-lite/core/handlers"
	"github.com/searchktools/http-lite/core/observability"
)

const shutdownTimeout = 5 * time.Second

// App wires configuration, the engine and the optional admin server
type App struct {
	cfg     config.Config
	logger  zerolog.Logger
	monitor *observability.Monitor
	engine  *core.Engine
	admin   *admin.Server

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}
}

// New creates an application logging to stderr
func New(cfg *config.Config) (*App, error) {
	logger, err := NewLogger(os.Stderr, cfg.LogLevel, cfg.Env)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(cfg, logger), nil
}

// NewWithLogger creates an application with a pre-configured logger
func NewWithLogger(cfg *config.Config, logger zerolog.Logger) *App {
	monitor := observability.NewMonitor()
	engine := core.NewEngine(core.Options{
		Logger:  logger,
		Monitor: monitor,
	})
	handlers.Register(engine, files.Root(cfg.Directory))

	a := &App{
		cfg:     *cfg,
		logger:  logger,
		monitor: monitor,
		engine:  engine,
		ready:   make(chan struct{}),
	}
	if cfg.StatsAddr != "" {
		a.admin = admin.NewServer(admin.Config{
			Addr:    cfg.StatsAddr,
			Monitor: monitor,
			Logger:  logger,
		})
	}
	return a
}

// Engine returns the underlying engine for route registration
func (a *App) Engine() *core.Engine {
	return a.engine
}

// Ready is closed once the core listener is bound
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Addr returns the bound core address, or nil before Ready
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.addr
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ln, err := a.engine.Listen(ctx, a.cfg.Addr())
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.addr = ln.Addr()
	a.mu.Unlock()
	close(a.ready)

	if a.admin != nil {
		go func() {
			if err := a.admin.ListenAndServe(); err != nil && !errors.Is(err, admin.ErrServerClosed) {
				a.logger.Error().Err(err).Msg("admin server stopped")
			}
		}()
	}

	closeOnDone := context.AfterFunc(ctx, func() {
		ln.Close()
	})
	defer closeOnDone()

	a.logger.Info().
		Str("addr", ln.Addr().String()).
		Str("directory", a.cfg.Directory).
		Str("env", a.cfg.Env).
		Msg("listening")

	serveErr := a.engine.Serve(ln)

	if a.admin != nil {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		if err := a.admin.Shutdown(sctx); err != nil {
			a.logger.Warn().Err(err).Msg("admin shutdown")
		}
		cancel()
	}

	snap := a.monitor.Snapshot()
	a.logger.Info().
		Uint64("requests", snap.TotalRequests).
		Uint64("errors", snap.TotalErrors).
		Dur("avg", snap.AvgDuration).
		Dur("uptime", snap.Uptime).
		Msg("shutdown")

	if errors.Is(serveErr, net.ErrClosed) {
		return nil
	}
	return serveErr
}
