package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/searchktools/http-lite/core/http"
)

// ErrPanic wraps a value recovered from a panicking handler
var ErrPanic = errors.New("handler panicked")

// Middleware wraps a handler with extra behavior
type Middleware func(next http.HandlerFunc) http.HandlerFunc

// Pipeline is an ordered middleware chain
type Pipeline struct {
	middlewares []Middleware
}

// NewPipeline creates a new middleware pipeline
func NewPipeline() *Pipeline {
	return &Pipeline{
		middlewares: make([]Middleware, 0, 4),
	}
}

// Use adds a middleware to the pipeline. The first middleware added is the
// outermost one.
func (p *Pipeline) Use(m Middleware) *Pipeline {
	p.middlewares = append(p.middlewares, m)
	return p
}

// Then wraps final with every middleware in the pipeline
func (p *Pipeline) Then(final http.HandlerFunc) http.HandlerFunc {
	// Fast path: no middlewares
	if len(p.middlewares) == 0 {
		return final
	}

	h := final
	for i := len(p.middlewares) - 1; i >= 0; i-- {
		h = p.middlewares[i](h)
	}
	return h
}

// Recovery turns a handler panic into an error so that only the
// connection being served is affected
func Recovery() Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(ctx *http.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %v", ErrPanic, r)
				}
			}()
			return next(ctx)
		}
	}
}

// Logger logs every dispatched request at debug level
func Logger(logger zerolog.Logger) Middleware {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(ctx *http.Context) error {
			start := time.Now()
			err := next(ctx)

			ev := logger.Debug()
			if err != nil {
				ev = logger.Warn().Err(err)
			}
			ev.Str("method", ctx.Method()).
				Str("path", ctx.Path()).
				Str("route", ctx.Route()).
				Int("bytes", len(ctx.Response())).
				Dur("took", time.Since(start)).
				Msg("request")
			return err
		}
	}
}
