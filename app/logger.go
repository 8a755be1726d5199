package app

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/searchktools/http-lite/config"
)

// NewLogger builds the process logger: human readable console output in
// development, JSON lines otherwise.
func NewLogger(w io.Writer, level, env string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if env == config.EnvDevelopment {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
