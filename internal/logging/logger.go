package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"travel-backend/internal/config"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger from config. Unknown levels fall back to
// info; any format other than "console" produces JSON.
func New(cfg *config.Config) *zerolog.Logger {
	return NewWithWriter(cfg, os.Stdout)
}

func NewWithWriter(cfg *config.Config, out io.Writer) *zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.LogLevel))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	if strings.ToLower(strings.TrimSpace(cfg.LogFormat)) == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("app", "travel-backend").
		Logger()

	return &logger
}
