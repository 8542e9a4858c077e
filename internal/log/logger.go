// Package log configures the zerolog base logger shared by the command-line
// tool and hands out component-scoped child loggers.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultService is attached to every entry when Config.Service is empty.
const DefaultService = "pizza"

// Config captures options for configuring the base logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every entry
}

var (
	mu   sync.Mutex
	base = zerolog.Nop()
)

// New builds a logger from cfg without touching the package state.
// An unparsable or empty level falls back to info.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}

	service := cfg.Service
	if service == "" {
		service = DefaultService
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", service).
		Logger()
}

// Configure replaces the base logger. The CLI calls it once per command
// invocation after configuration has been resolved.
func Configure(cfg Config) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	l := New(cfg)

	mu.Lock()
	base = l
	mu.Unlock()

	return l
}

// Base returns the configured base logger, or a disabled one before
// Configure has run.
func Base() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()

	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
