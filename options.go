package darija

import (
	"log/slog"
	"runtime"
)

// Option configures a Pipeline.
type Option func(*config)

type config struct {
	table    *Table
	poolSize int
	logger   *slog.Logger
}

func defaultConfig() config {
	return config{
		table:    Default(),
		poolSize: runtime.NumCPU(),
		logger:   slog.Default(),
	}
}

// WithTable sets the chat-alphabet mapping table (default: Default()).
func WithTable(t *Table) Option {
	return func(c *config) {
		if t != nil {
			c.table = t
		}
	}
}

// WithPoolSize sets the ONNX session pool size (default: runtime.NumCPU()).
func WithPoolSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.poolSize = n
		}
	}
}

// WithLogger sets the logger (default: slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
