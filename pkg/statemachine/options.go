package statemachine

import (
	"log/slog"

	"github.com/dmitrymomot/statetrack/pkg/logger"
)

// Option configures a machine during construction.
type Option func(*options)

type options struct {
	historySize int
	logger      *slog.Logger
}

func defaultOptions() *options {
	return &options{
		historySize: DefaultHistorySize,
		logger:      logger.Nop(),
	}
}

// WithHistorySize sets how many states the history keeps, the current one included.
// Sizes below 1 are ignored.
func WithHistorySize(size int) Option {
	return func(o *options) {
		if size >= 1 {
			o.historySize = size
		}
	}
}

// WithLogger sets the logger used for debug records about dispatch and registration.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithConfig applies a loaded Config. Invalid configs are ignored;
// use NewFromConfig to surface validation errors.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		if cfg.Validate() == nil {
			WithHistorySize(cfg.HistorySize)(o)
		}
	}
}
