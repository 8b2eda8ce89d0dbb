package rtree

import (
	"io"
	"log/slog"
)

type options struct {
	logger *slog.Logger
}

// Option configures an RTree at construction.
type Option func(*options)

// WithLogger sets the logger used for debug records about node splits and
// tree condensation. If nil is passed, logging is discarded, which is also
// the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

func applyOptions(opts []Option) options {
	o := options{logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
