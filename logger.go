package vecdist

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecdist-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithMetric adds a metric field to the logger.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// WithAxis adds an axis field to the logger.
func (l *Logger) WithAxis(axis string) *Logger {
	return &Logger{
		Logger: l.Logger.With("axis", axis),
	}
}

// LogLoad logs the normalization of one input.
func (l *Logger) LogLoad(ctx context.Context, kind string, shape string, err error) {
	if err != nil {
		l.ErrorContext(ctx, "input normalization failed",
			"source", kind,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "input normalized",
			"source", kind,
			"shape", shape,
		)
	}
}

// LogDistance logs a finished distance computation.
func (l *Logger) LogDistance(ctx context.Context, calcType string, invocations int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "distance failed",
			"calc_type", calcType,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "distance completed",
			"calc_type", calcType,
			"invocations", invocations,
			"elapsed", elapsed,
		)
	}
}
