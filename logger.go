package cindex

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cindex-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithMetric adds the distance metric name to the logger.
func (l *Logger) WithMetric(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("metric", name),
	}
}

// WithPrototype adds the prototype strategy name to the logger.
func (l *Logger) WithPrototype(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("prototype", name),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogMatch logs one matching direction.
func (l *Logger) LogMatch(ctx context.Context, direction string, sources, targets, orphans int) {
	l.DebugContext(ctx, "match completed",
		"direction", direction,
		"sources", sources,
		"targets", targets,
		"orphans", orphans,
	)
}

// LogEvaluate logs a complete centroid index evaluation.
func (l *Logger) LogEvaluate(ctx context.Context, r *Report, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluate failed",
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "evaluate completed",
		"index", r.Index,
		"forward", r.Forward,
		"backward", r.Backward,
		"clusters_a", r.ClustersA,
		"clusters_b", r.ClustersB,
		"symmetric", r.Symmetric,
		"duration", r.Duration,
	)
}
