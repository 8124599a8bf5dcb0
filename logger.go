package photonkd

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with photonkd-specific context.
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
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithTree adds a tree name field, useful when several photon maps
// (global, caustic, volume) are maintained side by side.
func (l *Logger) WithTree(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("tree", name),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogBuild logs a bulk build.
func (l *Logger) LogBuild(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "build failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "build completed",
			"count", count,
		)
	}
}

// LogRebuild logs a local subtree rebuild.
func (l *Logger) LogRebuild(ctx context.Context, reason string, nodes, live int) {
	l.DebugContext(ctx, "subtree rebuilt",
		"reason", reason,
		"nodes", nodes,
		"live", live,
		"discarded", nodes-live,
	)
}

// LogSave logs a snapshot write.
func (l *Logger) LogSave(ctx context.Context, name string, points, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot save failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot saved",
			"name", name,
			"points", points,
			"bytes", bytes,
		)
	}
}

// LogLoad logs a snapshot read.
func (l *Logger) LogLoad(ctx context.Context, name string, points, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "snapshot load failed",
			"name", name,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"name", name,
			"points", points,
			"bytes", bytes,
		)
	}
}
