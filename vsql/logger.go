package vsql

import (
	"context"
	"log/slog"
)

// Logger is the narrow logging seam vSQL uses for the two things worth
// observing outside of the hot compile path: rule-table assembly (startup,
// once) and query-builder auto-join decisions (once per Query, not once
// per node). It mirrors tsqlruntime.SPLogger's shape — a small interface
// so callers can plug in their own slog.Handler, a no-op, or a test spy —
// without pulling slog's formatting machinery into every AST node.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
}

// slogLogger adapts a *slog.Logger to Logger.
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps logger (or slog.Default() if nil) as a Logger.
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &slogLogger{logger: logger}
}

func (l *slogLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

// nopLogger discards everything; it is the default when no Logger is
// configured, so that constructing rule tables and queries never requires
// a logging dependency.
type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}

// NopLogger returns a Logger that discards all messages.
func NopLogger() Logger { return nopLogger{} }
