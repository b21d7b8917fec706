package irbits

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with irbits-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithProfile adds a profile field to the logger.
func (l *Logger) WithProfile(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("profile", name),
	}
}

// LogRegister logs a profile registration.
func (l *Logger) LogRegister(ctx context.Context, name string, err error) {
	if err != nil {
		l.WarnContext(ctx, "profile rejected",
			"profile", name,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "profile registered",
			"profile", name,
		)
	}
}

// LogLoad logs a profile configuration load.
func (l *Logger) LogLoad(ctx context.Context, codec string, loaded int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "profile load failed",
			"codec", codec,
			"loaded", loaded,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "profiles loaded",
			"codec", codec,
			"count", loaded,
		)
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(ctx context.Context, name string, width, pulses int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"profile", name,
			"width", width,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "encode completed",
			"profile", name,
			"width", width,
			"pulses", pulses,
		)
	}
}
