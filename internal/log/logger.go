package log

import (
	"context"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/prideconnect/prideconnect/internal/errors"
)

// Logger provides structured logging with slog
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New creates a new Logger with the given configuration
func New(config Config) *Logger {
	var handler slog.Handler
	switch config.Format {
	case FormatText:
		handler = tint.NewHandler(config.Output.Writer(), &tint.Options{
			Level:     config.Level.ToSlogLevel(),
			AddSource: config.AddSource,
			NoColor:   config.NoColor,
		})
	default:
		handler = slog.NewJSONHandler(config.Output.Writer(), &slog.HandlerOptions{
			Level:     config.Level.ToSlogLevel(),
			AddSource: config.AddSource,
		})
	}

	return &Logger{
		slog:   slog.New(handler),
		config: config,
	}
}

// Default creates a logger with default configuration
func Default() *Logger {
	return New(DefaultConfig())
}

// Development creates a logger with development configuration
func Development() *Logger {
	return New(DevelopmentConfig())
}

// With returns a new Logger with the given attributes added to all log entries
func (l *Logger) With(args ...any) *Logger {
	return &Logger{
		slog:   l.slog.With(args...),
		config: l.config,
	}
}

// WithGroup returns a new Logger with a group name that prefixes all attributes
func (l *Logger) WithGroup(name string) *Logger {
	return &Logger{
		slog:   l.slog.WithGroup(name),
		config: l.config,
	}
}

// WithError adds error details to the logger.
// If the error is a ClientError, it adds the error code as well.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l
	}

	if ce, ok := err.(*errors.ClientError); ok {
		args := []any{
			"error", ce.Message,
			"error_code", string(ce.Code),
		}

		if ce.Cause != nil {
			args = append(args, "cause", ce.Cause.Error())
		}

		return l.With(args...)
	}

	return l.With("error", err.Error())
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, args ...any) {
	l.slog.Debug(msg, args...)
}

// DebugContext logs a debug message with context
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.slog.DebugContext(ctx, msg, args...)
}

// Info logs an info message
func (l *Logger) Info(msg string, args ...any) {
	l.slog.Info(msg, args...)
}

// InfoContext logs an info message with context
func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.slog.InfoContext(ctx, msg, args...)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, args ...any) {
	l.slog.Warn(msg, args...)
}

// Error logs an error message
func (l *Logger) Error(msg string, args ...any) {
	l.slog.Error(msg, args...)
}

// LogError logs a ClientError with full details
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	if ce, ok := err.(*errors.ClientError); ok {
		args := []any{
			"error_code", string(ce.Code),
			"error_message", ce.Message,
		}

		if ce.Cause != nil {
			args = append(args, "cause", ce.Cause.Error())
		}

		l.Error("operation failed", args...)
	} else {
		l.Error("operation failed", "error", err.Error())
	}
}

// Enabled returns whether the logger is enabled for the given level
func (l *Logger) Enabled(ctx context.Context, level Level) bool {
	return l.slog.Enabled(ctx, level.ToSlogLevel())
}

// Handler returns the underlying slog.Handler
func (l *Logger) Handler() slog.Handler {
	return l.slog.Handler()
}

// Config returns the logger configuration
func (l *Logger) Config() Config {
	return l.config
}
