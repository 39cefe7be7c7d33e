// Package logger provides leveled key-value logging for the analyzer and
// the CLI. Diagnostics go to a writer separate from report output so they
// never interleave with the findings table.
package logger

import (
	"io"
	"log/slog"
)

// Logger provides structured logging interface.
type Logger interface {
	// Debug logs debug-level messages with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs info-level messages with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Error logs error-level messages with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// With returns a new logger with additional key-value pairs.
	With(keysAndValues ...any) Logger
}

// SlogAdapter implements Logger on top of log/slog with the compact
// single-line Handler.
type SlogAdapter struct {
	logger *slog.Logger
}

// New creates a logger writing to w at the level implied by the debug flag.
func New(w io.Writer, debug bool) *SlogAdapter {
	return NewWithLevel(w, LevelFromFlags(debug))
}

// NewWithLevel creates a logger writing to w at an explicit level.
func NewWithLevel(w io.Writer, level Level) *SlogAdapter {
	return &SlogAdapter{
		logger: slog.New(NewHandler(w, level)),
	}
}

// Debug logs debug-level messages.
func (l *SlogAdapter) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, keysAndValues...)
}

// Info logs info-level messages.
func (l *SlogAdapter) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, keysAndValues...)
}

// Error logs error-level messages.
func (l *SlogAdapter) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, keysAndValues...)
}

// With returns a new logger with additional base key-value pairs.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (l *SlogAdapter) With(keysAndValues ...any) Logger {
	return &SlogAdapter{logger: l.logger.With(keysAndValues...)}
}

// NoOpLogger is a logger that does nothing.
type NoOpLogger struct{}

// NewNoOpLogger creates a new NoOpLogger.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

// Debug does nothing.
func (*NoOpLogger) Debug(string, ...any) {}

// Info does nothing.
func (*NoOpLogger) Info(string, ...any) {}

// Error does nothing.
func (*NoOpLogger) Error(string, ...any) {}

// With returns the same NoOpLogger.
//
//nolint:ireturn // With is intended to return an interface for chaining
func (*NoOpLogger) With(...any) Logger {
	return &NoOpLogger{}
}

var (
	_ Logger = (*SlogAdapter)(nil)
	_ Logger = (*NoOpLogger)(nil)
)
