// Package logging provides structured logging for the odometer.
// It wraps log/slog with a JSON handler. The terminal belongs to the TUI,
// so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Log levels supported by the logger
const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

// Logger provides structured logging. A nil *Logger discards everything.
type Logger struct {
	logger *slog.Logger
	file   *os.File
}

// New creates a Logger writing JSON lines to path at the given level.
// An empty path returns a logger that discards output.
func New(path, level string) (*Logger, error) {
	if path == "" {
		return Discard(), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	l := NewWriter(file, level)
	l.file = file
	return l, nil
}

// NewWriter creates a Logger writing JSON lines to w.
func NewWriter(w io.Writer, level string) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &Logger{logger: slog.New(handler)}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return &Logger{logger: slog.New(slog.DiscardHandler)}
}

// parseLevel converts a string log level to slog.Level.
// Defaults to INFO if the level string is not recognized.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// With returns a child Logger with extra key-value attributes.
func (l *Logger) With(args ...any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{logger: l.logger.With(args...), file: l.file}
}

// Debug logs at DEBUG level.
func (l *Logger) Debug(msg string, args ...any) {
	if l != nil {
		l.logger.Debug(msg, args...)
	}
}

// Info logs at INFO level.
func (l *Logger) Info(msg string, args ...any) {
	if l != nil {
		l.logger.Info(msg, args...)
	}
}

// Warn logs at WARN level.
func (l *Logger) Warn(msg string, args ...any) {
	if l != nil {
		l.logger.Warn(msg, args...)
	}
}

// Error logs at ERROR level.
func (l *Logger) Error(msg string, args ...any) {
	if l != nil {
		l.logger.Error(msg, args...)
	}
}

// Close closes the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
