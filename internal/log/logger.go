// Package log provides component-scoped structured logging on top of slog.
package log

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger wraps slog.Logger with a component attribute.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a logger writing text records to w.
func New(w io.Writer, component string) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &Logger{
		Logger:    slog.New(handler).With("component", component),
		component: component,
	}
}

// NewStderr creates a logger for CLI commands, which own stdout for output.
func NewStderr(component string) *Logger {
	return New(os.Stderr, component)
}

// NewFile creates a logger appending to a file, for the TUI whose stdout and
// stderr belong to the terminal renderer. Falls back to a discard logger when
// the file cannot be opened.
func NewFile(path, component string) *Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return New(io.Discard, component)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
	if err != nil {
		return New(io.Discard, component)
	}
	return New(f, component)
}

// WithComponent returns a child logger scoped to a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}
