// Package logger provides structured logging for gelaxy.
//
// The TUI owns stdout, so all log output goes to a file. Callers use either the
// printf-style Log helper or the structured slog API via Get, WithComponent and
// WithConversation.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	mu      sync.Mutex
	file    *os.File
	level   = new(slog.LevelVar)
	current = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// DefaultLogPath returns the debug log location in the system temp directory.
func DefaultLogPath() string {
	return filepath.Join(os.TempDir(), "gelaxy-debug.log")
}

// Init opens (or creates) the log file at path and routes all logging to it.
// Calling Init again closes the previous file.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	if file != nil {
		file.Close()
	}
	file = f
	current = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// SetOutput routes logging to w. Used by tests and the headless ask command.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	current = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetDebug toggles debug level logging.
func SetDebug(debug bool) {
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelInfo)
	}
}

// Get returns the current logger.
func Get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return current
}

// With returns a logger with the given attributes attached.
func With(args ...any) *slog.Logger {
	return Get().With(args...)
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(name string) *slog.Logger {
	return Get().With("component", name)
}

// WithConversation returns a logger tagged with a conversation ID.
func WithConversation(id string) *slog.Logger {
	return Get().With("conversation", id)
}

// Log writes a printf-style debug message.
func Log(format string, args ...any) {
	Get().Debug(fmt.Sprintf(format, args...))
}

// Close flushes and closes the log file, if any.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	current = slog.New(slog.NewTextHandler(io.Discard, nil))
}
