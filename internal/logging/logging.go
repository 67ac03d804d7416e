package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu sync.RWMutex
	// Logs go to stderr: stdout carries the rendered report.
	logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
)

// Logger returns the process-wide structured logger.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// SetLogger overrides the global logger (tests, custom sinks).
func SetLogger(l *slog.Logger) {
	mu.Lock()
	logger = l
	mu.Unlock()
}

// Discard silences logging while preserving structured handler semantics.
func Discard() {
	SetLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
}
