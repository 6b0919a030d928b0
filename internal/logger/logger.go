// Package logger provides the debug logger for boolalg. It is silent unless verbose mode is
// enabled with the -verbose flag, in which case records are written to stderr.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	current           = newLogger()
)

func newLogger() *slog.Logger {
	level := slog.LevelError + 1
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: level}))
}

// SetVerbose enables or disables debug logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
	current = newLogger()
}

// IsVerbose reports whether debug logging is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the writer for log records. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	current = newLogger()
}

// Debug logs a debug record with key/value attributes.
func Debug(ctx context.Context, msg string, args ...any) {
	mu.RLock()
	l := current
	mu.RUnlock()
	l.DebugContext(ctx, msg, args...)
}
