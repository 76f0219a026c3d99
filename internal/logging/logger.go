package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a configured application logger writing to w.
// Stdout is reserved for the protocol response, so callers pass stderr
// (or the captured stderr inside a plugin invocation).
// It standardizes common keys (e.g., "error" -> "err").
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewStderr creates the default logger on the current os.Stderr.
// Inside a captured invocation this is the capture buffer, which is
// exactly where plugin diagnostics belong.
func NewStderr(level slog.Level) *slog.Logger {
	return New(os.Stderr, level)
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
