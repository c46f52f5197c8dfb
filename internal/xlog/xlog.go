// Package xlog wraps log/slog the way the teacher's internal/errors package
// centralizes error codes: one constructor attaching a component field,
// writing plain key=value text to stderr. Color is reserved for the CLI's
// user-facing output (github.com/fatih/color); internal diagnostics are
// always uncolored.
package xlog

import (
	"log/slog"
	"os"
)

// New returns a logger tagged with component, silent at Debug level unless
// TYPELANG_DEBUG is set — the same silent-unless-asked posture as the
// teacher's debugMode gate in typechecker_core.go.
func New(component string) *slog.Logger {
	level := slog.LevelWarn
	if os.Getenv("TYPELANG_DEBUG") != "" {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("component", component)
}
