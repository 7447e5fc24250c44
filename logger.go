package iconbake

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for iconbake and its sub-packages.
// By default, iconbake produces no log output. Pass nil to restore the
// silent default.
//
// Log levels used by iconbake:
//   - [slog.LevelDebug]: per-icon details (resolved path, content size, offset)
//   - [slog.LevelInfo]: run lifecycle (asset directory, profile, artifact written)
//   - [slog.LevelWarn]: recovered conditions (fallback asset used, directory missing)
//
// Example:
//
//	iconbake.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by iconbake.
// Alternate imaging backends may log through it as well.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
