package ngfx

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

// SetLogger configures the logger for ngfx and its sub-packages.
// By default ngfx produces no log output. Pass nil to restore the silent
// default.
//
// Log levels used by ngfx:
//   - [slog.LevelDebug]: per-call diagnostics (glyph cache evictions,
//     skipped draw commands)
//   - [slog.LevelWarn]: substitutions (tofu glyph after a read failure,
//     unknown draw command types)
//
// Example:
//
//	ngfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. Sub-packages (text, drawcmd) call
// this to share one logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
