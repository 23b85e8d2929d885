package logging

import (
	"go.uber.org/zap"

	"github.com/wailsapp/wails/v2/pkg/logger"
)

// WailsLogger routes the Wails runtime's own log output through zap.
type WailsLogger struct {
	log *zap.Logger
}

var _ logger.Logger = (*WailsLogger)(nil)

// NewWailsLogger wraps base (or the global logger when nil).
func NewWailsLogger(base *zap.Logger) *WailsLogger {
	if base == nil {
		base = L()
	}
	return &WailsLogger{log: base.With(zap.String("component", "wails"))}
}

func (w *WailsLogger) Print(message string)   { w.log.Info(message) }
func (w *WailsLogger) Trace(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Debug(message string)   { w.log.Debug(message) }
func (w *WailsLogger) Info(message string)    { w.log.Info(message) }
func (w *WailsLogger) Warning(message string) { w.log.Warn(message) }
func (w *WailsLogger) Error(message string)   { w.log.Error(message) }

// Fatal logs at error level; exiting is left to the runtime.
func (w *WailsLogger) Fatal(message string) { w.log.Error(message, zap.Bool("fatal", true)) }
