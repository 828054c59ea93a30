package compat

import (
	"fmt"
	"os"
	"time"

	"github.com/verigo/applog"
)

// gnetOrigin is recorded in the source-location field of each line so
// framework output is distinguishable from application entries.
const gnetOrigin = "gnet"

// GnetAdapter wraps applog.Logger to implement gnet's logging.Logger interface
type GnetAdapter struct {
	logger       *applog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *applog.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// Debugf logs at Debug level with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	a.logger.DebugAt(fmt.Sprintf(format, args...), gnetOrigin, -1)
}

// Infof logs at Info level with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	a.logger.InfoAt(fmt.Sprintf(format, args...), gnetOrigin, -1)
}

// Warnf logs at Warning level with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	a.logger.WarningAt(fmt.Sprintf(format, args...), gnetOrigin, -1)
}

// Errorf logs at Error level with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	a.logger.ErrorAt(fmt.Sprintf(format, args...), gnetOrigin, -1)
}

// Fatalf logs at Critical level and triggers the fatal handler
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.logger.CriticalAt(msg, gnetOrigin, -1)

	// Ensure the entry reaches disk before exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
