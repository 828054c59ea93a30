package compat

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/verigo/applog"
)

const fiberOrigin = "fiber"

// FiberAdapter wraps applog.Logger to implement Fiber's CommonLogger interface
// This provides compatibility with Fiber v2.54.x logging requirements
type FiberAdapter struct {
	logger       *applog.Logger
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(logger *applog.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior
		},
		panicHandler: func(msg string) {
			panic(msg) // Default behavior
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// appendPairs renders structured key-value pairs into the plain message
// the line format carries. An unpaired trailing key is kept as-is.
func appendPairs(msg string, keysAndValues []any) string {
	if len(keysAndValues) == 0 {
		return msg
	}
	var sb strings.Builder
	sb.WriteString(msg)
	for i := 0; i < len(keysAndValues); i += 2 {
		sb.WriteByte(' ')
		if i+1 < len(keysAndValues) {
			fmt.Fprintf(&sb, "%v=%v", keysAndValues[i], keysAndValues[i+1])
		} else {
			fmt.Fprintf(&sb, "%v", keysAndValues[i])
		}
	}
	return sb.String()
}

func (a *FiberAdapter) fatal(msg string) {
	a.logger.CriticalAt(msg, fiberOrigin, -1)

	// Ensure the entry reaches disk before exit
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

func (a *FiberAdapter) panicOut(msg string) {
	a.logger.CriticalAt(msg, fiberOrigin, -1)

	// Ensure the entry reaches disk before panicking
	_ = a.logger.Flush(100 * time.Millisecond)

	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- Logger interface implementation (7 methods) ---

// Trace logs at Developer level
func (a *FiberAdapter) Trace(v ...any) {
	a.logger.DevAt(fmt.Sprint(v...), fiberOrigin, -1)
}

// Debug logs at Debug level
func (a *FiberAdapter) Debug(v ...any) {
	a.logger.DebugAt(fmt.Sprint(v...), fiberOrigin, -1)
}

// Info logs at Info level
func (a *FiberAdapter) Info(v ...any) {
	a.logger.InfoAt(fmt.Sprint(v...), fiberOrigin, -1)
}

// Warn logs at Warning level
func (a *FiberAdapter) Warn(v ...any) {
	a.logger.WarningAt(fmt.Sprint(v...), fiberOrigin, -1)
}

// Error logs at Error level
func (a *FiberAdapter) Error(v ...any) {
	a.logger.ErrorAt(fmt.Sprint(v...), fiberOrigin, -1)
}

// Fatal logs at Critical level and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) {
	a.fatal(fmt.Sprint(v...))
}

// Panic logs at Critical level and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) {
	a.panicOut(fmt.Sprint(v...))
}

// Write makes FiberAdapter implement io.Writer interface
// This allows it to collect output redirected from other libraries
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	msg := string(p)
	// Trim trailing newline if present
	if len(msg) > 0 && msg[len(msg)-1] == '\n' {
		msg = msg[:len(msg)-1]
	}
	a.logger.InfoAt(msg, fiberOrigin, -1)
	return len(p), nil
}

// --- FormatLogger interface implementation (7 methods) ---

// Tracef logs at Developer level with printf-style formatting
func (a *FiberAdapter) Tracef(format string, v ...any) {
	a.logger.DevAt(fmt.Sprintf(format, v...), fiberOrigin, -1)
}

// Debugf logs at Debug level with printf-style formatting
func (a *FiberAdapter) Debugf(format string, v ...any) {
	a.logger.DebugAt(fmt.Sprintf(format, v...), fiberOrigin, -1)
}

// Infof logs at Info level with printf-style formatting
func (a *FiberAdapter) Infof(format string, v ...any) {
	a.logger.InfoAt(fmt.Sprintf(format, v...), fiberOrigin, -1)
}

// Warnf logs at Warning level with printf-style formatting
func (a *FiberAdapter) Warnf(format string, v ...any) {
	a.logger.WarningAt(fmt.Sprintf(format, v...), fiberOrigin, -1)
}

// Errorf logs at Error level with printf-style formatting
func (a *FiberAdapter) Errorf(format string, v ...any) {
	a.logger.ErrorAt(fmt.Sprintf(format, v...), fiberOrigin, -1)
}

// Fatalf logs at Critical level and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) {
	a.fatal(fmt.Sprintf(format, v...))
}

// Panicf logs at Critical level and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) {
	a.panicOut(fmt.Sprintf(format, v...))
}

// --- WithLogger interface implementation (7 methods) ---

// Tracew logs at Developer level with structured key-value pairs
func (a *FiberAdapter) Tracew(msg string, keysAndValues ...any) {
	a.logger.DevAt(appendPairs(msg, keysAndValues), fiberOrigin, -1)
}

// Debugw logs at Debug level with structured key-value pairs
func (a *FiberAdapter) Debugw(msg string, keysAndValues ...any) {
	a.logger.DebugAt(appendPairs(msg, keysAndValues), fiberOrigin, -1)
}

// Infow logs at Info level with structured key-value pairs
func (a *FiberAdapter) Infow(msg string, keysAndValues ...any) {
	a.logger.InfoAt(appendPairs(msg, keysAndValues), fiberOrigin, -1)
}

// Warnw logs at Warning level with structured key-value pairs
func (a *FiberAdapter) Warnw(msg string, keysAndValues ...any) {
	a.logger.WarningAt(appendPairs(msg, keysAndValues), fiberOrigin, -1)
}

// Errorw logs at Error level with structured key-value pairs
func (a *FiberAdapter) Errorw(msg string, keysAndValues ...any) {
	a.logger.ErrorAt(appendPairs(msg, keysAndValues), fiberOrigin, -1)
}

// Fatalw logs at Critical level with structured key-value pairs and triggers the fatal handler
func (a *FiberAdapter) Fatalw(msg string, keysAndValues ...any) {
	a.fatal(appendPairs(msg, keysAndValues))
}

// Panicw logs at Critical level with structured key-value pairs and triggers the panic handler
func (a *FiberAdapter) Panicw(msg string, keysAndValues ...any) {
	a.panicOut(appendPairs(msg, keysAndValues))
}
