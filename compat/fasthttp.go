package compat

import (
	"fmt"
	"strings"

	"github.com/verigo/applog"
)

const fasthttpOrigin = "fasthttp"

// FastHTTPAdapter wraps applog.Logger to implement fasthttp's Logger interface
type FastHTTPAdapter struct {
	logger        *applog.Logger
	defaultLevel  applog.Level
	levelDetector func(string) applog.Level // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *applog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  applog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level applog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message
// content. A detector defers to the default level by returning a value
// outside the System..Developer range.
func WithLevelDetector(detector func(string) applog.Level) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected >= applog.LevelSystem && detected <= applog.LevelDeveloper {
			level = detected
		}
	}

	switch level {
	case applog.LevelDebug:
		a.logger.DebugAt(msg, fasthttpOrigin, -1)
	case applog.LevelWarning:
		a.logger.WarningAt(msg, fasthttpOrigin, -1)
	case applog.LevelError:
		a.logger.ErrorAt(msg, fasthttpOrigin, -1)
	case applog.LevelCritical:
		a.logger.CriticalAt(msg, fasthttpOrigin, -1)
	default:
		a.logger.InfoAt(msg, fasthttpOrigin, -1)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) applog.Level {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return applog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return applog.LevelWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return applog.LevelDebug
	}

	return applog.LevelInfo
}
