package applog

import (
	"time"
)

// Logger instance methods for submitting messages at each severity.
// Every submit is a no-op when the instance is inert or the severity is
// above the threshold; submits never return errors after a successful
// initialization.

// System logs a message at System level.
func (l *Logger) System(message string) {
	l.submit(LevelSystem, message, "", -1)
}

// SystemAt logs a System message with its source location. An empty
// file or negative line omits that part of the location.
func (l *Logger) SystemAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelSystem, message, sourceFile, sourceLine)
}

// Critical logs a message at Critical level.
func (l *Logger) Critical(message string) {
	l.submit(LevelCritical, message, "", -1)
}

// CriticalAt logs a Critical message with its source location.
func (l *Logger) CriticalAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelCritical, message, sourceFile, sourceLine)
}

// Error logs a message at Error level.
func (l *Logger) Error(message string) {
	l.submit(LevelError, message, "", -1)
}

// ErrorAt logs an Error message with its source location.
func (l *Logger) ErrorAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelError, message, sourceFile, sourceLine)
}

// Warning logs a message at Warning level.
func (l *Logger) Warning(message string) {
	l.submit(LevelWarning, message, "", -1)
}

// WarningAt logs a Warning message with its source location.
func (l *Logger) WarningAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelWarning, message, sourceFile, sourceLine)
}

// Info logs a message at Info level.
func (l *Logger) Info(message string) {
	l.submit(LevelInfo, message, "", -1)
}

// InfoAt logs an Info message with its source location.
func (l *Logger) InfoAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelInfo, message, sourceFile, sourceLine)
}

// Debug logs a message at Debug level.
func (l *Logger) Debug(message string) {
	l.submit(LevelDebug, message, "", -1)
}

// DebugAt logs a Debug message with its source location.
func (l *Logger) DebugAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelDebug, message, sourceFile, sourceLine)
}

// Dev logs a message at Developer level.
func (l *Logger) Dev(message string) {
	l.submit(LevelDeveloper, message, "", -1)
}

// DevAt logs a Developer message with its source location.
func (l *Logger) DevAt(message, sourceFile string, sourceLine int) {
	l.submit(LevelDeveloper, message, sourceFile, sourceLine)
}

// DebugDump logs a label and a rendered value at Debug level. The value
// is rendered by spew and collapsed to one line.
func (l *Logger) DebugDump(label string, value any) {
	if l.Threshold() < LevelDebug {
		return
	}
	l.submit(LevelDebug, label+": "+dumpValue(value), "", -1)
}

// DevDump logs a label and a rendered value at Developer level.
func (l *Logger) DevDump(label string, value any) {
	if l.Threshold() < LevelDeveloper {
		return
	}
	l.submit(LevelDeveloper, label+": "+dumpValue(value), "", -1)
}

// submit is the producer path: filter, format, enqueue, wake the
// writer. The timestamp is taken here, so written timestamps reflect
// submission time rather than write time.
func (l *Logger) submit(level Level, message, sourceFile string, sourceLine int) {
	if !l.state.IsInitialized.Load() || l.state.ShutdownCalled.Load() {
		return
	}

	cfg := l.getConfig()
	if cfg.FileName == "" || level > cfg.Level {
		return
	}

	if l.limiter != nil && !l.limiter.Allow() {
		l.state.Dropped.Add(1)
		return
	}

	line := formatLine(time.Now(), level, message, sourceFile, sourceLine)

	evicted, accepted := l.queue.submit(line)
	if evicted > 0 {
		l.state.Dropped.Add(uint64(evicted))
	}
	if !accepted {
		l.state.Dropped.Add(1)
		return
	}
	l.state.Submitted.Add(1)
}
