package applog

import "time"

// defaultLogger backs the package-level functions for applications that
// want a process-wide logger without carrying an instance around.
var defaultLogger = New()

// Default returns the package-level logger instance.
func Default() *Logger {
	return defaultLogger
}

// Init initializes the package-level logger.
func Init(directory, fileName string, level Level, maxFileSize int64, maxFiles int) error {
	return defaultLogger.Init(directory, fileName, level, maxFileSize, maxFiles)
}

// InitFromConfig initializes the package-level logger from an INI file.
func InitFromConfig(path, section string) error {
	return defaultLogger.InitFromConfig(path, section)
}

// InitWithConfig initializes the package-level logger from a Config.
func InitWithConfig(cfg *Config) error {
	return defaultLogger.InitWithConfig(cfg)
}

// Shutdown stops the package-level logger after draining pending
// entries.
func Shutdown(timeout ...time.Duration) error {
	return defaultLogger.Shutdown(timeout...)
}

// Flush blocks until entries accepted so far are written and synced.
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// Threshold returns the active level threshold.
func Threshold() Level {
	return defaultLogger.Threshold()
}

// IsDeveloper reports whether the threshold is exactly Developer.
func IsDeveloper() bool {
	return defaultLogger.IsDeveloper()
}

// IsDebug reports whether Debug entries are admitted.
func IsDebug() bool {
	return defaultLogger.IsDebug()
}

// IsInfo reports whether Info entries are admitted.
func IsInfo() bool {
	return defaultLogger.IsInfo()
}

// IsWarning reports whether Warning entries are admitted.
func IsWarning() bool {
	return defaultLogger.IsWarning()
}

// System logs a message at System level.
func System(message string) {
	defaultLogger.System(message)
}

// SystemAt logs a message at System level with a source location.
func SystemAt(message, sourceFile string, sourceLine int) {
	defaultLogger.SystemAt(message, sourceFile, sourceLine)
}

// Critical logs a message at Critical level.
func Critical(message string) {
	defaultLogger.Critical(message)
}

// CriticalAt logs a message at Critical level with a source location.
func CriticalAt(message, sourceFile string, sourceLine int) {
	defaultLogger.CriticalAt(message, sourceFile, sourceLine)
}

// Error logs a message at Error level.
func Error(message string) {
	defaultLogger.Error(message)
}

// ErrorAt logs a message at Error level with a source location.
func ErrorAt(message, sourceFile string, sourceLine int) {
	defaultLogger.ErrorAt(message, sourceFile, sourceLine)
}

// Warning logs a message at Warning level.
func Warning(message string) {
	defaultLogger.Warning(message)
}

// WarningAt logs a message at Warning level with a source location.
func WarningAt(message, sourceFile string, sourceLine int) {
	defaultLogger.WarningAt(message, sourceFile, sourceLine)
}

// Info logs a message at Info level.
func Info(message string) {
	defaultLogger.Info(message)
}

// InfoAt logs a message at Info level with a source location.
func InfoAt(message, sourceFile string, sourceLine int) {
	defaultLogger.InfoAt(message, sourceFile, sourceLine)
}

// Debug logs a message at Debug level.
func Debug(message string) {
	defaultLogger.Debug(message)
}

// DebugAt logs a message at Debug level with a source location.
func DebugAt(message, sourceFile string, sourceLine int) {
	defaultLogger.DebugAt(message, sourceFile, sourceLine)
}

// Dev logs a message at Developer level.
func Dev(message string) {
	defaultLogger.Dev(message)
}

// DevAt logs a message at Developer level with a source location.
func DevAt(message, sourceFile string, sourceLine int) {
	defaultLogger.DevAt(message, sourceFile, sourceLine)
}

// DebugDump logs a labeled value dump at Debug level.
func DebugDump(label string, value any) {
	defaultLogger.DebugDump(label, value)
}

// DevDump logs a labeled value dump at Developer level.
func DevDump(label string, value any) {
	defaultLogger.DevDump(label, value)
}
