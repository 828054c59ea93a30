package applog

import (
	"fmt"
	"strings"
)

// Level classifies a submission by severity. Lower values are more
// severe; a threshold admits every level at or below itself.
type Level int32

// Severity levels in ascending permissiveness.
const (
	LevelSystem Level = iota
	LevelCritical
	LevelError
	LevelWarning
	LevelInfo
	LevelDebug
	LevelDeveloper
)

var levelNames = [...]string{
	"System",
	"Critical",
	"Error",
	"Warning",
	"Info",
	"Debug",
	"Developer",
}

// String returns the display name used in the line format.
func (l Level) String() string {
	if !l.valid() {
		return fmt.Sprintf("Level(%d)", int32(l))
	}
	return levelNames[l]
}

// valid reports whether l is one of the seven defined levels.
func (l Level) valid() bool {
	return l >= LevelSystem && l <= LevelDeveloper
}

// ParseLevel converts a severity name to its Level, ignoring case.
// Unknown names map to LevelWarning.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "system":
		return LevelSystem
	case "critical":
		return LevelCritical
	case "error":
		return LevelError
	case "warning":
		return LevelWarning
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	case "developer":
		return LevelDeveloper
	default:
		return LevelWarning
	}
}
