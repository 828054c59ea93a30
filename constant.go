package applog

import (
	"time"
)

// Unset disables a size or count limit.
const Unset = -1

// Rotation
const (
	// sizeTolerance is subtracted from the active file size before the
	// threshold comparison, absorbing flush lag near the boundary.
	sizeTolerance int64 = 80
	// compactKeepFraction places the compaction cut at size/fraction.
	compactKeepFraction int64 = 4

	archiveExt   = ".log"
	backupSuffix = "_backup"
)

// Timestamp layouts
const (
	// Layout of the leading timestamp on every log line.
	lineTimestampFormat = "02.01.2006 15:04:05"
	// Layout of the date part of archive file names; milliseconds are
	// appended separately.
	archiveTimestampFormat = "02012006_150405"
)

// Timers
const (
	// Minimum wait time used throughout the package.
	minWaitTime = 10 * time.Millisecond
	// Attempts to remove the compaction backup before giving up.
	backupRemoveAttempts = 5
	// Millisecond-precision attempts at a free archive name before
	// falling back to nanosecond precision.
	archiveNameAttempts = 10
	// Deadline for joining the writer when Shutdown gets no timeout.
	defaultShutdownTimeout = 5 * time.Second
)
