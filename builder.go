package applog

import (
	"io"
)

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the built configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := New()
	if err := logger.InitWithConfig(b.cfg); err != nil {
		return nil, err
	}
	return logger, nil
}

// Directory sets the log directory.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.Directory = dir
	return b
}

// FileName sets the active file name.
func (b *Builder) FileName(name string) *Builder {
	b.cfg.FileName = name
	return b
}

// Level sets the severity threshold.
func (b *Builder) Level(level Level) *Builder {
	b.cfg.Level = level
	return b
}

// LevelString sets the severity threshold from a name. Unknown names
// map to Warning.
func (b *Builder) LevelString(level string) *Builder {
	b.cfg.Level = ParseLevel(level)
	return b
}

// MaxFileSize sets the rotation threshold in bytes. Unset disables
// rotation.
func (b *Builder) MaxFileSize(bytes int64) *Builder {
	b.cfg.MaxFileSize = bytes
	return b
}

// MaxFileSizeString sets the rotation threshold from a size string such
// as "10Kb" or "2MB".
func (b *Builder) MaxFileSizeString(size string) *Builder {
	b.cfg.MaxFileSize = ParseSize(size)
	return b
}

// MaxFiles sets the archive retention cap. Unset selects in-place
// compaction.
func (b *Builder) MaxFiles(count int) *Builder {
	b.cfg.MaxFiles = count
	return b
}

// QueueCapacity sets the queue high-water mark. Zero keeps the queue
// unbounded.
func (b *Builder) QueueCapacity(capacity int) *Builder {
	b.cfg.QueueCapacity = capacity
	return b
}

// OverflowPolicy sets the behavior of submit on a full queue.
func (b *Builder) OverflowPolicy(policy OverflowPolicy) *Builder {
	b.cfg.OverflowPolicy = policy
	return b
}

// OverflowPolicyString sets the overflow policy from its configuration
// name.
func (b *Builder) OverflowPolicyString(policy string) *Builder {
	if b.err != nil {
		return b
	}
	parsed, err := ParseOverflowPolicy(policy)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.OverflowPolicy = parsed
	return b
}

// MaxSubmitRate caps accepted submissions per second. Zero means
// unlimited.
func (b *Builder) MaxSubmitRate(perSecond int) *Builder {
	b.cfg.MaxSubmitRate = perSecond
	return b
}

// HeartbeatSec sets the interval between heartbeat lines. Zero disables
// the heartbeat.
func (b *Builder) HeartbeatSec(seconds int64) *Builder {
	b.cfg.HeartbeatSec = seconds
	return b
}

// DiagWriter sets the sink for internal diagnostics.
func (b *Builder) DiagWriter(w io.Writer) *Builder {
	b.cfg.DiagWriter = w
	return b
}

// Example usage:
//
//	logger, err := applog.NewBuilder().
//		Directory("/var/log/app").
//		FileName("app.log").
//		LevelString("info").
//		MaxFileSizeString("10Mb").
//		MaxFiles(5).
//		Build()
//
//	if err == nil {
//		defer logger.Shutdown()
//		logger.Info("logger initialized")
//	}
