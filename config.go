package applog

import (
	"io"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// Config holds all logger configuration values
type Config struct {
	// Placement
	Directory string // Root directory for the active file and archives
	FileName  string // Active file name; empty leaves the instance inert

	// Filtering
	Level Level // Threshold admitting submissions at or below itself

	// Rotation limits
	MaxFileSize int64 // Bytes; Unset disables rotation
	MaxFiles    int   // Archive cap; Unset selects in-place compaction

	// Queue behavior
	QueueCapacity  int            // High-water mark; 0 means unbounded
	OverflowPolicy OverflowPolicy // Applied when QueueCapacity > 0
	MaxSubmitRate  int            // Submits per second; 0 means unlimited

	// Monitoring
	HeartbeatSec int64 // Seconds between heartbeat lines; 0 disables

	// Diagnostics sink for internal filesystem errors; nil means stderr
	DiagWriter io.Writer
}

// defaultConfig is the single source for all configurable default values
var defaultConfig = Config{
	Directory:      "",
	FileName:       "",
	Level:          LevelWarning,
	MaxFileSize:    Unset,
	MaxFiles:       Unset,
	QueueCapacity:  0,
	OverflowPolicy: OverflowDropOldest,
	MaxSubmitRate:  0,
	HeartbeatSec:   0,
	DiagWriter:     nil,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	return &copiedConfig
}

// LoadConfigFile reads one section of an INI file into a Config.
// Recognized keys: LogFolder, LogFileName, LogLevel, MaxLogFileSize,
// MaxFilesCount, QueueCapacity, OverflowPolicy, MaxSubmitRate,
// HeartbeatSec. Missing keys keep their defaults; a missing file is an
// error. The result is not validated here; initialization validates.
func LoadConfigFile(path, section string) (*Config, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, fmtErrorf("cannot read config file '%s': %w", path, err)
	}
	sec := f.Section(section)

	cfg := DefaultConfig()
	cfg.Directory = sec.Key("LogFolder").String()
	cfg.FileName = sec.Key("LogFileName").String()
	cfg.Level = ParseLevel(sec.Key("LogLevel").MustString("System"))
	cfg.MaxFileSize = ParseSize(sec.Key("MaxLogFileSize").String())
	cfg.MaxFiles = sec.Key("MaxFilesCount").MustInt(Unset)
	cfg.QueueCapacity = sec.Key("QueueCapacity").MustInt(0)
	if v := sec.Key("OverflowPolicy").String(); v != "" {
		policy, err := ParseOverflowPolicy(v)
		if err != nil {
			return nil, err
		}
		cfg.OverflowPolicy = policy
	}
	cfg.MaxSubmitRate = sec.Key("MaxSubmitRate").MustInt(0)
	cfg.HeartbeatSec = sec.Key("HeartbeatSec").MustInt64(0)

	return cfg, nil
}

// ParseSize converts a human size string to bytes. A bare integer is
// taken as bytes; a Kb, Mb, Gb or Tb suffix (any case) multiplies by
// the matching power of 1024. Empty or non-numeric input yields Unset.
func ParseSize(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return Unset
	}

	multiplier := int64(1)
	if len(s) >= 2 {
		switch strings.ToLower(s[len(s)-2:]) {
		case "kb":
			multiplier = 1 << 10
			s = s[:len(s)-2]
		case "mb":
			multiplier = 1 << 20
			s = s[:len(s)-2]
		case "gb":
			multiplier = 1 << 30
			s = s[:len(s)-2]
		case "tb":
			multiplier = 1 << 40
			s = s[:len(s)-2]
		}
	}

	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return Unset
	}
	return n * multiplier
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return fmtErrorf("log directory cannot be empty")
	}

	if !c.Level.valid() {
		return fmtErrorf("invalid level: %d", c.Level)
	}

	if c.MaxFileSize != Unset && c.MaxFileSize <= 0 {
		return fmtErrorf("max file size must be positive or unset (-1): %d", c.MaxFileSize)
	}

	if c.MaxFiles != Unset && c.MaxFiles <= 0 {
		return fmtErrorf("max files count must be positive or unset (-1): %d", c.MaxFiles)
	}

	if c.QueueCapacity < 0 {
		return fmtErrorf("queue capacity cannot be negative: %d", c.QueueCapacity)
	}

	if c.OverflowPolicy != OverflowDropOldest && c.OverflowPolicy != OverflowBlock {
		return fmtErrorf("invalid overflow policy: %d", c.OverflowPolicy)
	}

	if c.MaxSubmitRate < 0 {
		return fmtErrorf("max submit rate cannot be negative: %d", c.MaxSubmitRate)
	}

	if c.HeartbeatSec < 0 {
		return fmtErrorf("heartbeat interval cannot be negative: %d", c.HeartbeatSec)
	}

	return nil
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	return &copiedConfig
}
