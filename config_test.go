package applog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfigFile writes INI content to a temp file and returns its path
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestParseSize verifies size string conversion including suffix
// handling and the Unset fallback for unusable input
func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"10Kb", 10240},
		{"2MB", 2097152},
		{"1gb", 1073741824},
		{"7Tb", int64(7) << 40},
		{"512", 512},
		{"10kB", 10240},
		{" 5 kb ", 5120},
		{"garbage", Unset},
		{"12cm", Unset},
		{"", Unset},
		{"   ", Unset},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSize(tt.input))
		})
	}
}

// TestParseLevel verifies case-insensitive level names and the Warning
// fallback for unknown ones
func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"System", LevelSystem},
		{"critical", LevelCritical},
		{"ERROR", LevelError},
		{"Warning", LevelWarning},
		{" info ", LevelInfo},
		{"dEbUg", LevelDebug},
		{"developer", LevelDeveloper},
		{"verbose", LevelWarning},
		{"", LevelWarning},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLevel(tt.input))
		})
	}
}

// TestLoadConfigFile verifies a fully populated section
func TestLoadConfigFile(t *testing.T) {
	path := writeConfigFile(t, `[Logging]
LogFolder = /var/log/app
LogFileName = app.log
LogLevel = Debug
MaxLogFileSize = 10Kb
MaxFilesCount = 3
QueueCapacity = 100
OverflowPolicy = block
MaxSubmitRate = 50
HeartbeatSec = 5
`)

	cfg, err := LoadConfigFile(path, "Logging")
	require.NoError(t, err)

	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.Equal(t, "app.log", cfg.FileName)
	assert.Equal(t, LevelDebug, cfg.Level)
	assert.Equal(t, int64(10240), cfg.MaxFileSize)
	assert.Equal(t, 3, cfg.MaxFiles)
	assert.Equal(t, 100, cfg.QueueCapacity)
	assert.Equal(t, OverflowBlock, cfg.OverflowPolicy)
	assert.Equal(t, 50, cfg.MaxSubmitRate)
	assert.Equal(t, int64(5), cfg.HeartbeatSec)
}

// TestLoadConfigFileDefaults verifies the defaults applied for absent
// keys: empty placement, System threshold, limits unset
func TestLoadConfigFileDefaults(t *testing.T) {
	path := writeConfigFile(t, "[Logging]\n")

	cfg, err := LoadConfigFile(path, "Logging")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Directory)
	assert.Equal(t, "", cfg.FileName)
	assert.Equal(t, LevelSystem, cfg.Level)
	assert.Equal(t, int64(Unset), cfg.MaxFileSize)
	assert.Equal(t, Unset, cfg.MaxFiles)
	assert.Equal(t, 0, cfg.QueueCapacity)
	assert.Equal(t, OverflowDropOldest, cfg.OverflowPolicy)
}

// TestLoadConfigFileAbsentSection verifies reading a section the file
// does not contain behaves like an empty section
func TestLoadConfigFileAbsentSection(t *testing.T) {
	path := writeConfigFile(t, "[Other]\nLogFolder = /elsewhere\n")

	cfg, err := LoadConfigFile(path, "Logging")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Directory)
	assert.Equal(t, LevelSystem, cfg.Level)
}

// TestLoadConfigFileMissing verifies a missing file is an error
func TestLoadConfigFileMissing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "no.ini"), "Logging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot read config file")
}

// TestLoadConfigFileBadPolicy verifies an unusable overflow policy is
// rejected at load time
func TestLoadConfigFileBadPolicy(t *testing.T) {
	path := writeConfigFile(t, "[Logging]\nOverflowPolicy = sideways\n")

	_, err := LoadConfigFile(path, "Logging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overflow policy")
}

// TestLoadConfigFileUnparsableSize verifies a garbage size falls back
// to Unset instead of failing the load
func TestLoadConfigFileUnparsableSize(t *testing.T) {
	path := writeConfigFile(t, "[Logging]\nMaxLogFileSize = enormous\n")

	cfg, err := LoadConfigFile(path, "Logging")
	require.NoError(t, err)
	assert.Equal(t, int64(Unset), cfg.MaxFileSize)
}

// TestConfigValidate verifies the validation rules
func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Directory = "/var/log/app"
		cfg.FileName = "app.log"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty directory", func(c *Config) { c.Directory = "  " }, "directory"},
		{"invalid level", func(c *Config) { c.Level = Level(9) }, "invalid level"},
		{"zero max file size", func(c *Config) { c.MaxFileSize = 0 }, "max file size"},
		{"negative max file size", func(c *Config) { c.MaxFileSize = -5 }, "max file size"},
		{"unset max file size", func(c *Config) { c.MaxFileSize = Unset }, ""},
		{"zero max files", func(c *Config) { c.MaxFiles = 0 }, "max files"},
		{"unset max files", func(c *Config) { c.MaxFiles = Unset }, ""},
		{"negative queue capacity", func(c *Config) { c.QueueCapacity = -1 }, "queue capacity"},
		{"negative submit rate", func(c *Config) { c.MaxSubmitRate = -2 }, "max submit rate"},
		{"negative heartbeat", func(c *Config) { c.HeartbeatSec = -1 }, "heartbeat"},
		{"invalid policy", func(c *Config) { c.OverflowPolicy = OverflowPolicy(7) }, "overflow policy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

// TestDefaultConfig verifies the programmatic defaults
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "", cfg.Directory)
	assert.Equal(t, "", cfg.FileName)
	assert.Equal(t, LevelWarning, cfg.Level)
	assert.Equal(t, int64(Unset), cfg.MaxFileSize)
	assert.Equal(t, Unset, cfg.MaxFiles)
	assert.Equal(t, 0, cfg.QueueCapacity)
	assert.Equal(t, OverflowDropOldest, cfg.OverflowPolicy)
	assert.Equal(t, 0, cfg.MaxSubmitRate)
	assert.Equal(t, int64(0), cfg.HeartbeatSec)
	assert.Nil(t, cfg.DiagWriter)
}

// TestConfigClone verifies clones are detached from their source
func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directory = "/a"
	cfg.MaxFiles = 4

	clone := cfg.Clone()
	clone.Directory = "/b"
	clone.MaxFiles = 9

	assert.Equal(t, "/a", cfg.Directory)
	assert.Equal(t, 4, cfg.MaxFiles)
}

// TestApplyOverride verifies key-value overrides using the INI key
// vocabulary
func TestApplyOverride(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.ApplyOverride(
		"LogFolder=/var/log/app",
		"LogFileName=app.log",
		"LogLevel=developer",
		"MaxLogFileSize=2Mb",
		"MaxFilesCount=7",
		"QueueCapacity=64",
		"OverflowPolicy=block",
		"MaxSubmitRate=1000",
		"HeartbeatSec=30",
	)
	require.NoError(t, err)

	assert.Equal(t, "/var/log/app", cfg.Directory)
	assert.Equal(t, "app.log", cfg.FileName)
	assert.Equal(t, LevelDeveloper, cfg.Level)
	assert.Equal(t, int64(2097152), cfg.MaxFileSize)
	assert.Equal(t, 7, cfg.MaxFiles)
	assert.Equal(t, 64, cfg.QueueCapacity)
	assert.Equal(t, OverflowBlock, cfg.OverflowPolicy)
	assert.Equal(t, 1000, cfg.MaxSubmitRate)
	assert.Equal(t, int64(30), cfg.HeartbeatSec)
}

// TestApplyOverrideErrors verifies malformed overrides are reported
// and combined
func TestApplyOverrideErrors(t *testing.T) {
	t.Run("unknown key", func(t *testing.T) {
		err := DefaultConfig().ApplyOverride("NoSuchKey=1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown configuration key")
	})

	t.Run("missing equals", func(t *testing.T) {
		err := DefaultConfig().ApplyOverride("LogFolder")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected key=value")
	})

	t.Run("bad integer", func(t *testing.T) {
		err := DefaultConfig().ApplyOverride("MaxFilesCount=many")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MaxFilesCount")
	})

	t.Run("multiple errors combined", func(t *testing.T) {
		cfg := DefaultConfig()
		err := cfg.ApplyOverride("NoSuchKey=1", "MaxFilesCount=many", "LogFolder=/ok")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "1.")
		assert.Contains(t, err.Error(), "2.")
		// Valid overrides in the same batch still apply.
		assert.Equal(t, "/ok", cfg.Directory)
	})
}
