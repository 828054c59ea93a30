package applog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the configuration.
// Each override is "key=value" using the INI key names, so command-line
// flags can reuse the config file vocabulary.
//
// Example:
//
//	cfg := applog.DefaultConfig()
//	err := cfg.ApplyOverride(
//	    "LogFolder=/var/log/app",
//	    "LogLevel=debug",
//	    "MaxLogFileSize=10Mb",
//	)
func (c *Config) ApplyOverride(overrides ...string) error {
	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	return combineConfigErrors(errors)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("applog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := err.Error()
		// Remove "applog: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "applog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// This is the core field mapping logic for string overrides.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "LogFolder":
		cfg.Directory = value
	case "LogFileName":
		cfg.FileName = value
	case "LogLevel":
		cfg.Level = ParseLevel(value)
	case "MaxLogFileSize":
		cfg.MaxFileSize = ParseSize(value)
	case "MaxFilesCount":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for MaxFilesCount '%s': %w", value, err)
		}
		cfg.MaxFiles = intVal
	case "QueueCapacity":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for QueueCapacity '%s': %w", value, err)
		}
		cfg.QueueCapacity = intVal
	case "OverflowPolicy":
		policy, err := ParseOverflowPolicy(value)
		if err != nil {
			return err
		}
		cfg.OverflowPolicy = policy
	case "MaxSubmitRate":
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return fmtErrorf("invalid integer value for MaxSubmitRate '%s': %w", value, err)
		}
		cfg.MaxSubmitRate = intVal
	case "HeartbeatSec":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for HeartbeatSec '%s': %w", value, err)
		}
		cfg.HeartbeatSec = intVal
	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
