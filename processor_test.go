package applog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFlushWritesPending verifies Flush returns only after everything
// submitted before it is on disk
func TestFlushWritesPending(t *testing.T) {
	logger, tmpDir := createTestLogger(t)
	defer logger.Shutdown()

	for i := 0; i < 100; i++ {
		logger.Info(fmt.Sprintf("pending entry %d", i))
	}
	require.NoError(t, logger.Flush(time.Second))

	lines := readLines(t, tmpDir)
	assert.Len(t, lines, 100)
	assert.Equal(t, uint64(100), logger.Stats().Written)
}

// TestShutdownDrainsQueue verifies Shutdown writes every accepted entry
// before the writer exits, even without a preceding Flush
func TestShutdownDrainsQueue(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	for i := 0; i < 500; i++ {
		logger.Info(fmt.Sprintf("queued entry %d", i))
	}
	require.NoError(t, logger.Shutdown(5*time.Second))

	lines := readLines(t, tmpDir)
	assert.Len(t, lines, 500)

	stats := logger.Stats()
	assert.Equal(t, uint64(500), stats.Submitted)
	assert.Equal(t, uint64(500), stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.True(t, logger.state.WriterExited.Load())
}

// TestSubmitAfterShutdownDiscarded verifies late submissions are
// silently dropped and never reach the file
func TestSubmitAfterShutdownDiscarded(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	logger.Info("before shutdown")
	require.NoError(t, logger.Flush(time.Second))
	require.NoError(t, logger.Shutdown())

	logger.Info("after shutdown")
	logger.Error("also after shutdown")
	logger.System("still after shutdown")

	lines := readLines(t, tmpDir)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "before shutdown")
	assert.Equal(t, uint64(1), logger.Stats().Submitted)
}

// TestWriteFailureDiagnosed verifies filesystem failures surface on the
// diagnostic sink while producers stay oblivious
func TestWriteFailureDiagnosed(t *testing.T) {
	tmpDir := t.TempDir()

	// A regular file where a path component should be a directory makes
	// both directory creation and file opening fail.
	blocker := filepath.Join(tmpDir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("in the way"), 0644))

	var diag bytes.Buffer
	cfg := DefaultConfig()
	cfg.Directory = filepath.Join(blocker, "logs")
	cfg.FileName = "app.log"
	cfg.Level = LevelDeveloper
	cfg.DiagWriter = &diag

	logger := New()
	require.NoError(t, logger.InitWithConfig(cfg))

	logger.Info("first doomed entry")
	logger.Info("second doomed entry")
	logger.Info("third doomed entry")
	require.NoError(t, logger.Flush(time.Second))
	require.NoError(t, logger.Shutdown())

	output := diag.String()
	assert.Contains(t, output, "cannot create log directory")
	assert.Contains(t, output, "cannot open log file")
	assert.Contains(t, output, "no active log file, entry dropped")

	stats := logger.Stats()
	assert.Equal(t, uint64(3), stats.Submitted)
	assert.Equal(t, uint64(3), stats.Dropped)
	assert.Zero(t, stats.Written)
}

// TestWriteOrderAcrossRotations verifies entries stay in submission
// order even when rotations replace the file handle mid-drain
func TestWriteOrderAcrossRotations(t *testing.T) {
	tmpDir := t.TempDir()
	logger := New()
	require.NoError(t, logger.Init(tmpDir, "app.log", LevelDeveloper, 500, 2))
	defer logger.Shutdown()

	const total = 40
	for i := 0; i < total; i++ {
		logger.Info(paddedMessage(i, 100))
	}
	require.NoError(t, logger.Flush(time.Second))
	require.Greater(t, logger.Stats().Rotations, uint64(0))

	// The active file holds the newest suffix of the sequence.
	lines := readLines(t, tmpDir)
	require.NotEmpty(t, lines)

	seqPattern := regexp.MustCompile(`\]: (\d{4})x`)
	var prev int
	for i, line := range lines {
		match := seqPattern.FindStringSubmatch(line)
		require.Len(t, match, 2, "unexpected line shape: %q", line)
		seq, err := strconv.Atoi(match[1])
		require.NoError(t, err)
		if i > 0 {
			assert.Equal(t, prev+1, seq, "sequence gap inside the active file")
		}
		prev = seq
	}
	assert.Equal(t, total-1, prev, "last entry must be the newest")
}
