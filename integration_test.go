package applog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readEverything returns the concatenated content of the active file
// and every archive in dir.
func readEverything(t *testing.T, dir string) string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var sb strings.Builder
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		sb.Write(content)
	}
	return sb.String()
}

// TestConcurrentProducers verifies entries from parallel producers all
// land on disk with per-producer order preserved
func TestConcurrentProducers(t *testing.T) {
	logger, tmpDir := createTestLogger(t)
	defer logger.Shutdown()

	const producers = 8
	const perProducer = 125

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for seq := 0; seq < perProducer; seq++ {
				logger.Info(fmt.Sprintf("producer %d seq %d", id, seq))
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, logger.Flush(5*time.Second))

	lines := readLines(t, tmpDir)
	require.Len(t, lines, producers*perProducer)

	// Interleaving across producers is arbitrary, order within each
	// producer is not.
	lastSeq := make(map[int]int)
	for _, line := range lines {
		var id, seq int
		_, err := fmt.Sscanf(line[strings.Index(line, "producer"):], "producer %d seq %d", &id, &seq)
		require.NoError(t, err)
		if prev, seen := lastSeq[id]; seen {
			assert.Greater(t, seq, prev, "producer %d out of order", id)
		}
		lastSeq[id] = seq
	}
	assert.Len(t, lastSeq, producers)
	for id, last := range lastSeq {
		assert.Equal(t, perProducer-1, last, "producer %d incomplete", id)
	}
}

// TestFullLifecycle drives a built logger through traffic, rotation,
// and heartbeat, then verifies the end state
func TestFullLifecycle(t *testing.T) {
	tmpDir := t.TempDir()

	logger, err := NewBuilder().
		Directory(tmpDir).
		FileName("app.log").
		LevelString("Developer").
		MaxFileSizeString("2Kb").
		MaxFiles(2).
		HeartbeatSec(1).
		Build()
	require.NoError(t, err)

	deadline := time.Now().Add(1500 * time.Millisecond)
	for i := 0; time.Now().Before(deadline); i++ {
		logger.Info(fmt.Sprintf("lifecycle entry %d", i))
		time.Sleep(2 * time.Millisecond)
	}
	require.NoError(t, logger.Flush(5*time.Second))
	require.NoError(t, logger.Shutdown(5*time.Second))

	stats := logger.Stats()
	assert.Greater(t, stats.Rotations, uint64(0), "traffic must have crossed the size cap")
	assert.GreaterOrEqual(t, stats.HeartbeatSeq, uint64(1))
	assert.Equal(t, stats.Submitted, stats.Written)

	archives := listArchives(t, tmpDir)
	assert.LessOrEqual(t, len(archives), 2)

	// The heartbeat line may have been rotated into an archive.
	everything := readEverything(t, tmpDir)
	assert.Contains(t, everything, "[System]: heartbeat seq=")
	assert.Contains(t, everything, "submitted=")
}

// TestBlockPolicyUnderLoad verifies a bounded blocking queue delivers
// every entry with nothing dropped
func TestBlockPolicyUnderLoad(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Directory = tmpDir
	cfg.FileName = "app.log"
	cfg.Level = LevelDeveloper
	cfg.QueueCapacity = 8
	cfg.OverflowPolicy = OverflowBlock

	logger := New()
	require.NoError(t, logger.InitWithConfig(cfg))

	const producers = 4
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for seq := 0; seq < perProducer; seq++ {
				logger.Info(fmt.Sprintf("blocked producer %d seq %d", id, seq))
			}
		}(p)
	}
	wg.Wait()
	require.NoError(t, logger.Shutdown(5*time.Second))

	stats := logger.Stats()
	assert.Equal(t, uint64(producers*perProducer), stats.Submitted)
	assert.Equal(t, uint64(producers*perProducer), stats.Written)
	assert.Zero(t, stats.Dropped)
	assert.Len(t, readLines(t, tmpDir), producers*perProducer)
}

// TestDropOldestUnderLoad verifies the drop-oldest queue keeps the
// newest entries when producers outrun the writer
func TestDropOldestUnderLoad(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Directory = tmpDir
	cfg.FileName = "app.log"
	cfg.Level = LevelDeveloper
	cfg.QueueCapacity = 4
	cfg.OverflowPolicy = OverflowDropOldest

	logger := New()
	require.NoError(t, logger.InitWithConfig(cfg))

	const total = 300
	for i := 0; i < total; i++ {
		logger.Info(fmt.Sprintf("flood entry %d", i))
	}
	require.NoError(t, logger.Shutdown(5*time.Second))

	stats := logger.Stats()
	assert.Equal(t, uint64(total), stats.Submitted, "drop-oldest accepts every submission")
	assert.Equal(t, stats.Submitted, stats.Written+stats.Dropped, "every accepted entry is written or evicted")

	// The last entry is never evicted: eviction only hits queue heads.
	content := readActiveFile(t, tmpDir)
	assert.Contains(t, content, fmt.Sprintf("flood entry %d", total-1))
	assert.Len(t, readLines(t, tmpDir), int(stats.Written))
}
