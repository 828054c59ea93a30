package applog

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Logger is an asynchronous file logger. Producers format and enqueue
// lines; a single writer goroutine drains them to the active file and
// rotates it when the size threshold is crossed. Instances are
// independent; there is no shared state between them.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	initMu        sync.Mutex

	queue      *entryQueue
	writerDone chan struct{} // closed when the writer goroutine exits
	limiter    *rate.Limiter // nil unless MaxSubmitRate is set

	// Owned by the writer goroutine from start to exit.
	file     *os.File
	filePath string
	baseName string

	heartbeatStop chan struct{}
	heartbeatDone chan struct{}
}

// New creates an uninitialized Logger with default settings. It stays
// inert until one of the Init variants succeeds.
func New() *Logger {
	l := &Logger{}
	l.currentConfig.Store(DefaultConfig())
	l.state.WriterExited.Store(true)
	l.state.StartTime.Store(time.Now())
	return l
}

// Init configures the logger and starts the writer goroutine. dir must
// be non-empty. An empty fileName leaves the instance inert:
// initialization succeeds but submissions are no-ops. maxFileSize and
// maxFiles take byte and file counts, or Unset to disable the limit.
func (l *Logger) Init(dir, fileName string, level Level, maxFileSize int64, maxFiles int) error {
	cfg := DefaultConfig()
	cfg.Directory = dir
	cfg.FileName = fileName
	cfg.Level = level
	cfg.MaxFileSize = maxFileSize
	cfg.MaxFiles = maxFiles
	return l.InitWithConfig(cfg)
}

// InitFromConfig reads the given section of an INI file and initializes
// the logger from it. Fails when the file is absent or LogFolder is
// empty.
func (l *Logger) InitFromConfig(path, section string) error {
	cfg, err := LoadConfigFile(path, section)
	if err != nil {
		return err
	}
	return l.InitWithConfig(cfg)
}

// InitWithConfig validates cfg and starts the writer goroutine. It is
// single-shot: initializing a running or shut-down instance returns an
// error. The config is cloned; later changes to cfg have no effect.
func (l *Logger) InitWithConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	if l.state.IsInitialized.Load() {
		return fmtErrorf("already initialized")
	}
	if l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger has been shut down")
	}

	cfg = cfg.Clone()
	l.currentConfig.Store(cfg)

	if cfg.FileName == "" {
		// Inert instance: keep the configuration, start nothing.
		l.state.IsInitialized.Store(true)
		return nil
	}

	l.filePath = filepath.Join(cfg.Directory, cfg.FileName)
	l.baseName = strings.TrimSuffix(cfg.FileName, filepath.Ext(cfg.FileName))

	if cfg.MaxSubmitRate > 0 {
		l.limiter = rate.NewLimiter(rate.Limit(cfg.MaxSubmitRate), cfg.MaxSubmitRate)
	}

	l.queue = newEntryQueue(cfg.QueueCapacity, cfg.OverflowPolicy)
	l.writerDone = make(chan struct{})
	l.state.StartTime.Store(time.Now())
	l.state.WriterExited.Store(false)
	l.state.IsInitialized.Store(true)
	go l.writeLoop()

	if cfg.HeartbeatSec > 0 {
		l.heartbeatStop = make(chan struct{})
		l.heartbeatDone = make(chan struct{})
		go l.heartbeatLoop(time.Duration(cfg.HeartbeatSec) * time.Second)
	}

	return nil
}

// Shutdown drains pending entries, stops the writer goroutine, and
// joins it. Entries submitted before Shutdown are written; later
// submissions are discarded. Safe to call more than once; without a
// timeout a package default applies.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	l.initMu.Lock()
	queue := l.queue
	heartbeatStop := l.heartbeatStop
	heartbeatDone := l.heartbeatDone
	writerDone := l.writerDone
	l.initMu.Unlock()

	if queue == nil {
		// Never started or inert: nothing to join.
		l.state.IsInitialized.Store(false)
		return nil
	}

	effectiveTimeout := defaultShutdownTimeout
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	}

	// Stop the heartbeat first so it cannot race the queue close.
	if heartbeatStop != nil {
		close(heartbeatStop)
		<-heartbeatDone
	}

	queue.close()

	var finalErr error
	select {
	case <-writerDone:
	case <-time.After(effectiveTimeout):
		finalErr = fmtErrorf("writer did not exit within timeout (%v)", effectiveTimeout)
	}

	l.state.IsInitialized.Store(false)
	return finalErr
}

// Flush blocks until every entry submitted before the call is written
// and the active file is synced, or the timeout elapses.
func (l *Logger) Flush(timeout time.Duration) error {
	l.state.flushMutex.Lock()
	defer l.state.flushMutex.Unlock()

	if !l.state.IsInitialized.Load() || l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger not initialized or already shut down")
	}
	if l.queue == nil {
		return nil // Inert instance: nothing buffered.
	}

	confirm := make(chan struct{})
	if !l.queue.requestFlush(confirm) {
		return fmtErrorf("logger is shutting down")
	}

	select {
	case <-confirm:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// Threshold returns the configured severity threshold.
func (l *Logger) Threshold() Level {
	return l.getConfig().Level
}

// IsDeveloper reports whether the threshold is exactly Developer.
func (l *Logger) IsDeveloper() bool {
	return l.Threshold() == LevelDeveloper
}

// IsDebug reports whether Debug submissions are admitted.
func (l *Logger) IsDebug() bool {
	return l.Threshold() >= LevelDebug
}

// IsInfo reports whether Info submissions are admitted.
func (l *Logger) IsInfo() bool {
	return l.Threshold() >= LevelInfo
}

// IsWarning reports whether Warning submissions are admitted.
func (l *Logger) IsWarning() bool {
	return l.Threshold() >= LevelWarning
}

// GetConfig returns a copy of the current configuration.
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}
