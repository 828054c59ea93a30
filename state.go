package applog

import (
	"sync"
	"sync/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized  atomic.Bool
	ShutdownCalled atomic.Bool
	WriterExited   atomic.Bool // Tracks whether the writer goroutine has exited

	flushMutex sync.Mutex // Protect concurrent Flush calls

	CurrentSize atomic.Int64 // Size of the active log file

	// Pipeline counters
	Submitted      atomic.Uint64 // Entries accepted into the queue
	Dropped        atomic.Uint64 // Entries lost to eviction, rate capping, or write failure
	Written        atomic.Uint64 // Entries written to the active file
	Rotations      atomic.Uint64 // Successful archive rotations
	Compactions    atomic.Uint64 // Successful in-place compactions
	ArchivesPruned atomic.Uint64 // Archives removed by retention pruning

	// Heartbeat statistics
	HeartbeatSequence atomic.Uint64
	StartTime         atomic.Value // stores time.Time for uptime calculation
}

// Stats is a point-in-time snapshot of the pipeline counters.
type Stats struct {
	Submitted      uint64
	Dropped        uint64
	Written        uint64
	Rotations      uint64
	Compactions    uint64
	ArchivesPruned uint64
	HeartbeatSeq   uint64
	CurrentSize    int64
}

// Stats returns a snapshot of the pipeline counters.
func (l *Logger) Stats() Stats {
	return Stats{
		Submitted:      l.state.Submitted.Load(),
		Dropped:        l.state.Dropped.Load(),
		Written:        l.state.Written.Load(),
		Rotations:      l.state.Rotations.Load(),
		Compactions:    l.state.Compactions.Load(),
		ArchivesPruned: l.state.ArchivesPruned.Load(),
		HeartbeatSeq:   l.state.HeartbeatSequence.Load(),
		CurrentSize:    l.state.CurrentSize.Load(),
	}
}
