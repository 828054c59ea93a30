package applog

import (
	"strings"
	"sync"
)

// OverflowPolicy selects what submit does when a bounded queue is full.
type OverflowPolicy int32

const (
	// OverflowDropOldest evicts the head entry to make room.
	OverflowDropOldest OverflowPolicy = iota
	// OverflowBlock makes the producer wait until the writer drains.
	OverflowBlock
)

// String returns the configuration name of the policy.
func (p OverflowPolicy) String() string {
	if p == OverflowBlock {
		return "block"
	}
	return "drop_oldest"
}

// ParseOverflowPolicy converts a configuration value to its policy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop_oldest", "dropoldest":
		return OverflowDropOldest, nil
	case "block":
		return OverflowBlock, nil
	default:
		return OverflowDropOldest, fmtErrorf("invalid overflow policy: '%s' (use drop_oldest or block)", s)
	}
}

// entryQueue is the handoff between producer goroutines and the single
// writer. Entries are fully formatted lines; order of arrival is order
// of consumption. One mutex guards both the entries and the wakeup
// state, so a producer that sets ready and signals cannot lose the
// wakeup against a writer deciding to wait.
type entryQueue struct {
	mu       sync.Mutex
	notEmpty *sync.Cond // writer waits here for work, flush, or shutdown
	notFull  *sync.Cond // producers wait here under the block policy

	entries []string
	head    int

	ready     bool
	shutdown  bool
	flushReqs []chan struct{} // pending flush confirmations

	capacity int // 0 means unbounded
	policy   OverflowPolicy
}

func newEntryQueue(capacity int, policy OverflowPolicy) *entryQueue {
	q := &entryQueue{
		entries:  make([]string, 0, 64),
		capacity: capacity,
		policy:   policy,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// length is the number of queued entries. Caller holds mu.
func (q *entryQueue) length() int {
	return len(q.entries) - q.head
}

// dropHead discards the oldest entry. Caller holds mu.
func (q *entryQueue) dropHead() {
	q.entries[q.head] = ""
	q.head++
	q.compact()
}

// compact reclaims the consumed prefix of the backing slice once it
// dominates the allocation. Caller holds mu.
func (q *entryQueue) compact() {
	if q.head > 256 && q.head*2 >= len(q.entries) {
		n := copy(q.entries, q.entries[q.head:])
		for i := n; i < len(q.entries); i++ {
			q.entries[i] = ""
		}
		q.entries = q.entries[:n]
		q.head = 0
	}
}

// submit appends one entry, marks work ready, and wakes the writer.
// Safe under concurrent callers. Returns how many entries were evicted
// to make room and whether the entry was accepted; a closed queue
// accepts nothing.
func (q *entryQueue) submit(entry string) (evicted int, accepted bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.shutdown {
		return 0, false
	}

	if q.capacity > 0 {
		if q.policy == OverflowBlock {
			for q.length() >= q.capacity && !q.shutdown {
				q.notFull.Wait()
			}
			if q.shutdown {
				return 0, false
			}
		} else {
			for q.length() >= q.capacity {
				q.dropHead()
				evicted++
			}
		}
	}

	q.entries = append(q.entries, entry)
	q.ready = true
	q.notEmpty.Signal()
	return evicted, true
}

// drainOne removes and returns the head entry. Writer only.
func (q *entryQueue) drainOne() (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.length() == 0 {
		return "", false
	}
	entry := q.entries[q.head]
	q.dropHead()
	if q.capacity > 0 {
		q.notFull.Signal()
	}
	return entry, true
}

// waitWork blocks the writer until there is work, a pending flush, or
// shutdown. Spurious wakeups are absorbed by re-checking the predicate.
// Pending flush confirmations are handed over to the caller.
func (q *entryQueue) waitWork() (flushReqs []chan struct{}, shutdown bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for !q.ready && !q.shutdown && len(q.flushReqs) == 0 {
		q.notEmpty.Wait()
	}
	flushReqs = q.flushReqs
	q.flushReqs = nil
	return flushReqs, q.shutdown
}

// clearReady ends a drain cycle. The flag stays set if a producer
// slipped an entry in after the writer found the queue empty, so the
// next waitWork returns without sleeping.
func (q *entryQueue) clearReady() {
	q.mu.Lock()
	if q.length() == 0 {
		q.ready = false
	}
	q.mu.Unlock()
}

// requestFlush registers a confirmation channel and wakes the writer.
// Returns false when the queue is already shut down.
func (q *entryQueue) requestFlush(confirm chan struct{}) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.shutdown {
		return false
	}
	q.flushReqs = append(q.flushReqs, confirm)
	q.notEmpty.Signal()
	return true
}

// close requests shutdown and wakes the writer and any blocked
// producers. Entries already queued stay queued for the final drain.
func (q *entryQueue) close() {
	q.mu.Lock()
	if !q.shutdown {
		q.shutdown = true
		q.notEmpty.Broadcast()
		q.notFull.Broadcast()
	}
	q.mu.Unlock()
}
