package applog

// writeLoop is the single consumer goroutine. It owns the active file
// handle from start to exit; producers never touch it. The loop sleeps
// on the queue until a submit, flush request, or shutdown wakes it,
// drains the queue fully, then sleeps again. On shutdown it performs a
// final drain before closing the file, so entries accepted before the
// shutdown are never discarded.
func (l *Logger) writeLoop() {
	defer close(l.writerDone)
	defer l.state.WriterExited.Store(true)

	l.openActiveFile()

	for {
		flushReqs, shutdown := l.queue.waitWork()

		l.drainQueue()

		if len(flushReqs) > 0 {
			l.syncFile()
			for _, confirm := range flushReqs {
				close(confirm)
			}
		}

		if shutdown {
			// The queue refuses new entries once closed, so the drain
			// above was final.
			l.closeActiveFile()
			return
		}

		l.queue.clearReady()
	}
}

// drainQueue writes queued entries until none remain, checking the
// rotation trigger before each write. Rotation may replace the active
// file handle; the write that follows always targets the current one.
func (l *Logger) drainQueue() {
	for {
		entry, ok := l.queue.drainOne()
		if !ok {
			return
		}
		if l.rotateNeeded() {
			l.rotate()
		}
		l.writeEntry(entry)
	}
}

// rotateNeeded applies the size trigger with the fixed tolerance
// subtracted from the current file size.
func (l *Logger) rotateNeeded() bool {
	cfg := l.getConfig()
	if cfg.MaxFileSize == Unset || l.file == nil {
		return false
	}
	return l.state.CurrentSize.Load()-sizeTolerance >= cfg.MaxFileSize
}

// rotate picks the strategy: archive rotation when a retention cap is
// configured, in-place compaction otherwise.
func (l *Logger) rotate() {
	if l.getConfig().MaxFiles != Unset {
		l.archiveRotate()
	} else {
		l.compactInPlace()
	}
}

// writeEntry appends one formatted line to the active file. Failures
// are diagnosed and counted; the loop keeps running.
func (l *Logger) writeEntry(entry string) {
	if l.file == nil {
		l.state.Dropped.Add(1)
		l.internalLog("no active log file, entry dropped\n")
		return
	}

	n, err := l.file.WriteString(entry)
	if err != nil {
		l.state.Dropped.Add(1)
		l.internalLog("failed to write to log file '%s': %v\n", l.filePath, err)
		return
	}
	l.state.CurrentSize.Add(int64(n))
	l.state.Written.Add(1)
}
