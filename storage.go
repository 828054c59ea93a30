package applog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// openActiveFile creates the log directory if needed and opens the
// active file in append mode, seeding the size counter from its current
// length. On failure the writer keeps running with no file; every write
// attempt is then diagnosed.
func (l *Logger) openActiveFile() {
	cfg := l.getConfig()

	if err := os.MkdirAll(cfg.Directory, 0755); err != nil {
		l.internalLog("cannot create log directory '%s': %v\n", cfg.Directory, err)
	}

	file, err := os.OpenFile(l.filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		l.internalLog("cannot open log file '%s': %v\n", l.filePath, err)
		return
	}

	l.file = file
	l.seedCurrentSize(file)
}

// seedCurrentSize resets the size counter from the file on disk.
func (l *Logger) seedCurrentSize(file *os.File) {
	l.state.CurrentSize.Store(0)
	if fi, err := file.Stat(); err == nil {
		l.state.CurrentSize.Store(fi.Size())
	}
}

// syncFile flushes the active file to disk.
func (l *Logger) syncFile() {
	if l.file == nil {
		return
	}
	if err := l.file.Sync(); err != nil {
		l.internalLog("failed to sync log file '%s': %v\n", l.filePath, err)
	}
}

// closeActiveFile syncs and closes the active file handle.
func (l *Logger) closeActiveFile() {
	if l.file == nil {
		return
	}
	l.syncFile()
	if err := l.file.Close(); err != nil {
		l.internalLog("failed to close log file '%s': %v\n", l.filePath, err)
	}
	l.file = nil
}

// archiveRotate renames the active file to a timestamped archive and
// reopens it empty. Oldest archives are pruned first so the retained
// count ends at the configured cap once the new archive is added.
func (l *Logger) archiveRotate() {
	cfg := l.getConfig()

	l.pruneArchives(cfg.Directory, cfg.MaxFiles)

	l.closeActiveFile()

	archivePath := l.nextArchivePath(cfg.Directory)
	if err := os.Rename(l.filePath, archivePath); err != nil {
		l.internalLog("failed to rename log file '%s' to '%s': %v\n", l.filePath, archivePath, err)
	}

	file, err := os.OpenFile(l.filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND|os.O_TRUNC, 0644)
	if err != nil {
		l.internalLog("cannot reopen log file '%s' after rotation: %v\n", l.filePath, err)
		return
	}
	l.file = file
	l.state.CurrentSize.Store(0)
	l.state.Rotations.Add(1)
}

// nextArchivePath generates a timestamped archive path, re-sampling the
// clock while the candidate name is taken. After repeated collisions it
// switches from millisecond to nanosecond precision.
func (l *Logger) nextArchivePath(dir string) string {
	for attempt := 0; attempt < archiveNameAttempts; attempt++ {
		now := time.Now()
		name := fmt.Sprintf("%s_%s_%03d%s",
			l.baseName, now.Format(archiveTimestampFormat), now.Nanosecond()/int(time.Millisecond), archiveExt)
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path
		}
	}
	now := time.Now()
	name := fmt.Sprintf("%s_%s_%d%s",
		l.baseName, now.Format(archiveTimestampFormat), now.Nanosecond(), archiveExt)
	return filepath.Join(dir, name)
}

// pruneArchives deletes the oldest archives while their count is at or
// above the cap, making room for the archive the rotation adds.
func (l *Logger) pruneArchives(dir string, maxFiles int) {
	matches, err := filepath.Glob(filepath.Join(dir, l.baseName+"_*"+archiveExt))
	if err != nil {
		l.internalLog("failed to scan archives in '%s': %v\n", dir, err)
		return
	}

	type archiveMeta struct {
		path    string
		modTime time.Time
	}
	archives := make([]archiveMeta, 0, len(matches))
	for _, path := range matches {
		info, errStat := os.Stat(path)
		if errStat != nil {
			continue
		}
		archives = append(archives, archiveMeta{path: path, modTime: info.ModTime()})
	}
	sort.Slice(archives, func(i, j int) bool { return archives[i].modTime.Before(archives[j].modTime) })

	for len(archives) > 0 && len(archives) >= maxFiles {
		oldest := archives[0]
		archives = archives[1:]
		if err := os.Remove(oldest.path); err != nil {
			l.internalLog("failed to remove old archive '%s': %v\n", oldest.path, err)
			continue
		}
		l.state.ArchivesPruned.Add(1)
	}
}

// compactInPlace discards roughly the first quarter of the active file:
// copy it to a backup, locate the first line start at or past
// size/compactKeepFraction, rewrite the tail into the truncated active
// file, then remove the backup. The first byte afterwards always starts
// a complete line.
func (l *Logger) compactInPlace() {
	backupPath := l.filePath + backupSuffix

	l.closeActiveFile()

	if err := copyFile(l.filePath, backupPath); err != nil {
		l.internalLog("failed to back up log file '%s': %v\n", l.filePath, err)
		l.reopenAppend()
		return
	}

	backup, err := os.Open(backupPath)
	if err != nil {
		l.internalLog("cannot open backup file '%s': %v\n", backupPath, err)
		l.removeBackup(backupPath)
		l.reopenAppend()
		return
	}

	var size int64
	if fi, errStat := backup.Stat(); errStat == nil {
		size = fi.Size()
	}
	keepOffset := findLineStart(backup, size/compactKeepFraction)

	active, err := os.OpenFile(l.filePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		l.internalLog("cannot reopen log file '%s' for compaction: %v\n", l.filePath, err)
		backup.Close()
		l.removeBackup(backupPath)
		l.reopenAppend()
		return
	}

	if _, err := backup.Seek(keepOffset, io.SeekStart); err != nil {
		l.internalLog("failed to seek backup file '%s': %v\n", backupPath, err)
	} else if _, err := io.Copy(active, backup); err != nil {
		l.internalLog("failed to rewrite log file '%s' during compaction: %v\n", l.filePath, err)
	}
	if err := active.Sync(); err != nil {
		l.internalLog("failed to sync log file '%s' after compaction: %v\n", l.filePath, err)
	}

	backup.Close()
	l.removeBackup(backupPath)

	// The handle stays positioned at the end of the rewritten tail, so
	// subsequent writes continue appending.
	l.file = active
	l.seedCurrentSize(active)
	l.state.Compactions.Add(1)
}

// reopenAppend restores an append handle on the active path after a
// failed compaction step.
func (l *Logger) reopenAppend() {
	file, err := os.OpenFile(l.filePath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		l.internalLog("cannot reopen log file '%s': %v\n", l.filePath, err)
		return
	}
	l.file = file
	l.seedCurrentSize(file)
}

// removeBackup deletes the compaction backup, retrying briefly on
// transient failures.
func (l *Logger) removeBackup(path string) {
	for attempt := 0; attempt < backupRemoveAttempts; attempt++ {
		err := os.Remove(path)
		if err == nil || os.IsNotExist(err) {
			return
		}
		if attempt == backupRemoveAttempts-1 {
			l.internalLog("failed to remove backup file '%s': %v\n", path, err)
			return
		}
		time.Sleep(minWaitTime)
	}
}

// findLineStart returns the offset of the first line start at or after
// from: one past the next newline, or from itself when no newline
// remains in the file.
func findLineStart(f *os.File, from int64) int64 {
	if _, err := f.Seek(from, io.SeekStart); err != nil {
		return from
	}
	r := bufio.NewReader(f)
	offset := from
	for {
		b, err := r.ReadByte()
		if err != nil {
			return from
		}
		offset++
		if b == '\n' {
			return offset
		}
	}
}

// copyFile copies src to dst, replacing any stale dst first.
func copyFile(src, dst string) error {
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
