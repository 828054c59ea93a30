package applog

import (
	"fmt"
	"time"
)

// heartbeatLoop emits a periodic statistics line until Shutdown stops
// it. The line travels through the regular pipeline at System level so
// it is subject to the same ordering and rotation as application
// entries.
func (l *Logger) heartbeatLoop(interval time.Duration) {
	defer close(l.heartbeatDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.logHeartbeat()
		case <-l.heartbeatStop:
			return
		}
	}
}

func (l *Logger) logHeartbeat() {
	seq := l.state.HeartbeatSequence.Add(1)

	var uptime time.Duration
	if start, ok := l.state.StartTime.Load().(time.Time); ok {
		uptime = time.Since(start).Round(time.Second)
	}

	msg := fmt.Sprintf("heartbeat seq=%d uptime=%s submitted=%d written=%d dropped=%d rotations=%d compactions=%d size=%d",
		seq, uptime,
		l.state.Submitted.Load(),
		l.state.Written.Load(),
		l.state.Dropped.Load(),
		l.state.Rotations.Load(),
		l.state.Compactions.Load(),
		l.state.CurrentSize.Load())
	l.submit(LevelSystem, msg, "", -1)
}
