package main

import (
	"fmt"
	"os"
	"time"

	"github.com/verigo/applog"
)

func main() {
	logger, err := applog.NewBuilder().
		Directory("./logs").
		FileName("heartbeat.log").
		Level(applog.LevelDebug).
		HeartbeatSec(2). // Short interval for testing
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Heartbeat Test ---")
	fmt.Println("Generating traffic while heartbeats fire every 2s...")

	// Generate some logs to move the heartbeat counters
	for j := 0; j < 10; j++ {
		logger.Debug(fmt.Sprintf("debug test log iteration=%d", j))
		logger.Info(fmt.Sprintf("info test log iteration=%d", j))
		logger.Warning(fmt.Sprintf("warning test log iteration=%d", j))
		time.Sleep(500 * time.Millisecond)
	}

	// Wait past the next heartbeat tick
	time.Sleep(3 * time.Second)

	stats := logger.Stats()
	fmt.Printf("Submitted=%d Written=%d Dropped=%d Size=%d\n",
		stats.Submitted, stats.Written, stats.Dropped, stats.CurrentSize)

	if err := logger.Shutdown(2 * time.Second); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to shut down logger: %v\n", err)
	}

	fmt.Println("Heartbeat test completed")
	fmt.Println("Check ./logs/heartbeat.log for heartbeat lines at System level")
}
