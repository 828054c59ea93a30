package main

import (
	"fmt"
	"time"

	"github.com/verigo/applog"
)

// TestPayload defines a struct for testing complex type serialization.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Logger Dump Test ---")

	// Record 1: A byte slice with special characters (newline, tab, null).
	byteRecord := []byte("binary\ndata\twith\x00null")

	// Record 2: A struct containing a uint64, a string, and a map.
	structRecord := TestPayload{
		RequestID: 9223372036854775807, // A large uint64
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	logger, err := applog.NewBuilder().
		Directory("./dump_logs").
		FileName("dump.log").
		Level(applog.LevelDeveloper).
		Build()
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		return
	}

	// Dumps are single-line renderings of arbitrary values. The label
	// identifies the dump in the log stream.
	logger.DebugDump("byte record", byteRecord)
	logger.DevDump("struct record", structRecord)

	// Control characters inside regular messages are hex-escaped so the
	// entry still occupies exactly one line.
	logger.Info("raw message with\nembedded\tcontrol bytes")

	if err := logger.Flush(time.Second); err != nil {
		fmt.Printf("Flush failed: %v\n", err)
	}
	logger.Shutdown()

	fmt.Println("--- Test Complete ---")
	fmt.Println("Check ./dump_logs/dump.log for the rendered entries.")
}
