package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/verigo/applog"
)

const configFile = "simple_config.ini"
const configSection = "Logging"

// Example INI content
var iniContent = `; Example simple_config.ini
[Logging]
LogFolder = ./simple_logs
LogFileName = simple.log
LogLevel = Debug
MaxLogFileSize = 1Mb
MaxFilesCount = 5
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(iniContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Created config file: %s\n", configFile)

	// --- Initialize Logger ---
	// The package-level logger reads its settings from the INI section.
	err = applog.InitFromConfig(configFile, configSection)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger initialized.")

	// --- Logging ---
	applog.Debug("This is a debug message.")
	applog.Info("Application starting...")
	applog.Warning("Potential issue detected.")
	applog.Error("An error occurred!")

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			applog.Info(fmt.Sprintf("Goroutine %d started", id))
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			applog.InfoAt(fmt.Sprintf("Goroutine %d finished", id), "main.go", 58)
		}(i)
	}

	// Wait for goroutines to finish before shutting down logger
	wg.Wait()
	fmt.Println("Goroutines finished.")

	// Initialization is single-shot; a second attempt reports an error.
	if err := applog.Init("./other_logs", "other.log", applog.LevelInfo, applog.Unset, applog.Unset); err != nil {
		fmt.Printf("Re-initialization rejected as expected: %v\n", err)
	}

	// --- Shutdown Logger ---
	fmt.Println("Shutting down logger...")
	err = applog.Shutdown(2 * time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger shutdown error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Println("Check log files in './simple_logs'.")
}
