package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/verigo/applog"
	"github.com/verigo/applog/compat"
)

const logDirectory = "./temp_logs"

// main orchestrates the different output scenarios.
func main() {
	// Ensure a clean state by removing the previous log directory.
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}

	fmt.Println("--- Logger Output Scenarios ---")
	fmt.Printf("! File-based logs will be in the '%s' directory.\n\n", logDirectory)

	testFileOutput()
	testInertMode()
	testDiagnosticSink()
	testThresholdFiltering()
	testStdlibBridge()

	fmt.Println("\n--- Scenarios Complete ---")
	fmt.Printf("Check the '%s' directory for log files.\n", logDirectory)
}

// testFileOutput demonstrates the normal path: entries land in the file.
func testFileOutput() {
	fmt.Println("[1] File output")

	logger := applog.New()
	if err := logger.Init(logDirectory, "file_output.log", applog.LevelDebug, applog.Unset, applog.Unset); err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	logger.Info("file output scenario started")
	logger.Debug("debug entry lands in the file")
	shutdownLogger(logger, "file output")
}

// testInertMode shows that an empty file name produces a logger that
// accepts calls but writes nothing.
func testInertMode() {
	fmt.Println("[2] Inert mode (empty file name)")

	logger := applog.New()
	if err := logger.Init(logDirectory, "", applog.LevelDebug, applog.Unset, applog.Unset); err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	logger.Info("this entry is discarded")
	logger.Error("so is this one")
	shutdownLogger(logger, "inert mode")
	fmt.Println("  No file was created; all calls were no-ops.")
}

// testDiagnosticSink captures the logger's own failure reports in a
// caller-supplied writer instead of stderr.
func testDiagnosticSink() {
	fmt.Println("[3] Diagnostic sink")

	var diag bytes.Buffer
	logger, err := applog.NewBuilder().
		Directory("/dev/null/not-a-directory"). // Guaranteed to fail on open
		FileName("unreachable.log").
		DiagWriter(&diag).
		Build()
	if err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	logger.Warning("this write cannot reach disk")
	time.Sleep(100 * time.Millisecond)
	shutdownLogger(logger, "diagnostic sink")

	fmt.Printf("  Captured diagnostics:\n%s", diag.String())
}

// testThresholdFiltering shows level admission against the threshold.
func testThresholdFiltering() {
	fmt.Println("[4] Threshold filtering (threshold = Warning)")

	logger := applog.New()
	if err := logger.Init(logDirectory, "threshold.log", applog.LevelWarning, applog.Unset, applog.Unset); err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	logger.Error("admitted: Error <= Warning")
	logger.Warning("admitted: Warning <= Warning")
	logger.Info("rejected: Info > Warning")
	logger.Debug("rejected: Debug > Warning")

	fmt.Printf("  IsWarning=%v IsInfo=%v IsDebug=%v\n",
		logger.IsWarning(), logger.IsInfo(), logger.IsDebug())
	shutdownLogger(logger, "threshold filtering")
}

// testStdlibBridge routes a standard library logger into the pipeline
// through the fiber adapter's io.Writer form.
func testStdlibBridge() {
	fmt.Println("[5] Stdlib log bridge")

	logger := applog.New()
	if err := logger.Init(logDirectory, "bridge.log", applog.LevelInfo, applog.Unset, applog.Unset); err != nil {
		fmt.Printf("  ERROR: %v\n", err)
		return
	}
	bridge := log.New(compat.NewFiberAdapter(logger), "", 0)
	bridge.Println("stdlib log line routed into the pipeline")
	shutdownLogger(logger, "stdlib bridge")
}

// shutdownLogger is a helper to gracefully shut down a logger instance.
func shutdownLogger(l *applog.Logger, phaseName string) {
	if err := l.Shutdown(500 * time.Millisecond); err != nil {
		fmt.Printf("  WARNING: Shutdown error in phase '%s': %v\n", phaseName, err)
	}
}
