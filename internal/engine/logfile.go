package engine

import (
	"fmt"
	"os"
	"time"
)

// EnableFileLogging writes every event of later batches to logPath.
func (e *Engine) EnableFileLogging(logPath string) error {
	f, err := os.Create(logPath) // #nosec G304 - path comes from the user's own flag
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	e.logMu.Lock()
	e.logFile = f
	e.logMu.Unlock()

	e.logToFile(fmt.Sprintf("=== Docket Log Started: %s ===", time.Now().Format(time.RFC3339)))
	e.logToFile(fmt.Sprintf("Policy: %s", e.Policy))
	e.logToFile("")

	return nil
}

// CloseLog closes the log file if open
func (e *Engine) CloseLog() {
	e.logMu.Lock()
	open := e.logFile != nil
	e.logMu.Unlock()

	if !open {
		return
	}

	e.logToFile(fmt.Sprintf("=== Docket Log Ended: %s ===", time.Now().Format(time.RFC3339)))

	e.logMu.Lock()
	defer e.logMu.Unlock()

	_ = e.logFile.Close()
	e.logFile = nil
}

func (e *Engine) logToFile(message string) {
	e.logMu.Lock()
	defer e.logMu.Unlock()

	if e.logFile == nil {
		return
	}

	timestamp := time.Now().Format("15:04:05.000")
	_, _ = fmt.Fprintf(e.logFile, "[%s] %s\n", timestamp, message)
}
