package ui

import (
	"os/exec"

	"github.com/user/vexo-checker/internal/logger"
)

// openLogFile opens the log file in Console or the default viewer.
func openLogFile() {
	if err := exec.Command("open", logger.GetLogPath()).Start(); err != nil {
		logger.Error("Failed to open log: %v", err)
	}
}
