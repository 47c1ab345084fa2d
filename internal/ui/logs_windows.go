package ui

import (
	"os/exec"

	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/procutil"
)

// openLogFile opens the log file in the default editor.
func openLogFile() {
	cmd := procutil.HideWindow(exec.Command("cmd", "/c", "start", "", logger.GetLogPath()))
	if err := cmd.Start(); err != nil {
		logger.Error("Failed to open log: %v", err)
	}
}
