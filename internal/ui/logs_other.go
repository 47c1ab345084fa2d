//go:build !windows && !darwin

package ui

import (
	"os"
	"os/exec"

	"github.com/user/vexo-checker/internal/logger"
)

// openLogFile tries $EDITOR, then xdg-open.
func openLogFile() {
	path := logger.GetLogPath()
	if editor := os.Getenv("EDITOR"); editor != "" {
		if err := exec.Command(editor, path).Start(); err == nil {
			return
		}
	}
	if err := exec.Command("xdg-open", path).Start(); err != nil {
		logger.Error("No viewer found for log: %s", path)
	}
}
