//go:build windows

package logger

import (
	"os"
	"path/filepath"
)

// getLogDir returns %APPDATA%\VexoChecker, falling back to the executable's
// directory when APPDATA is not set.
func getLogDir() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "VexoChecker")
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
