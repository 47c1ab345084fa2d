//go:build !windows && !darwin

package config

import (
	"os"
	"path/filepath"
)

// GetSettingsPath returns the settings path next to the executable.
func GetSettingsPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(filepath.Dir(exe), "settings.yaml")
}
