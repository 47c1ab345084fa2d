//go:build darwin

package config

import (
	"os"
	"path/filepath"
)

// GetSettingsPath returns the settings path under Application Support.
// The .app bundle itself is read-only once signed.
func GetSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "settings.yaml"
	}
	return filepath.Join(home, "Library", "Application Support", "VexoChecker", "settings.yaml")
}
