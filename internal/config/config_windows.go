//go:build windows

package config

import (
	"os"
	"path/filepath"
)

// GetSettingsPath returns %APPDATA%\VexoChecker\settings.yaml.
func GetSettingsPath() string {
	if appData := os.Getenv("APPDATA"); appData != "" {
		return filepath.Join(appData, "VexoChecker", "settings.yaml")
	}
	return settingsPathNextToExe()
}

func settingsPathNextToExe() string {
	exe, err := os.Executable()
	if err != nil {
		return "settings.yaml" // fallback: current directory
	}
	return filepath.Join(filepath.Dir(exe), "settings.yaml")
}
