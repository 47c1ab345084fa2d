package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptionsDefaults(t *testing.T) {
	t.Setenv("VEXO_SETTINGS_PATH", "/tmp/vexo/settings.yaml")

	opts, err := LoadOptions(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/vexo/settings.yaml", opts.SettingsPath)
	assert.Equal(t, "info", opts.LogLevel)
	assert.Equal(t, "VexoChecker/5.7", opts.UserAgent)
	assert.Equal(t, 5*time.Second, opts.HTTPTimeout)
	assert.Equal(t, 20*time.Second, opts.Watchdog)
	assert.Equal(t, 3*time.Second, opts.DNSPoll)
}

func TestLoadOptionsFromEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("VEXO_WATCHDOG=45s\nVEXO_LOG_LEVEL=debug\n"), 0600))
	// Registered with t.Setenv so the values godotenv sets are restored afterwards.
	t.Setenv("VEXO_WATCHDOG", "")
	os.Unsetenv("VEXO_WATCHDOG")
	t.Setenv("VEXO_LOG_LEVEL", "")
	os.Unsetenv("VEXO_LOG_LEVEL")

	opts, err := LoadOptions(envFile)
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, opts.Watchdog)
	assert.Equal(t, "debug", opts.LogLevel)
}

func TestLoadOptionsRejectsBadLevel(t *testing.T) {
	t.Setenv("VEXO_LOG_LEVEL", "loud")

	_, err := LoadOptions("")
	assert.Error(t, err)
}
