package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Options are process-level knobs read from the environment.
type Options struct {
	SettingsPath string        `env:"VEXO_SETTINGS_PATH"`
	LogLevel     string        `env:"VEXO_LOG_LEVEL" env-default:"info" validate:"oneof=trace debug info warn warning error"`
	UserAgent    string        `env:"VEXO_USER_AGENT" env-default:"VexoChecker/5.7" validate:"required"`
	HTTPTimeout  time.Duration `env:"VEXO_HTTP_TIMEOUT" env-default:"5s" validate:"gt=0"`
	Watchdog     time.Duration `env:"VEXO_WATCHDOG" env-default:"20s" validate:"gt=0"`
	DNSPoll      time.Duration `env:"VEXO_DNS_POLL" env-default:"3s" validate:"gt=0"`
}

// LoadOptions loads an optional .env file and then reads the environment.
// Variables already set in the environment win over the file.
func LoadOptions(envFile string) (*Options, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	var opts Options
	if err := cleanenv.ReadEnv(&opts); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if opts.SettingsPath == "" {
		opts.SettingsPath = GetSettingsPath()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// DefaultEnvFile returns the .env path next to the executable.
func DefaultEnvFile() string {
	exe, err := os.Executable()
	if err != nil {
		return ".env"
	}
	return filepath.Join(filepath.Dir(exe), ".env")
}
