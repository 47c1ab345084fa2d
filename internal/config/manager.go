package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/user/vexo-checker/internal/logger"
	"github.com/user/vexo-checker/internal/subscription"
)

// Manager handles settings operations.
type Manager struct {
	mu       sync.RWMutex
	settings *Settings
	path     string
}

// NewManager creates a new settings manager.
func NewManager(path string) *Manager {
	return &Manager{
		path:     path,
		settings: DefaultSettings(),
	}
}

// Path returns the settings file location.
func (m *Manager) Path() string {
	return m.path
}

// Load reads settings from file. A missing file is created with defaults;
// a corrupt or invalid file is logged and replaced by defaults in memory.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			m.settings = DefaultSettings()
			return m.saveUnsafe()
		}
		return fmt.Errorf("failed to read settings: %w", err)
	}

	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		logger.Warning("Settings file %s is corrupt, using defaults: %v", m.path, err)
		m.settings = DefaultSettings()
		return nil
	}
	if err := s.Validate(); err != nil {
		logger.Warning("Settings file %s has invalid values, using defaults: %v", m.path, err)
		m.settings = DefaultSettings()
		return nil
	}

	m.settings = s
	return nil
}

// Save writes settings to file.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveUnsafe()
}

func (m *Manager) saveUnsafe() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Get returns a copy of the current settings.
func (m *Manager) Get() *Settings {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.clone()
}

// Update applies fn to a copy of the settings, validates the result and
// stores it. Nothing is written to disk; call Save for that.
func (m *Manager) Update(fn func(s *Settings)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := m.settings.clone()
	fn(next)
	if err := next.Validate(); err != nil {
		return err
	}
	m.settings = next
	return nil
}

// LastUsedURL returns the stored subscription URL.
func (m *Manager) LastUsedURL() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings.LastUsedURL
}

// SetLastFetched replaces the stored subscription record.
func (m *Manager) SetLastFetched(rec *subscription.Record) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec == nil {
		m.settings.LastFetched = nil
		return
	}
	c := *rec
	m.settings.LastFetched = &c
}

// HostIP returns the cached address of an IP-echo host.
func (m *Manager) HostIP(host string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	switch host {
	case HostIcanhazip:
		return m.settings.IcanhazipIP
	case HostIdentMe:
		return m.settings.IdentMeIP
	}
	return ""
}

// SetHostIP caches the address of an IP-echo host. Unknown hosts are ignored.
func (m *Manager) SetHostIP(host, ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch host {
	case HostIcanhazip:
		m.settings.IcanhazipIP = ip
	case HostIdentMe:
		m.settings.IdentMeIP = ip
	}
}
