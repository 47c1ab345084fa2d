package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/vexo-checker/internal/subscription"
)

func TestLoadCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	m := NewManager(path)

	require.NoError(t, m.Load())
	assert.FileExists(t, path)
	assert.Equal(t, "en", m.Get().Language)
	assert.Equal(t, "darkly", m.Get().Theme)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	m := NewManager(path)
	require.NoError(t, m.Load())

	require.NoError(t, m.Update(func(s *Settings) {
		s.Language = "ru"
		s.LastUsedURL = "https://panel.example.com/sub/abc123"
	}))
	m.SetHostIP(HostIcanhazip, "104.16.184.241")
	m.SetHostIP("unknown.example", "1.1.1.1")
	m.SetLastFetched(&subscription.Record{Username: "alice", LastIP: "1.2.3.4", DNS1: "10.0.0.53"})
	require.NoError(t, m.Save())

	again := NewManager(path)
	require.NoError(t, again.Load())
	s := again.Get()
	assert.Equal(t, "ru", s.Language)
	assert.Equal(t, "https://panel.example.com/sub/abc123", again.LastUsedURL())
	assert.Equal(t, "104.16.184.241", again.HostIP(HostIcanhazip))
	assert.Empty(t, again.HostIP(HostIdentMe))
	require.NotNil(t, s.LastFetched)
	assert.Equal(t, "alice", s.LastFetched.Username)
	assert.Equal(t, "10.0.0.53", s.LastFetched.DNS1)

	info, err := os.Stat(path)
	require.NoError(t, err)
	if os.PathSeparator == '/' {
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, m.Load())

	err := m.Update(func(s *Settings) { s.Language = "klingon" })
	assert.Error(t, err)
	assert.Equal(t, "en", m.Get().Language)
}

func TestGetReturnsCopy(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "settings.yaml"))
	m.SetLastFetched(&subscription.Record{Username: "bob"})

	s := m.Get()
	s.LastFetched.Username = "mallory"
	s.Language = "zh"

	assert.Equal(t, "bob", m.Get().LastFetched.Username)
	assert.Equal(t, "en", m.Get().Language)
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("language: [unterminated"), 0600))

	m := NewManager(path)
	require.NoError(t, m.Load())
	assert.Equal(t, "en", m.Get().Language)
}
