// Package config handles checker settings persistence and environment options.
package config

import "github.com/user/vexo-checker/internal/subscription"

// Hostnames of the IP-echo services whose addresses are cached in settings.
const (
	HostIcanhazip = "icanhazip.com"
	HostIdentMe   = "v4.ident.me"
)

// Settings is the persisted per-user state.
type Settings struct {
	Language    string               `yaml:"language" validate:"oneof=en ru fa zh"`
	Theme       string               `yaml:"theme" validate:"oneof=darkly flatly"`
	LastUsedURL string               `yaml:"last_used_url" validate:"omitempty,url"`
	IcanhazipIP string               `yaml:"icanhazip_ip,omitempty"`
	IdentMeIP   string               `yaml:"identme_ip,omitempty"`
	LastFetched *subscription.Record `yaml:"last_fetched_data,omitempty" validate:"-"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		Language: "en",
		Theme:    "darkly",
	}
}

func (s *Settings) clone() *Settings {
	c := *s
	if s.LastFetched != nil {
		rec := *s.LastFetched
		c.LastFetched = &rec
	}
	return &c
}
