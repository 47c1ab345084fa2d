package ui

import (
	"fmt"

	"github.com/user/vexo-checker/internal/core"
	"github.com/user/vexo-checker/internal/i18n"
	"github.com/user/vexo-checker/internal/subscription"
)

// View is the localized text of every tray element.
type View struct {
	Icon      string
	Tooltip   string
	Username  string
	Status    string
	Time      string
	Volume    string
	IP        string
	Refresh   string
	DNSButton string

	RefreshEnabled bool
	DNSEnabled     bool
}

// Render builds the tray view of a status snapshot.
func Render(s *core.StatusPayload) View {
	lang := s.Language
	t := func(key string, params ...any) string { return i18n.T(lang, key, params...) }

	v := View{
		Icon:           iconState(s),
		Refresh:        t("fetch_button"),
		RefreshEnabled: !s.Fetching,
		DNSButton:      t("connect_dns_button"),
		DNSEnabled:     !s.Busy,
	}
	if s.Fetching {
		v.Refresh = t("fetch_button_loading")
	}
	switch {
	case s.Busy && s.DNSConnected:
		v.DNSButton = t("unset_dns_button_loading")
	case s.Busy:
		v.DNSButton = t("checking_status_before_dns")
	case s.DNSConnected:
		v.DNSButton = t("disconnect_dns_button")
	}

	rec := s.Record
	if rec == nil {
		v.Username = t("username_header", "...")
		v.Status = t("status_header", "...")
		v.Time = t("time_header", "...")
		v.Volume = t("volume_header", "...")
		v.IP = t("ip_header", "...")
		v.Tooltip = t("window_title")
		return v
	}

	ip := rec.LastIP
	if ip == "" {
		ip = "N/A"
	}
	status := statusText(rec, lang)

	v.Username = t("username_header", rec.Username)
	v.Status = t("status_header", status)
	v.Time = t("time_header", remainingTime(rec, lang))
	v.Volume = t("volume_header", remainingVolume(rec, lang))
	v.IP = t("ip_header", ip)
	v.Tooltip = fmt.Sprintf("%s\n%s: %s", t("window_title"), rec.Username, status)
	return v
}

func statusText(rec *subscription.Record, lang string) string {
	switch rec.Status() {
	case subscription.StatusActive:
		return i18n.T(lang, "status_active")
	case subscription.StatusDisabled:
		return i18n.T(lang, "status_disabled")
	case subscription.StatusLimited:
		return i18n.T(lang, "status_limited")
	case subscription.StatusExpired:
		return i18n.T(lang, "status_expired")
	}
	return rec.StatusKey
}

func remainingTime(rec *subscription.Record, lang string) string {
	if rec.UnlimitedTime {
		return i18n.T(lang, "unlimited")
	}
	return i18n.T(lang, "time_format", rec.RemainingDays, rec.RemainingHours)
}

func remainingVolume(rec *subscription.Record, lang string) string {
	if rec.UnlimitedVolume {
		return i18n.T(lang, "unlimited")
	}
	return i18n.Translator(lang).FmtNumber(rec.RemainingVolumeGB(), 2) + " GB"
}

func iconState(s *core.StatusPayload) string {
	switch {
	case s.Fetching || s.Busy:
		return "busy"
	case s.DNSConnected:
		return "connected"
	case s.Record != nil && s.Record.Status() != subscription.StatusActive:
		return "warning"
	}
	return "idle"
}
