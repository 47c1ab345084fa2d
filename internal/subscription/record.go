// Package subscription talks to the subscription panel API: it normalizes
// subscription links, fetches the subscription record and reports the
// client's public IP back to the panel.
package subscription

import (
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
)

// Status is the normalized subscription state.
type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
	StatusLimited  Status = "limited"
	StatusExpired  Status = "expired"
	StatusOther    Status = "other"
)

// Record is the subscription payload returned by the panel.
type Record struct {
	Username        string  `json:"username" yaml:"username"`
	StatusKey       string  `json:"status_key" yaml:"status_key"`
	UnlimitedTime   bool    `json:"is_unlimited_time" yaml:"is_unlimited_time"`
	RemainingDays   int     `json:"remaining_days" yaml:"remaining_days"`
	RemainingHours  int     `json:"remaining_hours" yaml:"remaining_hours"`
	UnlimitedVolume bool    `json:"is_unlimited_volume" yaml:"is_unlimited_volume"`
	AllowedVolumeGB float64 `json:"allowed_volume_gb" yaml:"allowed_volume_gb"`
	UsedVolumeGB    float64 `json:"used_volume_gb" yaml:"used_volume_gb"`
	LastIP          string  `json:"last_ip" yaml:"last_ip,omitempty" validate:"omitempty,ipv4"`
	DNS1            string  `json:"dou_ip1" yaml:"dou_ip1,omitempty" validate:"omitempty,ipv4"`
	DNS2            string  `json:"dou_ip2" yaml:"dou_ip2,omitempty" validate:"omitempty,ipv4"`
}

var validate = validator.New()

// Status maps the panel's status key to a Status. The panel uses its
// translation keys as status values; plain names are accepted as well.
func (r *Record) Status() Status {
	switch r.StatusKey {
	case "table_status_active", "active":
		return StatusActive
	case "sub_status_disabled", "disabled":
		return StatusDisabled
	case "limited":
		return StatusLimited
	case "table_status_expired", "expired":
		return StatusExpired
	}
	return StatusOther
}

// RemainingVolumeGB returns allowed minus used volume, clamped at zero and
// rounded to two decimals. Meaningless when UnlimitedVolume is set.
func (r *Record) RemainingVolumeGB() float64 {
	remaining := math.Max(0, r.AllowedVolumeGB-r.UsedVolumeGB)
	return math.Round(remaining*100) / 100
}

// RemainingVolumeText formats the remaining volume the way the tray shows it.
func (r *Record) RemainingVolumeText() string {
	return fmt.Sprintf("%.2f GB", r.RemainingVolumeGB())
}

// HasDNS reports whether the subscription grants a DNS server.
func (r *Record) HasDNS() bool {
	return r != nil && r.DNS1 != ""
}

// Validate checks the addresses carried by the record.
func (r *Record) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid subscription record: %w", err)
	}
	return nil
}
