package core

import (
	"errors"
	"fmt"

	"github.com/user/vexo-checker/internal/subscription"
)

func validateURL(raw string) error {
	if _, err := subscription.NormalizeURL(raw); err != nil {
		return fmt.Errorf("%q: %w", raw, err)
	}
	return nil
}

// validateDNSRecord checks that rec carries usable DNS addresses. Nothing
// that fails here may reach an OS command.
func validateDNSRecord(rec *subscription.Record) error {
	if !rec.HasDNS() {
		return errors.New("subscription has no DNS server")
	}
	return rec.Validate()
}
