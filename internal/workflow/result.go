// Package workflow runs one subscription check: the public IP lookup and the
// subscription fetch in parallel, then the IP reconciliation.
package workflow

import "github.com/user/vexo-checker/internal/subscription"

// IPKind is the outcome of IP reconciliation.
type IPKind string

const (
	IPNoChange     IPKind = "no_change"
	IPChanged      IPKind = "changed"
	IPConflict     IPKind = "conflict"
	IPUpdateFailed IPKind = "update_failed"
	IPNotFound     IPKind = "not_found"
)

// Style tells the presentation layer how to color a message.
type Style string

const (
	StyleSuccess Style = "success"
	StyleWarning Style = "warning"
	StyleDanger  Style = "danger"
)

// IPStatus is produced at most once per run.
type IPStatus struct {
	Kind  IPKind
	OldIP string
	NewIP string
}

// Style returns the message style for the status.
func (s *IPStatus) Style() Style {
	switch s.Kind {
	case IPNoChange, IPChanged:
		return StyleSuccess
	case IPConflict:
		return StyleDanger
	}
	return StyleWarning
}

// MessageKey returns the i18n key describing the status.
func (s *IPStatus) MessageKey() string {
	switch s.Kind {
	case IPNoChange:
		return "ip_no_change"
	case IPChanged:
		return "ip_changed_from_to"
	case IPConflict:
		return "ip_conflict_error"
	case IPUpdateFailed:
		return "ip_update_fail"
	}
	return "ip_not_found"
}

// Params returns the message parameters for MessageKey.
func (s *IPStatus) Params() []any {
	switch s.Kind {
	case IPNoChange:
		return []any{s.NewIP}
	case IPChanged:
		old := s.OldIP
		if old == "" {
			old = "N/A"
		}
		return []any{old, s.NewIP}
	}
	return nil
}

// Error is a renderable failure.
type Error struct {
	Kind    string
	Message string
}

// Result is the single outcome of a run. A failed run carries only Err;
// a successful one always carries Record.
type Result struct {
	Success  bool
	Record   *subscription.Record
	IPStatus *IPStatus
	Err      *Error
}

// Failed builds an unsuccessful result.
func Failed(kind, message string) Result {
	return Result{Err: &Error{Kind: kind, Message: message}}
}

// errorKey maps a fetch failure to its i18n key.
func errorKey(kind subscription.ErrorKind) string {
	switch kind {
	case subscription.KindInvalidURL:
		return "error_url"
	case subscription.KindConnection:
		return "error_connect"
	}
	return "error_unknown"
}
