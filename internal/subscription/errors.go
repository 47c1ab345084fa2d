package subscription

import (
	"errors"
	"fmt"
)

// ErrorKind classifies fetch failures.
type ErrorKind string

const (
	KindInvalidURL     ErrorKind = "invalid_url"
	KindConnection     ErrorKind = "connection"
	KindServerReported ErrorKind = "server_reported"
	KindUnknown        ErrorKind = "unknown"
)

// FetchError is returned by Fetcher.Fetch.
type FetchError struct {
	Kind ErrorKind
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("subscription fetch (%s): %v", e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a fetch error, or KindUnknown.
func KindOf(err error) ErrorKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

// ErrIPConflict is returned when the panel refuses the IP because another
// subscription already holds it.
var ErrIPConflict = errors.New("ip address is bound to another subscription")

// UpdateError is any other IP update failure.
type UpdateError struct {
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *UpdateError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("ip update failed: %v", e.Err)
	}
	return fmt.Sprintf("ip update failed with status %d: %v", e.StatusCode, e.Err)
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}
