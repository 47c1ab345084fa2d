package subscription

import (
	"errors"
	"strings"
)

const (
	apiMarker  = "/api/sub/"
	subMarker  = "/sub/"
	updatePath = "/api/update_ip"
)

// ErrInvalidURL is returned for links that carry neither /sub/ nor /api/sub/.
var ErrInvalidURL = errors.New("invalid subscription URL")

// NormalizeURL turns a user-facing subscription link into its API form.
//
//	https://panel/api/sub/TOKEN  -> unchanged
//	https://panel/sub/TOKEN      -> https://panel/api/sub/TOKEN
//	anything else                -> ErrInvalidURL
func NormalizeURL(raw string) (string, error) {
	switch {
	case strings.Contains(raw, apiMarker):
		return raw, nil
	case strings.Contains(raw, subMarker):
		return strings.Replace(raw, subMarker, apiMarker, 1), nil
	}
	return "", ErrInvalidURL
}

// UpdateURL derives the update_ip endpoint from an API subscription URL.
func UpdateURL(apiURL string) string {
	base, _, _ := strings.Cut(apiURL, apiMarker)
	return base + updatePath
}

// Token extracts the subscription token: everything after the last /sub/.
func Token(subURL string) string {
	i := strings.LastIndex(subURL, subMarker)
	if i < 0 {
		return subURL
	}
	return subURL[i+len(subMarker):]
}
