package ui

import "strings"

// linkChange reports whether entered should replace the current link.
func linkChange(current, entered string) (string, bool) {
	link := strings.TrimSpace(entered)
	if link == "" || link == current {
		return "", false
	}
	return link, true
}
