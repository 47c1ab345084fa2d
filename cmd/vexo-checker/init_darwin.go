//go:build darwin

package main

import (
	"os"
	"strings"
)

func init() {
	// Finder and launchd start apps with a minimal PATH that lacks the
	// system admin tools' siblings and Homebrew.
	extraPaths := []string{
		"/usr/sbin",
		"/sbin",
		"/opt/homebrew/bin",
		"/usr/local/bin",
	}

	current := os.Getenv("PATH")
	existing := make(map[string]bool)
	for _, p := range strings.Split(current, ":") {
		existing[p] = true
	}

	var toAdd []string
	for _, p := range extraPaths {
		if !existing[p] {
			toAdd = append(toAdd, p)
		}
	}
	if len(toAdd) > 0 {
		os.Setenv("PATH", current+":"+strings.Join(toAdd, ":"))
	}
}
