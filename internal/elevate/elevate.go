// Package elevate detects administrator rights and re-launches the checker
// with them. Changing system DNS requires elevation on every platform.
package elevate

import (
	"fmt"
	"os"
	"strings"
)

// relaunchArgs returns args, or the current process arguments when empty.
func relaunchArgs(args []string) []string {
	if len(args) == 0 {
		return os.Args[1:]
	}
	return args
}

// quoted wraps a string in single quotes for shell usage.
func quoted(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "'\\''") + "'"
}

// escapeAppleScript escapes a string for use inside an AppleScript double-quoted string.
func escapeAppleScript(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// appleScript builds the osascript program that runs exe with args as root.
func appleScript(exe string, args []string) string {
	parts := []string{quoted(exe)}
	for _, a := range args {
		parts = append(parts, quoted(a))
	}
	return fmt.Sprintf(`do shell script "%s" with administrator privileges`,
		escapeAppleScript(strings.Join(parts, " ")))
}
