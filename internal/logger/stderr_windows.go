//go:build windows

package logger

import (
	"os"

	"golang.org/x/sys/windows"
)

// redirectStderr points the process stderr handle at the log file so
// runtime panics end up in the log. It returns the previous stderr.
func redirectStderr(f *os.File) *os.File {
	if f == nil {
		return nil
	}
	orig := os.Stderr
	_ = windows.SetStdHandle(windows.STD_ERROR_HANDLE, windows.Handle(f.Fd()))
	os.Stderr = f
	return orig
}
