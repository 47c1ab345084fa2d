//go:build !windows

package logger

import (
	"os"

	"golang.org/x/sys/unix"
)

// redirectStderr redirects stderr to the log file so panics are captured.
// It returns a duplicate of the previous stderr, or nil.
func redirectStderr(f *os.File) *os.File {
	if f == nil {
		return nil
	}
	var orig *os.File
	if fd, err := unix.Dup(int(os.Stderr.Fd())); err == nil {
		orig = os.NewFile(uintptr(fd), "/dev/stderr")
	}
	_ = unix.Dup2(int(f.Fd()), int(os.Stderr.Fd()))
	return orig
}
