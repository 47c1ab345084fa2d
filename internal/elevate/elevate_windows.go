//go:build windows

package elevate

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// IsAdmin returns true if the process token is elevated.
func IsAdmin() bool {
	return windows.GetCurrentProcessToken().IsElevated()
}

// RunAsAdmin re-launches the current executable through UAC with args (the
// current arguments when empty). If the user accepts the prompt this does
// not return; if they cancel, an error is returned.
func RunAsAdmin(args ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	verb, _ := windows.UTF16PtrFromString("runas")
	file, _ := windows.UTF16PtrFromString(exe)
	params, _ := windows.UTF16PtrFromString(windows.ComposeCommandLine(relaunchArgs(args)))
	cwd, _ := windows.UTF16PtrFromString("")

	if err := windows.ShellExecute(0, verb, file, params, cwd, windows.SW_NORMAL); err != nil {
		return fmt.Errorf("UAC elevation failed or was cancelled: %w", err)
	}

	os.Exit(0)
	return nil
}
