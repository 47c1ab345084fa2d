//go:build darwin

package elevate

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
)

// IsAdmin returns true if the current process is running as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}

// RunAsAdmin re-launches the current executable as root with args (the
// current arguments when empty), through the native authorization dialog
// and then sudo. On success the current process exits.
func RunAsAdmin(args ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	// osascript needs the real path
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	args = relaunchArgs(args)

	if osascriptPath, err := exec.LookPath("osascript"); err == nil {
		cmd := exec.Command(osascriptPath, "-e", appleScript(exe, args))
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Start(); err == nil {
			os.Exit(0)
		}
	}

	// Works only from a terminal.
	sudoPath, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("osascript and sudo not available; please run as root")
	}
	return syscall.Exec(sudoPath, append([]string{"sudo", exe}, args...), os.Environ())
}
