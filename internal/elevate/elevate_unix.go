//go:build !windows && !darwin

package elevate

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

// IsAdmin returns true if the current process is running as root.
func IsAdmin() bool {
	return os.Geteuid() == 0
}

// RunAsAdmin re-launches the current executable as root with args (the
// current arguments when empty). Tries pkexec, then sudo. On success the
// current process exits.
func RunAsAdmin(args ...string) error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	argv := append([]string{exe}, relaunchArgs(args)...)

	if path, err := exec.LookPath("pkexec"); err == nil {
		cmd := &exec.Cmd{
			Path:   path,
			Args:   append([]string{"pkexec"}, argv...),
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}
		if err := cmd.Start(); err == nil {
			os.Exit(0)
		}
	}

	sudoPath, err := exec.LookPath("sudo")
	if err != nil {
		return fmt.Errorf("neither pkexec nor sudo found; please run as root")
	}
	return syscall.Exec(sudoPath, append([]string{"sudo"}, argv...), os.Environ())
}
