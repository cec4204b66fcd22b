//go:build !windows

package player

import (
	"os/exec"
	"syscall"
)

// setupPlayerProcess asks the player to terminate with SIGTERM on cancellation, so it can restore the terminal
// before exiting.  The player stays in hibiki's process group to keep reading from the terminal.
func setupPlayerProcess(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
}
