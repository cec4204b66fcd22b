//go:build windows

package player

import (
	"os/exec"
)

// setupPlayerProcess keeps the default cancellation, which kills the player.  Windows has no SIGTERM to deliver.
func setupPlayerProcess(cmd *exec.Cmd) {
	cmd.Cancel = func() error {
		return cmd.Process.Kill()
	}
}
