//go:build windows

package cmdexec

import (
	"os/exec"
)

// setProcGroup is a no-op on Windows.
//
// exec.CommandContext terminates the process on context expiry, and
// installer children detach into their own job objects regardless, so
// there is no group to configure here.
func setProcGroup(cmd *exec.Cmd) {
	// no-op
}

// killProcGroup kills the command's process on Windows.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
