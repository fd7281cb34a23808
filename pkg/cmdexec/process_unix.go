//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// setProcGroup places the command in its own process group.
//
// With Setpgid set, a timed-out winget invocation and every child it
// spawned (installers, msiexec) share one group id that killProcGroup
// can signal at once.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcGroup sends SIGKILL to the command's entire process group.
//
// The negative PID addresses the group rather than the single process,
// so no orphaned children remain after a timeout.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}
