// Package cmdexec provides external command execution for wingetup.
// Commands are invoked directly by argv without a shell, with optional
// timeouts, and run in their own process group so that children of a
// timed-out command are terminated as well.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/ajxudir/wingetup/pkg/verbose"
	"github.com/ajxudir/wingetup/pkg/warnings"
)

// Result holds the outcome of a single command invocation.
//
// Stdout and Stderr are captured separately so callers can parse program
// output without log noise mixed in. ExitCode is the process exit status,
// 0 on success. Winget reports failures as HRESULT-style codes far outside
// the usual 0-255 range, which is why the field is a plain int.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// RunFunc is the function signature for command execution.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - name: Executable to invoke (absolute path or PATH lookup)
//   - args: Arguments passed verbatim, no shell interpretation
//   - timeoutSeconds: Maximum execution time in seconds (0 for no timeout)
//
// Returns:
//   - *Result: Captured output and exit status, non-nil whenever the
//     process actually ran (including non-zero exits)
//   - error: Spawn failure, timeout, or non-zero exit
type RunFunc func(ctx context.Context, name string, args []string, timeoutSeconds int) (*Result, error)

// Run is the default command execution function.
//
// This variable holds the implementation used for command execution
// throughout the application. It can be replaced with a mock
// implementation for testing.
var Run RunFunc = runCommand

// runCommand executes a single command with the given arguments.
//
// The command runs in its own process group so all child processes can be
// terminated on timeout, preventing orphaned processes. A non-zero exit
// returns both a populated Result and an error describing the exit status;
// callers that can salvage partial output inspect the Result.
func runCommand(ctx context.Context, name string, args []string, timeoutSeconds int) (*Result, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("no command provided")
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if timeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeoutSeconds)*time.Second)
		defer cancel()
	}

	verbose.CommandExec(name, args)
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	setProcGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode(cmd, err),
	}
	verbose.CommandResult(name, res.ExitCode, time.Since(start))

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded && timeoutSeconds > 0 {
			// Kill the whole group so no children survive the timeout
			if killErr := killProcGroup(cmd); killErr != nil {
				warnings.Warnf("Warning: failed to kill process group on timeout: %v\n", killErr)
			}
			return res, fmt.Errorf("%s timed out after %d seconds: %w", name, timeoutSeconds, err)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return res, fmt.Errorf("%s exited with code %d: %s", name, res.ExitCode, tailOf(res))
		}
		// Spawn failure: the process never ran
		return nil, err
	}

	return res, nil
}

// exitCode extracts the process exit status from a finished command.
//
// Returns 0 for success, the real status for non-zero exits, and -1 when
// the process never started or was killed by a signal.
func exitCode(cmd *exec.Cmd, err error) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err != nil {
		return -1
	}
	return 0
}

// tailOf returns the most useful trailing output of a failed command for
// inclusion in error messages: stderr when present, stdout otherwise,
// truncated to the final line group.
func tailOf(res *Result) string {
	msg := strings.TrimSpace(string(res.Stderr))
	if msg == "" {
		msg = strings.TrimSpace(string(res.Stdout))
	}
	if msg == "" {
		return "(no output)"
	}
	lines := strings.Split(msg, "\n")
	if len(lines) > 3 {
		lines = lines[len(lines)-3:]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, " | ")
}
