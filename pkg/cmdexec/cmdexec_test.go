package cmdexec

import (
	"context"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRunCommand_Success tests the behavior of runCommand with a working command.
//
// It verifies that:
//   - Stdout is captured and the exit code is zero
//   - Stderr stays separate from stdout
func TestRunCommand_Success(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}

	res, err := runCommand(context.Background(), "echo", []string{"hello"}, 30)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Contains(t, string(res.Stdout), "hello")
	assert.Empty(t, res.Stderr)
	assert.Equal(t, 0, res.ExitCode)
}

// TestRunCommand_NonZeroExit tests the behavior of runCommand with a failing command.
//
// It verifies that:
//   - A non-zero exit returns both a populated result and an error
//   - The exit code is preserved on the result
//   - The error message carries the trailing output
func TestRunCommand_NonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}

	res, err := runCommand(context.Background(), "sh", []string{"-c", "echo oops >&2; exit 3"}, 30)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 3, res.ExitCode)
	assert.Contains(t, string(res.Stderr), "oops")
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Contains(t, err.Error(), "oops")
}

// TestRunCommand_SpawnFailure tests the behavior of runCommand when the process never starts.
//
// It verifies that:
//   - A nonexistent executable returns a nil result and an error
func TestRunCommand_SpawnFailure(t *testing.T) {
	res, err := runCommand(context.Background(), "nonexistent_command_12345", nil, 30)
	assert.Error(t, err)
	assert.Nil(t, res)
}

// TestRunCommand_EmptyName tests the behavior of runCommand with no command.
//
// It verifies that:
//   - An empty or whitespace name is rejected before any execution
func TestRunCommand_EmptyName(t *testing.T) {
	_, err := runCommand(context.Background(), "", nil, 30)
	assert.Error(t, err)

	_, err = runCommand(context.Background(), "   ", nil, 30)
	assert.Error(t, err)
}

// TestRunCommand_Timeout tests the behavior of runCommand when the timeout elapses.
//
// It verifies that:
//   - A command exceeding the timeout returns a timeout error
//   - The partial result is still returned
func TestRunCommand_Timeout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}

	res, err := runCommand(context.Background(), "sleep", []string{"10"}, 1)
	require.Error(t, err)
	assert.NotNil(t, res)
	assert.Contains(t, err.Error(), "timed out after 1 seconds")
}

// TestRunCommand_CancelledContext tests the behavior of runCommand with a dead context.
//
// It verifies that:
//   - A pre-cancelled context short-circuits without running anything
//   - Cancellation during execution aborts the command
func TestRunCommand_CancelledContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}

	t.Run("pre-cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		res, err := runCommand(ctx, "echo", []string{"hello"}, 30)
		assert.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, context.Canceled, err)
	})

	t.Run("cancelled mid-run", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		defer cancel()

		_, err := runCommand(ctx, "sleep", []string{"10"}, 0)
		assert.Error(t, err)
	})
}

// TestRunCommand_NilContext tests the behavior of runCommand with a nil context.
//
// It verifies that:
//   - A nil context falls back to the background context
func TestRunCommand_NilContext(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}

	//nolint:staticcheck // nil context fallback is the behavior under test
	res, err := runCommand(nil, "echo", []string{"ok"}, 30)
	require.NoError(t, err)
	assert.Contains(t, string(res.Stdout), "ok")
}

// TestRunSeam tests the behavior of the Run variable.
//
// It verifies that:
//   - Run can be swapped for a stub and restored
func TestRunSeam(t *testing.T) {
	orig := Run
	defer func() { Run = orig }()

	Run = func(_ context.Context, name string, _ []string, _ int) (*Result, error) {
		return &Result{Stdout: []byte("stubbed:" + name)}, nil
	}

	res, err := Run(context.Background(), "winget", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, "stubbed:winget", string(res.Stdout))
}

// TestTailOf tests the behavior of tailOf.
//
// It verifies that:
//   - Stderr is preferred over stdout
//   - Output longer than three lines keeps only the tail
//   - No output yields a placeholder
func TestTailOf(t *testing.T) {
	t.Run("stderr preferred", func(t *testing.T) {
		res := &Result{Stdout: []byte("out"), Stderr: []byte("err")}
		assert.Equal(t, "err", tailOf(res))
	})

	t.Run("stdout fallback", func(t *testing.T) {
		res := &Result{Stdout: []byte("only out")}
		assert.Equal(t, "only out", tailOf(res))
	})

	t.Run("tail of long output", func(t *testing.T) {
		res := &Result{Stderr: []byte("one\ntwo\nthree\nfour\nfive")}
		assert.Equal(t, "three | four | five", tailOf(res))
	})

	t.Run("no output", func(t *testing.T) {
		assert.Equal(t, "(no output)", tailOf(&Result{}))
	})
}

// TestExitCode tests the behavior of exitCode.
//
// It verifies that:
//   - A finished process reports its real status
//   - A process that never ran reports -1 on error
func TestExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("skipping on Windows")
	}

	t.Run("finished process", func(t *testing.T) {
		cmd := exec.Command("sh", "-c", "exit 7")
		err := cmd.Run()
		require.Error(t, err)
		assert.Equal(t, 7, exitCode(cmd, err))
	})

	t.Run("never started", func(t *testing.T) {
		cmd := exec.Command("nonexistent_command_12345")
		err := cmd.Run()
		require.Error(t, err)
		assert.Equal(t, -1, exitCode(cmd, err))
	})
}

// Process-group behavior is covered in process_unix_test.go; the
// SysProcAttr fields it asserts on do not exist on Windows.
