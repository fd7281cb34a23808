package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ajxudir/wingetup/pkg/config"
	"github.com/ajxudir/wingetup/pkg/errors"
	"github.com/ajxudir/wingetup/pkg/testutil"
)

// stubLocate points the winget lookup at a fake executable so command
// tests never touch PATH or the WindowsApps directory.
func stubLocate(t *testing.T) {
	t.Helper()
	oldLocate := locateWingetFunc
	locateWingetFunc = func(explicit string) (string, error) {
		return "winget", nil
	}
	t.Cleanup(func() { locateWingetFunc = oldLocate })
}

// stubConfig replaces config loading with the built-in defaults so
// command tests ignore any .wingetup.yml on the machine.
func stubConfig(t *testing.T) {
	t.Helper()
	oldLoad := loadConfigFunc
	loadConfigFunc = func(path, workDir string) (*config.Config, error) {
		return config.Default(), nil
	}
	t.Cleanup(func() { loadConfigFunc = oldLoad })
}

// TestExecuteWithExitCodes tests the behavior of Execute with different exit codes.
//
// It verifies:
//   - Successful commands return exit code 0
//   - Errors call exitFunc with appropriate exit codes
//   - Partial success errors return ExitPartialFailure code
func TestExecuteWithExitCodes(t *testing.T) {
	oldExit := exitFunc
	defer func() { exitFunc = oldExit }()

	t.Run("success does not exit", func(t *testing.T) {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }

		rootCmd.SetArgs([]string{"--help"})
		testutil.CaptureStdout(t, Execute)

		// --help doesn't error, so exitFunc shouldn't be called
		assert.Equal(t, -1, exitCode)
		rootCmd.SetArgs(nil)
	})

	t.Run("unknown subcommand exits with failure code", func(t *testing.T) {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }

		rootCmd.SetArgs([]string{"nonexistent-subcommand-xyz"})
		testutil.CaptureOutput(t, Execute)

		assert.Equal(t, errors.ExitFailure, exitCode)
		rootCmd.SetArgs(nil)
	})

	t.Run("missing config file exits with config code", func(t *testing.T) {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }

		oldConfig := outdatedConfigFlag
		defer func() {
			outdatedConfigFlag = oldConfig
			rootCmd.SetArgs(nil)
		}()

		rootCmd.SetArgs([]string{"outdated", "--config", "/nonexistent/wingetup-test.yml"})
		testutil.CaptureOutput(t, Execute)

		assert.Equal(t, errors.ExitConfigError, exitCode)
	})

	t.Run("partial success exits with partial failure code", func(t *testing.T) {
		exitCode := -1
		exitFunc = func(code int) { exitCode = code }

		stubConfig(t)
		stubLocate(t)

		oldLevel := upgradeLevelFlag
		oldYes := upgradeYesFlag
		defer func() {
			upgradeLevelFlag = oldLevel
			upgradeYesFlag = oldYes
			rootCmd.SetArgs(nil)
		}()

		// Firefox upgrades cleanly, Contoso's installer fails.
		testutil.ScriptExec(t, func(name string, args []string) testutil.ExecResponse {
			switch {
			case testutil.HasArg(args, "--id"):
				if testutil.HasArg(args, "Contoso.App") {
					return testutil.ExecResponse{ExitCode: 1, Err: fmt.Errorf("winget exited 1")}
				}
				return testutil.ExecResponse{}
			case testutil.Subcommand(args) == "upgrade":
				return testutil.ExecResponse{Stdout: testutil.UpgradeListing()}
			default:
				return testutil.ExecResponse{}
			}
		})

		rootCmd.SetArgs([]string{"upgrade", "--level", "all", "-y"})
		testutil.CaptureOutput(t, Execute)

		assert.Equal(t, errors.ExitPartialFailure, exitCode)
	})
}

// TestExecuteTest tests the behavior of the test execution variant.
//
// It verifies:
//   - ExecuteTest returns the command error instead of exiting
//   - Successful runs return nil
func TestExecuteTest(t *testing.T) {
	t.Run("unknown subcommand returns error", func(t *testing.T) {
		rootCmd.SetArgs([]string{"nonexistent-subcommand-xyz"})
		defer rootCmd.SetArgs(nil)

		err := ExecuteTest()
		assert.Error(t, err)
	})

	t.Run("help returns nil", func(t *testing.T) {
		rootCmd.SetArgs([]string{"--help"})
		defer rootCmd.SetArgs(nil)

		var err error
		testutil.CaptureStdout(t, func() {
			err = ExecuteTest()
		})
		assert.NoError(t, err)
	})
}

// TestNewWingetClient tests winget client construction from config.
//
// It verifies:
//   - The located executable and configured timeouts reach the client
//   - A locate failure is returned unchanged
func TestNewWingetClient(t *testing.T) {
	t.Run("locate success", func(t *testing.T) {
		stubLocate(t)

		cfg := config.Default()
		client, err := newWingetClient(cfg)

		assert.NoError(t, err)
		assert.Equal(t, "winget", client.Executable())
	})

	t.Run("locate failure", func(t *testing.T) {
		oldLocate := locateWingetFunc
		locateWingetFunc = func(explicit string) (string, error) {
			return "", fmt.Errorf("winget executable not found")
		}
		defer func() { locateWingetFunc = oldLocate }()

		_, err := newWingetClient(config.Default())

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
