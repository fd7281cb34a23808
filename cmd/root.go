// Package cmd implements the command-line interface for wingetup.
// It provides commands for listing the installed inventory, previewing
// upgrade candidates against the version policy, and running the
// upgrade pass.
package cmd

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/wingetup/pkg/config"
	"github.com/ajxudir/wingetup/pkg/errors"
	"github.com/ajxudir/wingetup/pkg/output"
	"github.com/ajxudir/wingetup/pkg/verbose"
	"github.com/ajxudir/wingetup/pkg/warnings"
	"github.com/ajxudir/wingetup/pkg/winget"
)

var exitFunc = os.Exit
var verboseFlag bool
var versionFlag bool
var skipBuildChecksFlag bool
var noColorFlag bool

// locateWingetFunc allows stubbing executable discovery in tests.
var locateWingetFunc = winget.Locate

var rootCmd = &cobra.Command{
	Use:           "wingetup",
	Short:         "Policy-driven winget upgrade automation",
	Long:          `Evaluate winget upgrade candidates against a version policy and apply the accepted ones.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		// Scheduled-task logs should not accumulate ANSI escapes
		if noColorFlag {
			output.NoColor()
		}
		// Show build warnings (arch mismatch, dev build) at the top of every command
		if !skipBuildChecksFlag {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr) // Blank line to separate from command output
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			printVersionOutput()
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with appropriate code:
//   - 0: Success
//   - 1: Partial failure (pass completed, at least one upgrade failed)
//   - 2: Complete failure (winget missing, run aborted)
//   - 3: Configuration or validation error
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose.IsEnabled())

		code := errors.GetExitCode(err)

		// Check for partial success
		var partialErr *errors.PartialSuccessError
		if stderrors.As(err, &partialErr) {
			code = errors.ExitPartialFailure
			verbose.Infof("Exit code %d: partial success - %d succeeded, %d failed", code, partialErr.Succeeded, partialErr.Failed)
		} else {
			verbose.Infof("Exit code %d: %v", code, err)
		}

		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Unlike Execute(), this function returns the error directly without calling
// os.Exit, making it suitable for use in test suites.
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecksFlag, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")

	// Add -v/--version as a LOCAL flag (not persistent) so it only works on root command
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	// Commands ordered logically: info → config → workflow (list → outdated → upgrade)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(outdatedCmd)
	rootCmd.AddCommand(upgradeCmd)
}

// newRunCollector installs a warning collector for the duration of a run.
//
// Table mode tees warnings to stderr as they happen; structured mode
// buffers them silently so the document is the only output, with the
// collected messages embedded in its warnings field.
//
// Parameters:
//   - structured: Whether the run produces structured output
//
// Returns:
//   - *warnings.Collector: The installed collector
//   - func(): Restore function for the previous warning writer
func newRunCollector(structured bool) (*warnings.Collector, func()) {
	var tee io.Writer
	if !structured {
		tee = os.Stderr
	}
	collector := warnings.NewCollector(tee)
	restore := warnings.SetWarningWriter(collector)
	return collector, restore
}

// newWingetClient locates the winget executable and builds a client with
// the configured timeouts.
//
// Parameters:
//   - cfg: Validated configuration with an optional pinned path
//
// Returns:
//   - *winget.Client: Client bound to the located executable
//   - error: NotFoundError when no executable could be located
func newWingetClient(cfg *config.Config) (*winget.Client, error) {
	exe, err := locateWingetFunc(cfg.WingetPath)
	if err != nil {
		return nil, err
	}

	return winget.NewClient(exe, winget.Timeouts{
		Prime:   cfg.PrimeTimeoutSeconds,
		List:    cfg.ListTimeoutSeconds,
		Upgrade: cfg.UpgradeTimeoutSeconds,
	}), nil
}

// printVersionOutput prints version, build, and runtime information to stdout.
//
// Output includes build target platform, runtime platform (if different),
// Go version, build date, git commit, and version string.
func printVersionOutput() {
	// Show build architecture (what binary was compiled for)
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)

	// Show runtime (what user is running on) only if different
	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}

	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	fmt.Println()
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
}
