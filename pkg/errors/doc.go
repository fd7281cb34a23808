// Package errors provides unified error types and display for wingetup.
//
// This package consolidates all error handling into a single location:
//   - ExitError: Command exit with specific exit code
//   - PartialSuccessError: Some upgrades succeeded, some failed
//   - NotFoundError: The winget executable could not be located
//   - ValidationError: Configuration validation failures
//
// Error Checking:
//
// Use the Is* functions to check error types:
//
//	if exitErr, ok := errors.IsExitError(err); ok {
//	    os.Exit(exitErr.Code)
//	}
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): All operations completed successfully
//   - ExitPartialFailure (1): Some upgrades failed
//   - ExitFailure (2): Critical error, winget missing or run aborted
//   - ExitConfigError (3): Configuration or validation error
package errors
