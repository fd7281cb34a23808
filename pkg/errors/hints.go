package errors

import (
	"fmt"
	"io"
	"strings"
)

// ErrorHint provides actionable resolution hints for common errors.
//
// Fields:
//   - Pattern: Substring to match in error message (case-insensitive)
//   - Hint: Brief description of the issue
//   - Resolution: Command or action to resolve the issue
type ErrorHint struct {
	// Pattern is a substring to match in error messages (case-insensitive).
	Pattern string

	// Hint is a brief description of the problem.
	Hint string

	// Resolution is a command or action to fix the problem.
	Resolution string
}

// CommonErrorHints maps error patterns to actionable hints.
// These are used by EnhanceErrorWithHint to add context to errors.
var CommonErrorHints = []ErrorHint{
	{
		Pattern:    "winget executable not found",
		Hint:       "Winget is part of App Installer",
		Resolution: "Install 'App Installer' from the Microsoft Store, or pass --winget with an explicit path",
	},
	{
		Pattern:    "executable file not found",
		Hint:       "Command missing from PATH",
		Resolution: "Verify the executable path or install App Installer from the Microsoft Store",
	},
	{
		Pattern:    "timed out",
		Hint:       "Winget took too long",
		Resolution: "Increase list_timeout_seconds/upgrade_timeout_seconds in .wingetup.yml",
	},
	{
		Pattern:    "access is denied",
		Hint:       "Insufficient privileges for machine-scope packages",
		Resolution: "Run from an elevated prompt or as the installing user",
	},
	{
		Pattern:    "agreements",
		Hint:       "Winget is waiting on a source agreement",
		Resolution: "Run 'winget list' once interactively and accept the source terms",
	},
	{
		Pattern:    "0x8a15",
		Hint:       "Winget reported an installer error",
		Resolution: "Run 'winget upgrade --id <package>' manually to see the full installer output",
	},
	{
		Pattern:    "no such file or directory",
		Hint:       "File or directory not found",
		Resolution: "Verify the path exists and you have read permissions",
	},
	{
		Pattern:    "failed to load config",
		Hint:       "Configuration file is invalid or not found",
		Resolution: "Check the .wingetup.yml syntax or remove the file to use built-in defaults",
	},
}

// GetHint returns an actionable hint for the given error.
//
// It searches the error message for known patterns in CommonErrorHints
// and returns a formatted hint if one matches.
//
// Parameters:
//   - err: The error to get a hint for
//
// Returns:
//   - string: The hint with resolution, or empty string if no hint found
func GetHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := strings.ToLower(err.Error())
	for _, hint := range CommonErrorHints {
		if strings.Contains(errStr, strings.ToLower(hint.Pattern)) {
			return hint.Hint + ": " + hint.Resolution
		}
	}

	return ""
}

// RegisterHint adds a custom hint to the registry.
//
// Parameters:
//   - pattern: Lowercase substring to match in error messages
//   - hint: Brief description of the issue
//   - resolution: Actionable suggestion for fixing the error
func RegisterHint(pattern, hint, resolution string) {
	CommonErrorHints = append(CommonErrorHints, ErrorHint{
		Pattern:    pattern,
		Hint:       hint,
		Resolution: resolution,
	})
}

// EnhanceErrorWithHint adds an actionable hint to an error message if a
// matching pattern is found.
//
// Parameters:
//   - err: The error to enhance
//
// Returns:
//   - string: Error message with hint appended if found, otherwise just the error message
func EnhanceErrorWithHint(err error) string {
	if err == nil {
		return ""
	}

	errStr := err.Error()
	if hint := GetHint(err); hint != "" {
		return errStr + "\n  Hint: " + hint
	}

	return errStr
}

// PrintErrorWithHints writes errors to w with hints and type-aware detail.
//
// PartialSuccessError expands into its individual upgrade errors when
// verbose is set; other errors print on one line plus an optional hint.
//
// Parameters:
//   - w: Destination writer, normally stderr
//   - errs: Errors to print; nil entries are skipped
//   - verbose: Include per-package detail for partial failures
func PrintErrorWithHints(w io.Writer, errs []error, verbose bool) {
	for _, err := range errs {
		if err == nil {
			continue
		}
		if pse, ok := IsPartialSuccess(err); ok {
			_, _ = fmt.Fprintf(w, "Error: %s\n", pse.Error())
			if verbose {
				for _, sub := range pse.Errors {
					_, _ = fmt.Fprintf(w, "  - %s\n", EnhanceErrorWithHint(sub))
				}
			}
			continue
		}
		_, _ = fmt.Fprintf(w, "Error: %s\n", EnhanceErrorWithHint(err))
	}
}
