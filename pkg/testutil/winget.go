package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/ajxudir/wingetup/pkg/cmdexec"
)

// BuildListing renders a winget-style fixed-width listing for tests.
//
// Columns are padded to the given display widths with a dash separator
// line under the header, the exact shape winget prints. Widths must be
// at least as wide as the corresponding header and every cell value.
//
// Parameters:
//   - headers: Column captions, e.g. Name, Id, Version
//   - widths: Display width per column; the last column is unpadded
//   - rows: Cell values per data row
//   - footer: Trailing line, e.g. "2 upgrades available."; empty for none
//
// Returns:
//   - string: The assembled listing
func BuildListing(headers []string, widths []int, rows [][]string, footer string) string {
	var sb strings.Builder

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i == len(cells)-1 {
				sb.WriteString(cell)
			} else {
				sb.WriteString(runewidth.FillRight(cell, widths[i]))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(headers)

	total := 0
	for _, w := range widths {
		total += w
	}
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteString("\n")

	for _, row := range rows {
		writeRow(row)
	}

	if footer != "" {
		sb.WriteString("\n")
		sb.WriteString(footer)
		sb.WriteString("\n")
	}

	return sb.String()
}

// UpgradeListing returns a canned two-package upgrade listing.
//
// The rows are Mozilla.Firefox 128.0.0 -> 128.0.1 (a patch jump) and
// Contoso.App 1.0.0 -> 2.0.0 (a major jump), so a patch-level policy
// accepts exactly one of them.
func UpgradeListing() string {
	return BuildListing(
		[]string{"Name", "Id", "Version", "Available", "Source"},
		[]int{10, 18, 10, 11, 6},
		[][]string{
			{"Firefox", "Mozilla.Firefox", "128.0.0", "128.0.1", "winget"},
			{"Contoso", "Contoso.App", "1.0.0", "2.0.0", "winget"},
		},
		"2 upgrades available.",
	)
}

// InstalledListing returns a canned three-package installed listing.
//
// One row has an available upgrade and one has no source, covering the
// optional columns of `winget list` output.
func InstalledListing() string {
	return BuildListing(
		[]string{"Name", "Id", "Version", "Available", "Source"},
		[]int{13, 18, 10, 11, 6},
		[][]string{
			{"Firefox", "Mozilla.Firefox", "128.0.0", "128.0.1", "winget"},
			{"7-Zip", "7zip.7zip", "24.07", "", "winget"},
			{"Legacy Tool", "Vendor.Legacy", "3.2", "", ""},
		},
		"",
	)
}

// ExecCall records one stubbed command invocation.
//
// Fields:
//   - Name: The executable
//   - Args: The argument vector, copied
//   - Timeout: The per-call timeout in seconds
type ExecCall struct {
	Name    string
	Args    []string
	Timeout int
}

// ExecResponse is the scripted outcome of one stubbed invocation.
//
// Fields:
//   - Stdout: Bytes the fake process wrote to stdout
//   - Stderr: Bytes the fake process wrote to stderr
//   - ExitCode: Fake process exit status
//   - Err: Error returned alongside the result; required for any
//     non-zero ExitCode to mirror the real runner
//   - Spawn: When true the process never ran: nil result plus Err
type ExecResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
	Spawn    bool
}

// ScriptExec replaces the command runner with a scripted fake.
//
// Every invocation is recorded and routed through choose, which returns
// the canned response. The real runner is restored when the test ends.
//
// Parameters:
//   - t: Testing instance for cleanup registration
//   - choose: Scripting function, called once per invocation
//
// Returns:
//   - *[]ExecCall: Recorded invocations, in order
func ScriptExec(t *testing.T, choose func(name string, args []string) ExecResponse) *[]ExecCall {
	t.Helper()

	calls := &[]ExecCall{}
	orig := cmdexec.Run
	cmdexec.Run = func(ctx context.Context, name string, args []string, timeoutSeconds int) (*cmdexec.Result, error) {
		*calls = append(*calls, ExecCall{
			Name:    name,
			Args:    append([]string(nil), args...),
			Timeout: timeoutSeconds,
		})

		resp := choose(name, args)
		if resp.Spawn {
			return nil, resp.Err
		}
		res := &cmdexec.Result{
			Stdout:   []byte(resp.Stdout),
			Stderr:   []byte(resp.Stderr),
			ExitCode: resp.ExitCode,
		}
		return res, resp.Err
	}
	t.Cleanup(func() { cmdexec.Run = orig })

	return calls
}

// Subcommand returns the first argument of an invocation, or "".
//
// Winget routing in scripted tests keys off the subcommand plus a flag
// or two; this keeps the choosers readable.
func Subcommand(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// HasArg reports whether the argument vector contains the given value.
func HasArg(args []string, want string) bool {
	for _, arg := range args {
		if arg == want {
			return true
		}
	}
	return false
}
