package cmd

import (
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/wingetup/pkg/output"
	"github.com/ajxudir/wingetup/pkg/testutil"
)

// resetListFlags restores the list command flags when the test ends.
func resetListFlags(t *testing.T) {
	t.Helper()
	oldConfig := listConfigFlag
	oldWinget := listWingetFlag
	oldOutput := listOutputFlag
	t.Cleanup(func() {
		listConfigFlag = oldConfig
		listWingetFlag = oldWinget
		listOutputFlag = oldOutput
	})
	listConfigFlag = ""
	listWingetFlag = ""
	listOutputFlag = ""
}

// scriptInstalledListing scripts winget to return the canned installed
// listing for inventory calls.
func scriptInstalledListing(t *testing.T) *[]testutil.ExecCall {
	t.Helper()
	return testutil.ScriptExec(t, func(name string, args []string) testutil.ExecResponse {
		if testutil.Subcommand(args) == "list" {
			return testutil.ExecResponse{Stdout: testutil.InstalledListing()}
		}
		return testutil.ExecResponse{}
	})
}

// TestRunListTable tests the behavior of the list table output.
//
// It verifies:
//   - Every installed package appears with name, id, and version
//   - The source column is shown when at least one row has a source
//   - The total line counts the inventory
func TestRunListTable(t *testing.T) {
	stubConfig(t)
	stubLocate(t)
	resetListFlags(t)
	scriptInstalledListing(t)

	out := testutil.CaptureStdout(t, func() {
		err := runList(nil, nil)
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "VERSION")
	assert.Contains(t, out, "SOURCE")
	assert.Contains(t, out, "Mozilla.Firefox")
	assert.Contains(t, out, "7zip.7zip")
	assert.Contains(t, out, "Vendor.Legacy")
	assert.Contains(t, out, "Total packages: 3")
}

// TestRunListSourceColumnHidden tests source column visibility.
//
// It verifies:
//   - The source column is hidden when no row carries a source
func TestRunListSourceColumnHidden(t *testing.T) {
	stubConfig(t)
	stubLocate(t)
	resetListFlags(t)

	listing := testutil.BuildListing(
		[]string{"Name", "Id", "Version"},
		[]int{10, 16, 8},
		[][]string{
			{"Sideload", "Vendor.Sideload", "1.2.3"},
		},
		"",
	)
	testutil.ScriptExec(t, func(name string, args []string) testutil.ExecResponse {
		if testutil.Subcommand(args) == "list" {
			return testutil.ExecResponse{Stdout: listing}
		}
		return testutil.ExecResponse{}
	})

	out := testutil.CaptureStdout(t, func() {
		err := runList(nil, nil)
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "Vendor.Sideload")
	assert.NotContains(t, out, "SOURCE")
	assert.Contains(t, out, "Total packages: 1")
}

// TestRunListEmpty tests the behavior with an empty inventory.
//
// It verifies:
//   - An empty listing prints the empty message and returns nil
func TestRunListEmpty(t *testing.T) {
	stubConfig(t)
	stubLocate(t)
	resetListFlags(t)

	testutil.ScriptExec(t, func(name string, args []string) testutil.ExecResponse {
		return testutil.ExecResponse{}
	})

	out := testutil.CaptureStdout(t, func() {
		err := runList(nil, nil)
		assert.NoError(t, err)
	})

	assert.Contains(t, out, "No installed packages found.")
}

// TestRunListFailure tests the behavior when the listing breaks.
//
// It verifies:
//   - A listing failure is a warning, not an error
//   - The command reports an empty inventory and returns nil
func TestRunListFailure(t *testing.T) {
	stubConfig(t)
	stubLocate(t)
	resetListFlags(t)

	testutil.ScriptExec(t, func(name string, args []string) testutil.ExecResponse {
		return testutil.ExecResponse{Spawn: true, Err: fmt.Errorf("winget vanished")}
	})

	stdout, stderr := testutil.CaptureOutput(t, func() {
		err := runList(nil, nil)
		assert.NoError(t, err)
	})

	assert.Contains(t, stdout, "No installed packages found.")
	assert.Contains(t, stderr, "Warning:")
	assert.Contains(t, stderr, "winget vanished")
}

// TestRunListStructured tests the behavior of structured list output.
//
// It verifies:
//   - The document carries the full inventory with sources
//   - Real JSON output lands on stdout
func TestRunListStructured(t *testing.T) {
	t.Run("document contents", func(t *testing.T) {
		stubConfig(t)
		stubLocate(t)
		resetListFlags(t)
		scriptInstalledListing(t)

		oldWrite := writeListResultFunc
		var captured *output.ListResult
		writeListResultFunc = func(w io.Writer, format output.Format, result *output.ListResult) error {
			captured = result
			return nil
		}
		defer func() { writeListResultFunc = oldWrite }()

		listOutputFlag = "json"

		err := runList(nil, nil)
		require.NoError(t, err)

		require.NotNil(t, captured)
		assert.Equal(t, 3, captured.Summary.TotalPackages)
		require.Len(t, captured.Packages, 3)
		assert.Equal(t, "Firefox", captured.Packages[0].Name)
		assert.Equal(t, "Mozilla.Firefox", captured.Packages[0].ID)
		assert.Equal(t, "128.0.0", captured.Packages[0].Version)
		assert.Equal(t, "128.0.1", captured.Packages[0].Available)
		assert.Equal(t, "winget", captured.Packages[0].Source)
		assert.Empty(t, captured.Packages[2].Source)
	})

	t.Run("json reaches stdout", func(t *testing.T) {
		stubConfig(t)
		stubLocate(t)
		resetListFlags(t)
		scriptInstalledListing(t)

		listOutputFlag = "json"

		out := testutil.CaptureStdout(t, func() {
			err := runList(nil, nil)
			assert.NoError(t, err)
		})

		assert.Contains(t, out, `"total_packages": 3`)
		assert.Contains(t, out, `"id": "7zip.7zip"`)
	})
}

// TestRunListVerboseConflict tests the structured-verbose flag guard.
//
// It verifies:
//   - --output json with --verbose is rejected before any winget call
func TestRunListVerboseConflict(t *testing.T) {
	resetListFlags(t)

	oldVerbose := verboseFlag
	verboseFlag = true
	defer func() { verboseFlag = oldVerbose }()

	listOutputFlag = "json"

	calls := testutil.ScriptExec(t, func(name string, args []string) testutil.ExecResponse {
		return testutil.ExecResponse{}
	})

	err := runList(nil, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--verbose is not supported")
	assert.Empty(t, *calls)
}
