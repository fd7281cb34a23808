package winget

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/ajxudir/wingetup/pkg/errors"
	"github.com/ajxudir/wingetup/pkg/verbose"
)

// windowsAppsGlob matches the App Installer package directory where
// winget.exe lives. Runs under the SYSTEM account (scheduled tasks,
// management agents) do not get the per-user PATH alias, so this is
// the fallback when LookPath comes up empty.
const windowsAppsGlob = `C:\Program Files\WindowsApps\Microsoft.DesktopAppInstaller_*_x64__8wekyb3d8bbwe\winget.exe`

// Function variables for test injection.
var (
	statFunc     = os.Stat
	lookPathFunc = exec.LookPath
	globFunc     = filepath.Glob
	goosFunc     = func() string { return runtime.GOOS }
)

// Locate finds the winget executable.
//
// Search order:
//  1. The explicit path when given; it must exist (no fallback, a
//     pinned path that is wrong should fail loudly).
//  2. "winget" on PATH.
//  3. On Windows, the WindowsApps App Installer directory.
//
// Parameters:
//   - explicit: Path from config or the --winget flag; empty to search
//
// Returns:
//   - string: Path to the executable
//   - error: NotFoundError listing the searched locations, or a stat
//     error for a bad explicit path
func Locate(explicit string) (string, error) {
	if explicit != "" {
		if _, err := statFunc(explicit); err != nil {
			return "", fmt.Errorf("winget executable not found at %s: %w", explicit, err)
		}
		verbose.Infof("Using winget from explicit path: %s", explicit)
		return explicit, nil
	}

	searched := []string{"PATH"}
	if path, err := lookPathFunc("winget"); err == nil {
		verbose.Infof("Using winget from PATH: %s", path)
		return path, nil
	}

	if goosFunc() == "windows" {
		searched = append(searched, windowsAppsGlob)
		matches, err := globFunc(windowsAppsGlob)
		if err == nil && len(matches) > 0 {
			verbose.Infof("Using winget from WindowsApps: %s", matches[0])
			return matches[0], nil
		}
	}

	return "", &errors.NotFoundError{Searched: searched}
}
