package output

import (
	"os"

	"github.com/fatih/color"
)

// Status colors for table cells and summary lines. The fatih/color
// package disables itself automatically when stdout is not a terminal,
// so piped and scheduled runs get plain text.
var (
	Success = color.New(color.FgGreen)
	Warning = color.New(color.FgYellow)
	Failure = color.New(color.FgRed)
	Info    = color.New(color.FgCyan)
)

// NoColor disables colored output for the whole process.
func NoColor() {
	color.NoColor = true
}

// IsTerminal returns true when stdout is a character device.
//
// Returns:
//   - bool: true for an interactive terminal; false for pipes and files
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// DecisionColor returns the color for an outdated DECISION cell.
//
// Accepted candidates are green. Skips are yellow, except block-list
// rejections which are red so a pinned package stands out.
//
// Parameters:
//   - decision: DecisionAccept or DecisionSkip
//   - reason: The policy reason string behind the decision
//
// Returns:
//   - *color.Color: The color to render the cell with
func DecisionColor(decision, reason string) *color.Color {
	if decision == DecisionAccept {
		return Success
	}
	if reason == "blocked" {
		return Failure
	}
	return Warning
}

// StatusColor returns the color for an upgrade STATUS cell.
//
// Parameters:
//   - status: One of the upgrade pass statuses
//
// Returns:
//   - *color.Color: The color to render the cell with
func StatusColor(status string) *color.Color {
	switch status {
	case "upgraded":
		return Success
	case "failed":
		return Failure
	case "planned":
		return Info
	case "skipped":
		return Warning
	default:
		return color.New(color.Reset)
	}
}

// Colorize renders a padded cell in the given color.
//
// Call this only on already-padded cells: the escape sequences it adds
// would otherwise be counted by the width measurement.
//
// Parameters:
//   - c: The color to apply
//   - cell: The padded cell text
//
// Returns:
//   - string: The colored cell
func Colorize(c *color.Color, cell string) string {
	return c.Sprint(cell)
}
