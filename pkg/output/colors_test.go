package output

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

// TestDecisionColor tests the behavior of DecisionColor.
//
// It verifies:
//   - Accepted candidates are green regardless of reason
//   - Blocked skips are red
//   - All other skips are yellow
func TestDecisionColor(t *testing.T) {
	assert.Same(t, Success, DecisionColor(DecisionAccept, "upgrade"))
	assert.Same(t, Success, DecisionColor(DecisionAccept, "allowlisted"))
	assert.Same(t, Failure, DecisionColor(DecisionSkip, "blocked"))
	assert.Same(t, Warning, DecisionColor(DecisionSkip, "level-exceeded"))
	assert.Same(t, Warning, DecisionColor(DecisionSkip, "unknown-version"))
	assert.Same(t, Warning, DecisionColor(DecisionSkip, "not-newer"))
}

// TestStatusColor tests the behavior of StatusColor.
//
// It verifies:
//   - Each upgrade pass status maps to its color
//   - Unknown statuses get a neutral color
func TestStatusColor(t *testing.T) {
	assert.Same(t, Success, StatusColor("upgraded"))
	assert.Same(t, Failure, StatusColor("failed"))
	assert.Same(t, Info, StatusColor("planned"))
	assert.Same(t, Warning, StatusColor("skipped"))
	assert.NotNil(t, StatusColor("something-else"))
}

// TestColorize tests the behavior of Colorize.
//
// It verifies:
//   - Returns plain text when color is globally disabled
//   - Wraps the cell in escape sequences when enabled
//   - Padded cell content survives coloring unchanged
func TestColorize(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	t.Run("disabled", func(t *testing.T) {
		color.NoColor = true
		assert.Equal(t, "accept  ", Colorize(Success, "accept  "))
	})

	t.Run("enabled", func(t *testing.T) {
		color.NoColor = false
		out := Colorize(Success, "accept  ")
		assert.Contains(t, out, "accept  ")
		assert.Contains(t, out, "\x1b[")
	})
}

// TestNoColor tests the behavior of NoColor.
//
// It verifies:
//   - Disables colored output globally
func TestNoColor(t *testing.T) {
	oldNoColor := color.NoColor
	defer func() { color.NoColor = oldNoColor }()

	color.NoColor = false
	NoColor()
	assert.True(t, color.NoColor)
}
