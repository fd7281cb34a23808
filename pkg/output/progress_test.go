package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewProgress tests the behavior of NewProgress.
//
// It verifies:
//   - Creates progress with correct initial state
func TestNewProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Upgrading")

	assert.NotNil(t, p)
	assert.Equal(t, 10, p.total)
	assert.Equal(t, 0, p.current)
	assert.Equal(t, "Upgrading", p.message)
	assert.True(t, p.enabled)
}

// TestProgress_Basic tests the basic behavior of Progress.
//
// It verifies:
//   - Increments progress and shows percentage
func TestProgress_Basic(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Upgrading")

	p.Increment()
	p.Increment()
	p.Increment()

	output := buf.String()
	assert.Contains(t, output, "Upgrading")
	assert.Contains(t, output, "3/10")
	assert.Contains(t, output, "30%")
}

// TestProgress_Done tests the behavior of Done.
//
// It verifies:
//   - Marks progress as 100% complete
//   - Ends with newline
func TestProgress_Done(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 5, "Upgrading")

	p.Increment()
	p.Increment()
	p.Done()

	output := buf.String()
	assert.Contains(t, output, "5/5")
	assert.Contains(t, output, "100%")
	assert.True(t, strings.HasSuffix(output, "\n"))
}

// TestProgress_SetCurrent tests the behavior of SetCurrent.
//
// It verifies:
//   - Sets progress to specific value and shows correct percentage
func TestProgress_SetCurrent(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 100, "Upgrading")

	p.SetCurrent(50)

	output := buf.String()
	assert.Contains(t, output, "50/100")
	assert.Contains(t, output, "50%")
}

// TestProgress_Clear tests the behavior of Clear.
//
// It verifies:
//   - Clears progress line with spaces and carriage return
//   - Clear without a prior render produces no output
func TestProgress_Clear(t *testing.T) {
	t.Run("after render", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewProgress(&buf, 10, "Upgrading")

		p.Increment()
		p.Clear()

		output := buf.String()
		assert.Contains(t, output, "1/10")
		assert.Contains(t, output, "\r")
		// Clear writes "\r" + spaces + "\r".
		assert.True(t, strings.HasSuffix(output, "\r"))
	})

	t.Run("without render", func(t *testing.T) {
		var buf bytes.Buffer
		p := NewProgress(&buf, 10, "Upgrading")

		p.Clear()

		assert.Empty(t, buf.String())
	})
}

// TestProgress_Disabled tests the behavior when progress is disabled.
//
// It verifies:
//   - No output when progress is disabled
func TestProgress_Disabled(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 10, "Upgrading")
	p.SetEnabled(false)

	p.Increment()
	p.Increment()
	p.Done()

	assert.Empty(t, buf.String())
}

// TestProgress_ZeroTotal tests the behavior with zero total.
//
// It verifies:
//   - Does not panic with zero total
//   - Produces no output
func TestProgress_ZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 0, "Upgrading")

	p.Increment()
	p.Done()

	assert.Empty(t, buf.String())
}

// TestProgress_NilReceiver tests the nil-receiver behavior.
//
// It verifies:
//   - All methods are no-ops on a nil Progress
func TestProgress_NilReceiver(t *testing.T) {
	var p *Progress

	assert.NotPanics(t, func() {
		p.SetEnabled(true)
		p.Increment()
		p.SetCurrent(3)
		p.Done()
		p.Clear()
	})
}

// TestProgress_PercentageCalculation tests the behavior of percentage calculations.
//
// It verifies:
//   - Calculates correct percentages at different progress points
func TestProgress_PercentageCalculation(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 4, "Upgrading")

	p.SetCurrent(1)
	assert.Contains(t, buf.String(), "25%")

	p.SetCurrent(2)
	assert.Contains(t, buf.String(), "50%")

	p.SetCurrent(3)
	assert.Contains(t, buf.String(), "75%")

	p.SetCurrent(4)
	assert.Contains(t, buf.String(), "100%")
}

// TestProgress_PaddingWhenLineShorter tests the behavior when the progress line shrinks.
//
// It verifies:
//   - Pads with spaces to clear the previous longer line
func TestProgress_PaddingWhenLineShorter(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 100, "Upgrading")

	p.SetCurrent(99) // "Upgrading: 99/100 (99%)"
	initialLen := p.lastWidth
	assert.Greater(t, initialLen, 0)
	assert.Contains(t, buf.String(), "99/100")

	buf.Reset()
	p.SetCurrent(1) // shorter line

	output := buf.String()
	assert.Contains(t, output, "1/100")
	assert.GreaterOrEqual(t, len(output), initialLen)

	// "1/100 (1%)" is shorter than "99/100 (99%)", so trailing spaces pad it.
	trimmedLen := len(strings.TrimRight(output, " "))
	assert.Less(t, trimmedLen, len(output))
}
