package warnings

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWarnf tests the behavior of Warnf.
//
// It verifies that:
//   - Warnings land on the configured writer
//   - The restore function puts the previous writer back
func TestWarnf(t *testing.T) {
	var outer, inner bytes.Buffer
	restoreOuter := SetWarningWriter(&outer)
	defer restoreOuter()

	restoreInner := SetWarningWriter(&inner)
	Warnf("Warning: %s failed\n", "Contoso.App")
	restoreInner()

	Warnf("Warning: after restore\n")

	assert.Equal(t, "Warning: Contoso.App failed\n", inner.String())
	assert.Equal(t, "Warning: after restore\n", outer.String())
}

// TestSetWarningWriterNil tests the behavior of SetWarningWriter with nil.
//
// It verifies that:
//   - A nil writer falls back to stderr rather than panicking
func TestSetWarningWriterNil(t *testing.T) {
	restore := SetWarningWriter(nil)
	defer restore()

	assert.NotNil(t, WarningWriter())
	Warnf("") // must not panic
}

// TestCollector tests the behavior of Collector.
//
// It verifies that:
//   - Each written line becomes one trimmed message
//   - Blank lines are dropped
//   - The tee writer still receives the raw bytes
//   - Messages returns a copy, not the backing slice
//   - Reset clears the buffer for reuse
func TestCollector(t *testing.T) {
	t.Run("collects lines", func(t *testing.T) {
		c := NewCollector(nil)
		restore := SetWarningWriter(c)
		defer restore()

		Warnf("Warning: first\n")
		Warnf("Warning: second\n\n")

		require.Equal(t, 2, c.Count())
		msgs := c.Messages()
		assert.Equal(t, "Warning: first", msgs[0])
		assert.Equal(t, "Warning: second", msgs[1])
	})

	t.Run("tees raw bytes", func(t *testing.T) {
		var tee bytes.Buffer
		c := NewCollector(&tee)

		n, err := c.Write([]byte("Warning: teed\n"))
		require.NoError(t, err)
		assert.Equal(t, 14, n)
		assert.Equal(t, "Warning: teed\n", tee.String())
		assert.Equal(t, 1, c.Count())
	})

	t.Run("messages are a copy", func(t *testing.T) {
		c := NewCollector(nil)
		_, _ = c.Write([]byte("one\n"))

		msgs := c.Messages()
		msgs[0] = "mutated"
		assert.Equal(t, "one", c.Messages()[0])
	})

	t.Run("reset", func(t *testing.T) {
		c := NewCollector(nil)
		_, _ = c.Write([]byte("one\ntwo\n"))
		require.Equal(t, 2, c.Count())

		c.Reset()
		assert.Zero(t, c.Count())
		assert.Empty(t, c.Messages())
	})
}
