// Package warnings routes non-fatal problem reports to a configurable sink.
//
// Listing failures, unusable table rows, and per-package upgrade errors
// are warnings: the run continues, but the operator should see them.
package warnings

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes a formatted warning message to the configured warning writer.
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// WarningWriter returns the currently configured warning writer.
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// Collector captures warnings while optionally forwarding them.
//
// Implements io.Writer so it can be installed via SetWarningWriter. A run
// installs a Collector teeing to stderr, then inspects Count at the end to
// decide whether the pass was clean.
//
// Example:
//
//	collector := warnings.NewCollector(os.Stderr)
//	restore := warnings.SetWarningWriter(collector)
//	defer restore()
type Collector struct {
	messages []string
	tee      io.Writer
}

// NewCollector creates a Collector that forwards each warning to tee.
//
// Parameters:
//   - tee: Writer that still receives every warning live; nil to only buffer
func NewCollector(tee io.Writer) *Collector {
	return &Collector{tee: tee}
}

// Write implements io.Writer for capturing warning messages.
//
// Splits input on newlines and stores non-empty trimmed lines, then
// forwards the raw bytes to the tee writer when one is configured.
func (c *Collector) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			c.messages = append(c.messages, trimmed)
		}
	}
	if c.tee != nil {
		_, _ = c.tee.Write(p)
	}
	return len(p), nil
}

// Messages returns a copy of all collected warning messages.
func (c *Collector) Messages() []string {
	copied := make([]string, len(c.messages))
	copy(copied, c.messages)
	return copied
}

// Count returns the number of collected warning messages.
func (c *Collector) Count() int {
	return len(c.messages)
}

// Reset clears all collected messages so the collector can be reused.
func (c *Collector) Reset() {
	c.messages = nil
}
