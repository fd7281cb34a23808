package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Progress is a single-line progress indicator for the upgrade pass.
//
// It renders "\rMessage: current/total (NN%)" over itself on each step.
// Methods are safe on a nil receiver, so callers that only sometimes
// show progress (table mode on a terminal) can keep a possibly-nil
// pointer without branching at every step.
//
// Fields:
//   - writer: Destination for progress output (typically os.Stderr)
//   - total: Total number of steps in the operation
//   - current: Current step number
//   - message: Descriptive message displayed with the progress
//   - mu: Mutex protecting concurrent access to progress state
//   - enabled: Whether progress output is enabled
//   - lastWidth: Width of the last rendered line, for clearing
type Progress struct {
	writer    io.Writer
	total     int
	current   int
	message   string
	mu        sync.Mutex
	enabled   bool
	lastWidth int
}

// NewProgress creates a progress indicator.
//
// Parameters:
//   - writer: Destination for progress output (typically os.Stderr)
//   - total: Total number of steps in the operation
//   - message: Descriptive message to display (e.g., "Upgrading")
//
// Returns:
//   - *Progress: A new, enabled progress indicator
func NewProgress(writer io.Writer, total int, message string) *Progress {
	return &Progress{
		writer:  writer,
		total:   total,
		message: message,
		enabled: true,
	}
}

// SetEnabled enables or disables progress output.
//
// Structured output modes and non-interactive runs disable progress so
// control characters never land in scraped output.
//
// Parameters:
//   - enabled: true to render progress; false to suppress it
func (p *Progress) SetEnabled(enabled bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Increment advances the progress by one step and re-renders.
//
// State is copied under the lock and rendering happens outside it, so a
// blocking writer cannot deadlock concurrent increments.
func (p *Progress) Increment() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.current++
	current := p.current
	total := p.total
	enabled := p.enabled
	p.mu.Unlock()

	if enabled && total > 0 {
		p.renderValues(current, total)
	}
}

// SetCurrent sets the current progress value and re-renders.
//
// Parameters:
//   - current: The step number to set (0 to total)
func (p *Progress) SetCurrent(current int) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.current = current
	total := p.total
	enabled := p.enabled
	p.mu.Unlock()

	if enabled && total > 0 {
		p.renderValues(current, total)
	}
}

// Done renders the completed state and moves past the progress line.
func (p *Progress) Done() {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.current = p.total
	current := p.current
	total := p.total
	enabled := p.enabled
	p.mu.Unlock()

	if enabled && total > 0 {
		p.renderValues(current, total)
		_, _ = fmt.Fprintln(p.writer)
	}
}

// Clear erases the progress line so other output can take its place.
func (p *Progress) Clear() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled && p.lastWidth > 0 {
		_, _ = fmt.Fprintf(p.writer, "\r%s\r", strings.Repeat(" ", p.lastWidth))
	}
}

// renderValues renders one progress line with the given values.
//
// The lock is taken only for lastWidth bookkeeping; a shrinking line is
// padded with spaces so leftovers of the previous render never show.
func (p *Progress) renderValues(current, total int) {
	percentage := float64(current) / float64(total) * 100
	line := fmt.Sprintf("\r%s: %d/%d (%.0f%%)", p.message, current, total, percentage)

	p.mu.Lock()
	if len(line) < p.lastWidth {
		line += strings.Repeat(" ", p.lastWidth-len(line))
	}
	p.lastWidth = len(line)
	p.mu.Unlock()

	_, _ = fmt.Fprint(p.writer, line)

	// Sync keeps progress visible in CI logs that buffer stderr
	if f, ok := p.writer.(*os.File); ok {
		_ = f.Sync()
	}
}
