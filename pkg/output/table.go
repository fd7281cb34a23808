// Package output renders command results: fixed-width terminal tables,
// structured CSV/JSON/XML exports, ordered decision records, and status
// coloring.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the display width of a string in terminal cells.
//
// Wide runes (CJK characters, emoji) occupy two cells and are counted
// as such, so padded columns stay aligned for any package name.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The display width in character cells
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with spaces to a target display width.
//
// Width is measured in display cells, not bytes. Strings already at or
// beyond the target width are returned unchanged. Coloring must happen
// AFTER padding: ANSI escapes would be counted as width here.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width; values <= 0 leave val unchanged
//
// Returns:
//   - string: The padded string
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	current := DisplayWidth(val)
	if current >= width {
		return val
	}
	return val + strings.Repeat(" ", width-current)
}

// Column represents a single table column with its header and current width.
//
// Fields:
//   - Header: The display text for this column's header
//   - Width: The current display width for this column in cells
//   - hidden: Whether this column is excluded from output
type Column struct {
	Header string
	Width  int
	hidden bool
}

// Table is a fixed-width table formatter with dynamic column widths.
//
// The usual flow is: add columns, feed every row through UpdateWidths,
// print HeaderRow and SeparatorRow, then FormatRow each row. Widths only
// grow, so the pass over the data must happen before the first print.
type Table struct {
	columns   []Column
	separator string
}

// NewTable creates a table formatter with the default two-space separator.
//
// Returns:
//   - *Table: A new table instance ready for column configuration
func NewTable() *Table {
	return &Table{
		columns:   make([]Column, 0),
		separator: "  ",
	}
}

// WithSeparator sets a custom column separator and returns the table.
//
// Parameters:
//   - sep: The string placed between columns
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) WithSeparator(sep string) *Table {
	t.separator = sep
	return t
}

// Separator returns the string placed between columns.
func (t *Table) Separator() string {
	return t.separator
}

// AddColumn adds a column whose initial width is the header's display width.
//
// Parameters:
//   - header: The text to display in the column header
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumn(header string) *Table {
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  DisplayWidth(header),
	})
	return t
}

// AddColumnWithMinWidth adds a column with a minimum width guarantee.
//
// The width is the larger of minWidth and the header's display width.
//
// Parameters:
//   - header: The text to display in the column header
//   - minWidth: Minimum width in cells for this column
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) AddColumnWithMinWidth(header string, minWidth int) *Table {
	width := DisplayWidth(header)
	if minWidth > width {
		width = minWidth
	}
	t.columns = append(t.columns, Column{
		Header: header,
		Width:  width,
	})
	return t
}

// SetColumnVisible sets the visibility of a column by index.
//
// Parameters:
//   - index: Zero-based index of the column to modify
//   - visible: Whether the column should appear in output
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) SetColumnVisible(index int, visible bool) *Table {
	if index >= 0 && index < len(t.columns) {
		t.columns[index].hidden = !visible
	}
	return t
}

// SetColumnVisibleByHeader sets the visibility of a column by header name.
//
// If multiple columns share the header, only the first match is affected.
//
// Parameters:
//   - header: The header text of the column to modify
//   - visible: Whether the column should appear in output
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) SetColumnVisibleByHeader(header string, visible bool) *Table {
	for i := range t.columns {
		if t.columns[i].Header == header {
			t.columns[i].hidden = !visible
			break
		}
	}
	return t
}

// UpdateWidths grows column widths to fit a row of values.
//
// Each value's display width is compared with its column's current
// width and the larger one is kept. Values beyond the column count are
// ignored.
//
// Parameters:
//   - values: One string per column, in column order
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidths(values ...string) *Table {
	for i, val := range values {
		if i < len(t.columns) {
			if width := DisplayWidth(val); width > t.columns[i].Width {
				t.columns[i].Width = width
			}
		}
	}
	return t
}

// UpdateWidth grows a single column's width to fit one value.
//
// Parameters:
//   - index: Zero-based index of the column to update
//   - value: The string whose display width the column must fit
//
// Returns:
//   - *Table: The table instance for method chaining
func (t *Table) UpdateWidth(index int, value string) *Table {
	if index >= 0 && index < len(t.columns) {
		if width := DisplayWidth(value); width > t.columns[index].Width {
			t.columns[index].Width = width
		}
	}
	return t
}

// HeaderRow returns the formatted header row.
//
// Hidden columns are excluded; each header is padded to its column width.
//
// Returns:
//   - string: Header cells joined by the separator
func (t *Table) HeaderRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, ToWidth(col.Header, col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// SeparatorRow returns a row of dashes matching each visible column width.
//
// Returns:
//   - string: Dash runs joined by the separator
func (t *Table) SeparatorRow() string {
	var parts []string
	for _, col := range t.columns {
		if !col.hidden {
			parts = append(parts, strings.Repeat("-", col.Width))
		}
	}
	return strings.Join(parts, t.separator)
}

// FormatCells pads a row's values to their column widths and returns the
// visible cells individually.
//
// This exists for callers that color individual cells: padding must
// happen before ANSI escapes are added, so the caller takes the padded
// cells, colors some of them, and joins with Separator.
//
// Parameters:
//   - values: One string per column including hidden ones, in column order
//
// Returns:
//   - []string: Padded cells for visible columns only, in column order
func (t *Table) FormatCells(values ...string) []string {
	var cells []string
	for i, col := range t.columns {
		if col.hidden {
			continue
		}
		val := ""
		if i < len(values) {
			val = values[i]
		}
		cells = append(cells, ToWidth(val, col.Width))
	}
	return cells
}

// FormatRow formats a data row with padding for each visible column.
//
// Values for hidden columns must still be present in the input; they are
// skipped during formatting. Missing trailing values become empty cells.
//
// Parameters:
//   - values: One string per column including hidden ones, in column order
//
// Returns:
//   - string: Padded cells joined by the separator
func (t *Table) FormatRow(values ...string) string {
	return strings.Join(t.FormatCells(values...), t.separator)
}

// ColumnCount returns the total number of columns including hidden ones.
func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// VisibleColumnCount returns the number of visible columns.
func (t *Table) VisibleColumnCount() int {
	count := 0
	for _, col := range t.columns {
		if !col.hidden {
			count++
		}
	}
	return count
}

// GetColumnWidth returns the width of a column by index.
//
// Parameters:
//   - index: Zero-based index of the column
//
// Returns:
//   - int: The column's width in cells; 0 when index is out of bounds
func (t *Table) GetColumnWidth(index int) int {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].Width
	}
	return 0
}

// IsColumnHidden returns whether a column is hidden by index.
//
// Parameters:
//   - index: Zero-based index of the column to check
//
// Returns:
//   - bool: true if the column is hidden or index is out of bounds
func (t *Table) IsColumnHidden(index int) bool {
	if index >= 0 && index < len(t.columns) {
		return t.columns[index].hidden
	}
	return true
}

// Print outputs the table header and separator to stdout.
func (t *Table) Print() {
	fmt.Println(t.HeaderRow())
	fmt.Println(t.SeparatorRow())
}

// Fprint outputs the table header and separator to the given writer.
//
// Parameters:
//   - w: The writer to output to
func (t *Table) Fprint(w io.Writer) {
	_, _ = fmt.Fprintln(w, t.HeaderRow())
	_, _ = fmt.Fprintln(w, t.SeparatorRow())
}

// String returns a representation of the table structure for debugging.
//
// Returns:
//   - string: Columns with headers, widths, and visibility state
func (t *Table) String() string {
	var sb strings.Builder
	sb.WriteString("Table{columns: [")
	for i, col := range t.columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		hidden := ""
		if col.hidden {
			hidden = " (hidden)"
		}
		sb.WriteString(fmt.Sprintf("%s:%d%s", col.Header, col.Width, hidden))
	}
	sb.WriteString("]}")
	return sb.String()
}

// ShouldShowSourceColumn determines whether a SOURCE column carries any
// information worth a column.
//
// Winget leaves the source blank for software that arrived outside any
// source (MSI installers, store sideloads). A column that would be blank
// on every row is noise, so it is shown only when at least one row names
// a source.
//
// Parameters:
//   - sources: Source values of all rows, possibly empty or whitespace
//
// Returns:
//   - bool: true when any source is non-blank
func ShouldShowSourceColumn(sources []string) bool {
	for _, source := range sources {
		if strings.TrimSpace(source) != "" {
			return true
		}
	}
	return false
}
