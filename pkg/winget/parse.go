package winget

import (
	"strings"

	"github.com/ajxudir/wingetup/pkg/policy"
	"github.com/ajxudir/wingetup/pkg/verbose"
	"github.com/mattn/go-runewidth"
)

// span marks one column of a fixed-width table by display-cell offsets.
// end of -1 means the column runs to the end of the line.
type span struct {
	start int
	end   int
}

// tableLayout holds the column spans discovered from one header line.
// available and source have start -1 when the header lacks them.
type tableLayout struct {
	name      span
	id        span
	version   span
	available span
	source    span
}

// hasAvailable reports whether the header carried an Available column.
func (l tableLayout) hasAvailable() bool {
	return l.available.start >= 0
}

// hasSource reports whether the header carried a Source column.
func (l tableLayout) hasSource() bool {
	return l.source.start >= 0
}

// ParseUpgradeTable extracts packages from `winget upgrade` output.
//
// The Available column is required; a header without it is not treated
// as a table start, which keeps progress noise and localized output
// from producing garbage rows.
//
// Parameters:
//   - raw: Full stdout of the upgrade listing
//
// Returns:
//   - []Package: Rows with a valid identifier, in listing order
func ParseUpgradeTable(raw string) []Package {
	return parseTable(raw, true)
}

// ParseInstalledTable extracts packages from `winget list` output.
//
// The Available column is optional here; rows without one leave
// Available empty.
//
// Parameters:
//   - raw: Full stdout of the installed listing
//
// Returns:
//   - []Package: Rows with a valid identifier, in listing order
func ParseInstalledTable(raw string) []Package {
	return parseTable(raw, false)
}

// parseTable walks raw output looking for a header plus separator, then
// slices each following line at the header's column boundaries.
//
// Winget aligns columns by console display cells, not bytes, so wide
// runes in package names shift byte offsets between rows. Slicing is
// therefore done in display cells via runewidth. Footer sentences,
// spinner leftovers and repeated headers are skipped; a repeated header
// with its own separator resets the column layout, because winget sizes
// each table independently.
func parseTable(raw string, requireAvailable bool) []Package {
	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")

	var pkgs []Package
	var layout tableLayout
	inTable := false

	for i := 0; i < len(lines); i++ {
		line := strings.TrimRight(lines[i], "\r")
		trimmed := strings.TrimSpace(line)

		if !inTable {
			lay, ok := findLayout(line, requireAvailable)
			if ok && i+1 < len(lines) && isSeparatorLine(lines[i+1]) {
				layout = lay
				inTable = true
				i++
			}
			continue
		}

		if trimmed == "" {
			continue
		}
		if isSeparatorLine(line) {
			continue
		}
		if isFooterLine(trimmed) {
			continue
		}
		if lay, ok := findLayout(line, requireAvailable); ok && i+1 < len(lines) && isSeparatorLine(lines[i+1]) {
			layout = lay
			i++
			continue
		}

		pkg, reason := extractRow(line, layout)
		if reason != "" {
			verbose.RowSkipped(line, reason)
			continue
		}
		pkgs = append(pkgs, pkg)
	}

	return pkgs
}

// findLayout locates the column captions in a candidate header line.
//
// Name, Id and Version must appear in that order; Available must follow
// when required and is otherwise optional, as is Source. Header captions
// are ASCII, so their byte offsets equal their display-cell offsets.
func findLayout(header string, requireAvailable bool) (tableLayout, bool) {
	lay := tableLayout{
		available: span{start: -1, end: -1},
		source:    span{start: -1, end: -1},
	}

	nameStart := strings.Index(header, "Name")
	if nameStart < 0 {
		return lay, false
	}
	idStart := indexAfter(header, "Id", nameStart+len("Name"))
	if idStart < 0 {
		return lay, false
	}
	versionStart := indexAfter(header, "Version", idStart+len("Id"))
	if versionStart < 0 {
		return lay, false
	}
	availableStart := indexAfter(header, "Available", versionStart+len("Version"))
	if requireAvailable && availableStart < 0 {
		return lay, false
	}

	sourceFrom := versionStart + len("Version")
	if availableStart >= 0 {
		sourceFrom = availableStart + len("Available")
	}
	sourceStart := indexAfter(header, "Source", sourceFrom)

	lay.name = span{start: nameStart}
	lay.id = span{start: idStart}
	lay.version = span{start: versionStart}
	lay.available = span{start: availableStart}
	lay.source = span{start: sourceStart}

	starts := []*span{&lay.name, &lay.id, &lay.version}
	if availableStart >= 0 {
		starts = append(starts, &lay.available)
	}
	if sourceStart >= 0 {
		starts = append(starts, &lay.source)
	}
	for i := range starts {
		if i+1 < len(starts) {
			starts[i].end = starts[i+1].start
		} else {
			starts[i].end = -1
		}
	}
	return lay, true
}

// indexAfter returns the byte offset of sub in s at or after from,
// or -1 when absent.
func indexAfter(s, sub string, from int) int {
	if from > len(s) {
		return -1
	}
	idx := strings.Index(s[from:], sub)
	if idx < 0 {
		return -1
	}
	return from + idx
}

// isSeparatorLine reports whether line is a header underline: at least
// ten characters of only dashes and spaces.
func isSeparatorLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 10 {
		return false
	}
	for _, r := range trimmed {
		if r != '-' && r != ' ' {
			return false
		}
	}
	return true
}

// isFooterLine reports whether trimmed is one of winget's summary
// sentences printed after or instead of a table.
func isFooterLine(trimmed string) bool {
	for _, marker := range []string{
		"upgrade available",
		"upgrades available",
		"No installed package",
		"No applicable update",
		"require explicit targeting",
		"version numbers that cannot be determined",
	} {
		if strings.Contains(trimmed, marker) {
			return true
		}
	}
	return false
}

// extractRow slices one data line at the layout's boundaries. The
// returned reason is empty on success and names the defect otherwise.
func extractRow(line string, layout tableLayout) (Package, string) {
	pkg := Package{
		Name:      strings.TrimSpace(cut(line, layout.name.start, layout.name.end)),
		ID:        strings.TrimSpace(cut(line, layout.id.start, layout.id.end)),
		Installed: strings.TrimSpace(cut(line, layout.version.start, layout.version.end)),
	}
	if layout.hasAvailable() {
		pkg.Available = strings.TrimSpace(cut(line, layout.available.start, layout.available.end))
	}
	if layout.hasSource() {
		pkg.Source = strings.TrimSpace(cut(line, layout.source.start, layout.source.end))
	} else {
		// Without a Source column the source name can ride on the tail
		// of the last version field. A trailing word with no digits or
		// dots is a source name, not a version.
		if layout.hasAvailable() {
			pkg.Available, pkg.Source = splitSourceTail(pkg.Available)
		} else {
			pkg.Installed, pkg.Source = splitSourceTail(pkg.Installed)
		}
	}

	if pkg.ID == "" {
		return Package{}, "missing package id"
	}
	if !policy.ValidPackageID(pkg.ID) {
		return Package{}, "invalid package id"
	}
	if pkg.Installed == "" {
		return Package{}, "missing installed version"
	}
	return pkg, ""
}

// cut returns the portion of line between display cells start and end.
// end of -1 means to the end of the line. A wide rune straddling a
// boundary belongs to the cell it starts in.
func cut(line string, start, end int) string {
	if start < 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if end >= 0 && col >= end {
			break
		}
		if col >= start {
			b.WriteRune(r)
		}
		col += w
	}
	return b.String()
}

// splitSourceTail strips a trailing source name glued to a version
// field. The tail after the last space counts as a source when it
// contains neither digits nor dots.
func splitSourceTail(field string) (value, source string) {
	idx := strings.LastIndexByte(field, ' ')
	if idx < 0 {
		return field, ""
	}
	tail := strings.TrimSpace(field[idx+1:])
	if tail == "" || strings.ContainsAny(tail, ".0123456789") {
		return field, ""
	}
	return strings.TrimSpace(field[:idx]), tail
}
