// Package winget drives the Windows Package Manager CLI.
//
// It locates the winget executable, invokes its listing and upgrade
// subcommands through the cmdexec seam, and parses the fixed-width
// tables winget prints. Parsing is deliberately defensive: winget's
// output is a human-facing table with progress residue, footers, and
// occasional truncation, and one unusable row must never abort a
// listing.
package winget

// Package is one row of a winget listing.
//
// Fields:
//   - Name: Human-readable display name; may contain spaces and unicode
//   - ID: Winget package identifier, e.g. "Mozilla.Firefox"
//   - Installed: Version currently installed; may be "Unknown"
//   - Available: Version offered by the source; empty for plain list output
//   - Source: Originating source, usually "winget"; may be empty
type Package struct {
	Name      string
	ID        string
	Installed string
	Available string
	Source    string
}
