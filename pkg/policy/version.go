// Package policy decides which winget packages may be upgraded.
//
// The decision pipeline is pure: parse the two version strings from a
// listing row, then run them through the configured rules (block list,
// allow list, unknown-version tolerance, upgrade level). Nothing in this
// package performs I/O, so the same inputs always produce the same
// decision.
package policy

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// unknownMarker is what winget prints in the Version column when the
// installed version cannot be determined (unversioned MSIX, portable
// installs, some MSI packages).
const unknownMarker = "unknown"

// dottedNumeric matches plain numeric versions with one to three
// segments: "1", "1.2", "1.2.3". Anything else (prerelease suffixes,
// four-segment builds, hashes, dates) is treated as unknown.
var dottedNumeric = regexp.MustCompile(`^(\d+)(?:\.(\d+))?(?:\.(\d+))?$`)

// Version is a parsed package version.
//
// Fields:
//   - Raw: The original version string, trimmed
//   - Major: The major component (0 when absent or unknown)
//   - Minor: The minor component (0 when absent or unknown)
//   - Patch: The patch component (0 when absent or unknown)
//   - Known: Whether the string parsed as a dotted numeric version
type Version struct {
	Raw   string
	Major int
	Minor int
	Patch int
	Known bool
}

// ParseVersion parses a version string from a winget listing.
//
// Parsing never fails: a string that is empty, the literal "Unknown"
// (any case), a "< 1.0" style pseudo-version, or anything that does not
// match the dotted numeric pattern yields a Version with Known=false.
// Missing minor and patch segments default to zero, so "1.2" compares
// as 1.2.0 and "1" as 1.0.0.
//
// Parameters:
//   - raw: The version string exactly as it appeared in the listing
//
// Returns:
//   - Version: The parsed version; inspect Known before comparing
func ParseVersion(raw string) Version {
	cleaned := strings.TrimSpace(raw)
	v := Version{Raw: cleaned}

	if cleaned == "" || strings.EqualFold(cleaned, unknownMarker) {
		return v
	}
	// winget emits "< 1.0" when only an upper bound is known
	if strings.HasPrefix(cleaned, "<") {
		return v
	}

	m := dottedNumeric.FindStringSubmatch(cleaned)
	if m == nil {
		return v
	}

	major, ok := parseSegment(m[1])
	if !ok {
		return v
	}
	minor, _ := parseSegment(m[2])
	patch, _ := parseSegment(m[3])

	v.Major = major
	v.Minor = minor
	v.Patch = patch
	v.Known = true
	return v
}

// parseSegment parses one numeric version segment.
//
// Returns 0 and false for empty segments and for numbers too large to
// fit an int.
func parseSegment(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// canonical returns the canonical semver form of a known version,
// e.g. "v1.2.0". Only meaningful when Known is true.
func (v Version) canonical() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// String returns the raw version string, or "unknown" for versions
// that did not parse and had no raw text.
func (v Version) String() string {
	if v.Raw == "" {
		return unknownMarker
	}
	return v.Raw
}

// Compare returns the ordering of two known versions.
//
// Both versions must have Known=true; results for unknown versions are
// meaningless. Ordering is the usual (major, minor, patch) tuple order.
//
// Parameters:
//   - a: The first version
//   - b: The second version
//
// Returns:
//   - int: Negative if a < b, zero if a == b, positive if a > b
func Compare(a, b Version) int {
	return semver.Compare(a.canonical(), b.canonical())
}

// UpgradeScope classifies how large the jump between two versions is.
type UpgradeScope string

const (
	// ScopePatch means only the patch component changes.
	ScopePatch UpgradeScope = "patch"

	// ScopeMinor means the minor component changes, major unchanged.
	ScopeMinor UpgradeScope = "minor"

	// ScopeMajor means the major component changes.
	ScopeMajor UpgradeScope = "major"
)

// ScopeOf classifies the jump from installed to available.
//
// Both versions must be Known. Equal tuples classify as ScopePatch;
// callers reject ties before asking for a scope.
//
// Parameters:
//   - installed: The currently installed version
//   - available: The version offered by the source
//
// Returns:
//   - UpgradeScope: The widest component that differs
func ScopeOf(installed, available Version) UpgradeScope {
	switch {
	case installed.Major != available.Major:
		return ScopeMajor
	case installed.Minor != available.Minor:
		return ScopeMinor
	default:
		return ScopePatch
	}
}
