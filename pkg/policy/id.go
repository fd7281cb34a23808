package policy

import "regexp"

// validPackageID matches winget package identifiers: segments of
// letters, digits, dots, underscores, and hyphens, starting with an
// alphanumeric, at most 256 characters. Truncated listing rows end in
// an ellipsis and fail this check.
var validPackageID = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]{0,255}$`)

// ValidPackageID reports whether id is a plausible winget package
// identifier. Applied to allow/block config entries, to parsed listing
// rows, and before every upgrade invocation.
//
// Parameters:
//   - id: The candidate identifier
//
// Returns:
//   - bool: true when the identifier is well-formed
func ValidPackageID(id string) bool {
	return validPackageID.MatchString(id)
}
