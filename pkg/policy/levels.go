package policy

import (
	"strings"

	"github.com/ajxudir/wingetup/pkg/errors"
)

// Level controls how large a version jump may be upgraded automatically.
//
// Levels are cumulative: minor includes patch jumps, major includes both.
// LevelAll accepts any strictly newer version; it differs from LevelMajor
// only in name, since unknown versions are governed by UnknownPolicy
// before levels are consulted.
type Level string

const (
	// LevelPatch accepts upgrades that change only the patch component.
	LevelPatch Level = "patch"

	// LevelMinor accepts patch and minor upgrades.
	LevelMinor Level = "minor"

	// LevelMajor accepts any upgrade to a strictly newer version.
	LevelMajor Level = "major"

	// LevelAll accepts any upgrade to a strictly newer version.
	LevelAll Level = "all"
)

// DefaultLevel is used when WINGET_UPGRADE_LEVEL is unset.
const DefaultLevel = LevelPatch

// levelNames lists accepted level spellings for validation messages.
var levelNames = []string{string(LevelPatch), string(LevelMinor), string(LevelMajor), string(LevelAll)}

// ParseLevel parses an upgrade level from config or environment.
//
// Parameters:
//   - s: The level string; empty selects DefaultLevel
//
// Returns:
//   - Level: The parsed level
//   - error: ValidationError for unrecognized values
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultLevel, nil
	case string(LevelPatch):
		return LevelPatch, nil
	case string(LevelMinor):
		return LevelMinor, nil
	case string(LevelMajor):
		return LevelMajor, nil
	case string(LevelAll):
		return LevelAll, nil
	}
	return "", &errors.ValidationError{
		Field:       "level",
		Value:       s,
		Message:     "unrecognized upgrade level",
		ValidValues: levelNames,
	}
}

// Accepts reports whether the level admits an upgrade of the given scope.
//
// Parameters:
//   - scope: The classified jump between installed and available
//
// Returns:
//   - bool: true when the jump is within the level
func (l Level) Accepts(scope UpgradeScope) bool {
	switch l {
	case LevelPatch:
		return scope == ScopePatch
	case LevelMinor:
		return scope == ScopePatch || scope == ScopeMinor
	case LevelMajor, LevelAll:
		return true
	}
	return false
}

// UnknownPolicy controls what happens when a version does not parse.
//
// Winget regularly lists packages whose installed version it cannot
// read. Those rows can never pass a numeric comparison, so they get
// their own gate, applied before level rules.
type UnknownPolicy string

const (
	// UnknownOff rejects every row with an unparseable version.
	UnknownOff UnknownPolicy = "off"

	// UnknownInstalled tolerates an unknown installed version as long as
	// the available version parses.
	UnknownInstalled UnknownPolicy = "installed"

	// UnknownAll tolerates unknown versions on either side.
	UnknownAll UnknownPolicy = "all"
)

// DefaultUnknownPolicy is used when WINGET_UPGRADE_UNKNOWN_VERSIONS is unset.
const DefaultUnknownPolicy = UnknownOff

// ParseUnknownPolicy parses the unknown-version tolerance setting.
//
// The setting is boolean-shaped with one extra value: falsy spellings
// map to UnknownOff, truthy spellings to UnknownInstalled, and the
// literal "all" to UnknownAll.
//
// Parameters:
//   - s: The setting string; empty selects DefaultUnknownPolicy
//
// Returns:
//   - UnknownPolicy: The parsed policy
//   - error: ValidationError for unrecognized values
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "0", "f", "false", "n", "no", "off":
		return UnknownOff, nil
	case "1", "t", "true", "y", "yes", "on", "installed":
		return UnknownInstalled, nil
	case "all":
		return UnknownAll, nil
	}
	return "", &errors.ValidationError{
		Field:       "unknown_versions",
		Value:       s,
		Message:     "unrecognized unknown-version tolerance",
		ValidValues: []string{"false", "true", "all"},
	}
}
