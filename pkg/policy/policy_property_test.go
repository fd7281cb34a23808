package policy

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genComponent generates a version component in a realistic range.
func genComponent() gopter.Gen {
	return gen.IntRange(0, 200)
}

// genLevel generates one of the four upgrade levels.
func genLevel() gopter.Gen {
	return gen.OneConstOf(LevelPatch, LevelMinor, LevelMajor, LevelAll)
}

// genUnknownPolicy generates one of the three tolerance settings.
func genUnknownPolicy() gopter.Gen {
	return gen.OneConstOf(UnknownOff, UnknownInstalled, UnknownAll)
}

// genPackageID generates plausible winget package identifiers.
func genPackageID() gopter.Gen {
	return gen.RegexMatch(`[A-Z][a-z]{2,8}\.[A-Z][a-z]{2,8}`)
}

func versionString(major, minor, patch int) string {
	return fmt.Sprintf("%d.%d.%d", major, minor, patch)
}

// TestDecidePropertyTiesNeverUpgrade checks that versions equal under
// (major, minor, patch) are never upgraded, for every level and
// tolerance combination.
func TestDecidePropertyTiesNeverUpgrade(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("equal versions are never upgraded", prop.ForAll(
		func(id string, major, minor, patch int, level Level, unknown UnknownPolicy) bool {
			e := NewEvaluator(level, unknown, nil, nil)
			v := versionString(major, minor, patch)
			return !e.ShouldUpgrade(id, v, v)
		},
		genPackageID(),
		genComponent(),
		genComponent(),
		genComponent(),
		genLevel(),
		genUnknownPolicy(),
	))

	properties.TestingRun(t)
}

// TestDecidePropertyNoDowngrades checks that an older available version
// is never accepted, for every level.
func TestDecidePropertyNoDowngrades(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("older available versions are never upgraded", prop.ForAll(
		func(id string, major, minor, patch, delta int, level Level) bool {
			e := NewEvaluator(level, UnknownOff, nil, nil)
			installed := versionString(major, minor, patch+delta)
			available := versionString(major, minor, patch)
			return !e.ShouldUpgrade(id, installed, available)
		},
		genPackageID(),
		genComponent(),
		genComponent(),
		genComponent(),
		gen.IntRange(1, 50),
		genLevel(),
	))

	properties.TestingRun(t)
}

// TestDecidePropertyBlockListWins checks that a blocked identifier is
// rejected whatever the versions, level, and tolerance are.
func TestDecidePropertyBlockListWins(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("blocked ids are always rejected", prop.ForAll(
		func(id, installed, available string, level Level, unknown UnknownPolicy) bool {
			e := NewEvaluator(level, unknown, []string{id}, []string{id})
			d := e.Decide(id, installed, available)
			return !d.Allowed && d.Reason == ReasonBlocked
		},
		genPackageID(),
		gen.OneGenOf(gen.RegexMatch(`[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}`), gen.Const("Unknown")),
		gen.OneGenOf(gen.RegexMatch(`[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}`), gen.Const("Unknown")),
		genLevel(),
		genUnknownPolicy(),
	))

	properties.TestingRun(t)
}

// TestDecidePropertyDeterminism checks that repeated calls with the same
// inputs return the same decision.
func TestDecidePropertyDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("decisions are deterministic", prop.ForAll(
		func(id string, a, b, c, x, y, z int, level Level, unknown UnknownPolicy) bool {
			e := NewEvaluator(level, unknown, nil, nil)
			installed := versionString(a, b, c)
			available := versionString(x, y, z)
			first := e.Decide(id, installed, available)
			second := e.Decide(id, installed, available)
			return first == second
		},
		genPackageID(),
		genComponent(),
		genComponent(),
		genComponent(),
		genComponent(),
		genComponent(),
		genComponent(),
		genLevel(),
		genUnknownPolicy(),
	))

	properties.TestingRun(t)
}

// TestDecidePropertyPatchLevelScope checks that everything accepted at
// level patch with tolerance off is a strictly newer patch-scope jump.
func TestDecidePropertyPatchLevelScope(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("patch level only accepts same-major same-minor jumps", prop.ForAll(
		func(id string, a, b, c, x, y, z int) bool {
			e := NewEvaluator(LevelPatch, UnknownOff, nil, nil)
			installed := versionString(a, b, c)
			available := versionString(x, y, z)
			d := e.Decide(id, installed, available)
			if !d.Allowed {
				return true
			}
			return a == x && b == y && z > c
		},
		genPackageID(),
		genComponent(),
		genComponent(),
		genComponent(),
		genComponent(),
		genComponent(),
		genComponent(),
	))

	properties.TestingRun(t)
}
