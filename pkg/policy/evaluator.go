package policy

// Reason explains a policy decision.
type Reason string

const (
	// ReasonBlocked: the package identifier is on the block list.
	ReasonBlocked Reason = "blocked"

	// ReasonAllowlisted: the package identifier is on the allow list.
	ReasonAllowlisted Reason = "allowlisted"

	// ReasonUnknownVersion: a version did not parse and the tolerance
	// setting rejects it.
	ReasonUnknownVersion Reason = "unknown-version"

	// ReasonUnknownTolerated: a version did not parse but the tolerance
	// setting accepts the row.
	ReasonUnknownTolerated Reason = "unknown-tolerated"

	// ReasonNotNewer: the available version is not strictly newer.
	ReasonNotNewer Reason = "not-newer"

	// ReasonLevelExceeded: the jump is larger than the configured level.
	ReasonLevelExceeded Reason = "level-exceeded"

	// ReasonUpgrade: a regular upgrade within the configured level.
	ReasonUpgrade Reason = "upgrade"
)

// Decision is the verdict for one listing row.
//
// Fields:
//   - Allowed: Whether the package may be upgraded
//   - Reason: Why
//   - Scope: The classified jump; empty when a version did not parse
type Decision struct {
	Allowed bool
	Reason  Reason
	Scope   UpgradeScope
}

// Evaluator applies the upgrade policy to listing rows.
//
// Build one per run with NewEvaluator; it is immutable afterwards and
// every Decide call with the same inputs returns the same verdict.
type Evaluator struct {
	level   Level
	unknown UnknownPolicy
	allow   map[string]struct{}
	block   map[string]struct{}
}

// NewEvaluator builds an Evaluator for the given policy settings.
//
// Parameters:
//   - level: The upgrade level gate
//   - unknown: The unknown-version tolerance
//   - allow: Package identifiers upgraded regardless of version rules
//   - block: Package identifiers never upgraded; beats the allow list
//
// Returns:
//   - *Evaluator: Ready-to-use evaluator
func NewEvaluator(level Level, unknown UnknownPolicy, allow, block []string) *Evaluator {
	e := &Evaluator{
		level:   level,
		unknown: unknown,
		allow:   make(map[string]struct{}, len(allow)),
		block:   make(map[string]struct{}, len(block)),
	}
	for _, id := range allow {
		e.allow[id] = struct{}{}
	}
	for _, id := range block {
		e.block[id] = struct{}{}
	}
	return e
}

// Decide evaluates one listing row against the policy.
//
// Rules apply in strict precedence order:
//  1. Block list: a blocked identifier is rejected, whatever the
//     versions say and even if it is also on the allow list.
//  2. Allow list: an allowlisted identifier is accepted without any
//     version inspection.
//  3. Unknown versions: when either side fails to parse, only the
//     tolerance setting matters; level rules are skipped entirely.
//  4. Strictly newer: ties and downgrades are rejected under every
//     level, including "all".
//  5. Level: the jump's scope must be within the configured level.
//
// Parameters:
//   - id: The package identifier from the listing
//   - installed: The installed version string
//   - available: The available version string
//
// Returns:
//   - Decision: The verdict with reason and scope
func (e *Evaluator) Decide(id, installed, available string) Decision {
	if _, ok := e.block[id]; ok {
		return Decision{Allowed: false, Reason: ReasonBlocked}
	}
	if _, ok := e.allow[id]; ok {
		return Decision{Allowed: true, Reason: ReasonAllowlisted}
	}

	from := ParseVersion(installed)
	to := ParseVersion(available)

	if !from.Known || !to.Known {
		return e.decideUnknown(from, to)
	}

	scope := ScopeOf(from, to)
	if Compare(to, from) <= 0 {
		return Decision{Allowed: false, Reason: ReasonNotNewer, Scope: scope}
	}
	if !e.level.Accepts(scope) {
		return Decision{Allowed: false, Reason: ReasonLevelExceeded, Scope: scope}
	}
	return Decision{Allowed: true, Reason: ReasonUpgrade, Scope: scope}
}

// decideUnknown applies the tolerance gate to rows with unparseable
// versions. Level rules do not apply here: an unknown version has no
// scope to classify, so the tolerance setting alone decides.
func (e *Evaluator) decideUnknown(from, to Version) Decision {
	switch e.unknown {
	case UnknownInstalled:
		if !from.Known && to.Known {
			return Decision{Allowed: true, Reason: ReasonUnknownTolerated}
		}
	case UnknownAll:
		return Decision{Allowed: true, Reason: ReasonUnknownTolerated}
	}
	return Decision{Allowed: false, Reason: ReasonUnknownVersion}
}

// ShouldUpgrade reports whether the package may be upgraded.
//
// Convenience wrapper around Decide for callers that only need the
// boolean verdict.
//
// Parameters:
//   - id: The package identifier from the listing
//   - installed: The installed version string
//   - available: The available version string
//
// Returns:
//   - bool: true when the upgrade is permitted
func (e *Evaluator) ShouldUpgrade(id, installed, available string) bool {
	return e.Decide(id, installed, available).Allowed
}
