// Package upgrade runs the sequential upgrade pass: prime the winget
// sources, list the upgrade candidates, decide each one against the
// policy, then apply the accepted upgrades one at a time.
//
// The pass is deliberately sequential. Winget serializes installer
// execution behind a machine-wide lock, so concurrent invocations buy
// nothing and complicate failure attribution.
package upgrade

import (
	"context"

	"github.com/ajxudir/wingetup/pkg/policy"
	"github.com/ajxudir/wingetup/pkg/winget"
)

// Item statuses, in the order they can occur. A candidate starts as
// planned or skipped and moves to upgraded or failed during Apply.
const (
	// StatusPlanned marks an accepted candidate not yet applied, or one
	// left untouched by a dry run.
	StatusPlanned = "planned"

	// StatusUpgraded marks a candidate whose upgrade succeeded.
	StatusUpgraded = "upgraded"

	// StatusFailed marks a candidate whose upgrade failed.
	StatusFailed = "failed"

	// StatusSkipped marks a candidate the policy rejected.
	StatusSkipped = "skipped"
)

// Client is the winget surface the pass needs.
//
// *winget.Client implements it; tests substitute fakes.
type Client interface {
	// PrimeSourceAgreements accepts source agreements ahead of the run.
	PrimeSourceAgreements(ctx context.Context) error

	// ListUpgrades returns the upgrade candidates winget reports.
	ListUpgrades(ctx context.Context) ([]winget.Package, error)

	// Upgrade upgrades a single package by exact identifier.
	Upgrade(ctx context.Context, id string) error
}

// Runner executes the upgrade pass for one command invocation.
//
// Fields:
//   - client: The winget boundary
//   - evaluator: The policy applied to every candidate
//   - dryRun: When true, Apply reports what it would do and mutates nothing
type Runner struct {
	client    Client
	evaluator *policy.Evaluator
	dryRun    bool
}

// NewRunner creates a Runner.
//
// Parameters:
//   - client: The winget boundary to drive
//   - evaluator: The policy evaluator for this run
//   - dryRun: Whether the apply phase may invoke upgrades
//
// Returns:
//   - *Runner: Ready-to-use runner
func NewRunner(client Client, evaluator *policy.Evaluator, dryRun bool) *Runner {
	return &Runner{
		client:    client,
		evaluator: evaluator,
		dryRun:    dryRun,
	}
}

// DryRun reports whether this runner leaves the system untouched.
func (r *Runner) DryRun() bool {
	return r.dryRun
}
