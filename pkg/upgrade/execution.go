package upgrade

import (
	"context"

	"github.com/ajxudir/wingetup/pkg/errors"
	"github.com/ajxudir/wingetup/pkg/warnings"
)

// Callbacks hooks the apply loop for live output.
//
// Fields:
//   - OnResult: Called after each item reaches its final status,
//     in listing order. Nil is fine.
type Callbacks struct {
	OnResult func(item Item)
}

func (c Callbacks) emitResult(item Item) {
	if c.OnResult != nil {
		c.OnResult(item)
	}
}

// Summary aggregates one upgrade pass.
//
// Fields:
//   - Candidates: Number of listing rows evaluated
//   - Planned: Candidates the policy accepted
//   - Upgraded: Upgrades that succeeded (always 0 in a dry run)
//   - Failed: Upgrades that failed
//   - Skipped: Candidates the policy rejected
//   - DryRun: Whether the pass left the system untouched
type Summary struct {
	Candidates int
	Planned    int
	Upgraded   int
	Failed     int
	Skipped    int
	DryRun     bool
}

// Apply walks the plan and upgrades the accepted items in order.
//
// A failed upgrade is warned about and the pass keeps going; one broken
// installer must not hold back the rest of the machine. In dry-run mode
// accepted items keep StatusPlanned and no upgrade is invoked.
//
// Parameters:
//   - ctx: Context for the winget invocations
//   - plan: The evaluated plan; item statuses are updated in place
//   - callbacks: Hooks for live output; zero value is fine
//
// Returns:
//   - Summary: Aggregate counts for the pass
//   - error: A PartialSuccessError when at least one upgrade failed,
//     nil otherwise
func (r *Runner) Apply(ctx context.Context, plan *Plan, callbacks Callbacks) (Summary, error) {
	summary := Summary{DryRun: r.dryRun}
	var failures []error

	for i := range plan.Items {
		item := &plan.Items[i]
		summary.Candidates++

		if !item.Decision.Allowed {
			item.Status = StatusSkipped
			summary.Skipped++
			callbacks.emitResult(*item)
			continue
		}

		summary.Planned++

		if r.dryRun {
			item.Status = StatusPlanned
			callbacks.emitResult(*item)
			continue
		}

		if err := r.client.Upgrade(ctx, item.Pkg.ID); err != nil {
			item.Status = StatusFailed
			item.Err = err
			summary.Failed++
			failures = append(failures, err)
			warnings.Warnf("Warning: %v\n", err)
			callbacks.emitResult(*item)
			continue
		}

		item.Status = StatusUpgraded
		summary.Upgraded++
		callbacks.emitResult(*item)
	}

	if summary.Failed > 0 {
		return summary, errors.NewPartialSuccessError(summary.Upgraded, summary.Failed, failures)
	}
	return summary, nil
}

// Run is Plan followed by Apply with no callbacks.
//
// Parameters:
//   - ctx: Context for the winget invocations
//
// Returns:
//   - *Plan: The evaluated plan with final statuses
//   - Summary: Aggregate counts for the pass
//   - error: A PartialSuccessError when at least one upgrade failed
func (r *Runner) Run(ctx context.Context) (*Plan, Summary, error) {
	plan := r.Plan(ctx)
	summary, err := r.Apply(ctx, plan, Callbacks{})
	return plan, summary, err
}
