package upgrade

import (
	"context"

	"github.com/ajxudir/wingetup/pkg/policy"
	"github.com/ajxudir/wingetup/pkg/verbose"
	"github.com/ajxudir/wingetup/pkg/warnings"
	"github.com/ajxudir/wingetup/pkg/winget"
)

// Item is one candidate with its policy verdict and pass status.
//
// Fields:
//   - Pkg: The listing row
//   - Decision: The policy verdict for this row
//   - Status: Current pass status (planned, upgraded, failed, skipped)
//   - Err: The upgrade failure, set only for StatusFailed
type Item struct {
	Pkg      winget.Package
	Decision policy.Decision
	Status   string
	Err      error
}

// Plan is the evaluated candidate list in listing order.
//
// The order winget reported the rows in is preserved all the way to the
// rendered output, so a listing and its pass report line up.
type Plan struct {
	Items []Item
}

// Accepted returns the items the policy accepted, in listing order.
//
// Returns:
//   - []Item: Copies of the accepted items
func (p *Plan) Accepted() []Item {
	var accepted []Item
	for _, item := range p.Items {
		if item.Decision.Allowed {
			accepted = append(accepted, item)
		}
	}
	return accepted
}

// AcceptedCount returns the number of accepted items.
func (p *Plan) AcceptedCount() int {
	count := 0
	for _, item := range p.Items {
		if item.Decision.Allowed {
			count++
		}
	}
	return count
}

// Plan primes the sources, lists the candidates, and evaluates each one.
//
// Failures before the evaluation stage never abort the run: a priming
// error is only a warning, and a listing error produces a warning and
// an empty plan. A machine with nothing to upgrade and a machine whose
// listing broke both yield an empty plan; the warning is the
// difference.
//
// Parameters:
//   - ctx: Context for the winget invocations
//
// Returns:
//   - *Plan: The evaluated candidates in listing order, possibly empty
func (r *Runner) Plan(ctx context.Context) *Plan {
	if err := r.client.PrimeSourceAgreements(ctx); err != nil {
		warnings.Warnf("Warning: %v\n", err)
	}

	pkgs, err := r.client.ListUpgrades(ctx)
	if err != nil {
		warnings.Warnf("Warning: %v\n", err)
		return &Plan{}
	}

	plan := &Plan{Items: make([]Item, 0, len(pkgs))}
	for _, pkg := range pkgs {
		decision := r.evaluator.Decide(pkg.ID, pkg.Installed, pkg.Available)
		verbose.Decision(pkg.ID, pkg.Installed, pkg.Available, string(decision.Reason))

		status := StatusSkipped
		if decision.Allowed {
			status = StatusPlanned
		}
		plan.Items = append(plan.Items, Item{
			Pkg:      pkg,
			Decision: decision,
			Status:   status,
		})
	}
	return plan
}
