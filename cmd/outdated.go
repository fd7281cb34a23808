package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajxudir/wingetup/pkg/config"
	"github.com/ajxudir/wingetup/pkg/output"
	"github.com/ajxudir/wingetup/pkg/policy"
	"github.com/ajxudir/wingetup/pkg/upgrade"
)

var (
	outdatedLevelFlag   string
	outdatedUnknownFlag string
	outdatedConfigFlag  string
	outdatedWingetFlag  string
	outdatedOutputFlag  string
)

// writeOutdatedResultFunc allows mocking structured output in tests
var writeOutdatedResultFunc = output.WriteOutdatedResult

var outdatedCmd = &cobra.Command{
	Use:   "outdated",
	Short: "Show upgrade candidates and what the policy would do",
	Long: `List winget upgrade candidates and evaluate each one against the
version policy. Nothing is installed; the DECISION column shows which
packages an upgrade run would touch.`,
	RunE: runOutdated,
}

func init() {
	outdatedCmd.Flags().StringVar(&outdatedLevelFlag, "level", "", "Upgrade level: patch, minor, major, all (default from config)")
	outdatedCmd.Flags().StringVar(&outdatedUnknownFlag, "unknown", "", "Unknown-version tolerance: false, true, all (default from config)")
	outdatedCmd.Flags().StringVarP(&outdatedConfigFlag, "config", "c", "", "Config file path")
	outdatedCmd.Flags().StringVar(&outdatedWingetFlag, "winget", "", "Explicit winget executable path")
	outdatedCmd.Flags().StringVarP(&outdatedOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
}

// runOutdated executes the outdated command.
//
// Primes the winget sources, lists upgrade candidates, and evaluates
// each one against the policy. The command is read-only: every listing
// problem is a warning, and the exit code is 0 unless winget itself is
// missing or the configuration is invalid.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: Config error, or the missing-winget error
func runOutdated(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(outdatedOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	cfg, err := loadRunConfig(outdatedConfigFlag, outdatedLevelFlag, outdatedUnknownFlag, outdatedWingetFlag)
	if err != nil {
		return err
	}

	useStructured := output.IsStructuredFormat(outputFormat)
	collector, restoreWarnings := newRunCollector(useStructured)
	defer restoreWarnings()

	client, err := newWingetClient(cfg)
	if err != nil {
		return err
	}

	// Evaluation only; the runner never applies in this command.
	runner := upgrade.NewRunner(client, cfg.NewEvaluator(), true)
	plan := runner.Plan(context.Background())

	if useStructured {
		return writeOutdatedResultFunc(os.Stdout, outputFormat, buildOutdatedResult(plan, cfg, collector.Messages()))
	}

	printOutdatedTable(plan)
	return nil
}

// printOutdatedTable renders the evaluated plan as a terminal table.
//
// The DECISION cell is colored after padding so the escape sequences
// never enter the width calculation.
//
// Parameters:
//   - plan: The evaluated candidate list
func printOutdatedTable(plan *upgrade.Plan) {
	if len(plan.Items) == 0 {
		fmt.Println("No upgrade candidates found.")
		return
	}

	table := buildOutdatedTable(plan.Items)

	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	for _, item := range plan.Items {
		decision := decisionCell(item.Decision.Allowed)
		cells := table.FormatCells(
			item.Pkg.ID,
			item.Pkg.Installed,
			item.Pkg.Available,
			scopeCell(item.Decision.Scope),
			decision,
			string(item.Decision.Reason),
		)
		c := output.DecisionColor(decision, string(item.Decision.Reason))
		cells[4] = output.Colorize(c, cells[4])
		fmt.Println(strings.Join(cells, table.Separator()))
	}

	accepted := plan.AcceptedCount()
	fmt.Printf("\nTotal candidates: %d (%d accepted, %d skipped)\n",
		len(plan.Items), accepted, len(plan.Items)-accepted)
}

// buildOutdatedTable creates the outdated table with widths computed
// from the plan rows.
//
// Parameters:
//   - items: Evaluated candidates in listing order
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildOutdatedTable(items []upgrade.Item) *output.Table {
	table := output.NewTable().
		AddColumn("ID").
		AddColumn("INSTALLED").
		AddColumn("AVAILABLE").
		AddColumn("SCOPE").
		AddColumn("DECISION").
		AddColumn("REASON")

	for _, item := range items {
		table.UpdateWidths(
			item.Pkg.ID,
			item.Pkg.Installed,
			item.Pkg.Available,
			scopeCell(item.Decision.Scope),
			decisionCell(item.Decision.Allowed),
			string(item.Decision.Reason),
		)
	}

	return table
}

// buildOutdatedResult converts the evaluated plan into the structured
// output document.
//
// Parameters:
//   - plan: The evaluated candidate list
//   - cfg: Effective configuration, for the policy summary fields
//   - warningMsgs: Warnings collected during the listing pass
//
// Returns:
//   - *output.OutdatedResult: Document for WriteOutdatedResult
func buildOutdatedResult(plan *upgrade.Plan, cfg *config.Config, warningMsgs []string) *output.OutdatedResult {
	packages := make([]output.OutdatedPackage, 0, len(plan.Items))
	for _, item := range plan.Items {
		packages = append(packages, output.OutdatedPackage{
			ID:        item.Pkg.ID,
			Name:      item.Pkg.Name,
			Installed: item.Pkg.Installed,
			Available: item.Pkg.Available,
			Scope:     string(item.Decision.Scope),
			Decision:  decisionCell(item.Decision.Allowed),
			Reason:    string(item.Decision.Reason),
			Source:    item.Pkg.Source,
		})
	}

	accepted := plan.AcceptedCount()
	return &output.OutdatedResult{
		Summary: output.OutdatedSummary{
			TotalPackages: len(packages),
			Accepted:      accepted,
			Skipped:       len(packages) - accepted,
			Level:         string(cfg.UpgradeLevel()),
			UnknownPolicy: string(cfg.UnknownPolicy()),
		},
		Packages: packages,
		Warnings: warningMsgs,
	}
}

// decisionCell maps a policy verdict to its display label.
func decisionCell(allowed bool) string {
	if allowed {
		return output.DecisionAccept
	}
	return output.DecisionSkip
}

// scopeCell maps a classified jump to its display cell. Rows with an
// unparseable version have no scope and render as a dash.
func scopeCell(scope policy.UpgradeScope) string {
	if scope == "" {
		return "-"
	}
	return string(scope)
}
