package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/cobra"

	"github.com/ajxudir/wingetup/pkg/output"
	"github.com/ajxudir/wingetup/pkg/upgrade"
)

var (
	upgradeDryRunFlag  bool
	upgradeYesFlag     bool
	upgradeLevelFlag   string
	upgradeUnknownFlag string
	upgradeConfigFlag  string
	upgradeWingetFlag  string
	upgradeOutputFlag  string
)

// stdinReaderFunc allows mocking stdin for testing
var stdinReaderFunc = func() *bufio.Reader {
	return bufio.NewReader(os.Stdin)
}

// writeUpgradeResultFunc allows mocking structured output in tests
var writeUpgradeResultFunc = output.WriteUpgradeResult

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade packages the policy accepts",
	Long: `Evaluate winget upgrade candidates against the version policy and
upgrade the accepted ones in listing order. A failed upgrade is
reported and the pass continues with the next package.

WINGET_DEBUG forces a dry run regardless of flags.`,
	RunE: runUpgrade,
}

func init() {
	upgradeCmd.Flags().BoolVar(&upgradeDryRunFlag, "dry-run", false, "Plan upgrades without applying them")
	upgradeCmd.Flags().BoolVarP(&upgradeYesFlag, "yes", "y", false, "Skip the confirmation prompt")
	upgradeCmd.Flags().StringVar(&upgradeLevelFlag, "level", "", "Upgrade level: patch, minor, major, all (default from config)")
	upgradeCmd.Flags().StringVar(&upgradeUnknownFlag, "unknown", "", "Unknown-version tolerance: false, true, all (default from config)")
	upgradeCmd.Flags().StringVarP(&upgradeConfigFlag, "config", "c", "", "Config file path")
	upgradeCmd.Flags().StringVar(&upgradeWingetFlag, "winget", "", "Explicit winget executable path")
	upgradeCmd.Flags().StringVarP(&upgradeOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
}

// runUpgrade executes the upgrade command.
//
// Plans the pass, previews it, confirms with the user unless --yes or
// dry-run, then applies the accepted upgrades in listing order with
// live per-package output.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: Config error, missing-winget error, or a partial-success
//     error when at least one upgrade failed
func runUpgrade(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(upgradeOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	cfg, err := loadRunConfig(upgradeConfigFlag, upgradeLevelFlag, upgradeUnknownFlag, upgradeWingetFlag)
	if err != nil {
		return err
	}

	// WINGET_DEBUG forces a dry run even without the flag, so the
	// structured-flags check runs against the effective mode.
	dryRun := upgradeDryRunFlag || cfg.DryRun

	if err := output.ValidateUpgradeStructuredFlags(outputFormat, upgradeYesFlag, dryRun); err != nil {
		return err
	}

	useStructured := output.IsStructuredFormat(outputFormat)
	collector, restoreWarnings := newRunCollector(useStructured)
	defer restoreWarnings()

	client, err := newWingetClient(cfg)
	if err != nil {
		return err
	}

	runner := upgrade.NewRunner(client, cfg.NewEvaluator(), dryRun)
	plan := runner.Plan(context.Background())

	if useStructured {
		// No preview, no prompt: apply silently and emit one document.
		summary, applyErr := runner.Apply(context.Background(), plan, upgrade.Callbacks{})
		result := buildUpgradeResult(plan, summary, collector.Messages())
		if err := writeUpgradeResultFunc(os.Stdout, outputFormat, result); err != nil {
			return err
		}
		return applyErr
	}

	return runUpgradeTable(runner, plan, dryRun)
}

// runUpgradeTable runs the interactive table flow: preview, confirm,
// then the live pass.
//
// Parameters:
//   - runner: The configured pass runner
//   - plan: The evaluated candidates
//   - dryRun: Effective dry-run mode
//
// Returns:
//   - error: A partial-success error when at least one upgrade failed
func runUpgradeTable(runner *upgrade.Runner, plan *upgrade.Plan, dryRun bool) error {
	if len(plan.Items) == 0 {
		fmt.Println("No upgrade candidates found.")
		return nil
	}

	table := buildUpgradeTable(plan.Items)

	if dryRun {
		return runUpgradeDryRun(runner, plan, table)
	}

	// Preview every candidate with its planned status before asking.
	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())
	for _, item := range plan.Items {
		printUpgradeRow(item, table)
	}

	planned := plan.AcceptedCount()
	if planned == 0 {
		fmt.Println("\nNothing to upgrade.")
		return nil
	}

	if !confirmUpgrade(planned) {
		fmt.Println("No changes applied.")
		return nil
	}
	fmt.Println()

	// Print the header again and replay the rows live as they resolve.
	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	progress := output.NewProgress(os.Stderr, planned, "Upgrading")
	callbacks := upgrade.Callbacks{
		OnResult: func(item upgrade.Item) {
			progress.Clear()
			printUpgradeRow(item, table)
			if item.Status == upgrade.StatusUpgraded || item.Status == upgrade.StatusFailed {
				progress.Increment()
			}
		},
	}

	summary, applyErr := runner.Apply(context.Background(), plan, callbacks)
	progress.Clear()

	fmt.Printf("\n%d upgraded, %d failed, %d skipped\n",
		summary.Upgraded, summary.Failed, summary.Skipped)
	return applyErr
}

// runUpgradeDryRun runs the table flow in dry-run mode: no prompt, no
// changes, and the accepted decisions echoed as ordered JSON records
// for scheduled-run log scraping.
//
// Parameters:
//   - runner: The configured pass runner (dry-run mode)
//   - plan: The evaluated candidates
//   - table: Table formatter sized for the plan rows
//
// Returns:
//   - error: Record marshaling error, nil otherwise
func runUpgradeDryRun(runner *upgrade.Runner, plan *upgrade.Plan, table *output.Table) error {
	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())

	callbacks := upgrade.Callbacks{
		OnResult: func(item upgrade.Item) {
			printUpgradeRow(item, table)
		},
	}
	summary, applyErr := runner.Apply(context.Background(), plan, callbacks)

	accepted := plan.Accepted()
	if len(accepted) > 0 {
		records := make([]*orderedmap.OrderedMap, 0, len(accepted))
		for _, item := range accepted {
			records = append(records, output.DecisionRecord(
				item.Pkg.ID,
				item.Pkg.Installed,
				item.Pkg.Available,
				string(item.Decision.Scope),
				string(item.Decision.Reason),
			))
		}
		data, err := output.MarshalRecords(records)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(string(data))
	}

	fmt.Printf("\nDry run: %d upgrade(s) planned, no changes applied.\n", summary.Planned)
	return applyErr
}

// confirmUpgrade prompts the user to confirm the pass.
//
// Skips the prompt if --yes is set. Reads user input from stdin.
//
// Parameters:
//   - planned: Number of upgrades the pass would apply
//
// Returns:
//   - bool: True if the user confirms or --yes is set
func confirmUpgrade(planned int) bool {
	if upgradeYesFlag {
		fmt.Printf("\nApply %d upgrade(s)? Proceeding (--yes)...\n", planned)
		return true
	}

	fmt.Printf("\nApply %d upgrade(s)? [y/N]: ", planned)
	reader := stdinReaderFunc()
	response, err := reader.ReadString('\n')
	if err != nil {
		fmt.Println("\nUpgrade cancelled (input not available).")
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Println("Upgrade cancelled.")
		return false
	}
	return true
}

// printUpgradeRow prints one live row with the STATUS cell colored
// after padding.
//
// Parameters:
//   - item: The resolved candidate
//   - table: Table formatter sized for the plan rows
func printUpgradeRow(item upgrade.Item, table *output.Table) {
	cells := table.FormatCells(
		item.Pkg.ID,
		item.Pkg.Installed,
		item.Pkg.Available,
		scopeCell(item.Decision.Scope),
		item.Status,
		string(item.Decision.Reason),
	)
	cells[4] = output.Colorize(output.StatusColor(item.Status), cells[4])
	fmt.Println(strings.Join(cells, table.Separator()))
	// Force flush so scheduled-run logs capture rows as they resolve
	_ = os.Stdout.Sync()
}

// buildUpgradeTable creates the upgrade table with widths computed from
// the plan rows.
//
// The STATUS column is seeded with the widest status label so live rows
// stay aligned when "planned" resolves to "upgraded".
//
// Parameters:
//   - items: Evaluated candidates in listing order
//
// Returns:
//   - *output.Table: Configured table formatter ready for output
func buildUpgradeTable(items []upgrade.Item) *output.Table {
	table := output.NewTable().
		AddColumn("ID").
		AddColumn("INSTALLED").
		AddColumn("AVAILABLE").
		AddColumn("SCOPE").
		AddColumnWithMinWidth("STATUS", len(upgrade.StatusUpgraded)).
		AddColumn("REASON")

	for _, item := range items {
		table.UpdateWidths(
			item.Pkg.ID,
			item.Pkg.Installed,
			item.Pkg.Available,
			scopeCell(item.Decision.Scope),
			item.Status,
			string(item.Decision.Reason),
		)
	}

	return table
}

// buildUpgradeResult converts a finished pass into the structured
// output document.
//
// Parameters:
//   - plan: The plan with final item statuses
//   - summary: Aggregate counts from Apply
//   - warningMsgs: Warnings collected during the pass
//
// Returns:
//   - *output.UpgradeResult: Document for WriteUpgradeResult
func buildUpgradeResult(plan *upgrade.Plan, summary upgrade.Summary, warningMsgs []string) *output.UpgradeResult {
	packages := make([]output.UpgradePackage, 0, len(plan.Items))
	var errorMsgs []string
	for _, item := range plan.Items {
		pkg := output.UpgradePackage{
			ID:        item.Pkg.ID,
			Name:      item.Pkg.Name,
			Installed: item.Pkg.Installed,
			Available: item.Pkg.Available,
			Scope:     string(item.Decision.Scope),
			Status:    item.Status,
			Reason:    string(item.Decision.Reason),
		}
		if item.Err != nil {
			pkg.Error = item.Err.Error()
			errorMsgs = append(errorMsgs, item.Err.Error())
		}
		packages = append(packages, pkg)
	}

	return &output.UpgradeResult{
		Summary: output.UpgradeSummary{
			Candidates: summary.Candidates,
			Planned:    summary.Planned,
			Upgraded:   summary.Upgraded,
			Failed:     summary.Failed,
			Skipped:    summary.Skipped,
			DryRun:     summary.DryRun,
		},
		Packages: packages,
		Warnings: warningMsgs,
		Errors:   errorMsgs,
	}
}
