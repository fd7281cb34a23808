package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/wingetup/pkg/output"
	"github.com/ajxudir/wingetup/pkg/warnings"
	"github.com/ajxudir/wingetup/pkg/winget"
)

var (
	listConfigFlag string
	listWingetFlag string
	listOutputFlag string
)

// writeListResultFunc allows mocking structured output in tests
var writeListResultFunc = output.WriteListResult

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List installed packages",
	Long: `Read the full installed inventory from winget. No policy is applied;
the command only shows what is on the machine.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listConfigFlag, "config", "c", "", "Config file path")
	listCmd.Flags().StringVar(&listWingetFlag, "winget", "", "Explicit winget executable path")
	listCmd.Flags().StringVarP(&listOutputFlag, "output", "o", "", "Output format: json, csv, xml (default: table)")
}

// runList executes the list command.
//
// Like the outdated command this is read-only: a listing failure is a
// warning plus an empty inventory, and the exit code stays 0.
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Unused
//
// Returns:
//   - error: Config error, or the missing-winget error
func runList(cmd *cobra.Command, args []string) error {
	// Validate flag compatibility before proceeding
	outputFormat := output.ParseFormat(listOutputFlag)
	if err := output.ValidateStructuredOutputFlags(outputFormat, verboseFlag); err != nil {
		return err
	}

	cfg, err := loadRunConfig(listConfigFlag, "", "", listWingetFlag)
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

	pkgs, err := client.ListInstalled(context.Background())
	if err != nil {
		warnings.Warnf("Warning: %v\n", err)
		pkgs = nil
	}

	if useStructured {
		return writeListResultFunc(os.Stdout, outputFormat, buildListResult(pkgs, collector.Messages()))
	}

	printListTable(pkgs)
	return nil
}

// printListTable renders the installed inventory as a terminal table.
//
// The SOURCE column is hidden when no row carries a source, which is
// what winget prints for packages installed outside any source.
//
// Parameters:
//   - pkgs: Installed packages in listing order
func printListTable(pkgs []winget.Package) {
	if len(pkgs) == 0 {
		fmt.Println("No installed packages found.")
		return
	}

	table := output.NewTable().
		AddColumn("NAME").
		AddColumn("ID").
		AddColumn("VERSION").
		AddColumn("SOURCE")

	sources := make([]string, 0, len(pkgs))
	for _, pkg := range pkgs {
		table.UpdateWidths(pkg.Name, pkg.ID, pkg.Installed, pkg.Source)
		sources = append(sources, pkg.Source)
	}
	table.SetColumnVisibleByHeader("SOURCE", output.ShouldShowSourceColumn(sources))

	fmt.Println(table.HeaderRow())
	fmt.Println(table.SeparatorRow())
	for _, pkg := range pkgs {
		fmt.Println(table.FormatRow(pkg.Name, pkg.ID, pkg.Installed, pkg.Source))
	}

	fmt.Printf("\nTotal packages: %d\n", len(pkgs))
}

// buildListResult converts the installed inventory into the structured
// output document.
//
// Parameters:
//   - pkgs: Installed packages in listing order
//   - warningMsgs: Warnings collected during the listing pass
//
// Returns:
//   - *output.ListResult: Document for WriteListResult
func buildListResult(pkgs []winget.Package, warningMsgs []string) *output.ListResult {
	packages := make([]output.ListPackage, 0, len(pkgs))
	for _, pkg := range pkgs {
		packages = append(packages, output.ListPackage{
			Name:      pkg.Name,
			ID:        pkg.ID,
			Version:   pkg.Installed,
			Available: pkg.Available,
			Source:    pkg.Source,
		})
	}

	return &output.ListResult{
		Summary:  output.ListSummary{TotalPackages: len(packages)},
		Packages: packages,
		Warnings: warningMsgs,
	}
}
