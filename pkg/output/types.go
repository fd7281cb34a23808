package output

import "encoding/xml"

// Decision labels shown in the outdated table's DECISION column and in
// structured exports. The policy reason string travels alongside them.
const (
	DecisionAccept = "accept"
	DecisionSkip   = "skip"
)

// OutdatedResult represents the output data for the outdated command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics and the policy in effect
//   - Packages: One entry per upgrade candidate with its verdict
//   - Warnings: Warning messages from the listing pass (omitted if empty)
type OutdatedResult struct {
	XMLName  xml.Name          `json:"-" xml:"outdatedResult"`
	Summary  OutdatedSummary   `json:"summary" xml:"summary"`
	Packages []OutdatedPackage `json:"packages" xml:"packages>package"`
	Warnings []string          `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// OutdatedSummary holds summary statistics for outdated results.
//
// Fields:
//   - TotalPackages: Number of upgrade candidates winget reported
//   - Accepted: Candidates the policy would upgrade
//   - Skipped: Candidates the policy holds back
//   - Level: The level gate in effect (patch, minor, major, all)
//   - UnknownPolicy: The unknown-version tolerance in effect
type OutdatedSummary struct {
	TotalPackages int    `json:"total_packages" xml:"totalPackages"`
	Accepted      int    `json:"accepted" xml:"accepted"`
	Skipped       int    `json:"skipped" xml:"skipped"`
	Level         string `json:"level" xml:"level"`
	UnknownPolicy string `json:"unknown_policy" xml:"unknownPolicy"`
}

// OutdatedPackage represents one candidate in the outdated output.
//
// Fields:
//   - ID: Winget package identifier
//   - Name: Human-readable display name
//   - Installed: Installed version string from the listing
//   - Available: Available version string from the listing
//   - Scope: Classified jump (patch, minor, major); empty for unknown versions
//   - Decision: "accept" or "skip"
//   - Reason: Policy reason for the decision
//   - Source: Winget source name (omitted if empty)
type OutdatedPackage struct {
	ID        string `json:"id" xml:"id"`
	Name      string `json:"name" xml:"name"`
	Installed string `json:"installed" xml:"installed"`
	Available string `json:"available" xml:"available"`
	Scope     string `json:"scope,omitempty" xml:"scope,omitempty"`
	Decision  string `json:"decision" xml:"decision"`
	Reason    string `json:"reason" xml:"reason"`
	Source    string `json:"source,omitempty" xml:"source,omitempty"`
}

// ListResult represents the output data for the list command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate statistics about the inventory
//   - Packages: One entry per installed package
//   - Warnings: Warning messages from the listing pass (omitted if empty)
type ListResult struct {
	XMLName  xml.Name      `json:"-" xml:"listResult"`
	Summary  ListSummary   `json:"summary" xml:"summary"`
	Packages []ListPackage `json:"packages" xml:"packages>package"`
	Warnings []string      `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
}

// ListSummary holds summary statistics for list results.
//
// Fields:
//   - TotalPackages: Total number of installed packages listed
type ListSummary struct {
	TotalPackages int `json:"total_packages" xml:"totalPackages"`
}

// ListPackage represents one installed package in the list output.
//
// Fields:
//   - Name: Human-readable display name
//   - ID: Winget package identifier
//   - Version: Installed version string
//   - Available: Upgrade version winget knows about (omitted if none)
//   - Source: Winget source name (omitted if empty)
type ListPackage struct {
	Name      string `json:"name" xml:"name"`
	ID        string `json:"id" xml:"id"`
	Version   string `json:"version" xml:"version"`
	Available string `json:"available,omitempty" xml:"available,omitempty"`
	Source    string `json:"source,omitempty" xml:"source,omitempty"`
}

// UpgradeResult represents the output data for the upgrade command.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Aggregate pass statistics
//   - Packages: One entry per candidate with its final status
//   - Warnings: Warning messages from the pass (omitted if empty)
//   - Errors: Error messages from failed upgrades (omitted if empty)
type UpgradeResult struct {
	XMLName  xml.Name         `json:"-" xml:"upgradeResult"`
	Summary  UpgradeSummary   `json:"summary" xml:"summary"`
	Packages []UpgradePackage `json:"packages" xml:"packages>package"`
	Warnings []string         `json:"warnings,omitempty" xml:"warnings>warning,omitempty"`
	Errors   []string         `json:"errors,omitempty" xml:"errors>error,omitempty"`
}

// UpgradeSummary holds summary statistics for upgrade results.
//
// Fields:
//   - Candidates: Number of upgrade candidates winget reported
//   - Planned: Candidates the policy accepted
//   - Upgraded: Successfully upgraded packages (0 in dry-run)
//   - Failed: Packages whose upgrade failed
//   - Skipped: Candidates the policy rejected
//   - DryRun: Whether the pass left the system untouched
type UpgradeSummary struct {
	Candidates int  `json:"candidates" xml:"candidates"`
	Planned    int  `json:"planned" xml:"planned"`
	Upgraded   int  `json:"upgraded" xml:"upgraded"`
	Failed     int  `json:"failed" xml:"failed"`
	Skipped    int  `json:"skipped" xml:"skipped"`
	DryRun     bool `json:"dry_run" xml:"dryRun"`
}

// UpgradePackage represents one candidate in the upgrade output.
//
// Fields:
//   - ID: Winget package identifier
//   - Name: Human-readable display name
//   - Installed: Installed version string before the pass
//   - Available: Version the upgrade targets
//   - Scope: Classified jump; empty for unknown versions
//   - Status: Final row status (planned, upgraded, failed, skipped)
//   - Reason: Policy reason for acceptance or skip
//   - Error: Failure detail for failed upgrades (omitted if empty)
type UpgradePackage struct {
	ID        string `json:"id" xml:"id"`
	Name      string `json:"name" xml:"name"`
	Installed string `json:"installed" xml:"installed"`
	Available string `json:"available" xml:"available"`
	Scope     string `json:"scope,omitempty" xml:"scope,omitempty"`
	Status    string `json:"status" xml:"status"`
	Reason    string `json:"reason" xml:"reason"`
	Error     string `json:"error,omitempty" xml:"error,omitempty"`
}
