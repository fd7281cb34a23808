package output

import (
	"fmt"
	"io"
)

// WriteOutdatedResult writes outdated results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Outdated result data to write
//
// Returns:
//   - error: When format is unsupported or the write fails; nil on success
func WriteOutdatedResult(w io.Writer, format Format, result *OutdatedResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeOutdatedCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeOutdatedCSV writes outdated results in CSV format.
func writeOutdatedCSV(f *Formatter, result *OutdatedResult) error {
	headers := []string{"ID", "NAME", "INSTALLED", "AVAILABLE", "SCOPE", "DECISION", "REASON", "SOURCE"}
	rows := make([][]string, 0, len(result.Packages))
	for _, pkg := range result.Packages {
		rows = append(rows, []string{
			pkg.ID,
			pkg.Name,
			pkg.Installed,
			pkg.Available,
			pkg.Scope,
			pkg.Decision,
			pkg.Reason,
			pkg.Source,
		})
	}
	return f.WriteCSV(headers, rows)
}

// WriteListResult writes list results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: List result data to write
//
// Returns:
//   - error: When format is unsupported or the write fails; nil on success
func WriteListResult(w io.Writer, format Format, result *ListResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeListCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeListCSV writes list results in CSV format.
func writeListCSV(f *Formatter, result *ListResult) error {
	headers := []string{"NAME", "ID", "VERSION", "AVAILABLE", "SOURCE"}
	rows := make([][]string, 0, len(result.Packages))
	for _, pkg := range result.Packages {
		rows = append(rows, []string{
			pkg.Name,
			pkg.ID,
			pkg.Version,
			pkg.Available,
			pkg.Source,
		})
	}
	return f.WriteCSV(headers, rows)
}

// WriteUpgradeResult writes upgrade results in the specified format.
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format (FormatJSON, FormatXML, or FormatCSV)
//   - result: Upgrade result data to write
//
// Returns:
//   - error: When format is unsupported or the write fails; nil on success
func WriteUpgradeResult(w io.Writer, format Format, result *UpgradeResult) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatJSON:
		return formatter.WriteJSON(result)
	case FormatXML:
		return formatter.WriteXML(result)
	case FormatCSV:
		return writeUpgradeCSV(formatter, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeUpgradeCSV writes upgrade results in CSV format.
func writeUpgradeCSV(f *Formatter, result *UpgradeResult) error {
	headers := []string{"ID", "NAME", "INSTALLED", "AVAILABLE", "SCOPE", "STATUS", "REASON", "ERROR"}
	rows := make([][]string, 0, len(result.Packages))
	for _, pkg := range result.Packages {
		rows = append(rows, []string{
			pkg.ID,
			pkg.Name,
			pkg.Installed,
			pkg.Available,
			pkg.Scope,
			pkg.Status,
			pkg.Reason,
			pkg.Error,
		})
	}
	return f.WriteCSV(headers, rows)
}
