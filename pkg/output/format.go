package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/wingetup/pkg/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
)

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive. Valid values are "csv", "json", and
// "xml"; any unrecognized format falls back to FormatTable.
//
// Parameters:
//   - s: Format string to parse (e.g., "csv", "JSON")
//
// Returns:
//   - Format: The parsed format, or FormatTable if unrecognized
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "csv":
		return FormatCSV
	case "json":
		return FormatJSON
	case "xml":
		return FormatXML
	default:
		return FormatTable
	}
}

// IsStructuredFormat returns true when the format is machine-oriented.
//
// Structured formats suppress tables, prompts, colors, and progress;
// scheduled runs scrape them, so only the document may reach stdout.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is CSV, JSON, or XML
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// ValidateStructuredOutputFlags rejects flag combinations that would
// corrupt structured output.
//
// Verbose logging goes to stderr, but a scheduled run that redirects
// both streams to one file would interleave log lines with the JSON,
// CSV, or XML document. Refusing the combination up front beats
// producing a file nothing can parse.
//
// Parameters:
//   - format: The requested output format
//   - verbose: Whether the --verbose flag was set
//
// Returns:
//   - error: ValidationError when verbose is combined with a structured
//     format, nil otherwise
func ValidateStructuredOutputFlags(format Format, verbose bool) error {
	if IsStructuredFormat(format) && verbose {
		return errors.NewValidationError("--verbose", "true",
			fmt.Sprintf("--verbose is not supported with --output %s; structured output must stay machine-readable", format))
	}
	return nil
}

// ValidateUpgradeStructuredFlags rejects interactive prompting under
// structured output.
//
// The confirmation prompt writes to stdout and reads stdin; under a
// structured format there is no terminal conversation to have, so the
// caller must pre-answer with --yes or stay read-only with --dry-run.
//
// Parameters:
//   - format: The requested output format
//   - yes: Whether the --yes flag was set
//   - dryRun: Whether the --dry-run flag was set
//
// Returns:
//   - error: ValidationError when a structured format has neither --yes
//     nor --dry-run, nil otherwise
func ValidateUpgradeStructuredFlags(format Format, yes, dryRun bool) error {
	if IsStructuredFormat(format) && !yes && !dryRun {
		return errors.NewValidationError("--output", string(format),
			fmt.Sprintf("--output %s requires --yes or --dry-run; structured output cannot prompt for confirmation", format))
	}
	return nil
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a formatter for the given format and writer.
//
// Parameters:
//   - format: The desired output format
//   - writer: Destination for formatted output
//
// Returns:
//   - *Formatter: A new formatter instance
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// WriteCSV writes headers and rows as CSV.
//
// csv.Writer buffers all writes and reports errors only after Flush,
// which is why the individual Write errors are discarded here.
//
// Parameters:
//   - headers: Column headers
//   - rows: Data rows, same column count as headers
//
// Returns:
//   - error: The flush error, nil on success
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as compact single-line JSON.
//
// Parameters:
//   - data: Data structure to encode
//
// Returns:
//   - error: The encoding error, nil on success
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	return encoder.Encode(data)
}

// WriteXML writes data as XML with a document header and 2-space indent.
//
// Parameters:
//   - data: Data structure to encode; needs xml tags
//
// Returns:
//   - error: The encoding error, nil on success
func (f *Formatter) WriteXML(data interface{}) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}
