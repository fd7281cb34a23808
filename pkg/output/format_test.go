package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/wingetup/pkg/errors"
)

// TestParseFormat tests the behavior of ParseFormat.
//
// It verifies:
//   - Parses known formats case-insensitively
//   - Unknown and empty values fall back to table
func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected Format
	}{
		{"csv", FormatCSV},
		{"CSV", FormatCSV},
		{"json", FormatJSON},
		{"Json", FormatJSON},
		{"xml", FormatXML},
		{"XML", FormatXML},
		{"table", FormatTable},
		{"", FormatTable},
		{"yaml", FormatTable},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseFormat(tt.input))
		})
	}
}

// TestIsStructuredFormat tests the behavior of IsStructuredFormat.
//
// It verifies:
//   - CSV, JSON, and XML are structured
//   - Table is not structured
func TestIsStructuredFormat(t *testing.T) {
	assert.True(t, IsStructuredFormat(FormatCSV))
	assert.True(t, IsStructuredFormat(FormatJSON))
	assert.True(t, IsStructuredFormat(FormatXML))
	assert.False(t, IsStructuredFormat(FormatTable))
}

// TestValidateStructuredOutputFlags tests the behavior of ValidateStructuredOutputFlags.
//
// It verifies:
//   - Table output accepts the verbose flag
//   - Structured formats reject the verbose flag
//   - The error maps to the configuration-error exit code
func TestValidateStructuredOutputFlags(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		verbose   bool
		expectErr bool
	}{
		{"table format, verbose=false", FormatTable, false, false},
		{"table format, verbose=true", FormatTable, true, false},
		{"json format, verbose=false", FormatJSON, false, false},
		{"json format, verbose=true", FormatJSON, true, true},
		{"csv format, verbose=false", FormatCSV, false, false},
		{"csv format, verbose=true", FormatCSV, true, true},
		{"xml format, verbose=false", FormatXML, false, false},
		{"xml format, verbose=true", FormatXML, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStructuredOutputFlags(tt.format, tt.verbose)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "--verbose is not supported")
				assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestValidateUpgradeStructuredFlags tests the behavior of ValidateUpgradeStructuredFlags.
//
// It verifies:
//   - Table output never needs --yes or --dry-run
//   - Structured formats require --yes or --dry-run
//   - Either flag alone satisfies the requirement
func TestValidateUpgradeStructuredFlags(t *testing.T) {
	tests := []struct {
		name      string
		format    Format
		yes       bool
		dryRun    bool
		expectErr bool
	}{
		{"table format, yes=false, dryRun=false", FormatTable, false, false, false},
		{"table format, yes=true, dryRun=false", FormatTable, true, false, false},
		{"json format, yes=false, dryRun=false", FormatJSON, false, false, true},
		{"json format, yes=true, dryRun=false", FormatJSON, true, false, false},
		{"json format, yes=false, dryRun=true", FormatJSON, false, true, false},
		{"json format, yes=true, dryRun=true", FormatJSON, true, true, false},
		{"csv format, yes=false, dryRun=false", FormatCSV, false, false, true},
		{"csv format, yes=true, dryRun=false", FormatCSV, true, false, false},
		{"xml format, yes=false, dryRun=false", FormatXML, false, false, true},
		{"xml format, yes=false, dryRun=true", FormatXML, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpgradeStructuredFlags(tt.format, tt.yes, tt.dryRun)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "requires --yes or --dry-run")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// TestFormatterWriteCSV tests the behavior of WriteCSV.
//
// It verifies:
//   - Writes a header line followed by data rows
//   - Quotes fields containing commas
func TestFormatterWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatCSV, &buf)

	err := f.WriteCSV(
		[]string{"ID", "VERSION"},
		[][]string{
			{"Mozilla.Firefox", "128.0"},
			{"Contoso.App", "1,5"},
		},
	)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,VERSION", lines[0])
	assert.Equal(t, "Mozilla.Firefox,128.0", lines[1])
	assert.Equal(t, `Contoso.App,"1,5"`, lines[2])
}

// TestFormatterWriteJSON tests the behavior of WriteJSON.
//
// It verifies:
//   - Writes compact JSON that unmarshals back
//   - Output is a single line
func TestFormatterWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)

	data := map[string]interface{}{"id": "Contoso.App", "version": "1.0"}
	err := f.WriteJSON(data)
	require.NoError(t, err)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))
	assert.Equal(t, "Contoso.App", parsed["id"])

	// Compact: a single line plus the trailing newline.
	assert.NotContains(t, strings.TrimRight(buf.String(), "\n"), "\n")
}

// TestFormatterWriteXML tests the behavior of WriteXML.
//
// It verifies:
//   - Emits the XML document header
//   - Indents nested elements with two spaces
//   - Ends with a newline
func TestFormatterWriteXML(t *testing.T) {
	type pkg struct {
		XMLName xml.Name `xml:"package"`
		ID      string   `xml:"id"`
	}

	var buf bytes.Buffer
	f := NewFormatter(FormatXML, &buf)

	err := f.WriteXML(pkg{ID: "Contoso.App"})
	require.NoError(t, err)

	output := buf.String()
	assert.True(t, strings.HasPrefix(output, xml.Header))
	assert.Contains(t, output, "  <id>Contoso.App</id>")
	assert.True(t, strings.HasSuffix(output, "\n"))
}
