package output

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
)

// DecisionRecord builds one ordered decision record for log output.
//
// Dry-run and debug passes print these records instead of upgrading.
// Scheduled runs scrape the log afterwards, so the key order is fixed:
// id, installed, available, scope, reason. A plain map would shuffle
// keys between runs.
//
// Parameters:
//   - id: Winget package identifier
//   - installed: Installed version string from the listing
//   - available: Available version string from the listing
//   - scope: Classified jump, empty for unknown versions
//   - reason: Policy reason for the decision
//
// Returns:
//   - *orderedmap.OrderedMap: The record, ready for MarshalRecords
func DecisionRecord(id, installed, available, scope, reason string) *orderedmap.OrderedMap {
	record := orderedmap.New()
	record.SetEscapeHTML(false)
	record.Set("id", id)
	record.Set("installed", installed)
	record.Set("available", available)
	record.Set("scope", scope)
	record.Set("reason", reason)
	return record
}

// MarshalRecords renders decision records as indented JSON.
//
// HTML escaping is disabled so version strings with angle brackets
// (winget's "< 1.0" pseudo-versions) stay readable, and the trailing
// newline the encoder adds is trimmed so callers control line endings.
//
// Parameters:
//   - records: Decision records in emission order
//
// Returns:
//   - []byte: Indented JSON array
//   - error: The encoding error, nil on success
func MarshalRecords(records []*orderedmap.OrderedMap) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
