package config

import (
	"fmt"
	"strings"

	"github.com/ajxudir/wingetup/pkg/errors"
	"github.com/ajxudir/wingetup/pkg/policy"
)

// Validate checks the assembled configuration and parses the
// enum-shaped fields into their typed forms.
//
// Validation failures map to exit code 3; a run never starts with a
// half-understood policy.
//
// Returns:
//   - error: ValidationError describing the first offending setting
func (c *Config) Validate() error {
	level, err := policy.ParseLevel(c.Level)
	if err != nil {
		return err
	}
	c.level = level

	unknown, err := policy.ParseUnknownPolicy(c.UnknownVersions)
	if err != nil {
		return err
	}
	c.unknown = unknown

	for name, value := range map[string]int{
		"prime_timeout_seconds":   c.PrimeTimeoutSeconds,
		"list_timeout_seconds":    c.ListTimeoutSeconds,
		"upgrade_timeout_seconds": c.UpgradeTimeoutSeconds,
	} {
		if value <= 0 {
			return errors.NewValidationError(name, fmt.Sprintf("%d", value), "timeout must be positive")
		}
	}

	if err := validateIDList("allow", c.Allow); err != nil {
		return err
	}
	if err := validateIDList("block", c.Block); err != nil {
		return err
	}

	return nil
}

// validateIDList checks that every entry is a well-formed package
// identifier. Overlap between allow and block is legal: the block list
// wins at evaluation time, so it is not flagged here.
func validateIDList(field string, ids []string) error {
	for _, id := range ids {
		if strings.TrimSpace(id) != id || !policy.ValidPackageID(id) {
			return errors.NewValidationError(field, id, "not a valid package identifier")
		}
	}
	return nil
}

// parseBool parses a boolean-shaped environment value.
//
// Accepts the usual truthy and falsy spellings case-insensitively.
// Anything else is a configuration error rather than a silent default.
func parseBool(field, raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "t", "true", "y", "yes", "on":
		return true, nil
	case "0", "f", "false", "n", "no", "off", "":
		return false, nil
	}
	return false, &errors.ValidationError{
		Field:       field,
		Value:       raw,
		Message:     "not a boolean",
		ValidValues: []string{"true", "false"},
	}
}
