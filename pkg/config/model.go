// Package config handles configuration loading and validation for wingetup.
//
// Settings are layered, lowest precedence first: built-in defaults, an
// optional .wingetup.yml file, then environment variables. Command flags
// sit above all three and are applied by the command layer. Everything
// is read once at startup; nothing watches for changes.
package config

import (
	"github.com/ajxudir/wingetup/pkg/policy"
)

// Environment variable names. These are the stable automation surface:
// scheduled tasks configure wingetup through them.
const (
	// EnvDebug enables debug mode; truthy values force a dry run.
	EnvDebug = "WINGET_DEBUG"

	// EnvLevel selects the upgrade level: patch, minor, major, or all.
	EnvLevel = "WINGET_UPGRADE_LEVEL"

	// EnvUnknownVersions tolerates unparseable versions: false, true, or all.
	EnvUnknownVersions = "WINGET_UPGRADE_UNKNOWN_VERSIONS"
)

// Config is the effective configuration for one run.
//
// The exported fields mirror the YAML schema of .wingetup.yml. Call
// Validate before use; it parses the enum-shaped strings into their
// typed forms, reachable through UpgradeLevel and UnknownPolicy.
type Config struct {
	// Level controls how large a version jump may be upgraded:
	// patch, minor, major, or all.
	Level string `yaml:"level"`

	// UnknownVersions tolerates rows whose version did not parse:
	// "false", "true", or "all".
	UnknownVersions string `yaml:"unknown_versions"`

	// DryRun evaluates and reports without invoking any upgrade.
	DryRun bool `yaml:"dry_run"`

	// WingetPath pins an explicit winget executable instead of
	// searching PATH and the WindowsApps install location.
	WingetPath string `yaml:"winget_path"`

	// Allow lists package identifiers upgraded regardless of version
	// rules. A list in the config file replaces this default entirely.
	Allow []string `yaml:"allow"`

	// Block lists package identifiers never upgraded. Beats Allow.
	Block []string `yaml:"block"`

	// PrimeTimeoutSeconds bounds the source-agreement priming call.
	PrimeTimeoutSeconds int `yaml:"prime_timeout_seconds"`

	// ListTimeoutSeconds bounds each listing invocation.
	ListTimeoutSeconds int `yaml:"list_timeout_seconds"`

	// UpgradeTimeoutSeconds bounds each per-package upgrade.
	UpgradeTimeoutSeconds int `yaml:"upgrade_timeout_seconds"`

	// parsed by Validate
	level   policy.Level
	unknown policy.UnknownPolicy

	// set by applyEnv when WINGET_DEBUG is truthy
	debug bool
}

// DebugEnabled reports whether WINGET_DEBUG turned debug mode on.
// Debug mode forces a dry run and enables the diagnostic logger.
func (c *Config) DebugEnabled() bool {
	return c.debug
}

// UpgradeLevel returns the parsed upgrade level.
// Only meaningful after Validate has succeeded.
func (c *Config) UpgradeLevel() policy.Level {
	return c.level
}

// UnknownPolicy returns the parsed unknown-version tolerance.
// Only meaningful after Validate has succeeded.
func (c *Config) UnknownPolicy() policy.UnknownPolicy {
	return c.unknown
}

// NewEvaluator builds a policy evaluator from the validated settings.
//
// Returns:
//   - *policy.Evaluator: Evaluator over this config's level, tolerance,
//     allow list, and block list
func (c *Config) NewEvaluator() *policy.Evaluator {
	return policy.NewEvaluator(c.level, c.unknown, c.Allow, c.Block)
}
