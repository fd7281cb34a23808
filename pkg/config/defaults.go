package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

// Default returns the built-in configuration.
//
// The defaults live in the embedded default.yml so the shipped file and
// the in-memory seed cannot drift apart.
//
// Returns:
//   - *Config: a fresh copy of the built-in configuration
func Default() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err != nil {
		// The embedded file is fixed at build time; reaching this means
		// the binary itself is broken.
		panic("config: embedded default.yml is invalid: " + err.Error())
	}
	return &cfg
}

// DefaultYAML returns the raw built-in configuration file.
//
// Useful for writing a starter .wingetup.yml.
//
// Returns:
//   - string: the default configuration as YAML
func DefaultYAML() string {
	return defaultConfigYAML
}
