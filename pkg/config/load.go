package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ajxudir/wingetup/pkg/verbose"
)

// ConfigFileName is the per-directory and per-user config file name.
const ConfigFileName = ".wingetup.yml"

// MaxConfigFileSize caps config reads. A policy file is a few dozen
// lines; anything near this limit is not a config file.
const MaxConfigFileSize = 1 << 20

// Load assembles the effective configuration.
//
// Layering, lowest precedence first:
//  1. Built-in defaults
//  2. Optional YAML file: configPath when given (must exist), otherwise
//     the first .wingetup.yml found in workDir then the home directory
//  3. Environment variables (WINGET_DEBUG, WINGET_UPGRADE_LEVEL,
//     WINGET_UPGRADE_UNKNOWN_VERSIONS)
//
// The result is validated before it is returned.
//
// Parameters:
//   - configPath: explicit config file path, or empty for discovery
//   - workDir: directory searched for .wingetup.yml; empty means cwd
//
// Returns:
//   - *Config: the validated effective configuration
//   - error: load, parse, env, or validation failure
func Load(configPath, workDir string) (*Config, error) {
	cfg := Default()

	path, required, err := resolveConfigPath(configPath, workDir)
	if err != nil {
		return nil, err
	}

	if path != "" {
		if err := loadConfigFile(path, cfg); err != nil {
			if required || !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to load config: %w", err)
			}
		} else {
			verbose.ConfigLoaded(path)
		}
	} else {
		verbose.Info("Using built-in default configuration")
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath picks the config file to read.
//
// Returns the path (empty when no file is to be read), whether the file
// is required to exist, and an error for an explicit path that is
// missing.
func resolveConfigPath(configPath, workDir string) (string, bool, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", true, fmt.Errorf("failed to load config: %w", err)
		}
		return configPath, true, nil
	}

	if workDir == "" {
		workDir = "."
	}
	local := filepath.Join(workDir, ConfigFileName)
	if _, err := os.Stat(local); err == nil {
		return local, false, nil
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		user := filepath.Join(home, ConfigFileName)
		if _, err := os.Stat(user); err == nil {
			return user, false, nil
		}
	}

	return "", false, nil
}

// loadConfigFile reads one YAML config file over the given config.
//
// Decoding is strict: unknown keys are rejected so typos surface
// instead of silently keeping a default. Keys present in the file
// replace the corresponding field wholesale, including the allow and
// block lists.
func loadConfigFile(path string, cfg *Config) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.Size() > MaxConfigFileSize {
		return fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), MaxConfigFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: nothing to override
			return nil
		}
		return fmt.Errorf("%s: invalid YAML: %w", path, err)
	}

	return nil
}

// applyEnv overlays environment variables onto the config.
//
// A set-but-invalid variable is a configuration error; unset variables
// leave the current value alone.
func (c *Config) applyEnv(getenv func(string) string) error {
	if raw := getenv(EnvDebug); raw != "" {
		debug, err := parseBool(EnvDebug, raw)
		if err != nil {
			return err
		}
		if debug {
			c.DryRun = true
			c.debug = true
		}
	}

	if raw := getenv(EnvLevel); raw != "" {
		c.Level = raw
	}

	if raw := getenv(EnvUnknownVersions); raw != "" {
		c.UnknownVersions = raw
	}

	return nil
}
