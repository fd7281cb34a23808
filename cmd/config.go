package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ajxudir/wingetup/pkg/config"
	"github.com/ajxudir/wingetup/pkg/errors"
	"github.com/ajxudir/wingetup/pkg/verbose"
)

var (
	configShowDefaultsFlag  bool
	configShowEffectiveFlag bool
	configInitFlag          bool
	configPathFlag          string
)

var (
	loadConfigFunc = config.Load
	writeFileFunc  = os.WriteFile
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create configuration",
	Long:  `Show the default or effective configuration, or create a starter config file.`,
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShowDefaultsFlag, "show-defaults", false, "Show the built-in default configuration")
	configCmd.Flags().BoolVar(&configShowEffectiveFlag, "show-effective", false, "Show the effective configuration after file and environment overrides")
	configCmd.Flags().BoolVar(&configInitFlag, "init", false, "Create a "+config.ConfigFileName+" template in the current directory")
	configCmd.Flags().StringVarP(&configPathFlag, "config", "c", "", "Config file path")
}

// loadRunConfig loads the effective configuration and applies command
// flag overrides on top.
//
// Flags sit above defaults, file, and environment, so non-empty values
// replace whatever the lower layers produced; the merged result is
// re-validated. When WINGET_DEBUG turned debug mode on, the diagnostic
// logger is enabled here so every later step traces.
//
// Parameters:
//   - configPath: Explicit config file from --config, or empty for discovery
//   - level: --level override, or empty to keep the configured value
//   - unknown: --unknown override, or empty to keep the configured value
//   - wingetPath: --winget override, or empty to keep the configured value
//
// Returns:
//   - *config.Config: Validated effective configuration
//   - error: Typed error mapped to the configuration-error exit code
func loadRunConfig(configPath, level, unknown, wingetPath string) (*config.Config, error) {
	cfg, err := loadConfigFunc(configPath, "")
	if err != nil {
		if _, ok := errors.IsValidationError(err); ok {
			return nil, err
		}
		return nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	if level != "" {
		cfg.Level = level
	}
	if unknown != "" {
		cfg.UnknownVersions = unknown
	}
	if wingetPath != "" {
		cfg.WingetPath = wingetPath
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.DebugEnabled() {
		verbose.Enable()
		verbose.Info("WINGET_DEBUG set: diagnostics on, upgrades forced to dry run")
	}

	return cfg, nil
}

// runConfig executes the config command with the specified flags.
//
// Behavior depends on flags:
//   - --init: Creates a .wingetup.yml template file
//   - --show-defaults: Displays the built-in default configuration
//   - --show-effective: Displays the effective merged configuration
//
// Parameters:
//   - cmd: Cobra command instance
//   - args: Command line arguments
//
// Returns:
//   - error: Returns error on load or file operation failure
func runConfig(cmd *cobra.Command, args []string) error {
	if configInitFlag {
		return createConfigTemplate()
	}

	if configShowDefaultsFlag {
		fmt.Println("Default configuration:")
		fmt.Println()
		fmt.Println(config.DefaultYAML())
		return nil
	}

	if configShowEffectiveFlag {
		return showEffectiveConfig()
	}

	return cmd.Help()
}

// showEffectiveConfig prints the configuration a run would actually use,
// after the file and environment layers are applied.
//
// Returns:
//   - error: Returns error on config load failure
func showEffectiveConfig() error {
	cfg, err := loadRunConfig(configPathFlag, "", "", "")
	if err != nil {
		return err
	}

	fmt.Println("Effective configuration:")
	fmt.Println()
	fmt.Printf("Level:            %s\n", cfg.UpgradeLevel())
	fmt.Printf("Unknown versions: %s\n", cfg.UnknownPolicy())
	fmt.Printf("Dry run:          %v\n", cfg.DryRun)
	if cfg.WingetPath != "" {
		fmt.Printf("Winget path:      %s\n", cfg.WingetPath)
	}
	fmt.Printf("Timeouts:         prime %ds, list %ds, upgrade %ds\n",
		cfg.PrimeTimeoutSeconds, cfg.ListTimeoutSeconds, cfg.UpgradeTimeoutSeconds)

	if len(cfg.Allow) > 0 {
		fmt.Println()
		fmt.Println("Allow:")
		for _, id := range cfg.Allow {
			fmt.Printf("  - %s\n", id)
		}
	}

	if len(cfg.Block) > 0 {
		fmt.Println()
		fmt.Println("Block:")
		for _, id := range cfg.Block {
			fmt.Printf("  - %s\n", id)
		}
	}

	return nil
}

// createConfigTemplate creates a new .wingetup.yml template file.
//
// The template is created in the current directory. Fails if a config
// file already exists at that location.
//
// Returns:
//   - error: Returns error if file exists or cannot be created
func createConfigTemplate() error {
	configPath := config.ConfigFileName
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s", configPath)
	}

	// 0600: the file can pin an executable path, keep it owner-only
	if err := writeFileFunc(configPath, []byte(config.DefaultYAML()), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configPath)
	return nil
}
