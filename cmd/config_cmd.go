// Package cmd implements the fintrack CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/fintrack/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Database:          %s\n", config.DBPath(cfg))
	fmt.Printf("    Months in trends:  %d\n", cfg.General.Months)
	fmt.Printf("    Recent rows:       %d\n", cfg.General.Recent)
	if cfg.General.Currency != "" {
		fmt.Printf("    Default currency:  %s\n", cfg.General.Currency)
	} else {
		fmt.Printf("    Default currency:  %s (from locale)\n", config.LocaleCurrency())
	}
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Printf("  Environment overrides: %s, %s, %s\n",
		config.EnvDataDir, config.EnvLogLevel, config.EnvCurrency)
	fmt.Println("  Run `fintrack setup` to reconfigure.")
	return nil
}
