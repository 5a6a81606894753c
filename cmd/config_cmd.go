// Package cmd implements the streamsaver CLI commands.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/config"
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
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Currency symbol:   %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Decimal comma:     %v\n", cfg.General.DecimalComma)
	fmt.Printf("    Free limit:        %d\n", cfg.General.FreeLimit)
	fmt.Printf("    Premium:           %v\n", cfg.General.Premium)
	if cfg.General.PresetsURL != "" {
		fmt.Printf("    Presets URL:       %s\n", cfg.General.PresetsURL)
	}
	if cfg.General.PresetsPath != "" {
		fmt.Printf("    Presets file:      %s\n", cfg.General.PresetsPath)
	}
	fmt.Printf("    Database:          %s\n", config.DataPath(cfg))
	fmt.Println()

	fmt.Println("  [Sync]")
	url := config.GetSupabaseURL(cfg)
	if url != "" {
		fmt.Printf("    Project URL: %s\n", url)
		fmt.Printf("    Anon key:    %s\n", maskKey(config.GetSupabaseAnonKey(cfg)))
	} else {
		fmt.Println("    Not configured (local-only)")
	}
	if cfg.Supabase.Email != "" {
		fmt.Printf("    Signed in:   %s\n", cfg.Supabase.Email)
	} else {
		fmt.Println("    Signed in:   no")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `streamsaver setup` to reconfigure.")
	return nil
}
