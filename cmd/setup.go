package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/config"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	// Load existing config or defaults
	cfg, _ := config.Load()

	separator := "comma"
	if !cfg.General.DecimalComma {
		separator = "dot"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Currency symbol").
				Description("Shown in front of every amount.").
				Value(&cfg.General.CurrencySymbol),
			huh.NewSelect[string]().
				Title("Decimal separator").
				Options(
					huh.NewOption("Comma — €12,99", "comma"),
					huh.NewOption("Dot — €12.99", "dot"),
				).
				Value(&separator),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Supabase project URL").
				Description("Leave empty to stay local-only.").
				Value(&cfg.Supabase.URL),
			huh.NewInput().
				Title("Supabase anon key").
				EchoMode(huh.EchoModePassword).
				Value(&cfg.Supabase.AnonKey),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(
					huh.NewOption("Flexoki Dark", "flexoki-dark"),
					huh.NewOption("Catppuccin Mocha", "catppuccin-mocha"),
					huh.NewOption("Tokyo Night", "tokyo-night"),
					huh.NewOption("Terminal (ANSI 16)", "terminal"),
				).
				Value(&cfg.Appearance.Theme),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}
	cfg.General.DecimalComma = separator == "comma"

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Next: `streamsaver add --name Netflix`, then `streamsaver budget 50`.")
	fmt.Println("  Run `streamsaver setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func maskKey(key string) string {
	if len(key) > 16 {
		return key[:8] + "..." + key[len(key)-4:]
	}
	if len(key) > 4 {
		return key[:4] + "..."
	}
	return "****"
}
