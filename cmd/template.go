package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Content-ready starter packs",
	RunE:  runTemplateList,
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the starter templates",
	RunE:  runTemplateList,
}

var templateShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a template's hook, script, and items",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateShow,
}

var templateImportCmd = &cobra.Command{
	Use:   "import <id>",
	Short: "Import a template's subscriptions",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateImport,
}

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	templateCmd.AddCommand(templateImportCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateList(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(config.Templates))
	for _, t := range config.Templates {
		rows = append(rows, []string{t.ID, t.Title, fmt.Sprintf("%d items", len(t.Items))})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Template", "Size"},
		Rows:    rows,
	}))
	fmt.Println("\n  `streamsaver template show <id>` for the full script.")
	return nil
}

func runTemplateShow(_ *cobra.Command, args []string) error {
	t, ok := config.TemplateByID(args[0])
	if !ok {
		return fmt.Errorf("unknown template %q; see `streamsaver template list`", args[0])
	}

	fmt.Println()
	fmt.Println(cli.RenderCard(t.Title, t.Hook, strings.Join(t.Hashtags, " ")))
	fmt.Println()
	for _, line := range t.Script {
		fmt.Printf("  %s\n", line)
	}
	fmt.Println()
	fmt.Println("  Imports:")
	for _, item := range t.Items {
		fmt.Printf("    - %s (%d uses/month)\n", item.Name, item.MonthlyUses)
	}
	fmt.Println()
	return nil
}

func runTemplateImport(_ *cobra.Command, args []string) error {
	t, ok := config.TemplateByID(args[0])
	if !ok {
		return fmt.Errorf("unknown template %q; see `streamsaver template list`", args[0])
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	subs, err := st.Subscriptions()
	if err != nil {
		return err
	}
	if err := checkFreeLimit(cfg, len(subs), len(t.Items)); err != nil {
		return err
	}

	catalogue := config.LoadCatalogue(cfg)
	for _, item := range t.Items {
		// Skip entries the user already tracks; imports never duplicate.
		if _, exists := findSubscription(subs, item.Name); exists {
			fmt.Printf("  Skipping %s (already tracked)\n", item.Name)
			continue
		}
		preset, ok := catalogue.ByName(item.Name)
		if !ok {
			fmt.Printf("  Skipping %s (not in the catalogue)\n", item.Name)
			continue
		}

		sub := model.Subscription{
			Name:         preset.Name,
			Category:     preset.Category,
			Icon:         preset.Icon,
			BillingMode:  model.BillingMonthly,
			MonthlyPrice: preset.MonthlyPrice,
			YearlyPrice:  preset.YearlyPrice,
			MonthlyUses:  item.MonthlyUses,
		}
		saved, err := st.SaveSubscription(sub)
		if err != nil {
			return err
		}
		fmt.Printf("  Imported %s at %s/month\n", saved.Name, cli.FormatMoney(engine.MonthlyCost(saved)))
	}

	profile, err := awardXP(st, model.ActionImportTemplate)
	if err != nil {
		return err
	}
	printXP(model.ActionImportTemplate, profile)
	return nil
}
