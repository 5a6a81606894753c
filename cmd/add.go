package cmd

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var (
	flagAddName    string
	flagAddPrice   string
	flagAddYearly  string
	flagAddBilling string
	flagAddCat     string
	flagAddIcon    string
	flagAddUses    int
	flagAddRenewal string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a subscription",
	Long: "Add a subscription by preset name (prices prefilled from the catalogue)\n" +
		"or as a custom entry with an explicit --price.",
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&flagAddName, "name", "", "Service name (preset or custom)")
	addCmd.Flags().StringVar(&flagAddPrice, "price", "", "Monthly price, e.g. 9.99")
	addCmd.Flags().StringVar(&flagAddYearly, "yearly-price", "", "Annual price for yearly billing")
	addCmd.Flags().StringVar(&flagAddBilling, "billing", "monthly", "Billing mode: monthly or yearly")
	addCmd.Flags().StringVar(&flagAddCat, "category", "Other", "Category")
	addCmd.Flags().StringVar(&flagAddIcon, "icon", "", "Display icon")
	addCmd.Flags().IntVar(&flagAddUses, "uses", 0, "How many times you use it per month")
	addCmd.Flags().StringVar(&flagAddRenewal, "renewal", "", "Next renewal date (YYYY-MM-DD)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, _ []string) error {
	if flagAddName == "" {
		return errors.New("--name is required")
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
	if err := checkFreeLimit(cfg, len(subs), 1); err != nil {
		return err
	}

	sub := model.Subscription{
		Name:        flagAddName,
		Category:    flagAddCat,
		Icon:        flagAddIcon,
		BillingMode: model.BillingMode(flagAddBilling),
		MonthlyUses: flagAddUses,
		RenewalDate: model.ParseDate(flagAddRenewal),
		Custom:      true,
	}

	// Prefill from the catalogue when the name matches a preset.
	catalogue := config.LoadCatalogue(cfg)
	if preset, ok := catalogue.ByName(flagAddName); ok {
		sub.Category = preset.Category
		sub.Icon = preset.Icon
		sub.MonthlyPrice = preset.MonthlyPrice
		sub.YearlyPrice = preset.YearlyPrice
		sub.Custom = false
	}

	if flagAddPrice != "" {
		price, err := decimal.NewFromString(flagAddPrice)
		if err != nil {
			return fmt.Errorf("invalid --price %q", flagAddPrice)
		}
		sub.MonthlyPrice = price
	}
	if flagAddYearly != "" {
		yearly, err := decimal.NewFromString(flagAddYearly)
		if err != nil {
			return fmt.Errorf("invalid --yearly-price %q", flagAddYearly)
		}
		sub.YearlyPrice = yearly
	}
	if sub.Custom && sub.MonthlyPrice.IsZero() && sub.YearlyPrice.IsZero() {
		return errors.New("unknown service: pass --price (or --yearly-price) for custom entries")
	}

	saved, err := st.SaveSubscription(sub.Normalized())
	if err != nil {
		return err
	}

	profile, err := awardXP(st, model.ActionAddSubscription)
	if err != nil {
		return err
	}

	fmt.Printf("  Added %s at %s/month\n", saved.Name, cli.FormatMoney(engine.MonthlyCost(saved)))
	printXP(model.ActionAddSubscription, profile)
	return nil
}

// checkFreeLimit rejects additions past the free tier unless premium is on.
func checkFreeLimit(cfg config.Config, current, adding int) error {
	if cfg.General.Premium || cfg.General.FreeLimit <= 0 {
		return nil
	}
	if current+adding > cfg.General.FreeLimit {
		return fmt.Errorf("free tier holds %d subscriptions; set premium = true in %s to track more",
			cfg.General.FreeLimit, config.ConfigPath())
	}
	return nil
}
