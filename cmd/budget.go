package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [amount]",
	Short: "Show or set the monthly budget",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	profile, err := st.Profile()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		if !profile.MonthlyBudget.IsPositive() {
			fmt.Println("  No budget set. Set one with `streamsaver budget 50`.")
			return nil
		}
		subs, err := st.Subscriptions()
		if err != nil {
			return err
		}
		total := engine.TotalMonthly(subs)
		fmt.Printf("  Budget:   %s/month\n", cli.FormatMoney(profile.MonthlyBudget))
		fmt.Printf("  Spending: %s/month\n", cli.FormatMoney(total))
		remaining := profile.MonthlyBudget.Sub(total)
		if remaining.IsNegative() {
			fmt.Printf("  %s\n", cli.RenderPill(cli.FormatMoney(remaining.Abs())+" over budget", cli.PillBad))
		} else {
			fmt.Printf("  %s\n", cli.RenderPill(cli.FormatMoney(remaining)+" remaining", cli.PillGood))
		}
		return nil
	}

	amount, err := decimal.NewFromString(args[0])
	if err != nil || amount.IsNegative() {
		return fmt.Errorf("invalid budget %q", args[0])
	}

	profile.MonthlyBudget = amount
	if err := st.SaveProfile(profile); err != nil {
		return err
	}

	profile, err = awardXP(st, model.ActionSetBudget)
	if err != nil {
		return err
	}

	fmt.Printf("  Monthly budget set to %s\n", cli.FormatMoney(amount))
	printXP(model.ActionSetBudget, profile)
	return nil
}
