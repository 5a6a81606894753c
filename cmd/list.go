package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscriptions with monthly cost and cost per use",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
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
	if len(subs) == 0 {
		fmt.Println("\n  No subscriptions yet. Add one with `streamsaver add`.")
		return nil
	}

	waste, hasWaste := engine.BiggestWaste(subs)

	rows := make([][]string, 0, len(subs))
	for _, s := range subs {
		name := s.Name
		if s.Icon != "" {
			name = s.Icon + " " + name
		}
		if hasWaste && s.ID == waste.ID {
			name += " " + cli.RenderPill("waste", cli.PillBad)
		}

		perUse := "—"
		if cpu, ok := engine.CostPerUse(s); ok {
			perUse = cli.FormatMoney(cpu)
		}

		rows = append(rows, []string{
			name,
			s.Category,
			string(s.BillingMode),
			cli.FormatMoney(engine.MonthlyCost(s)),
			fmt.Sprintf("%d", s.MonthlyUses),
			perUse,
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Subscription", "Category", "Billing", "Monthly", "Uses", "Per use"},
		Rows:    rows,
	}))
	fmt.Printf("\n  Total: %s/month (%s/year)\n\n",
		cli.FormatMoney(engine.TotalMonthly(subs)),
		cli.FormatMoney(engine.TotalMonthly(subs).Mul(twelveDec)))

	return nil
}
