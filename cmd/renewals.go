package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var flagRenewalsWithin int

var renewalsCmd = &cobra.Command{
	Use:   "renewals",
	Short: "Show upcoming renewals",
	RunE:  runRenewals,
}

func init() {
	renewalsCmd.Flags().IntVar(&flagRenewalsWithin, "within", 7, "Window in days")
	rootCmd.AddCommand(renewalsCmd)
}

func runRenewals(_ *cobra.Command, _ []string) error {
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

	today := time.Now()
	due := engine.UpcomingRenewals(subs, today, flagRenewalsWithin)
	if len(due) == 0 {
		fmt.Printf("  No renewals in the next %d days.\n", flagRenewalsWithin)
		return nil
	}

	rows := make([][]string, 0, len(due))
	for _, s := range due {
		in := model.DaysBetween(today, s.RenewalDate)
		when := fmt.Sprintf("in %d days", in)
		switch in {
		case 0:
			when = "today"
		case 1:
			when = "tomorrow"
		}
		rows = append(rows, []string{
			s.Name,
			model.FormatDate(s.RenewalDate),
			when,
			cli.FormatMoney(engine.MonthlyCost(s)),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Subscription", "Renews", "When", "Monthly"},
		Rows:    rows,
	}))
	fmt.Println()
	return nil
}
