package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
)

var twelveDec = decimal.NewFromInt(12)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the budget dashboard",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
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
	profile, err := st.Profile()
	if err != nil {
		return err
	}
	ch, err := st.Challenge()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("STREAMSAVER"))
	fmt.Println()

	if len(subs) == 0 {
		fmt.Println("  No subscriptions yet.")
		fmt.Println("  Add one with `streamsaver add --name Netflix` or import a template.")
		fmt.Println()
		return nil
	}

	total := engine.TotalMonthly(subs)
	yearly := total.Mul(twelveDec)

	fmt.Println(cli.RenderCard("Monthly spend", cli.FormatMoney(total),
		fmt.Sprintf("%s / year • %d subscriptions", cli.FormatMoney(yearly), len(subs))))

	if profile.MonthlyBudget.IsPositive() {
		remaining := profile.MonthlyBudget.Sub(total)
		detail := cli.FormatMoney(remaining) + " remaining"
		if remaining.IsNegative() {
			detail = cli.FormatMoney(remaining.Abs()) + " OVER budget"
		}
		fmt.Println(cli.RenderCard("Budget", cli.FormatMoney(profile.MonthlyBudget), detail))
	}

	if waste, ok := engine.BiggestWaste(subs); ok {
		detail := "never used"
		if cpu, defined := engine.CostPerUse(waste); defined {
			detail = cli.FormatMoney(cpu) + " per use"
		}
		fmt.Println(cli.RenderCard("Biggest waste", waste.Name, detail))
	}

	level, toNext := engine.LevelFromXP(profile.XP)
	fmt.Println()
	fmt.Printf("  %s", cli.RenderPill(fmt.Sprintf("Lv %d • %d XP • %d to next", level, profile.XP, toNext), cli.PillGood))

	if ch.Active {
		now := time.Now()
		fmt.Printf("  %s", cli.RenderPill(
			fmt.Sprintf("%s • day %d • streak %s", ch.Title, engine.CurrentDay(ch, now), cli.FormatStreak(ch.StreakDays)),
			cli.PillWarn))
		fmt.Println()
		if frac, ok := engine.Progress(ch, now); ok {
			fmt.Println("  " + cli.RenderProgressBar(frac, 30))
		}
	} else {
		fmt.Println()
	}
	fmt.Println()

	return nil
}
