package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"cancel", "rm"},
	Short:   "Cancel a subscription",
	Long: "Cancel a subscription. Cutting the current biggest waste pays a\n" +
		"bonus XP award over a plain delete.",
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(_ *cobra.Command, args []string) error {
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
	sub, ok := findSubscription(subs, args[0])
	if !ok {
		return fmt.Errorf("no subscription named %q", args[0])
	}

	// The waste check has to happen before the delete: afterwards some other
	// entry is the biggest waste by definition.
	action := model.ActionDeleteSubscription
	if waste, hasWaste := engine.BiggestWaste(subs); hasWaste && waste.ID == sub.ID {
		action = model.ActionCancelHighWaste
	}

	if err := st.DeleteSubscription(sub.ID); err != nil {
		return err
	}

	profile, err := awardXP(st, action)
	if err != nil {
		return err
	}

	monthly := engine.MonthlyCost(sub)
	if action == model.ActionCancelHighWaste {
		fmt.Printf("  Cancelled %s — that was your biggest waste. %s/month saved.\n",
			sub.Name, cli.FormatMoney(monthly))
	} else {
		fmt.Printf("  Cancelled %s. %s/month saved.\n", sub.Name, cli.FormatMoney(monthly))
	}
	printXP(action, profile)
	return nil
}
