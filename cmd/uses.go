package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
)

var usesCmd = &cobra.Command{
	Use:   "uses <name> <count>",
	Short: "Record how often you use a subscription per month",
	Args:  cobra.ExactArgs(2),
	RunE:  runUses,
}

func init() {
	rootCmd.AddCommand(usesCmd)
}

func runUses(_ *cobra.Command, args []string) error {
	count, err := strconv.Atoi(args[1])
	if err != nil || count < 0 {
		return fmt.Errorf("invalid use count %q", args[1])
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
	sub, ok := findSubscription(subs, args[0])
	if !ok {
		return fmt.Errorf("no subscription named %q", args[0])
	}

	sub.MonthlyUses = count
	saved, err := st.SaveSubscription(sub)
	if err != nil {
		return err
	}

	if cpu, ok := engine.CostPerUse(saved); ok {
		fmt.Printf("  %s: %d uses/month, %s per use\n", saved.Name, saved.MonthlyUses, cli.FormatMoney(cpu))
	} else {
		fmt.Printf("  %s: 0 uses/month — cost per use is undefined\n", saved.Name)
	}
	return nil
}
