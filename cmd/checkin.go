package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Daily challenge check-in",
	RunE:  runCheckin,
}

func init() {
	rootCmd.AddCommand(checkinCmd)
}

func runCheckin(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	ch, err := st.Challenge()
	if err != nil {
		return err
	}
	if !ch.Active {
		fmt.Println("  No challenge running. Start one with `streamsaver challenge start <id>`.")
		return nil
	}

	ch, result := engine.CheckIn(ch, time.Now())
	if result == engine.CheckInAlreadyDone {
		fmt.Printf("  Already checked in today. Streak: %s.\n", cli.FormatStreak(ch.StreakDays))
		return nil
	}

	if err := st.SaveChallenge(ch); err != nil {
		return err
	}
	profile, err := awardXP(st, model.ActionCheckin)
	if err != nil {
		return err
	}

	switch result {
	case engine.CheckInContinued:
		fmt.Printf("  Checked in! Streak extended to %s.\n", cli.FormatStreak(ch.StreakDays))
	case engine.CheckInReset:
		if ch.StreakDays == 1 && ch.LastCheckin.Equal(model.Day(ch.StartedOn)) {
			fmt.Println("  First check-in done. Come back tomorrow to build the streak.")
		} else {
			fmt.Println("  Streak restarted at day 1 — a missed day breaks it.")
		}
	}
	printXP(model.ActionCheckin, profile)
	return nil
}
