package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

var challengeCmd = &cobra.Command{
	Use:   "challenge",
	Short: "Savings challenges",
	RunE:  runChallengeStatus,
}

var challengeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available challenges",
	RunE:  runChallengeList,
}

var challengeStartCmd = &cobra.Command{
	Use:   "start <id>",
	Short: "Start a challenge (replaces any running one)",
	Args:  cobra.ExactArgs(1),
	RunE:  runChallengeStart,
}

var challengeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the running challenge",
	RunE:  runChallengeStatus,
}

var challengeEndCmd = &cobra.Command{
	Use:   "end",
	Short: "End the running challenge",
	RunE:  runChallengeEnd,
}

func init() {
	challengeCmd.AddCommand(challengeListCmd)
	challengeCmd.AddCommand(challengeStartCmd)
	challengeCmd.AddCommand(challengeStatusCmd)
	challengeCmd.AddCommand(challengeEndCmd)
	rootCmd.AddCommand(challengeCmd)
}

func runChallengeList(_ *cobra.Command, _ []string) error {
	rows := make([][]string, 0, len(config.ChallengePresets))
	for _, c := range config.ChallengePresets {
		rows = append(rows, []string{c.ID, c.Title, fmt.Sprintf("%d days", c.Days)})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Challenge", "Duration"},
		Rows:    rows,
	}))
	fmt.Println("\n  Start one with `streamsaver challenge start <id>`.")
	return nil
}

func runChallengeStart(_ *cobra.Command, args []string) error {
	preset, ok := config.ChallengeByID(args[0])
	if !ok {
		return fmt.Errorf("unknown challenge %q; see `streamsaver challenge list`", args[0])
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

	ch := engine.StartChallenge(preset.ID, preset.Title, preset.Days, time.Now())
	if err := st.SaveChallenge(ch); err != nil {
		return err
	}

	profile, err := awardXP(st, model.ActionStartChallenge)
	if err != nil {
		return err
	}

	fmt.Printf("  Started: %s (%d days)\n", preset.Title, preset.Days)
	fmt.Printf("  %s\n", preset.Description)
	fmt.Println("  Check in daily with `streamsaver checkin` to build your streak.")
	printXP(model.ActionStartChallenge, profile)
	return nil
}

func runChallengeStatus(_ *cobra.Command, _ []string) error {
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
		fmt.Println("  No challenge running. See `streamsaver challenge list`.")
		return nil
	}

	now := time.Now()
	fmt.Println()
	fmt.Println(cli.RenderCard(ch.Title,
		fmt.Sprintf("Day %d of %d", engine.CurrentDay(ch, now), ch.DurationDays),
		"streak "+cli.FormatStreak(ch.StreakDays)))
	if frac, ok := engine.Progress(ch, now); ok {
		fmt.Println("  " + cli.RenderProgressBar(frac, 30))
	}
	fmt.Println()
	return nil
}

func runChallengeEnd(_ *cobra.Command, _ []string) error {
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
		fmt.Println("  No challenge running.")
		return nil
	}

	if err := st.SaveChallenge(engine.EndChallenge()); err != nil {
		return err
	}
	fmt.Printf("  Ended %q after a %s streak.\n", ch.Title, cli.FormatStreak(ch.StreakDays))
	return nil
}
