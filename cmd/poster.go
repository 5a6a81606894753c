package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/model"
	"github.com/budgettech/streamsaver/internal/poster"
)

var flagPosterOut string

var posterCmd = &cobra.Command{
	Use:   "poster",
	Short: "Export the shareable summary poster (1080x1920 PNG)",
	RunE:  runPoster,
}

func init() {
	posterCmd.Flags().StringVarP(&flagPosterOut, "output", "o", "streamsaver-poster.png", "Output file")
	rootCmd.AddCommand(posterCmd)
}

func runPoster(_ *cobra.Command, _ []string) error {
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

	summary := poster.BuildSummary(subs, profile, ch, time.Now())

	f, err := os.Create(flagPosterOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagPosterOut, err)
	}
	defer f.Close()

	if err := poster.Render(f, summary); err != nil {
		return err
	}

	profile, err = awardXP(st, model.ActionExport)
	if err != nil {
		return err
	}

	fmt.Printf("  Poster written to %s (%dx%d)\n", flagPosterOut, poster.Width, poster.Height)
	printXP(model.ActionExport, profile)
	return nil
}
