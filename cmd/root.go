package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/config"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
	"github.com/budgettech/streamsaver/internal/store"
	"github.com/budgettech/streamsaver/internal/supabase"
)

var (
	flagGuest   bool
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "streamsaver",
	Short: "Subscription budget tracker",
	Long:  "Track your subscriptions, see what every single use costs you, and cut the waste.",
	RunE:  runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagGuest, "guest", false, "Use the local database even when logged in")
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Override the local database directory")
}

// loadConfig loads the config file and applies display preferences.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	cli.Money = cli.MoneyFormatter{
		Symbol:       cfg.General.CurrencySymbol,
		DecimalComma: cfg.General.DecimalComma,
	}
	return cfg, nil
}

// openStore is the shared persistence path used by all commands: the cloud
// store when a session is saved, the local SQLite database otherwise.
func openStore(cfg config.Config) (store.Store, error) {
	if !flagGuest && cfg.Supabase.AccessToken != "" {
		client := supabase.NewClient(config.GetSupabaseURL(cfg), config.GetSupabaseAnonKey(cfg))
		if client == nil {
			return nil, fmt.Errorf("logged in but sync is not configured; run `streamsaver setup` or use --guest")
		}
		session := supabase.Session{
			AccessToken: cfg.Supabase.AccessToken,
			UserID:      cfg.Supabase.UserID,
			Email:       cfg.Supabase.Email,
		}
		return store.NewRemote(client, session), nil
	}
	return store.OpenSQLite(config.DataPath(cfg))
}

// findSubscription resolves a name or ID to a stored subscription.
// Name matching is case-insensitive.
func findSubscription(subs []model.Subscription, key string) (model.Subscription, bool) {
	for _, s := range subs {
		if s.ID == key {
			return s, true
		}
	}
	for _, s := range subs {
		if strings.EqualFold(s.Name, key) {
			return s, true
		}
	}
	return model.Subscription{}, false
}

// awardXP adds an action's XP to the stored profile and reports the result.
func awardXP(st store.Store, action model.Action) (model.Profile, error) {
	profile, err := st.Profile()
	if err != nil {
		return model.Profile{}, err
	}
	profile = engine.AwardXP(profile, action)
	if err := st.SaveProfile(profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// printXP prints the standard XP gain line after an action.
func printXP(action model.Action, profile model.Profile) {
	level, toNext := engine.LevelFromXP(profile.XP)
	fmt.Printf("  +%d XP  %s\n", engine.XPForAction(action),
		cli.RenderPill(fmt.Sprintf("Lv %d • %d XP • %d to next", level, profile.XP, toNext), cli.PillGood))
}
