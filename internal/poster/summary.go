// Package poster renders the shareable 9:16 summary card. The numbers come
// from the engine; this package only arranges and draws them.
package poster

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/cli"
	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
)

// Summary is the assembled poster payload.
type Summary struct {
	Title    string
	Subtitle string

	MonthlyTotal decimal.Decimal
	Budget       decimal.Decimal
	// HasRemaining is false when no budget is set, in which case the
	// remaining line is omitted entirely.
	Remaining    decimal.Decimal
	HasRemaining bool

	// BestPerUse and WorstPerUse are display strings like
	// "Spotify • €0,34"; empty when no subscription has usage data.
	BestPerUse  string
	WorstPerUse string

	ChallengeTitle string
	StreakDays     int

	Footer string
	Date   time.Time
}

// BuildSummary assembles the poster payload from the user's records.
func BuildSummary(subs []model.Subscription, profile model.Profile, ch model.Challenge, now time.Time) Summary {
	s := Summary{
		Title:          "StreamSaver",
		Subtitle:       "What does every single use cost you?",
		MonthlyTotal:   engine.TotalMonthly(subs),
		Budget:         profile.MonthlyBudget,
		ChallengeTitle: "No active challenge",
		Footer:         "Save money. Share the poster. Repeat.",
		Date:           now,
	}

	if profile.MonthlyBudget.IsPositive() {
		s.Remaining = profile.MonthlyBudget.Sub(s.MonthlyTotal)
		s.HasRemaining = true
	}

	if best, worst, ok := engine.CostPerUseExtremes(subs); ok {
		bestCPU, _ := engine.CostPerUse(best)
		worstCPU, _ := engine.CostPerUse(worst)
		s.BestPerUse = best.Name + " • " + cli.FormatMoney(bestCPU)
		s.WorstPerUse = worst.Name + " • " + cli.FormatMoney(worstCPU)
	}

	if ch.Active {
		s.ChallengeTitle = ch.Title
		s.StreakDays = ch.StreakDays
	}

	return s
}
