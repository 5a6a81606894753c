package poster

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/model"
)

func monthly(name string, price string, uses int) model.Subscription {
	return model.Subscription{
		Name:         name,
		BillingMode:  model.BillingMonthly,
		MonthlyPrice: decimal.RequireFromString(price),
		MonthlyUses:  uses,
	}
}

func TestBuildSummary(t *testing.T) {
	subs := []model.Subscription{
		monthly("Spotify", "10.99", 30), // ~0.37/use, best
		monthly("Gym", "40", 2),         // 20/use, worst
		monthly("Unused", "5", 0),       // undefined, ignored for extremes
	}
	profile := model.Profile{MonthlyBudget: decimal.RequireFromString("60"), XP: 300}
	ch := model.Challenge{Active: true, Title: "14 days zero waste", StreakDays: 4}

	s := BuildSummary(subs, profile, ch, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC))

	if !s.MonthlyTotal.Equal(decimal.RequireFromString("55.99")) {
		t.Fatalf("monthly total = %s, want 55.99", s.MonthlyTotal)
	}
	if !s.HasRemaining {
		t.Fatal("budget is set, remaining should be present")
	}
	if !s.Remaining.Equal(decimal.RequireFromString("4.01")) {
		t.Fatalf("remaining = %s, want 4.01", s.Remaining)
	}
	if s.BestPerUse == "" || s.WorstPerUse == "" {
		t.Fatal("expected best/worst per-use strings")
	}
	if got := s.WorstPerUse; got[:3] != "Gym" {
		t.Fatalf("worst per use = %q, want Gym leading", got)
	}
	if s.ChallengeTitle != "14 days zero waste" || s.StreakDays != 4 {
		t.Fatalf("challenge block = (%q, %d)", s.ChallengeTitle, s.StreakDays)
	}
}

func TestBuildSummary_NoBudgetNoUsage(t *testing.T) {
	s := BuildSummary([]model.Subscription{monthly("Unused", "9", 0)},
		model.Profile{}, model.Challenge{}, time.Now())

	if s.HasRemaining {
		t.Fatal("no budget set, remaining must be omitted")
	}
	if s.BestPerUse != "" || s.WorstPerUse != "" {
		t.Fatal("no usage data, per-use lines must be empty")
	}
	if s.ChallengeTitle != "No active challenge" {
		t.Fatalf("challenge title = %q", s.ChallengeTitle)
	}
}

func TestRender_ProducesFullSizePNG(t *testing.T) {
	s := BuildSummary(
		[]model.Subscription{monthly("Netflix", "13.99", 6)},
		model.Profile{MonthlyBudget: decimal.RequireFromString("50")},
		model.Challenge{Active: true, Title: "Cut one a week", StreakDays: 2},
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
	)

	var buf bytes.Buffer
	if err := Render(&buf, s); err != nil {
		t.Fatalf("render: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}
}
