package store

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgettech/streamsaver/internal/model"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSubscriptionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	sub := model.Subscription{
		Name:         "Netflix",
		Category:     "Streaming",
		Icon:         "🎬",
		BillingMode:  model.BillingMonthly,
		MonthlyPrice: decimal.RequireFromString("13.99"),
		MonthlyUses:  6,
		RenewalDate:  model.ParseDate("2025-04-12"),
		Custom:       true,
	}

	saved, err := s.SaveSubscription(sub)
	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID, "an ID should be assigned")
	assert.False(t, saved.AddedAt.IsZero())

	subs, err := s.Subscriptions()
	require.NoError(t, err)
	require.Len(t, subs, 1)

	got := subs[0]
	assert.Equal(t, "Netflix", got.Name)
	assert.True(t, got.MonthlyPrice.Equal(decimal.RequireFromString("13.99")),
		"price must round-trip exactly, got %s", got.MonthlyPrice)
	assert.Equal(t, 6, got.MonthlyUses)
	assert.True(t, got.RenewalDate.Equal(model.ParseDate("2025-04-12")))
	assert.True(t, got.Custom)
}

func TestSaveSubscriptionReplacesByID(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.SaveSubscription(model.Subscription{Name: "Spotify", MonthlyUses: 4})
	require.NoError(t, err)

	saved.MonthlyUses = 9
	_, err = s.SaveSubscription(saved)
	require.NoError(t, err)

	subs, err := s.Subscriptions()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, 9, subs[0].MonthlyUses)
}

func TestDeleteSubscription(t *testing.T) {
	s := openTestStore(t)

	saved, err := s.SaveSubscription(model.Subscription{Name: "Disney+"})
	require.NoError(t, err)
	require.NoError(t, s.DeleteSubscription(saved.ID))

	subs, err := s.Subscriptions()
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestProfileDefaultsToZero(t *testing.T) {
	s := openTestStore(t)

	p, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, 0, p.XP)
	assert.True(t, p.MonthlyBudget.IsZero())
}

func TestProfileRoundTrip(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveProfile(model.Profile{
		MonthlyBudget: decimal.RequireFromString("45.50"),
		XP:            275,
	}))

	p, err := s.Profile()
	require.NoError(t, err)
	assert.Equal(t, 275, p.XP)
	assert.True(t, p.MonthlyBudget.Equal(decimal.RequireFromString("45.50")))
}

func TestChallengeRoundTrip(t *testing.T) {
	s := openTestStore(t)

	ch, err := s.Challenge()
	require.NoError(t, err)
	assert.False(t, ch.Active, "zero state before first save")

	require.NoError(t, s.SaveChallenge(model.Challenge{
		Active:       true,
		ChallengeID:  "no_waste_14d",
		Title:        "14 days zero waste",
		DurationDays: 14,
		StartedOn:    model.ParseDate("2025-03-01"),
		LastCheckin:  model.ParseDate("2025-03-03"),
		StreakDays:   3,
	}))

	ch, err = s.Challenge()
	require.NoError(t, err)
	assert.True(t, ch.Active)
	assert.Equal(t, 3, ch.StreakDays)
	assert.True(t, ch.StartedOn.Equal(model.ParseDate("2025-03-01")))
	assert.True(t, ch.LastCheckin.Equal(model.ParseDate("2025-03-03")))

	// Ending the challenge persists the cleared state, not a merge.
	require.NoError(t, s.SaveChallenge(model.Challenge{}))
	ch, err = s.Challenge()
	require.NoError(t, err)
	assert.False(t, ch.Active)
	assert.Zero(t, ch.StreakDays)
	assert.True(t, ch.LastCheckin.IsZero())
}
