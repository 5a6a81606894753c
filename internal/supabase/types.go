package supabase

import (
	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/model"
)

// Session is the authenticated identity saved after sign-in. The core
// engines never see it; it only travels between commands and this client.
type Session struct {
	AccessToken string
	UserID      string
	Email       string
}

// tokenResponse is the GoTrue password-grant response.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// subscriptionRow is the user_subscriptions wire shape. Prices travel as
// JSON numbers backed by Postgres numeric columns.
type subscriptionRow struct {
	ID           string          `json:"id,omitempty"`
	UserID       string          `json:"user_id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Icon         string          `json:"icon"`
	BillingMode  string          `json:"billing_mode"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	YearlyPrice  decimal.Decimal `json:"yearly_price"`
	MonthlyUses  int             `json:"monthly_uses"`
	RenewalDate  *string         `json:"renewal_date"`
	Custom       bool            `json:"custom"`
	AddedAt      string          `json:"added_at,omitempty"`
}

// profileRow is the user_profiles wire shape.
type profileRow struct {
	UserID        string          `json:"user_id"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	XP            int             `json:"xp"`
}

// challengeRow is the user_challenges wire shape.
type challengeRow struct {
	UserID       string  `json:"user_id"`
	Active       bool    `json:"active"`
	ChallengeID  string  `json:"challenge_id"`
	Title        string  `json:"title"`
	DurationDays int     `json:"duration_days"`
	StartedOn    *string `json:"started_on"`
	LastCheckin  *string `json:"last_checkin"`
	StreakDays   int     `json:"streak_days"`
}

func toSubscriptionRow(userID string, sub model.Subscription) subscriptionRow {
	row := subscriptionRow{
		ID:           sub.ID,
		UserID:       userID,
		Name:         sub.Name,
		Category:     sub.Category,
		Icon:         sub.Icon,
		BillingMode:  string(sub.BillingMode),
		MonthlyPrice: sub.MonthlyPrice,
		YearlyPrice:  sub.YearlyPrice,
		MonthlyUses:  sub.MonthlyUses,
		Custom:       sub.Custom,
	}
	if !sub.RenewalDate.IsZero() {
		d := model.FormatDate(sub.RenewalDate)
		row.RenewalDate = &d
	}
	if !sub.AddedAt.IsZero() {
		row.AddedAt = sub.AddedAt.UTC().Format(timeLayout)
	}
	return row
}

func (r subscriptionRow) toModel() model.Subscription {
	sub := model.Subscription{
		ID:           r.ID,
		Name:         r.Name,
		Category:     r.Category,
		Icon:         r.Icon,
		BillingMode:  model.BillingMode(r.BillingMode),
		MonthlyPrice: r.MonthlyPrice,
		YearlyPrice:  r.YearlyPrice,
		MonthlyUses:  r.MonthlyUses,
		Custom:       r.Custom,
	}
	if r.RenewalDate != nil {
		sub.RenewalDate = model.ParseDate(*r.RenewalDate)
	}
	sub.AddedAt = parseTimestamp(r.AddedAt)
	return sub.Normalized()
}

func toChallengeRow(userID string, ch model.Challenge) challengeRow {
	row := challengeRow{
		UserID:       userID,
		Active:       ch.Active,
		ChallengeID:  ch.ChallengeID,
		Title:        ch.Title,
		DurationDays: ch.DurationDays,
		StreakDays:   ch.StreakDays,
	}
	if !ch.StartedOn.IsZero() {
		d := model.FormatDate(ch.StartedOn)
		row.StartedOn = &d
	}
	if !ch.LastCheckin.IsZero() {
		d := model.FormatDate(ch.LastCheckin)
		row.LastCheckin = &d
	}
	return row
}

func (r challengeRow) toModel() model.Challenge {
	ch := model.Challenge{
		Active:       r.Active,
		ChallengeID:  r.ChallengeID,
		Title:        r.Title,
		DurationDays: r.DurationDays,
		StreakDays:   r.StreakDays,
	}
	if r.StartedOn != nil {
		ch.StartedOn = model.ParseDate(*r.StartedOn)
	}
	if r.LastCheckin != nil {
		ch.LastCheckin = model.ParseDate(*r.LastCheckin)
	}
	return ch
}
