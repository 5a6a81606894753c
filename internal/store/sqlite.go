package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// SQLite is the local, guest-mode Store.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens or creates the local database at the given path.
func OpenSQLite(dbPath string) (*SQLite, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Subscriptions returns all subscriptions, newest first.
func (s *SQLite) Subscriptions() ([]model.Subscription, error) {
	rows, err := s.db.Query(`SELECT
		id, name, category, icon, billing_mode, monthly_price, yearly_price,
		monthly_uses, renewal_date, custom, added_at
		FROM user_subscriptions ORDER BY added_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var subs []model.Subscription
	for rows.Next() {
		var sub model.Subscription
		var mode, monthlyPrice, yearlyPrice, addedAt string
		var renewal sql.NullString
		var custom int

		err := rows.Scan(&sub.ID, &sub.Name, &sub.Category, &sub.Icon, &mode,
			&monthlyPrice, &yearlyPrice, &sub.MonthlyUses, &renewal, &custom, &addedAt)
		if err != nil {
			return nil, err
		}

		sub.BillingMode = model.BillingMode(mode)
		sub.MonthlyPrice = parsePrice(monthlyPrice)
		sub.YearlyPrice = parsePrice(yearlyPrice)
		sub.Custom = custom != 0
		if renewal.Valid {
			sub.RenewalDate = model.ParseDate(renewal.String)
		}
		sub.AddedAt, _ = time.Parse(time.RFC3339, addedAt)

		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// SaveSubscription inserts or replaces a subscription, assigning an ID and
// timestamp when missing.
func (s *SQLite) SaveSubscription(sub model.Subscription) (model.Subscription, error) {
	if sub.ID == "" {
		sub.ID = uuid.NewString()
	}
	if sub.AddedAt.IsZero() {
		sub.AddedAt = time.Now().UTC()
	}

	custom := 0
	if sub.Custom {
		custom = 1
	}
	var renewal any
	if !sub.RenewalDate.IsZero() {
		renewal = model.FormatDate(sub.RenewalDate)
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO user_subscriptions
		(id, name, category, icon, billing_mode, monthly_price, yearly_price,
		 monthly_uses, renewal_date, custom, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sub.ID, sub.Name, sub.Category, sub.Icon, string(sub.BillingMode),
		sub.MonthlyPrice.String(), sub.YearlyPrice.String(),
		sub.MonthlyUses, renewal, custom, sub.AddedAt.UTC().Format(time.RFC3339),
	)
	return sub, err
}

// DeleteSubscription removes a subscription by ID.
func (s *SQLite) DeleteSubscription(id string) error {
	_, err := s.db.Exec("DELETE FROM user_subscriptions WHERE id = ?", id)
	return err
}

// Profile returns the stored profile; a zero profile before the first save.
func (s *SQLite) Profile() (model.Profile, error) {
	var budget string
	var p model.Profile

	err := s.db.QueryRow("SELECT monthly_budget, xp FROM user_profiles WHERE id = 1").
		Scan(&budget, &p.XP)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Profile{MonthlyBudget: decimal.Zero}, nil
	}
	if err != nil {
		return model.Profile{}, err
	}
	p.MonthlyBudget = parsePrice(budget)
	return p, nil
}

// SaveProfile upserts the single profile row.
func (s *SQLite) SaveProfile(p model.Profile) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO user_profiles (id, monthly_budget, xp)
		VALUES (1, ?, ?)`, p.MonthlyBudget.String(), p.XP)
	return err
}

// Challenge returns the stored challenge state.
func (s *SQLite) Challenge() (model.Challenge, error) {
	var ch model.Challenge
	var active int
	var started, checkin sql.NullString

	err := s.db.QueryRow(`SELECT active, challenge_id, title, duration_days,
		started_on, last_checkin, streak_days FROM user_challenges WHERE id = 1`).
		Scan(&active, &ch.ChallengeID, &ch.Title, &ch.DurationDays,
			&started, &checkin, &ch.StreakDays)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Challenge{}, nil
	}
	if err != nil {
		return model.Challenge{}, err
	}

	ch.Active = active != 0
	if started.Valid {
		ch.StartedOn = model.ParseDate(started.String)
	}
	if checkin.Valid {
		ch.LastCheckin = model.ParseDate(checkin.String)
	}
	return ch, nil
}

// SaveChallenge upserts the single challenge row.
func (s *SQLite) SaveChallenge(ch model.Challenge) error {
	active := 0
	if ch.Active {
		active = 1
	}
	var started, checkin any
	if !ch.StartedOn.IsZero() {
		started = model.FormatDate(ch.StartedOn)
	}
	if !ch.LastCheckin.IsZero() {
		checkin = model.FormatDate(ch.LastCheckin)
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO user_challenges
		(id, active, challenge_id, title, duration_days, started_on, last_checkin, streak_days)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)`,
		active, ch.ChallengeID, ch.Title, ch.DurationDays, started, checkin, ch.StreakDays,
	)
	return err
}

// parsePrice reads a stored decimal, treating garbage as zero. Bad rows
// degrade instead of erroring, matching the engine's normalization.
func parsePrice(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}
