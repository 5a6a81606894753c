package store

// Monetary columns are TEXT: decimals round-trip through their exact string
// form, never through binary floats. Dates are plain YYYY-MM-DD strings.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS user_subscriptions (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    category        TEXT NOT NULL DEFAULT 'Other',
    icon            TEXT NOT NULL DEFAULT '💳',
    billing_mode    TEXT NOT NULL DEFAULT 'monthly',
    monthly_price   TEXT NOT NULL DEFAULT '0',
    yearly_price    TEXT NOT NULL DEFAULT '0',
    monthly_uses    INTEGER NOT NULL DEFAULT 0,
    renewal_date    TEXT,
    custom          INTEGER NOT NULL DEFAULT 0,
    added_at        TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS user_profiles (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    monthly_budget  TEXT NOT NULL DEFAULT '0',
    xp              INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS user_challenges (
    id              INTEGER PRIMARY KEY CHECK (id = 1),
    active          INTEGER NOT NULL DEFAULT 0,
    challenge_id    TEXT NOT NULL DEFAULT '',
    title           TEXT NOT NULL DEFAULT '',
    duration_days   INTEGER NOT NULL DEFAULT 0,
    started_on      TEXT,
    last_checkin    TEXT,
    streak_days     INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_subscriptions_added ON user_subscriptions(added_at);
`
