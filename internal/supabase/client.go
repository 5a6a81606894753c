// Package supabase provides the cloud-sync client: GoTrue auth plus
// PostgREST reads and writes for the three user tables. The engines never
// import this package; commands pass fetched records down and mutated
// records back.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/budgettech/streamsaver/internal/model"
)

const (
	requestTimeout = 10 * time.Second
	maxBodySize    = 1 << 20 // 1 MB
	timeLayout     = time.RFC3339
)

var (
	// ErrNotConfigured indicates no Supabase URL/key is set; the app runs
	// in guest mode.
	ErrNotConfigured = errors.New("supabase: not configured")
	// ErrUnauthorized indicates the access token is expired or invalid.
	ErrUnauthorized = errors.New("supabase: unauthorized (session expired or invalid)")
	// ErrRateLimited indicates the API rate limit was hit.
	ErrRateLimited = errors.New("supabase: rate limited")
)

// Client talks to one Supabase project.
type Client struct {
	baseURL string
	anonKey string
	http    *http.Client
}

// NewClient creates a client for the given project URL and anon key.
// Returns nil when either is empty.
func NewClient(baseURL, anonKey string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	anonKey = strings.TrimSpace(anonKey)
	if baseURL == "" || anonKey == "" {
		return nil
	}
	return &Client{
		baseURL: baseURL,
		anonKey: anonKey,
		http:    &http.Client{},
	}
}

// SignUp registers a new account. The account still needs a sign-in
// afterwards to obtain a session.
func (c *Client) SignUp(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	_, err := c.do(ctx, http.MethodPost, "/auth/v1/signup", "", nil, body)
	return err
}

// SignIn exchanges credentials for a session token.
func (c *Client) SignIn(ctx context.Context, email, password string) (Session, error) {
	body := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/auth/v1/token?grant_type=password", "", nil, body)
	if err != nil {
		return Session{}, err
	}

	var tok tokenResponse
	if err := json.Unmarshal(data, &tok); err != nil {
		return Session{}, fmt.Errorf("supabase: parsing token response: %w", err)
	}
	if tok.AccessToken == "" || tok.User.ID == "" {
		return Session{}, errors.New("supabase: sign-in returned no session")
	}
	return Session{AccessToken: tok.AccessToken, UserID: tok.User.ID, Email: tok.User.Email}, nil
}

// SignOut revokes the session token.
func (c *Client) SignOut(ctx context.Context, token string) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/v1/logout", token, nil, struct{}{})
	return err
}

// Subscriptions fetches the user's subscriptions, newest first.
func (c *Client) Subscriptions(ctx context.Context, token, userID string) ([]model.Subscription, error) {
	path := "/rest/v1/user_subscriptions?select=*&user_id=eq." + userID + "&order=added_at.desc"
	data, err := c.do(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return nil, err
	}

	var rows []subscriptionRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("supabase: parsing subscriptions: %w", err)
	}
	subs := make([]model.Subscription, 0, len(rows))
	for _, r := range rows {
		subs = append(subs, r.toModel())
	}
	return subs, nil
}

// UpsertSubscription inserts or updates a subscription row and returns the
// stored version (with server-assigned ID on insert).
func (c *Client) UpsertSubscription(ctx context.Context, token, userID string, sub model.Subscription) (model.Subscription, error) {
	headers := map[string]string{"Prefer": "resolution=merge-duplicates,return=representation"}
	data, err := c.do(ctx, http.MethodPost, "/rest/v1/user_subscriptions", token, headers,
		toSubscriptionRow(userID, sub))
	if err != nil {
		return model.Subscription{}, err
	}

	var rows []subscriptionRow
	if err := json.Unmarshal(data, &rows); err != nil || len(rows) == 0 {
		return sub, nil
	}
	return rows[0].toModel(), nil
}

// DeleteSubscription removes one subscription row scoped to the user.
func (c *Client) DeleteSubscription(ctx context.Context, token, userID, id string) error {
	path := "/rest/v1/user_subscriptions?id=eq." + id + "&user_id=eq." + userID
	_, err := c.do(ctx, http.MethodDelete, path, token, nil, nil)
	return err
}

// Profile fetches the user's profile. found is false when no row exists yet.
func (c *Client) Profile(ctx context.Context, token, userID string) (p model.Profile, found bool, err error) {
	path := "/rest/v1/user_profiles?select=*&user_id=eq." + userID
	data, err := c.do(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return model.Profile{}, false, err
	}

	var rows []profileRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return model.Profile{}, false, fmt.Errorf("supabase: parsing profile: %w", err)
	}
	if len(rows) == 0 {
		return model.Profile{}, false, nil
	}
	return model.Profile{MonthlyBudget: rows[0].MonthlyBudget, XP: rows[0].XP}, true, nil
}

// UpsertProfile inserts or updates the user's profile row.
func (c *Client) UpsertProfile(ctx context.Context, token, userID string, p model.Profile) error {
	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	_, err := c.do(ctx, http.MethodPost, "/rest/v1/user_profiles", token, headers,
		profileRow{UserID: userID, MonthlyBudget: p.MonthlyBudget, XP: p.XP})
	return err
}

// Challenge fetches the user's challenge state; the zero value when none.
func (c *Client) Challenge(ctx context.Context, token, userID string) (model.Challenge, error) {
	path := "/rest/v1/user_challenges?select=*&user_id=eq." + userID
	data, err := c.do(ctx, http.MethodGet, path, token, nil, nil)
	if err != nil {
		return model.Challenge{}, err
	}

	var rows []challengeRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return model.Challenge{}, fmt.Errorf("supabase: parsing challenge: %w", err)
	}
	if len(rows) == 0 {
		return model.Challenge{}, nil
	}
	return rows[0].toModel(), nil
}

// UpsertChallenge inserts or updates the user's challenge row.
func (c *Client) UpsertChallenge(ctx context.Context, token, userID string, ch model.Challenge) error {
	headers := map[string]string{"Prefer": "resolution=merge-duplicates"}
	_, err := c.do(ctx, http.MethodPost, "/rest/v1/user_challenges", token, headers,
		toChallengeRow(userID, ch))
	return err
}

// do performs one API request. token may be empty for auth endpoints; the
// anon key always goes along as the apikey header.
func (c *Client) do(ctx context.Context, method, path, token string, headers map[string]string, body any) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("supabase: encoding request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("supabase: creating request: %w", err)
	}

	req.Header.Set("apikey", c.anonKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	bearer := token
	if bearer == "" {
		bearer = c.anonKey
	}
	req.Header.Set("Authorization", "Bearer "+bearer)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("supabase: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("supabase: unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

func parseTimestamp(s string) (t time.Time) {
	if s == "" {
		return t
	}
	t, _ = time.Parse(timeLayout, s)
	return t
}
