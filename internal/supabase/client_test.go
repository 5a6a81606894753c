package supabase

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgettech/streamsaver/internal/model"
)

func TestNewClient_RejectsEmptyConfig(t *testing.T) {
	assert.Nil(t, NewClient("", "key"))
	assert.Nil(t, NewClient("https://x.supabase.co", ""))
	assert.NotNil(t, NewClient("https://x.supabase.co/", "key"))
}

func TestSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/v1/token", r.URL.Path)
		require.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.Equal(t, "anon", r.Header.Get("apikey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok123","user":{"id":"u1","email":"a@b.it"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon")
	sess, err := c.SignIn(context.Background(), "a@b.it", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok123", sess.AccessToken)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "a@b.it", sess.Email)
}

func TestSubscriptions_DecodesAndNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/rest/v1/user_subscriptions", r.URL.Path)
		require.Equal(t, "eq.u1", r.URL.Query().Get("user_id"))
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"s1","user_id":"u1","name":"Netflix","category":"Streaming","icon":"🎬",
			 "billing_mode":"monthly","monthly_price":13.99,"yearly_price":0,
			 "monthly_uses":6,"renewal_date":"2025-04-12","custom":false},
			{"id":"s2","user_id":"u1","name":"Broken","category":"Other","icon":"💳",
			 "billing_mode":"weird","monthly_price":-4,"yearly_price":0,
			 "monthly_uses":-2,"renewal_date":null,"custom":true}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon")
	subs, err := c.Subscriptions(context.Background(), "tok", "u1")
	require.NoError(t, err)
	require.Len(t, subs, 2)

	assert.True(t, subs[0].MonthlyPrice.Equal(decimal.RequireFromString("13.99")))
	assert.Equal(t, "2025-04-12", subs[0].RenewalDate.Format("2006-01-02"))

	// Garbage rows arrive normalized, not rejected.
	assert.True(t, subs[1].MonthlyPrice.IsZero())
	assert.Equal(t, 0, subs[1].MonthlyUses)
	assert.Equal(t, "monthly", string(subs[1].BillingMode))
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon")
	_, err := c.Subscriptions(context.Background(), "stale", "u1")
	assert.True(t, errors.Is(err, ErrUnauthorized), "got %v", err)
}

func TestUpsertProfileSendsMergePrefer(t *testing.T) {
	var gotPrefer string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrefer = r.Header.Get("Prefer")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "anon")
	err := c.UpsertProfile(context.Background(), "tok", "u1",
		model.Profile{MonthlyBudget: decimal.RequireFromString("50"), XP: 120})
	require.NoError(t, err)
	assert.Contains(t, gotPrefer, "merge-duplicates")
}
