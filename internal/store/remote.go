package store

import (
	"context"

	"github.com/budgettech/streamsaver/internal/model"
	"github.com/budgettech/streamsaver/internal/supabase"
)

// Remote is the cloud-synced Store used after login. Each call maps to one
// Supabase request; the saved session scopes everything to the user.
type Remote struct {
	client  *supabase.Client
	session supabase.Session
}

var _ Store = (*Remote)(nil)

// NewRemote wraps a Supabase client and session as a Store.
func NewRemote(client *supabase.Client, session supabase.Session) *Remote {
	return &Remote{client: client, session: session}
}

func (r *Remote) Subscriptions() ([]model.Subscription, error) {
	return r.client.Subscriptions(context.Background(), r.session.AccessToken, r.session.UserID)
}

func (r *Remote) SaveSubscription(sub model.Subscription) (model.Subscription, error) {
	return r.client.UpsertSubscription(context.Background(), r.session.AccessToken, r.session.UserID, sub)
}

func (r *Remote) DeleteSubscription(id string) error {
	return r.client.DeleteSubscription(context.Background(), r.session.AccessToken, r.session.UserID, id)
}

func (r *Remote) Profile() (model.Profile, error) {
	p, found, err := r.client.Profile(context.Background(), r.session.AccessToken, r.session.UserID)
	if err != nil {
		return model.Profile{}, err
	}
	if !found {
		// First run for this account: materialize the zero profile so XP
		// awards have a row to land on.
		if err := r.client.UpsertProfile(context.Background(), r.session.AccessToken, r.session.UserID, p); err != nil {
			return model.Profile{}, err
		}
	}
	return p, nil
}

func (r *Remote) SaveProfile(p model.Profile) error {
	return r.client.UpsertProfile(context.Background(), r.session.AccessToken, r.session.UserID, p)
}

func (r *Remote) Challenge() (model.Challenge, error) {
	return r.client.Challenge(context.Background(), r.session.AccessToken, r.session.UserID)
}

func (r *Remote) SaveChallenge(ch model.Challenge) error {
	return r.client.UpsertChallenge(context.Background(), r.session.AccessToken, r.session.UserID, ch)
}

// Close is a no-op; the HTTP client holds no resources worth closing.
func (r *Remote) Close() error { return nil }
