// Package store persists subscriptions, the profile, and the challenge.
// Commands read records, run the engine over them, and write the results
// back; the engine itself never touches a Store.
package store

import "github.com/budgettech/streamsaver/internal/model"

// Store is the persistence boundary. The local SQLite store backs guest
// mode; the remote store syncs through Supabase. Commands pick one at
// startup and use it for the whole run.
type Store interface {
	// Subscriptions returns all subscriptions, newest first.
	Subscriptions() ([]model.Subscription, error)
	// SaveSubscription inserts or replaces a subscription by ID, assigning
	// an ID when empty.
	SaveSubscription(sub model.Subscription) (model.Subscription, error)
	DeleteSubscription(id string) error

	// Profile returns the stored profile, or a zero profile before the
	// first save.
	Profile() (model.Profile, error)
	SaveProfile(p model.Profile) error

	// Challenge returns the stored challenge state; the zero value means
	// no challenge has ever been started.
	Challenge() (model.Challenge, error)
	SaveChallenge(ch model.Challenge) error

	Close() error
}
