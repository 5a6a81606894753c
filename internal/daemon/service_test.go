package daemon

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/model"
)

type fakeStore struct {
	subs    []model.Subscription
	profile model.Profile
	ch      model.Challenge
	err     error
}

func (f *fakeStore) Subscriptions() ([]model.Subscription, error) { return f.subs, f.err }
func (f *fakeStore) SaveSubscription(s model.Subscription) (model.Subscription, error) {
	return s, nil
}
func (f *fakeStore) DeleteSubscription(string) error     { return nil }
func (f *fakeStore) Profile() (model.Profile, error)     { return f.profile, f.err }
func (f *fakeStore) SaveProfile(model.Profile) error     { return nil }
func (f *fakeStore) Challenge() (model.Challenge, error) { return f.ch, f.err }
func (f *fakeStore) SaveChallenge(model.Challenge) error { return nil }
func (f *fakeStore) Close() error                        { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func date(s string) time.Time { return model.ParseDate(s) }

func newTestService(fs *fakeStore, now time.Time) *Service {
	svc := New(Config{Interval: time.Minute, EventsBuffer: 5, RenewalWindowDays: 3}, fs)
	svc.nowFn = func() time.Time { return now }
	return svc
}

func TestPollOnce_FirstPollEmitsSnapshot(t *testing.T) {
	fs := &fakeStore{
		subs: []model.Subscription{
			{Name: "Netflix", BillingMode: model.BillingMonthly, MonthlyPrice: dec("13.99")},
		},
		profile: model.Profile{MonthlyBudget: dec("50"), XP: 300},
	}
	svc := newTestService(fs, date("2025-03-10"))

	svc.pollOnce()

	if len(svc.events) != 1 || svc.events[0].Type != EventSnapshot {
		t.Fatalf("events = %+v, want single snapshot event", svc.events)
	}
	snap := svc.events[0].Snapshot
	if snap.Subscriptions != 1 || !snap.MonthlyTotal.Equal(dec("13.99")) {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.Level != 2 {
		t.Fatalf("level = %d, want 2 for 300 XP", snap.Level)
	}
	if snap.OverBudget {
		t.Fatal("13.99 of 50 must not be over budget")
	}
}

func TestPollOnce_OverBudgetIsEdgeTriggered(t *testing.T) {
	fs := &fakeStore{
		subs: []model.Subscription{
			{Name: "Gym", BillingMode: model.BillingMonthly, MonthlyPrice: dec("60")},
		},
		profile: model.Profile{MonthlyBudget: dec("50")},
	}
	svc := newTestService(fs, date("2025-03-10"))

	svc.pollOnce()
	svc.pollOnce()

	var overCount int
	for _, ev := range svc.events {
		if ev.Type == EventOverBudget {
			overCount++
		}
	}
	if overCount != 1 {
		t.Fatalf("over_budget fired %d times across two polls, want 1", overCount)
	}
}

func TestPollOnce_NoBudgetMeansNeverOver(t *testing.T) {
	fs := &fakeStore{
		subs: []model.Subscription{
			{Name: "Gym", BillingMode: model.BillingMonthly, MonthlyPrice: dec("60")},
		},
	}
	svc := newTestService(fs, date("2025-03-10"))

	svc.pollOnce()

	for _, ev := range svc.events {
		if ev.Type == EventOverBudget {
			t.Fatal("over_budget must not fire without a budget")
		}
	}
}

func TestPollOnce_RenewalDue(t *testing.T) {
	fs := &fakeStore{
		subs: []model.Subscription{
			{Name: "Spotify", RenewalDate: date("2025-03-11")},
			{Name: "Later", RenewalDate: date("2025-04-01")},
		},
	}
	svc := newTestService(fs, date("2025-03-10"))

	svc.pollOnce()

	var found bool
	for _, ev := range svc.events {
		if ev.Type == EventRenewalDue {
			found = true
			if ev.Snapshot.RenewalsDue != 1 {
				t.Fatalf("renewals due = %d, want 1", ev.Snapshot.RenewalsDue)
			}
		}
	}
	if !found {
		t.Fatal("expected renewal_due event")
	}
}

func TestPollOnce_StreakAtRisk(t *testing.T) {
	fs := &fakeStore{
		ch: model.Challenge{
			Active:      true,
			Title:       "Cut one a week",
			StreakDays:  4,
			LastCheckin: date("2025-03-09"),
		},
	}
	svc := newTestService(fs, date("2025-03-10"))

	svc.pollOnce()

	var found bool
	for _, ev := range svc.events {
		if ev.Type == EventStreakAtRisk {
			found = true
		}
	}
	if !found {
		t.Fatal("expected streak_at_risk when last check-in was yesterday")
	}
	if !svc.snapshot.StreakAtRisk || svc.snapshot.StreakDays != 4 {
		t.Fatalf("snapshot streak = (%v, %d)", svc.snapshot.StreakAtRisk, svc.snapshot.StreakDays)
	}
}

func TestPollOnce_CheckedInTodayNotAtRisk(t *testing.T) {
	fs := &fakeStore{
		ch: model.Challenge{
			Active:      true,
			StreakDays:  4,
			LastCheckin: date("2025-03-10"),
		},
	}
	svc := newTestService(fs, date("2025-03-10"))

	svc.pollOnce()

	if svc.snapshot.StreakAtRisk {
		t.Fatal("checked in today, streak must not be at risk")
	}
}

func TestPublishEvent_RingBufferTrims(t *testing.T) {
	svc := newTestService(&fakeStore{}, date("2025-03-10"))

	for i := 0; i < 12; i++ {
		svc.publishEvent(Event{ID: int64(i), Type: EventSnapshot})
	}

	if len(svc.events) != svc.cfg.EventsBuffer {
		t.Fatalf("buffer len = %d, want %d", len(svc.events), svc.cfg.EventsBuffer)
	}
	if svc.events[0].ID != 7 {
		t.Fatalf("oldest kept event = %d, want 7", svc.events[0].ID)
	}
}

func TestPublishEvent_SlowSubscriberDoesNotBlock(t *testing.T) {
	svc := newTestService(&fakeStore{}, date("2025-03-10"))

	full := make(chan Event) // unbuffered, nobody reading
	svc.addSubscriber(full)

	done := make(chan struct{})
	go func() {
		svc.publishEvent(Event{Type: EventSnapshot})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publishEvent blocked on a slow subscriber")
	}
}
