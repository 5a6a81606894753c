// Package daemon provides the long-running budget watch service: it polls
// the store and emits events for upcoming renewals, budget overruns, and
// streaks about to break.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/engine"
	"github.com/budgettech/streamsaver/internal/model"
	"github.com/budgettech/streamsaver/internal/store"
)

// Config controls the daemon runtime behavior.
type Config struct {
	Interval     time.Duration
	Addr         string
	EventsBuffer int
	// RenewalWindowDays is how far ahead renewals count as "due".
	RenewalWindowDays int
}

// Snapshot is a compact budget state for status/event payloads.
type Snapshot struct {
	At            time.Time       `json:"at"`
	Subscriptions int             `json:"subscriptions"`
	MonthlyTotal  decimal.Decimal `json:"monthly_total"`
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	OverBudget    bool            `json:"over_budget"`
	RenewalsDue   int             `json:"renewals_due"`
	StreakDays    int             `json:"streak_days"`
	StreakAtRisk  bool            `json:"streak_at_risk"`
	XP            int             `json:"xp"`
	Level         int             `json:"level"`
}

// Event is emitted whenever the watched state changes in a way the user
// should hear about.
type Event struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
	Snapshot  Snapshot  `json:"snapshot"`
}

// Event types.
const (
	EventSnapshot     = "snapshot"
	EventOverBudget   = "over_budget"
	EventRenewalDue   = "renewal_due"
	EventStreakAtRisk = "streak_at_risk"
)

// Status is served at /v1/status.
type Status struct {
	StartedAt       time.Time `json:"started_at"`
	LastPollAt      time.Time `json:"last_poll_at"`
	PollIntervalSec int       `json:"poll_interval_sec"`
	PollCount       int64     `json:"poll_count"`
	Summary         Snapshot  `json:"summary"`
	LastError       string    `json:"last_error,omitempty"`
	EventCount      int       `json:"event_count"`
	SubscriberCount int       `json:"subscriber_count"`
}

// Service provides the daemon runtime and HTTP API.
type Service struct {
	cfg   Config
	st    store.Store
	nowFn func() time.Time

	mu          sync.RWMutex
	startedAt   time.Time
	lastPollAt  time.Time
	pollCount   int64
	lastError   string
	hasSnapshot bool
	snapshot    Snapshot
	nextEventID int64
	events      []Event

	nextSubID int
	subs      map[int]chan Event
}

// New returns a new daemon service polling the given store.
func New(cfg Config, st store.Store) *Service {
	if cfg.Interval < 10*time.Second {
		cfg.Interval = 15 * time.Minute
	}
	if cfg.EventsBuffer < 1 {
		cfg.EventsBuffer = 200
	}
	if cfg.Addr == "" {
		cfg.Addr = "127.0.0.1:8787"
	}
	if cfg.RenewalWindowDays <= 0 {
		cfg.RenewalWindowDays = 3
	}

	return &Service{
		cfg:       cfg,
		st:        st,
		nowFn:     time.Now,
		startedAt: time.Now(),
		subs:      make(map[int]chan Event),
	}
}

// Run starts HTTP endpoints and polling until ctx is canceled.
func (s *Service) Run(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/v1/status", s.handleStatus)
	mux.HandleFunc("/v1/events", s.handleEvents)
	mux.HandleFunc("/v1/stream", s.handleStream)

	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Seed initial snapshot so status is useful immediately.
	s.pollOnce()

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		case <-ticker.C:
			s.pollOnce()
		case err := <-errCh:
			return fmt.Errorf("daemon http server: %w", err)
		}
	}
}

func (s *Service) pollOnce() {
	now := s.nowFn()

	snap, err := s.buildSnapshot(now)
	if err != nil {
		s.mu.Lock()
		s.lastError = err.Error()
		s.lastPollAt = now
		s.pollCount++
		s.mu.Unlock()
		log.Printf("streamsaver daemon poll error: %v", err)
		return
	}

	var pending []Event

	s.mu.Lock()
	prev := s.snapshot
	prevExists := s.hasSnapshot

	s.hasSnapshot = true
	s.snapshot = snap
	s.lastPollAt = now
	s.pollCount++
	s.lastError = ""

	emit := func(typ, msg string) {
		s.nextEventID++
		pending = append(pending, Event{
			ID:        s.nextEventID,
			Type:      typ,
			Timestamp: now,
			Message:   msg,
			Snapshot:  snap,
		})
	}

	if !prevExists {
		emit(EventSnapshot, "budget watch started")
	}
	// Edge-triggered alerts: fire when a condition appears, not on every poll.
	if snap.OverBudget && (!prevExists || !prev.OverBudget) {
		emit(EventOverBudget, fmt.Sprintf("monthly spend %s exceeds budget %s",
			snap.MonthlyTotal.StringFixed(2), snap.MonthlyBudget.StringFixed(2)))
	}
	if snap.RenewalsDue > prev.RenewalsDue || (!prevExists && snap.RenewalsDue > 0) {
		emit(EventRenewalDue, fmt.Sprintf("%d subscription(s) renew within %d days",
			snap.RenewalsDue, s.cfg.RenewalWindowDays))
	}
	if snap.StreakAtRisk && (!prevExists || !prev.StreakAtRisk) {
		emit(EventStreakAtRisk, fmt.Sprintf("no check-in today — a %d-day streak is on the line", snap.StreakDays))
	}
	s.mu.Unlock()

	for _, ev := range pending {
		s.publishEvent(ev)
	}
}

func (s *Service) buildSnapshot(now time.Time) (Snapshot, error) {
	subs, err := s.st.Subscriptions()
	if err != nil {
		return Snapshot{}, err
	}
	profile, err := s.st.Profile()
	if err != nil {
		return Snapshot{}, err
	}
	ch, err := s.st.Challenge()
	if err != nil {
		return Snapshot{}, err
	}

	total := engine.TotalMonthly(subs)
	level, _ := engine.LevelFromXP(profile.XP)

	snap := Snapshot{
		At:            now,
		Subscriptions: len(subs),
		MonthlyTotal:  total,
		MonthlyBudget: profile.MonthlyBudget,
		OverBudget:    profile.MonthlyBudget.IsPositive() && total.GreaterThan(profile.MonthlyBudget),
		RenewalsDue:   len(engine.UpcomingRenewals(subs, now, s.cfg.RenewalWindowDays)),
		XP:            profile.XP,
		Level:         level,
	}

	if ch.Active && ch.StreakDays > 0 && !ch.LastCheckin.IsZero() {
		// The streak survives only if yesterday's check-in is followed up today.
		snap.StreakDays = ch.StreakDays
		snap.StreakAtRisk = model.DaysBetween(ch.LastCheckin, now) == 1
	}

	return snap, nil
}

func (s *Service) publishEvent(ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	if len(s.events) > s.cfg.EventsBuffer {
		s.events = s.events[len(s.events)-s.cfg.EventsBuffer:]
	}

	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
	s.mu.Unlock()
}

func (s *Service) snapshotStatus() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Status{
		StartedAt:       s.startedAt,
		LastPollAt:      s.lastPollAt,
		PollIntervalSec: int(s.cfg.Interval.Seconds()),
		PollCount:       s.pollCount,
		Summary:         s.snapshot,
		LastError:       s.lastError,
		EventCount:      len(s.events),
		SubscriberCount: len(s.subs),
	}
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.snapshotStatus())
}

func (s *Service) handleEvents(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	events := make([]Event, len(s.events))
	copy(events, s.events)
	s.mu.RUnlock()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}

func (s *Service) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := make(chan Event, 16)
	id := s.addSubscriber(ch)
	defer s.removeSubscriber(id)

	// Send current snapshot immediately.
	current := Event{
		Type:      EventSnapshot,
		Timestamp: time.Now(),
		Snapshot:  s.snapshotStatus().Summary,
	}
	writeSSE(w, current)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev := <-ch:
			writeSSE(w, ev)
			flusher.Flush()
		}
	}
}

func writeSSE(w http.ResponseWriter, ev Event) {
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	_, _ = fmt.Fprintf(w, "event: %s\n", ev.Type)
	_, _ = fmt.Fprintf(w, "data: %s\n\n", data)
}

func (s *Service) addSubscriber(ch chan Event) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSubID++
	id := s.nextSubID
	s.subs[id] = ch
	return id
}

func (s *Service) removeSubscriber(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
}
