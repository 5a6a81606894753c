package engine

import (
	"testing"
	"time"

	"github.com/budgettech/streamsaver/internal/model"
)

func day(s string) time.Time {
	t := model.ParseDate(s)
	if t.IsZero() {
		panic("bad test date: " + s)
	}
	return t
}

func TestXPForAction_Table(t *testing.T) {
	cases := []struct {
		action model.Action
		want   int
	}{
		{model.ActionCheckin, 10},
		{model.ActionAddSubscription, 5},
		{model.ActionDeleteSubscription, 50},
		{model.ActionCancelHighWaste, 120},
		{model.ActionSetBudget, 20},
		{model.ActionExport, 10},
		{model.ActionImportTemplate, 20},
		{model.ActionStartChallenge, 20},
		{model.Action("bogus"), 0},
	}
	for _, c := range cases {
		if got := XPForAction(c.action); got != c.want {
			t.Errorf("XPForAction(%q) = %d, want %d", c.action, got, c.want)
		}
	}
}

func TestXPForAction_RemovalOutpaysAddition(t *testing.T) {
	if XPForAction(model.ActionDeleteSubscription) <= XPForAction(model.ActionAddSubscription) {
		t.Fatal("deleting must pay more XP than adding")
	}
	if XPForAction(model.ActionCancelHighWaste) <= XPForAction(model.ActionDeleteSubscription) {
		t.Fatal("cancelling the biggest waste must pay more XP than a plain delete")
	}
}

func TestAwardXP_Accumulates(t *testing.T) {
	p := model.Profile{XP: 100}
	p = AwardXP(p, model.ActionSetBudget)
	p = AwardXP(p, model.ActionSetBudget)
	if p.XP != 140 {
		t.Fatalf("XP = %d, want 140 (no dedup, no cap)", p.XP)
	}
}

func TestAwardXP_ClampsNegativeStoredXP(t *testing.T) {
	p := AwardXP(model.Profile{XP: -30}, model.ActionCheckin)
	if p.XP != 10 {
		t.Fatalf("XP = %d, want 10", p.XP)
	}
}

func TestLevelFromXP(t *testing.T) {
	cases := []struct {
		xp, level, toNext int
	}{
		{0, 1, 250},
		{249, 1, 1},
		{250, 2, 0},
		{499, 2, 1},
		{500, 3, 0},
		{-10, 1, 250},
	}
	for _, c := range cases {
		level, toNext := LevelFromXP(c.xp)
		if level != c.level || toNext != c.toNext {
			t.Errorf("LevelFromXP(%d) = (%d, %d), want (%d, %d)",
				c.xp, level, toNext, c.level, c.toNext)
		}
	}
}

func activeChallenge(started, lastCheckin string, streak int) model.Challenge {
	ch := model.Challenge{
		Active:       true,
		ChallengeID:  "no_waste_14d",
		Title:        "14 days zero waste",
		DurationDays: 14,
		StartedOn:    day(started),
		StreakDays:   streak,
	}
	if lastCheckin != "" {
		ch.LastCheckin = day(lastCheckin)
	}
	return ch
}

func TestCheckIn_FirstCheckinStartsStreak(t *testing.T) {
	ch := activeChallenge("2025-03-01", "", 0)

	got, res := CheckIn(ch, day("2025-03-01"))
	if res != CheckInReset {
		t.Fatalf("result = %v, want CheckInReset", res)
	}
	if got.StreakDays != 1 {
		t.Fatalf("streak = %d, want 1", got.StreakDays)
	}
	if !got.LastCheckin.Equal(day("2025-03-01")) {
		t.Fatalf("last checkin = %v, want 2025-03-01", got.LastCheckin)
	}
}

func TestCheckIn_ConsecutiveDayContinues(t *testing.T) {
	ch := activeChallenge("2025-03-01", "2025-03-04", 4)

	got, res := CheckIn(ch, day("2025-03-05"))
	if res != CheckInContinued {
		t.Fatalf("result = %v, want CheckInContinued", res)
	}
	if got.StreakDays != 5 {
		t.Fatalf("streak = %d, want 5", got.StreakDays)
	}
	if !got.LastCheckin.Equal(day("2025-03-05")) {
		t.Fatalf("last checkin = %v, want 2025-03-05", got.LastCheckin)
	}
}

func TestCheckIn_SameDayIsNoOp(t *testing.T) {
	ch := activeChallenge("2025-03-01", "2025-03-05", 5)

	got, res := CheckIn(ch, day("2025-03-05"))
	if res != CheckInAlreadyDone {
		t.Fatalf("result = %v, want CheckInAlreadyDone", res)
	}
	if got.StreakDays != 5 {
		t.Fatalf("streak = %d, want 5 (unchanged)", got.StreakDays)
	}
}

func TestCheckIn_MissedDayResetsToOne(t *testing.T) {
	ch := activeChallenge("2025-03-01", "2025-03-02", 7)

	got, res := CheckIn(ch, day("2025-03-05"))
	if res != CheckInReset {
		t.Fatalf("result = %v, want CheckInReset", res)
	}
	if got.StreakDays != 1 {
		t.Fatalf("streak = %d, want 1 (missed days break the streak)", got.StreakDays)
	}
}

func TestProgress(t *testing.T) {
	ch := activeChallenge("2025-03-01", "", 0)

	frac, ok := Progress(ch, day("2025-03-08"))
	if !ok {
		t.Fatal("expected a progress value")
	}
	if frac != 0.5 {
		t.Fatalf("progress = %v, want 0.5 (7 of 14 days)", frac)
	}

	frac, _ = Progress(ch, day("2025-06-01"))
	if frac != 1 {
		t.Fatalf("progress = %v, want clamp at 1", frac)
	}

	frac, _ = Progress(ch, day("2025-02-01"))
	if frac != 0 {
		t.Fatalf("progress = %v, want clamp at 0", frac)
	}
}

func TestProgress_ZeroDurationHasNoBar(t *testing.T) {
	ch := activeChallenge("2025-03-01", "", 0)
	ch.DurationDays = 0

	if _, ok := Progress(ch, day("2025-03-08")); ok {
		t.Fatal("zero duration must mean no progress bar, not division by zero")
	}
}

func TestCurrentDay_CapsAtDuration(t *testing.T) {
	ch := activeChallenge("2025-03-01", "", 0)
	if got := CurrentDay(ch, day("2025-03-01")); got != 1 {
		t.Fatalf("day = %d, want 1", got)
	}
	if got := CurrentDay(ch, day("2025-03-10")); got != 10 {
		t.Fatalf("day = %d, want 10", got)
	}
	if got := CurrentDay(ch, day("2025-09-01")); got != 14 {
		t.Fatalf("day = %d, want cap at 14", got)
	}
}

func TestStartChallenge_ReplacesEverything(t *testing.T) {
	ch := StartChallenge("reduce_20_30d", "Cut 20% in 30 days", 30, day("2025-03-05"))

	if !ch.Active {
		t.Fatal("started challenge should be active")
	}
	if ch.StreakDays != 0 {
		t.Fatalf("streak = %d, want 0 before first check-in", ch.StreakDays)
	}
	if !ch.LastCheckin.IsZero() {
		t.Fatal("fresh challenge must have no check-in")
	}
	if !ch.StartedOn.Equal(day("2025-03-05")) {
		t.Fatalf("started on = %v, want 2025-03-05", ch.StartedOn)
	}
}

func TestEndChallenge_ReturnsInactiveZeroState(t *testing.T) {
	ch := EndChallenge()
	if ch.Active || ch.Title != "" || ch.StreakDays != 0 || !ch.StartedOn.IsZero() {
		t.Fatalf("ended challenge not zeroed: %+v", ch)
	}
}
