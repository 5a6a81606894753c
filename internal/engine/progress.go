package engine

import (
	"time"

	"github.com/budgettech/streamsaver/internal/model"
)

// XPPerLevel is the amount of cumulative XP per level.
const XPPerLevel = 250

// xpTable maps user actions to XP awards. Removing a subscription pays far
// more than adding one: the app rewards cutting costs, not collecting cards.
var xpTable = map[model.Action]int{
	model.ActionCheckin:            10,
	model.ActionAddSubscription:    5,
	model.ActionDeleteSubscription: 50,
	model.ActionCancelHighWaste:    120,
	model.ActionSetBudget:          20,
	model.ActionExport:             10,
	model.ActionImportTemplate:     20,
	model.ActionStartChallenge:     20,
}

// XPForAction returns the XP award for an action, 0 for unknown actions.
func XPForAction(action model.Action) int {
	return xpTable[action]
}

// AwardXP returns the profile with the action's XP added. A negative stored
// XP is clamped to zero first; XP never decreases.
func AwardXP(profile model.Profile, action model.Action) model.Profile {
	if profile.XP < 0 {
		profile.XP = 0
	}
	profile.XP += XPForAction(action)
	return profile
}

// LevelFromXP maps cumulative XP to a level (starting at 1, one level per
// XPPerLevel) and the XP still missing to reach the next level. Exactly at a
// threshold the level has just been reached and toNext is 0.
func LevelFromXP(xp int) (level, toNext int) {
	if xp < 0 {
		xp = 0
	}
	level = xp/XPPerLevel + 1
	toNext = level*XPPerLevel - xp
	if toNext < 0 {
		toNext = 0
	}
	return level, toNext
}

// CheckInResult describes what a check-in attempt did to the streak.
type CheckInResult int

const (
	// CheckInAlreadyDone means a check-in for today was already recorded;
	// nothing changed and no XP is due.
	CheckInAlreadyDone CheckInResult = iota
	// CheckInContinued means yesterday's streak was extended by one day.
	CheckInContinued
	// CheckInReset means the streak restarted at 1, either because this is
	// the first check-in or because at least one day was missed. A missed
	// day breaks the streak outright; it never pauses or decrements.
	CheckInReset
)

// CheckIn applies a check-in for today to the challenge and reports what
// happened. Dates compare as plain calendar days; the caller supplies today.
// On CheckInAlreadyDone the challenge is returned unchanged.
func CheckIn(ch model.Challenge, today time.Time) (model.Challenge, CheckInResult) {
	day := model.Day(today)

	if !ch.LastCheckin.IsZero() && model.Day(ch.LastCheckin).Equal(day) {
		return ch, CheckInAlreadyDone
	}

	if !ch.LastCheckin.IsZero() && model.DaysBetween(ch.LastCheckin, day) == 1 {
		ch.StreakDays++
		ch.LastCheckin = day
		return ch, CheckInContinued
	}

	ch.StreakDays = 1
	ch.LastCheckin = day
	return ch, CheckInReset
}

// Progress returns the challenge completion fraction in [0, 1] for display.
// ok is false when the challenge has no start date or a non-positive
// duration, meaning "no progress bar" rather than a division by zero.
func Progress(ch model.Challenge, today time.Time) (float64, bool) {
	if ch.DurationDays <= 0 || ch.StartedOn.IsZero() {
		return 0, false
	}
	frac := float64(model.DaysBetween(ch.StartedOn, today)) / float64(ch.DurationDays)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return frac, true
}

// CurrentDay returns the 1-based challenge day for display, capped at the
// challenge duration.
func CurrentDay(ch model.Challenge, today time.Time) int {
	day := model.DaysBetween(ch.StartedOn, today) + 1
	if day < 1 {
		day = 1
	}
	if ch.DurationDays > 0 && day > ch.DurationDays {
		day = ch.DurationDays
	}
	return day
}

// StartChallenge returns a fresh active challenge starting today. Any
// previous challenge state is fully replaced, never merged.
func StartChallenge(id, title string, durationDays int, today time.Time) model.Challenge {
	return model.Challenge{
		Active:       true,
		ChallengeID:  id,
		Title:        title,
		DurationDays: durationDays,
		StartedOn:    model.Day(today),
	}
}

// EndChallenge returns the inactive zero state.
func EndChallenge() model.Challenge {
	return model.Challenge{}
}
