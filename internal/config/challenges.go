package config

// ChallengePreset describes one of the built-in savings challenges the user
// can start.
type ChallengePreset struct {
	ID          string
	Title       string
	Days        int
	Description string
}

// ChallengePresets is the fixed list of startable challenges.
var ChallengePresets = []ChallengePreset{
	{
		ID:          "cut_one_weekly",
		Title:       "Cut one subscription a week",
		Days:        30,
		Description: "Every week, pick the subscription with the highest cost per use and pause or cancel it.",
	},
	{
		ID:          "reduce_20_30d",
		Title:       "Spend 20% less in 30 days",
		Days:        30,
		Description: "Set a monthly budget and get at least 20% under it. Check in daily to keep the streak.",
	},
	{
		ID:          "no_waste_14d",
		Title:       "14 days zero waste",
		Days:        14,
		Description: "For 14 days: no new subscriptions, review your cost per use, and make one micro-cut if needed.",
	},
}

// ChallengeByID returns the preset with the given id.
func ChallengeByID(id string) (ChallengePreset, bool) {
	for _, c := range ChallengePresets {
		if c.ID == id {
			return c, true
		}
	}
	return ChallengePreset{}, false
}
