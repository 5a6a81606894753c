package config

// TemplateItem is one subscription a template imports, with a realistic
// usage count.
type TemplateItem struct {
	Name        string
	MonthlyUses int
}

// Template is a content-ready starter pack: a shareable hook and script plus
// a set of subscriptions to import.
type Template struct {
	ID       string
	Title    string
	Hook     string
	Script   []string
	Hashtags []string
	Items    []TemplateItem
}

// Templates is the fixed list of starter templates.
var Templates = []Template{
	{
		ID:    "tech_minimal",
		Title: "Tech Minimal (Budget Killer)",
		Hook:  "I was paying without using: cut 2 subscriptions and saved instantly.",
		Script: []string{
			"1) Open the tracker and look at COST PER USE.",
			"2) Anything above 1 per use goes into review.",
			"3) Cancel one subscription today. Repeat weekly.",
		},
		Hashtags: []string{"#savings", "#subscriptions", "#budget", "#tech"},
		Items: []TemplateItem{
			{Name: "Google One 200GB", MonthlyUses: 10},
			{Name: "Microsoft 365", MonthlyUses: 12},
			{Name: "Amazon Prime", MonthlyUses: 6},
		},
	},
	{
		ID:    "streaming_addict",
		Title: "Streaming Addict (Reality Check)",
		Hook:  "Paying for 4 streaming services and watching 1? Here's how I cut 30% a month.",
		Script: []string{
			"1) Enter every streaming service.",
			"2) Set REAL uses per month.",
			"3) Keep only the 2 with the lowest cost per use.",
		},
		Hashtags: []string{"#netflix", "#streaming", "#money", "#tips"},
		Items: []TemplateItem{
			{Name: "Netflix", MonthlyUses: 6},
			{Name: "Disney+", MonthlyUses: 2},
			{Name: "Amazon Prime Video", MonthlyUses: 3},
		},
	},
	{
		ID:    "fitness_focus",
		Title: "Fitness Focus (No Waste)",
		Hook:  "If you pay for it and don't use it, it's using you. Here's my fix.",
		Script: []string{
			"1) Fitness app + gym + wearable: enter everything.",
			"2) Cost per use too high? Change plan or cancel.",
			"3) 30-day challenge: one check-in per day.",
		},
		Hashtags: []string{"#fitness", "#habits", "#budget", "#mindset"},
		Items: []TemplateItem{
			{Name: "Strava", MonthlyUses: 8},
			{Name: "Apple Fitness+", MonthlyUses: 10},
			{Name: "Headspace", MonthlyUses: 6},
		},
	},
}

// TemplateByID returns the template with the given id.
func TemplateByID(id string) (Template, bool) {
	for _, t := range Templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
