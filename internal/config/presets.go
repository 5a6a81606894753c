package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Preset is one entry of the built-in subscription catalogue: a known
// service with its list price, used to prefill the add flow and template
// imports.
type Preset struct {
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Icon         string          `json:"icon"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	// YearlyPrice is the official annual price when the service sells one,
	// zero otherwise.
	YearlyPrice decimal.Decimal `json:"yearly_price,omitempty"`
}

// presetFile is the on-disk / remote catalogue format.
type presetFile struct {
	Items []Preset `json:"items"`
}

// DefaultPresets is the built-in catalogue. Prices are EUR list prices and
// only a starting point; users adjust them after adding.
var DefaultPresets = []Preset{
	{Name: "Netflix", Category: "Streaming", Icon: "🎬", MonthlyPrice: dec("13.99")},
	{Name: "Disney+", Category: "Streaming", Icon: "🏰", MonthlyPrice: dec("9.99"), YearlyPrice: dec("99.90")},
	{Name: "Amazon Prime Video", Category: "Streaming", Icon: "📺", MonthlyPrice: dec("8.99")},
	{Name: "Amazon Prime", Category: "Streaming", Icon: "📦", MonthlyPrice: dec("4.99"), YearlyPrice: dec("49.90")},
	{Name: "YouTube Premium", Category: "Streaming", Icon: "▶️", MonthlyPrice: dec("13.99")},
	{Name: "Spotify", Category: "Music", Icon: "🎧", MonthlyPrice: dec("10.99")},
	{Name: "Apple Music", Category: "Music", Icon: "🎵", MonthlyPrice: dec("10.99")},
	{Name: "PlayStation Plus", Category: "Gaming", Icon: "🎮", MonthlyPrice: dec("8.99"), YearlyPrice: dec("71.99")},
	{Name: "Xbox Game Pass", Category: "Gaming", Icon: "🕹️", MonthlyPrice: dec("14.99")},
	{Name: "Google One 200GB", Category: "Cloud", Icon: "☁️", MonthlyPrice: dec("2.99"), YearlyPrice: dec("29.99")},
	{Name: "iCloud+ 200GB", Category: "Cloud", Icon: "🍏", MonthlyPrice: dec("2.99")},
	{Name: "Dropbox Plus", Category: "Cloud", Icon: "📁", MonthlyPrice: dec("11.99"), YearlyPrice: dec("119.88")},
	{Name: "Microsoft 365", Category: "Productivity", Icon: "📊", MonthlyPrice: dec("10.00"), YearlyPrice: dec("99.00")},
	{Name: "ChatGPT Plus", Category: "Productivity", Icon: "🤖", MonthlyPrice: dec("23.00")},
	{Name: "Strava", Category: "Fitness & Mind", Icon: "🏃", MonthlyPrice: dec("11.99"), YearlyPrice: dec("59.99")},
	{Name: "Apple Fitness+", Category: "Fitness & Mind", Icon: "💪", MonthlyPrice: dec("9.99")},
	{Name: "Headspace", Category: "Fitness & Mind", Icon: "🧘", MonthlyPrice: dec("12.99"), YearlyPrice: dec("57.99")},
	{Name: "NordVPN", Category: "Productivity", Icon: "🔒", MonthlyPrice: dec("12.99")},
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Catalogue holds the active preset list, indexed by name.
type Catalogue struct {
	items  []Preset
	byName map[string]Preset
}

// NewCatalogue builds a catalogue from a preset list.
func NewCatalogue(items []Preset) *Catalogue {
	c := &Catalogue{items: items, byName: make(map[string]Preset, len(items))}
	for _, p := range items {
		c.byName[p.Name] = p
	}
	return c
}

// LoadCatalogue returns the preset catalogue, preferring a remote URL, then
// a local file, then the built-in list. Load failures fall through silently:
// a missing catalogue must never break the app.
func LoadCatalogue(cfg Config) *Catalogue {
	if cfg.General.PresetsURL != "" {
		if items, err := fetchPresets(cfg.General.PresetsURL); err == nil {
			return NewCatalogue(items)
		}
	}
	if cfg.General.PresetsPath != "" {
		if items, err := readPresets(cfg.General.PresetsPath); err == nil {
			return NewCatalogue(items)
		}
	}
	return NewCatalogue(DefaultPresets)
}

func readPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return parsePresets(data)
}

func fetchPresets(url string) ([]Preset, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 6*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("presets: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	return parsePresets(data)
}

func parsePresets(data []byte) ([]Preset, error) {
	var f presetFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("presets: parsing catalogue: %w", err)
	}
	if len(f.Items) == 0 {
		return nil, fmt.Errorf("presets: empty catalogue")
	}
	return f.Items, nil
}

// Names returns all preset names, sorted.
func (c *Catalogue) Names() []string {
	names := make([]string, 0, len(c.items))
	for _, p := range c.items {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the preset with the given name.
func (c *Catalogue) ByName(name string) (Preset, bool) {
	p, ok := c.byName[name]
	return p, ok
}
