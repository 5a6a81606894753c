package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCatalogue_ByNameAndNames(t *testing.T) {
	c := NewCatalogue(DefaultPresets)

	p, ok := c.ByName("Netflix")
	if !ok {
		t.Fatal("Netflix missing from default catalogue")
	}
	if p.Category != "Streaming" {
		t.Fatalf("Netflix category = %q, want Streaming", p.Category)
	}
	if !p.MonthlyPrice.IsPositive() {
		t.Fatalf("Netflix price = %s, want > 0", p.MonthlyPrice)
	}

	if _, ok := c.ByName("Nonexistent Service"); ok {
		t.Fatal("unknown preset should not resolve")
	}

	names := c.Names()
	if len(names) != len(DefaultPresets) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(DefaultPresets))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestTemplateItemsResolveAgainstDefaultCatalogue(t *testing.T) {
	c := NewCatalogue(DefaultPresets)
	for _, tpl := range Templates {
		for _, item := range tpl.Items {
			if _, ok := c.ByName(item.Name); !ok {
				t.Errorf("template %s references unknown preset %q", tpl.ID, item.Name)
			}
		}
	}
}

func TestLoadCatalogue_FileOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "presets.json")
	body := `{"items":[{"name":"Custom TV","category":"Streaming","icon":"📺","monthly_price":3.5}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.General.PresetsPath = path

	c := LoadCatalogue(cfg)
	p, ok := c.ByName("Custom TV")
	if !ok {
		t.Fatal("file override not loaded")
	}
	if p.MonthlyPrice.String() != "3.5" {
		t.Fatalf("price = %s, want 3.5", p.MonthlyPrice)
	}
}

func TestLoadCatalogue_BadFileFallsBackToDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.PresetsPath = filepath.Join(t.TempDir(), "missing.json")

	c := LoadCatalogue(cfg)
	if _, ok := c.ByName("Spotify"); !ok {
		t.Fatal("expected built-in catalogue fallback")
	}
}

func TestChallengeByID(t *testing.T) {
	c, ok := ChallengeByID("no_waste_14d")
	if !ok {
		t.Fatal("no_waste_14d missing")
	}
	if c.Days != 14 {
		t.Fatalf("days = %d, want 14", c.Days)
	}
	if _, ok := ChallengeByID("nope"); ok {
		t.Fatal("unknown challenge should not resolve")
	}
}
