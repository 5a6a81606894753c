package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all streamsaver configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Supabase   SupabaseConfig   `toml:"supabase"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	CurrencySymbol string `toml:"currency_symbol"`
	DecimalComma   bool   `toml:"decimal_comma"`
	FreeLimit      int    `toml:"free_limit"`
	Premium        bool   `toml:"premium"`
	PresetsPath    string `toml:"presets_path,omitempty"`
	PresetsURL     string `toml:"presets_url,omitempty"`
	DataDir        string `toml:"data_dir,omitempty"`
}

// SupabaseConfig holds cloud sync settings and the saved session.
type SupabaseConfig struct {
	URL     string `toml:"url,omitempty"`
	AnonKey string `toml:"anon_key,omitempty"`

	// Session saved by `streamsaver login`; cleared on logout.
	AccessToken string `toml:"access_token,omitempty"`
	UserID      string `toml:"user_id,omitempty"`
	Email       string `toml:"email,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Categories is the fixed category list offered when adding a subscription.
var Categories = []string{
	"Streaming",
	"Music",
	"Gaming",
	"Cloud",
	"Productivity",
	"Fitness & Mind",
	"Finance",
	"Telephony",
	"Other",
}

// DefaultConfig returns the default configuration: euro amounts with a comma
// separator and a free tier of 3 subscriptions.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			CurrencySymbol: "€",
			DecimalComma:   true,
			FreeLimit:      3,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "streamsaver")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "streamsaver")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataPath returns the path of the local SQLite database, honoring the
// data_dir override.
func DataPath(cfg Config) string {
	if cfg.General.DataDir != "" {
		return filepath.Join(cfg.General.DataDir, "streamsaver.db")
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "streamsaver", "streamsaver.db")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "streamsaver", "streamsaver.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// GetSupabaseURL returns the Supabase project URL from env var or config.
func GetSupabaseURL(cfg Config) string {
	if url := os.Getenv("STREAMSAVER_SUPABASE_URL"); url != "" {
		return url
	}
	return cfg.Supabase.URL
}

// GetSupabaseAnonKey returns the anon API key from env var or config.
func GetSupabaseAnonKey(cfg Config) string {
	if key := os.Getenv("STREAMSAVER_SUPABASE_ANON_KEY"); key != "" {
		return key
	}
	return cfg.Supabase.AnonKey
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
