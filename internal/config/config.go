// Package config loads and saves the chitieu TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all chitieu configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Display    DisplayConfig    `toml:"display"`
}

// GeneralConfig holds storage settings.
type GeneralConfig struct {
	DBPath     string `toml:"db_path,omitempty"`
	StorageKey string `toml:"storage_key"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DisplayConfig holds dashboard layout preferences.
type DisplayConfig struct {
	ShowShareChart bool `toml:"show_share_chart"`
	ChartHeight    int  `toml:"chart_height"`
}

// Environment variables that override the file.
const (
	EnvDB         = "CHITIEU_DB"
	EnvStorageKey = "CHITIEU_STORAGE_KEY"
	EnvTheme      = "CHITIEU_THEME"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			StorageKey: "expenses",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Display: DisplayConfig{
			ShowShareChart: true,
			ChartHeight:    10,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "chitieu")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "chitieu")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// Environment overrides are applied on top.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.General.StorageKey == "" {
		cfg.General.StorageKey = DefaultConfig().General.StorageKey
	}
	if cfg.Display.ChartHeight < 4 {
		cfg.Display.ChartHeight = DefaultConfig().Display.ChartHeight
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDB); v != "" {
		cfg.General.DBPath = v
	}
	if v := os.Getenv(EnvStorageKey); v != "" {
		cfg.General.StorageKey = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Appearance.Theme = v
	}
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

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
