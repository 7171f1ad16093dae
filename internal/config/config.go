// Package config loads and saves billdue settings from a TOML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all billdue configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Storage    StorageConfig    `toml:"storage"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir        string `toml:"data_dir,omitempty"`
	DueSoonDays    int    `toml:"due_soon_days"`
	CurrencySymbol string `toml:"currency_symbol"`
}

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend string `toml:"backend"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DueSoonDays:    5,
			CurrencySymbol: "$",
		},
		Storage: StorageConfig{
			Backend: "file",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "billdue")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "billdue")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DefaultDataDir returns the XDG-compliant data directory.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "billdue")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "billdue")
}

// DataDir resolves the data directory from the config, falling back to the
// XDG default when unset.
func (c Config) DataDir() string {
	if c.General.DataDir != "" {
		return c.General.DataDir
	}
	return DefaultDataDir()
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

	if cfg.General.DueSoonDays < 0 {
		cfg.General.DueSoonDays = 5
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

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
