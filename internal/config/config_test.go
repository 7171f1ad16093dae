package config

import (
	"os"
	"path/filepath"
	"testing"
)

// withConfigHome points XDG_CONFIG_HOME at a temp dir for the test.
func withConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	withConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DueSoonDays != 5 {
		t.Errorf("DueSoonDays = %d, want 5", cfg.General.DueSoonDays)
	}
	if cfg.Storage.Backend != "file" {
		t.Errorf("Backend = %q, want file", cfg.Storage.Backend)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Errorf("Theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	withConfigHome(t)

	cfg := DefaultConfig()
	cfg.General.DueSoonDays = 10
	cfg.General.DataDir = "/tmp/billdue-test"
	cfg.Storage.Backend = "sqlite"
	cfg.Appearance.Theme = "tokyo-night"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Fatalf("round-trip mismatch:\n got %+v\nwant %+v", got, cfg)
	}
}

func TestLoad_NegativeDueSoonResets(t *testing.T) {
	dir := withConfigHome(t)

	path := filepath.Join(dir, "billdue", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[general]\ndue_soon_days = -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DueSoonDays != 5 {
		t.Errorf("DueSoonDays = %d, want reset to 5", cfg.General.DueSoonDays)
	}
}

func TestDataDir_FallsBackToXDGDefault(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := DefaultConfig()
	if got := cfg.DataDir(); got != "/tmp/xdg-data/billdue" {
		t.Errorf("DataDir = %q, want /tmp/xdg-data/billdue", got)
	}

	cfg.General.DataDir = "/explicit"
	if got := cfg.DataDir(); got != "/explicit" {
		t.Errorf("DataDir = %q, want /explicit", got)
	}
}

func TestExists(t *testing.T) {
	withConfigHome(t)

	if Exists() {
		t.Fatal("Exists = true before save")
	}
	if err := Save(DefaultConfig()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after save")
	}
}
