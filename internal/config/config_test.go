package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points the config dir at a fresh temp dir and clears the env
// overrides so tests don't see the developer's real config.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvServerBaseURL, "")
	t.Setenv(EnvTimeoutSec, "")
	return dir
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Server.BaseURL, DefaultBaseURL)
	}
	if cfg.Server.TimeoutSec != 10 {
		t.Errorf("TimeoutSec = %d, want 10", cfg.Server.TimeoutSec)
	}
	if Exists() {
		t.Error("Exists() = true with no file on disk")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	isolate(t)

	want := DefaultConfig()
	want.Server.BaseURL = "http://expenses.internal:8080"
	want.Server.TimeoutSec = 30
	want.General.DefaultUsername = "alice"
	want.Appearance.Theme = "catppuccin-mocha"

	if err := Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.Server.BaseURL = "http://from-file:3000"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	t.Setenv(EnvServerBaseURL, "http://from-env:9000")
	t.Setenv(EnvTimeoutSec, "25")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Server.BaseURL != "http://from-env:9000" {
		t.Errorf("BaseURL = %q, want env value", got.Server.BaseURL)
	}
	if got.Server.TimeoutSec != 25 {
		t.Errorf("TimeoutSec = %d, want 25", got.Server.TimeoutSec)
	}
}

func TestBadTimeoutEnvIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvTimeoutSec, "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.TimeoutSec != 10 {
		t.Errorf("TimeoutSec = %d, want default 10", cfg.Server.TimeoutSec)
	}
}

func TestLoadClampsBlankFileValues(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "kwarta")
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	raw := "[server]\nbase_url = \"\"\ntimeout_sec = 0\n"
	if err := os.WriteFile(filepath.Join(path, "config.toml"), []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.Server.BaseURL)
	}
	if cfg.Server.TimeoutSec != 10 {
		t.Errorf("TimeoutSec = %d, want 10", cfg.Server.TimeoutSec)
	}
}
