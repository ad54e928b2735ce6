package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Env var names recognized on top of the config file.
const (
	EnvServerBaseURL = "SERVER_BASE_URL"
	EnvTimeoutSec    = "KWARTA_TIMEOUT_SEC"
)

// DefaultBaseURL is used when neither the config file nor the
// environment provides a server address.
const DefaultBaseURL = "http://localhost:3000"

// Config holds all kwarta configuration.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// ServerConfig holds remote expense-service settings.
type ServerConfig struct {
	BaseURL    string `toml:"base_url"`
	TimeoutSec int    `toml:"timeout_sec"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultUsername string `toml:"default_username,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			BaseURL:    DefaultBaseURL,
			TimeoutSec: 10,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kwarta")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kwarta")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file and applies environment overrides.
// A missing file is not an error; defaults are returned.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return applyEnv(cfg), fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return applyEnv(DefaultConfig()), fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Server.BaseURL == "" {
		cfg.Server.BaseURL = DefaultBaseURL
	}
	if cfg.Server.TimeoutSec <= 0 {
		cfg.Server.TimeoutSec = 10
	}

	return applyEnv(cfg), nil
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

// applyEnv layers .env and process environment over the loaded config.
// Environment wins over the file, matching the original deployment where
// the server address is injected per environment.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load() // absence of .env is fine

	if url := os.Getenv(EnvServerBaseURL); url != "" {
		cfg.Server.BaseURL = url
	}
	if raw := os.Getenv(EnvTimeoutSec); raw != "" {
		if sec, err := strconv.Atoi(raw); err == nil && sec > 0 {
			cfg.Server.TimeoutSec = sec
		}
	}
	return cfg
}
