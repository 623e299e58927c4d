// ABOUTME: Babylog configuration management with backend selection.
// ABOUTME: JSON config file plus .env/environment overrides; storage factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/harperreed/babylog/internal/storage"
	"github.com/harperreed/babylog/internal/timeframe"
	"github.com/joho/godotenv"
)

// Config stores babylog configuration.
type Config struct {
	// Backend selects the storage backend: "sqlite" (default) or "postgres".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for SQLite data storage.
	// Supports ~ expansion. Defaults to ~/.local/share/babylog.
	DataDir string `json:"data_dir,omitempty"`

	// DatabaseURL is the Postgres connection URL, used when Backend is
	// "postgres". The DATABASE_URL environment variable takes precedence.
	DatabaseURL string `json:"database_url,omitempty"`

	// Timezone is the named zone used to compute "today" for timeframe
	// resolution. Defaults to America/New_York.
	Timezone string `json:"timezone,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "sqlite".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "sqlite"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return storage.DataDir()
	}
	return ExpandPath(c.DataDir)
}

// Location loads the configured reporting timezone.
func (c *Config) Location() (*time.Location, error) {
	return timeframe.LoadLocation(c.Timezone)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStorage creates a Repository implementation based on the configured
// backend.
func (c *Config) OpenStorage() (storage.Repository, error) {
	switch backend := c.GetBackend(); backend {
	case "sqlite":
		return storage.Open(filepath.Join(c.GetDataDir(), "babylog.db"))
	case "postgres":
		if strings.TrimSpace(c.DatabaseURL) == "" {
			return nil, fmt.Errorf("postgres backend requires a database URL (set DATABASE_URL or database_url in config)")
		}
		return storage.OpenPostgres(c.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "babylog", "config.json")
}

// Load reads config from disk and applies environment overrides. A .env
// file in the working directory is honored for DATABASE_URL-style setups.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	var cfg Config
	data, err := os.ReadFile(GetConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if v := os.Getenv("BABYLOG_BACKEND"); v != "" {
		cfg.Backend = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("BABYLOG_TZ"); v != "" {
		cfg.Timezone = v
	}

	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
