// ABOUTME: Tests for configuration loading and backend selection.
// ABOUTME: Uses t.Setenv to isolate XDG paths and overrides.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want sqlite", got)
	}

	cfg.Backend = "postgres"
	if got := cfg.GetBackend(); got != "postgres" {
		t.Errorf("GetBackend() = %q, want postgres", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	tests := []struct {
		input string
		want  string
	}{
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.input); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	want := filepath.Join(tmpDir, "babylog", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BABYLOG_BACKEND", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BABYLOG_TZ", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.GetBackend() != "sqlite" {
		t.Errorf("expected sqlite default, got %q", cfg.GetBackend())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BABYLOG_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/babylog")
	t.Setenv("BABYLOG_TZ", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Backend != "postgres" {
		t.Errorf("Backend = %q, want postgres", cfg.Backend)
	}
	if cfg.DatabaseURL != "postgres://localhost/babylog" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q, want UTC", cfg.Timezone)
	}

	loc, err := cfg.Location()
	if err != nil {
		t.Fatalf("Location failed: %v", err)
	}
	if loc.String() != "UTC" {
		t.Errorf("Location = %v, want UTC", loc)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BABYLOG_BACKEND", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BABYLOG_TZ", "")

	cfg := &Config{
		Backend:  "sqlite",
		DataDir:  "/tmp/babylog-test",
		Timezone: "America/Chicago",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Backend != "sqlite" || loaded.DataDir != "/tmp/babylog-test" || loaded.Timezone != "America/Chicago" {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestOpenStoragePostgresNeedsURL(t *testing.T) {
	cfg := &Config{Backend: "postgres"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for postgres backend without URL")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	cfg := &Config{Backend: "mongodb"}
	if _, err := cfg.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}
	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer repo.Close()

	if _, err := repo.GetOrCreateBaby("June"); err != nil {
		t.Errorf("repository not usable: %v", err)
	}
}
