package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv deja las variables vacías; viper ignora env vacías.
func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_FILE", "")
	for _, env := range keys {
		t.Setenv(env, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Addr() != ":8080" {
		t.Fatalf("unexpected port %q addr %q", cfg.Port, cfg.Addr())
	}
	if cfg.AppName != "babylog" {
		t.Fatalf("unexpected app name %q", cfg.AppName)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %v", cfg.ShutdownTimeout)
	}
	if cfg.Location() != time.Local {
		t.Fatalf("expected time.Local, got %v", cfg.Location())
	}
	if !cfg.DevAuth() {
		t.Fatalf("expected dev auth without AUTH_BASE_URL")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "babylog.yaml")
	if err := os.WriteFile(path, []byte("port: \"9000\"\ntimezone: Europe/Madrid\nlog_level: debug\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "9000" {
		t.Fatalf("expected port from file, got %q", cfg.Port)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env to win, got %q", cfg.LogLevel)
	}
	if cfg.Location().String() != "Europe/Madrid" {
		t.Fatalf("unexpected location %v", cfg.Location())
	}
}

func TestLoad_InvalidTimezone(t *testing.T) {
	clearEnv(t)
	t.Setenv("TIMEZONE", "Mars/Olympus")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown timezone")
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
