package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {

	for _, key := range []string{"PORT", "DATA_FILE", "REDIS_ADDR", "RATE_LIMIT", "RATE_WINDOW_SECONDS", "CONFIG_FILE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.DataFile != "loan_data.json" {
		t.Errorf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.RedisAddr != "" {
		t.Errorf("expected no redis by default, got %q", cfg.RedisAddr)
	}
	if cfg.RateLimit != 60 || cfg.RateWindow != time.Minute {
		t.Errorf("unexpected rate limit config: %d per %s", cfg.RateLimit, cfg.RateWindow)
	}
}

func TestLoadFromEnv(t *testing.T) {

	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_FILE", "/tmp/loans.json")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_WINDOW_SECONDS", "30")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.DataFile != "/tmp/loans.json" {
		t.Errorf("unexpected data file: %q", cfg.DataFile)
	}
	if cfg.RateLimit != 10 || cfg.RateWindow != 30*time.Second {
		t.Errorf("unexpected rate limit config: %d per %s", cfg.RateLimit, cfg.RateWindow)
	}
}

func TestLoadYAMLOverride(t *testing.T) {

	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := "port: 7070\ndata_file: override.json\nrate_limit: 5\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("PORT", "9090")
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 7070 {
		t.Errorf("config file should override env, got port %d", cfg.Port)
	}
	if cfg.DataFile != "override.json" {
		t.Errorf("unexpected data file: %q", cfg.DataFile)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("expected rate limit 5, got %d", cfg.RateLimit)
	}
}

func TestLoadBadConfigFile(t *testing.T) {

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
