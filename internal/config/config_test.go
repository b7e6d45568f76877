package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
discovery:
  default_limit: 10
limits:
  swipes_per_minute: 30
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Discovery.DefaultLimit != 10 {
		t.Fatalf("unexpected discovery default limit: %d", cfg.Discovery.DefaultLimit)
	}
	if cfg.Limits.SwipesPerMinute != 30 {
		t.Fatalf("unexpected swipes/minute: %d", cfg.Limits.SwipesPerMinute)
	}

	if cfg.Discovery.MaxLimit != 50 {
		t.Fatalf("discovery max_limit default should stay 50, got %d", cfg.Discovery.MaxLimit)
	}
	if cfg.Limits.SwipesPer10Seconds != 15 {
		t.Fatalf("swipes_per_10sec default should stay 15, got %d", cfg.Limits.SwipesPer10Seconds)
	}
	if cfg.HTTP.WriteTimeout.String() != "10s" {
		t.Fatalf("unexpected write timeout default: %s", cfg.HTTP.WriteTimeout)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Discovery.DefaultLimit != 20 || cfg.Discovery.MaxLimit != 50 {
		t.Fatalf("unexpected discovery defaults: %+v", cfg.Discovery)
	}
	if cfg.Limits.SwipesPerMinute != 60 {
		t.Fatalf("unexpected default swipes/minute: %d", cfg.Limits.SwipesPerMinute)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("unexpected default log level: %s", cfg.Log.Level)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("SWIPES_PER_10SEC", "3")
	t.Setenv("DISCOVERY_MAX_LIMIT", "25")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env override for http addr ignored: %s", cfg.HTTP.Addr)
	}
	if cfg.Limits.SwipesPer10Seconds != 3 {
		t.Fatalf("env override for swipes_per_10sec ignored: %d", cfg.Limits.SwipesPer10Seconds)
	}
	if cfg.Discovery.MaxLimit != 25 {
		t.Fatalf("env override for discovery max_limit ignored: %d", cfg.Discovery.MaxLimit)
	}
}

func TestLoadRejectsBadEnvValue(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for unparseable REDIS_DB")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"DISCOVERY_DEFAULT_LIMIT",
		"DISCOVERY_MAX_LIMIT",
		"SWIPES_PER_MINUTE",
		"SWIPES_PER_10SEC",
	} {
		t.Setenv(key, "")
	}
}
