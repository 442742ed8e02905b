package config

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "PORT", "LOG_LEVEL", "BULK_PREVIEW_SIZE", "REDIS_ADDR", "SCHEDULE_CACHE_TTL_SECONDS", "DB_TIMEZONE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.App.BulkPreviewSize != 10 {
		t.Errorf("BulkPreviewSize = %d, want 10", cfg.App.BulkPreviewSize)
	}
	if cfg.Redis.CacheTTL != time.Minute {
		t.Errorf("CacheTTL = %v, want 1m", cfg.Redis.CacheTTL)
	}
	if cfg.App.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want INFO", cfg.App.LogLevel)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BULK_PREVIEW_SIZE", "25")
	t.Setenv("SCHEDULE_CACHE_TTL_SECONDS", "5")
	t.Setenv("DB_TIMEZONE", "Europe/Madrid")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("IsProduction() = false")
	}
	if cfg.App.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v, want DEBUG", cfg.App.LogLevel)
	}
	if cfg.App.BulkPreviewSize != 25 || cfg.Redis.CacheTTL != 5*time.Second {
		t.Errorf("overrides not applied: %+v", cfg.App)
	}
	if !strings.Contains(cfg.DSN(), "TimeZone=Europe/Madrid") {
		t.Errorf("DSN() = %q", cfg.DSN())
	}
}

func TestLoadConfigRejectsBadInteger(t *testing.T) {
	t.Setenv("BULK_PREVIEW_SIZE", "ten")

	_, err := LoadConfig()
	if err == nil || !strings.Contains(err.Error(), "BULK_PREVIEW_SIZE") {
		t.Errorf("error = %v, want one naming BULK_PREVIEW_SIZE", err)
	}
}

func TestLoadConfigRejectsBadLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := LoadConfig(); err == nil {
		t.Error("LoadConfig() error = nil, want LOG_LEVEL error")
	}
}

func TestConnectRedisDisabled(t *testing.T) {
	cfg := &Config{}
	client, err := ConnectRedis(context.Background(), cfg)
	if err != nil || client != nil {
		t.Errorf("ConnectRedis() = %v, %v; want nil, nil", client, err)
	}
}
