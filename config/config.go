package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	App struct {
		Env             string // APP_ENV
		Port            string // PORT
		LogLevel        slog.Level
		BulkPreviewSize int
		DefaultPageSize int
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
		TimeZone string
	}
	Redis struct {
		Addr     string // empty disables the schedule cache
		Password string
		DB       int
		CacheTTL time.Duration
	}
	Telemetry struct {
		ServiceName  string
		OTLPEndpoint string // empty disables metric export
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// LoadConfig reads configuration from the environment. A .env file, when present,
// is loaded first without overriding variables that are already set.
func LoadConfig() (*Config, error) {
	envFileErr := godotenv.Load()

	cfg := &Config{}
	var err error

	// --- App Configuration ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "8088")
	if cfg.App.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.App.BulkPreviewSize, err = getEnvAsInt("BULK_PREVIEW_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.App.DefaultPageSize, err = getEnvAsInt("DEFAULT_PAGE_SIZE", 20); err != nil {
		return nil, err
	}

	// --- Database Configuration ---
	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", "password")
	cfg.DB.Name = getEnv("DB_NAME", "courtplan")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.DB.TimeZone = getEnv("DB_TIMEZONE", "UTC")

	// --- Redis Configuration ---
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	if cfg.Redis.DB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	ttlSeconds, err := getEnvAsInt("SCHEDULE_CACHE_TTL_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.Redis.CacheTTL = time.Duration(ttlSeconds) * time.Second

	// --- Telemetry Configuration ---
	cfg.Telemetry.ServiceName = getEnv("SERVICE_NAME", "courtplan")
	cfg.Telemetry.OTLPEndpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	if envFileErr != nil {
		slog.Debug("no .env file loaded, relying on process environment")
	}
	if cfg.DB.Password == "password" && cfg.IsProduction() {
		slog.Warn("using the default DB password in production; set DB_PASSWORD")
	}
	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
		c.DB.TimeZone,
	)
}

// ConnectDB opens the database. TranslateError is enabled so repositories can
// recognise duplicate-key and foreign-key violations.
func ConnectDB(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connected",
		slog.String("host", cfg.DB.Host),
		slog.String("name", cfg.DB.Name),
	)
	return db, nil
}

// ConnectRedis returns nil when REDIS_ADDR is unset. The client is instrumented
// with redisotel tracing and metrics and pinged before it is returned.
func ConnectRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisotel.InstrumentTracing(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to instrument redis tracing: %w", err)
	}
	if err := redisotel.InstrumentMetrics(client); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to instrument redis metrics: %w", err)
	}
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}

	slog.Info("redis connected", slog.String("addr", cfg.Redis.Addr))
	return client, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("env var LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}
