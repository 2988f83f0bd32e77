package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"elepad_reminders/internal/domain/recurrence"

	"github.com/joho/godotenv"
)

const (
	defaultLogLevel            = "info"
	defaultEnvironment         = "development"
	defaultCronSpecReminder    = "0 * * * *" // Hourly, on the hour
	defaultTimezone            = "-03:00"
	defaultScanTimeout         = 5 * time.Minute
	defaultDispatchConcurrency = 10
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL         string
	TelegramToken       string // Empty disables push delivery; notifications are still stored
	LogLevel            string
	Environment         string
	CronSpecReminder    string
	Timezone            string
	Zone                recurrence.Zone
	ScanTimeout         time.Duration
	DispatchConcurrency int
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")

	cfg.LogLevel = strings.ToLower(envOr("LOG_LEVEL", defaultLogLevel))
	cfg.Environment = strings.ToLower(envOr("ENVIRONMENT", defaultEnvironment))
	cfg.CronSpecReminder = envOr("CRON_SPEC_REMINDER_SCAN", defaultCronSpecReminder)

	cfg.Timezone = envOr("TIMEZONE", defaultTimezone)
	cfg.Zone, err = recurrence.ParseZone(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	cfg.ScanTimeout = defaultScanTimeout
	if v := os.Getenv("SCAN_TIMEOUT"); v != "" {
		cfg.ScanTimeout, err = time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SCAN_TIMEOUT: %w", err)
		}
		if cfg.ScanTimeout <= 0 {
			return nil, fmt.Errorf("invalid SCAN_TIMEOUT: must be positive, got %s", v)
		}
	}

	cfg.DispatchConcurrency = defaultDispatchConcurrency
	if v := os.Getenv("DISPATCH_CONCURRENCY"); v != "" {
		cfg.DispatchConcurrency, err = strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DISPATCH_CONCURRENCY: %w", err)
		}
		if cfg.DispatchConcurrency < 1 {
			return nil, fmt.Errorf("invalid DISPATCH_CONCURRENCY: must be at least 1, got %d", cfg.DispatchConcurrency)
		}
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
