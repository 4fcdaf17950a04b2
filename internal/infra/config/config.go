package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultEndpoint is the homework statuses endpoint of the Practicum API.
	DefaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

	defaultPollIntervalSeconds   = 600
	defaultRequestTimeoutSeconds = 30
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken       string
	TelegramToken        string
	TelegramChatID       int64
	Endpoint             string
	PollInterval         time.Duration
	RequestTimeout       time.Duration
	LogLevel             string
	Environment          string
	CronSpecDailySummary string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.Endpoint = os.Getenv("ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}

	cfg.PollInterval, err = secondsFromEnv("POLL_INTERVAL_SECONDS", defaultPollIntervalSeconds)
	if err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = secondsFromEnv("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeoutSeconds)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecDailySummary = os.Getenv("CRON_SPEC_DAILY_SUMMARY")
	if cfg.CronSpecDailySummary == "" {
		cfg.CronSpecDailySummary = "0 9 * * *" // Default: 9 AM daily
	}

	return cfg, nil
}

func secondsFromEnv(name string, defaultSeconds int) (time.Duration, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return time.Duration(defaultSeconds) * time.Second, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", name, raw)
	}
	return time.Duration(seconds) * time.Second, nil
}
