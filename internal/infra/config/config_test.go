package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredVars(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "practicum-token")
	t.Setenv("TELEGRAM_TOKEN", "telegram-token")
	t.Setenv("TELEGRAM_CHAT_ID", "123456789")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("ENDPOINT", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "practicum-token", cfg.PracticumToken)
	assert.Equal(t, int64(123456789), cfg.TelegramChatID)
	assert.Equal(t, DefaultEndpoint, cfg.Endpoint)
	assert.Equal(t, 600*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "0 9 * * *", cfg.CronSpecDailySummary)
}

func TestLoad_MissingRequiredVars(t *testing.T) {
	required := []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}

	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			setRequiredVars(t)
			t.Setenv(name, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestLoad_InvalidChatID(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("ENDPOINT", "http://localhost:8080/statuses/")
	t.Setenv("POLL_INTERVAL_SECONDS", "5")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "2")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("ENVIRONMENT", "Production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/statuses/", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.PollInterval)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoad_InvalidPollInterval(t *testing.T) {
	setRequiredVars(t)
	t.Setenv("POLL_INTERVAL_SECONDS", "-10")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POLL_INTERVAL_SECONDS")
}
