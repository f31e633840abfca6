package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimal = `
pesapal:
  consumer_key: key
  consumer_secret: secret
  ipn_url: https://api.example.com/api/payments/ipn
  callback_url: https://api.example.com/api/payments/callback
`

func TestLoadPath_Defaults(t *testing.T) {
	cfg, err := LoadPath(writeConfig(t, minimal))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Cart.InactivityWindow)
	assert.Equal(t, 10*time.Minute, cfg.Cart.HoldWindow)
	assert.Equal(t, 12, cfg.Cart.SameDayCutoffHour)
	assert.Equal(t, 5, cfg.Reconcile.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.Reconcile.BaseDelay)
	assert.Equal(t, 3, cfg.Pesapal.RetryStrategy().Attempts)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Empty(t, cfg.RabbitMQ.URL)

	loc, err := cfg.Cart.Location()
	require.NoError(t, err)
	assert.Equal(t, "Africa/Nairobi", loc.String())
}

func TestLoadPath_MissingPesapalCredentials(t *testing.T) {
	if os.Getenv("PESAPAL_CONSUMER_KEY") != "" {
		t.Skip("credentials set in the environment")
	}

	_, err := LoadPath(writeConfig(t, `
pesapal:
  ipn_url: https://api.example.com/api/payments/ipn
  callback_url: https://api.example.com/api/payments/callback
`))

	assert.Error(t, err)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "verbose"}.LogLevel())
}
