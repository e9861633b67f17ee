package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: opne
mysql:
  dsn: "user:pass@tcp(localhost:3306)/opne"
redis:
  addr: "localhost:6379"
lmstfy:
  host: "localhost"
  port: 7777
  namespace: "opne"
  token: "secret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "priority_dashboard", cfg.Broadcast.Channel)
	assert.Equal(t, "order_events", cfg.Lmstfy.EventQueue)
	assert.Equal(t, 3, cfg.Listener.Timeout)
	assert.Equal(t, 30, cfg.Listener.TTR)
	assert.Equal(t, time.Second, cfg.Listener.PollInterval)
	assert.Equal(t, time.Hour, cfg.Cleanup.Interval)
	assert.Equal(t, 7, cfg.Cleanup.RetentionDays)
	assert.Equal(t, 5*time.Minute, cfg.Cleanup.PassTimeout)

	require.NoError(t, cfg.Validate())
}

func TestLoadRespectsExplicitValues(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
mysql:
  dsn: "dsn"
redis:
  addr: "localhost:6379"
lmstfy:
  host: "localhost"
  token: "secret"
  event_queue: "custom_events"
listener:
  timeout: 5
  ttr: 60
cleanup:
  retention_days: 30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "custom_events", cfg.Lmstfy.EventQueue)
	assert.Equal(t, 5, cfg.Listener.Timeout)
	assert.Equal(t, 60, cfg.Listener.TTR)
	assert.Equal(t, 30, cfg.Cleanup.RetentionDays)
}

func TestValidateMissingRequired(t *testing.T) {
	cfg := &Config{}
	require.Error(t, cfg.Validate())

	cfg.MySQL.DSN = "dsn"
	require.Error(t, cfg.Validate())

	cfg.Redis.Addr = "localhost:6379"
	require.Error(t, cfg.Validate())

	cfg.Lmstfy.Host = "localhost"
	require.Error(t, cfg.Validate())

	cfg.Lmstfy.Token = "secret"
	require.NoError(t, cfg.Validate())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
