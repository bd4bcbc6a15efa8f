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
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))
	return configFile
}

func TestConfigurationLoading(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	configFile := writeConfig(t, `
rpc:
  listen_addr: "127.0.0.1:10001"
  auth:
    enabled: true
    bearer_tokens: ["0123456789abcdef0123"]

bus:
  subscriber_buffer: 32

session:
  outbound_buffer: 16
  idle_timeout: 30s

publisher:
  enabled: true
  interval: 250ms
  start_slot: 42
  account_writes: 2

feed:
  enabled: true
  url: "nats://127.0.0.1:4222"
  subject: "updates"
  dedupe_ttl: 2m

server:
  max_subscribers: 8

logging:
  level: debug
  format: json

timeouts:
  shutdown_timeout: 3s
`)

	cfg, err := Load(configFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "127.0.0.1:10001", cfg.RPC.ListenAddr)
	assert.True(t, cfg.RPC.Auth.Enabled)
	assert.Equal(t, []string{"0123456789abcdef0123"}, cfg.RPC.Auth.BearerTokens)

	assert.Equal(t, 32, cfg.Bus.SubscriberBuffer)
	assert.Equal(t, 16, cfg.Session.OutboundBuffer)
	assert.Equal(t, 30*time.Second, cfg.Session.IdleTimeout)

	assert.Equal(t, 250*time.Millisecond, cfg.Publisher.Interval)
	assert.Equal(t, uint64(42), cfg.Publisher.StartSlot)
	assert.Equal(t, 2, cfg.Publisher.AccountWrites)

	assert.True(t, cfg.Feed.Enabled)
	assert.Equal(t, "updates", cfg.Feed.Subject)
	assert.Equal(t, 2*time.Minute, cfg.Feed.DedupeTTL)
	assert.Equal(t, 4096, cfg.Feed.DedupeMax, "unset values keep their defaults")

	assert.Equal(t, 8, cfg.Server.MaxSubscribers)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	assert.Equal(t, 3*time.Second, cfg.Timeouts.ShutdownTimeout)
	assert.Equal(t, 2*time.Second, cfg.Timeouts.NATSReconnectWait)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "[::1]:10000", cfg.RPC.ListenAddr)
	assert.Equal(t, 100, cfg.Bus.SubscriberBuffer)
	assert.Equal(t, 100, cfg.Session.OutboundBuffer)
	assert.Equal(t, time.Second, cfg.Publisher.Interval)
	assert.True(t, cfg.Publisher.Enabled)
	assert.False(t, cfg.Feed.Enabled)
	assert.Zero(t, cfg.Session.IdleTimeout)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	t.Setenv("ACCOUNTSDB_RPC_LISTEN_ADDR", "127.0.0.1:12000")
	t.Setenv("ACCOUNTSDB_BUS_SUBSCRIBER_BUFFER", "7")
	t.Setenv("ACCOUNTSDB_SESSION_IDLE_TIMEOUT", "5s")

	cfg, err := Load(writeConfig(t, "bus:\n  subscriber_buffer: 50\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:12000", cfg.RPC.ListenAddr)
	assert.Equal(t, 7, cfg.Bus.SubscriberBuffer)
	assert.Equal(t, 5*time.Second, cfg.Session.IdleTimeout)
}

func TestNormalizeReplacesUnusableValues(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	cfg, err := Load(writeConfig(t, `
bus:
  subscriber_buffer: -5
session:
  outbound_buffer: 0
  idle_timeout: -1s
server:
  max_subscribers: -3
`))
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.Bus.SubscriberBuffer)
	assert.Equal(t, 100, cfg.Session.OutboundBuffer)
	assert.Zero(t, cfg.Session.IdleTimeout)
	assert.Zero(t, cfg.Server.MaxSubscribers)
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	cfg, err := Load(filepath.Join("..", "..", "config", "accountsdb.yaml"))
	require.NoError(t, err)

	assert.Empty(t, cfg.RPC.Auth.BearerTokens)
	cfg.RPC.Auth.BearerTokens = nil
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestDefaultTimeoutConfig(t *testing.T) {
	cfg := DefaultTimeoutConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, 2*time.Second, cfg.NATSReconnectWait)
	assert.Equal(t, -1, cfg.NATSMaxReconnects)
}
