package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorModeFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want ValidationMode
	}{
		{"", ValidationModeDevelopment},
		{"prod", ValidationModeProduction},
		{"TESTING", ValidationModeTest},
		{"dev", ValidationModeDevelopment},
		{"bogus", ValidationModeDevelopment},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(ModeEnv, tt.env)
			assert.Equal(t, tt.want, NewConfigValidator().Mode())
		})
	}
}

func TestValidatorRejectsBadAddressInEveryMode(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	cfg := Default()
	cfg.RPC.ListenAddr = "no-port"

	err := NewConfigValidator().Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc.listen_addr")
}

func TestValidatorFeedRequiresSubject(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	cfg := Default()
	cfg.Feed.Enabled = true
	cfg.Feed.Subject = " "

	err := NewConfigValidator().Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "feed.subject")
}

func TestValidatorMetricsMustNotShareRPCAddr(t *testing.T) {
	t.Setenv(ModeEnv, "test")
	cfg := Default()
	cfg.Metrics.Enabled = true
	cfg.Metrics.ListenAddr = cfg.RPC.ListenAddr

	require.Error(t, NewConfigValidator().Validate(cfg))
}

func TestValidatorProductionIsStrict(t *testing.T) {
	cfg := Default()
	cfg.RPC.Auth.Enabled = true

	// development: policy findings become warnings
	t.Setenv(ModeEnv, "development")
	v := NewConfigValidator()
	require.NoError(t, v.Validate(cfg))
	assert.NotEmpty(t, v.Warnings())

	err := ValidateProductionReadiness(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no bearer tokens")
	assert.Contains(t, err.Error(), "Synthetic publisher")

	cfg.RPC.Auth.BearerTokens = []string{"0123456789abcdef0123"}
	cfg.Publisher.Enabled = false
	require.NoError(t, ValidateProductionReadiness(cfg))
}

func TestValidatorPublisherInterval(t *testing.T) {
	cfg := Default()
	cfg.Publisher.Interval = time.Millisecond
	cfg.RPC.Auth.Enabled = true
	cfg.RPC.Auth.BearerTokens = []string{"0123456789abcdef0123"}

	err := ValidateProductionReadiness(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publisher.interval too short")
}
