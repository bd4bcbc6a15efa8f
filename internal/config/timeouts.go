package config

import "time"

// TimeoutConfig contains process-level timeouts
type TimeoutConfig struct {
	// How long GracefulStop may take before the server is stopped hard.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Upstream feed connection
	NATSReconnectWait time.Duration `mapstructure:"nats_reconnect_wait"`
	NATSMaxReconnects int           `mapstructure:"nats_max_reconnects"`
}

// DefaultTimeoutConfig returns default timeout configurations
func DefaultTimeoutConfig() *TimeoutConfig {
	return &TimeoutConfig{
		ShutdownTimeout:   10 * time.Second,
		NATSReconnectWait: 2 * time.Second,
		NATSMaxReconnects: -1,
	}
}

func (t *TimeoutConfig) normalize() {
	d := DefaultTimeoutConfig()
	if t.ShutdownTimeout <= 0 {
		t.ShutdownTimeout = d.ShutdownTimeout
	}
	if t.NATSReconnectWait <= 0 {
		t.NATSReconnectWait = d.NATSReconnectWait
	}
}
