package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides, e.g. ACCOUNTSDB_RPC_LISTEN_ADDR.
const EnvPrefix = "ACCOUNTSDB"

type RPCConfig struct {
	ListenAddr string        `mapstructure:"listen_addr"`
	Auth       RPCAuthConfig `mapstructure:"auth"`
}

type RPCAuthConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Static bearer tokens accepted on the Subscribe stream.
	BearerTokens []string `mapstructure:"bearer_tokens"`
}

type BusConfig struct {
	// Per-subscriber backlog before the subscriber is considered lagging.
	SubscriberBuffer int `mapstructure:"subscriber_buffer"`
}

type SessionConfig struct {
	OutboundBuffer int `mapstructure:"outbound_buffer"`
	// 0 disables the idle timeout.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

type PublisherConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Interval      time.Duration `mapstructure:"interval"`
	StartSlot     uint64        `mapstructure:"start_slot"`
	AccountWrites int           `mapstructure:"account_writes"`
}

type FeedConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	URL       string        `mapstructure:"url"`
	Subject   string        `mapstructure:"subject"`
	DedupeMax int           `mapstructure:"dedupe_max"`
	DedupeTTL time.Duration `mapstructure:"dedupe_ttl"`
}

type MetricsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	ListenAddr string `mapstructure:"listen_addr"` // e.g., 0.0.0.0:9090
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	// 0 means unlimited.
	MaxSubscribers int `mapstructure:"max_subscribers"`
}

type AppConfig struct {
	RPC       RPCConfig       `mapstructure:"rpc"`
	Bus       BusConfig       `mapstructure:"bus"`
	Session   SessionConfig   `mapstructure:"session"`
	Publisher PublisherConfig `mapstructure:"publisher"`
	Feed      FeedConfig      `mapstructure:"feed"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Server    ServerConfig    `mapstructure:"server"`
	Timeouts  TimeoutConfig   `mapstructure:"timeouts"`
}

// Default returns the configuration used when no file is supplied.
func Default() *AppConfig {
	return &AppConfig{
		RPC:       RPCConfig{ListenAddr: "[::1]:10000"},
		Bus:       BusConfig{SubscriberBuffer: 100},
		Session:   SessionConfig{OutboundBuffer: 100},
		Publisher: PublisherConfig{Enabled: true, Interval: time.Second},
		Feed: FeedConfig{
			URL:       "nats://127.0.0.1:4222",
			Subject:   "accountsdb.updates",
			DedupeMax: 4096,
			DedupeTTL: time.Minute,
		},
		Metrics:  MetricsConfig{ListenAddr: "127.0.0.1:9090"},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
		Timeouts: *DefaultTimeoutConfig(),
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("rpc.listen_addr", d.RPC.ListenAddr)
	v.SetDefault("rpc.auth.enabled", false)
	v.SetDefault("rpc.auth.bearer_tokens", []string{})
	v.SetDefault("bus.subscriber_buffer", d.Bus.SubscriberBuffer)
	v.SetDefault("session.outbound_buffer", d.Session.OutboundBuffer)
	v.SetDefault("session.idle_timeout", d.Session.IdleTimeout)
	v.SetDefault("publisher.enabled", d.Publisher.Enabled)
	v.SetDefault("publisher.interval", d.Publisher.Interval)
	v.SetDefault("publisher.start_slot", d.Publisher.StartSlot)
	v.SetDefault("publisher.account_writes", d.Publisher.AccountWrites)
	v.SetDefault("feed.enabled", d.Feed.Enabled)
	v.SetDefault("feed.url", d.Feed.URL)
	v.SetDefault("feed.subject", d.Feed.Subject)
	v.SetDefault("feed.dedupe_max", d.Feed.DedupeMax)
	v.SetDefault("feed.dedupe_ttl", d.Feed.DedupeTTL)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.listen_addr", d.Metrics.ListenAddr)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("server.max_subscribers", d.Server.MaxSubscribers)
	v.SetDefault("timeouts.shutdown_timeout", d.Timeouts.ShutdownTimeout)
	v.SetDefault("timeouts.nats_reconnect_wait", d.Timeouts.NATSReconnectWait)
	v.SetDefault("timeouts.nats_max_reconnects", d.Timeouts.NATSMaxReconnects)
}

// normalize replaces unusable values with defaults.
func (c *AppConfig) normalize() {
	d := Default()
	if strings.TrimSpace(c.RPC.ListenAddr) == "" {
		c.RPC.ListenAddr = d.RPC.ListenAddr
	}
	if c.Bus.SubscriberBuffer <= 0 {
		c.Bus.SubscriberBuffer = d.Bus.SubscriberBuffer
	}
	if c.Session.OutboundBuffer <= 0 {
		c.Session.OutboundBuffer = d.Session.OutboundBuffer
	}
	if c.Session.IdleTimeout < 0 {
		c.Session.IdleTimeout = 0
	}
	if c.Publisher.Interval <= 0 {
		c.Publisher.Interval = d.Publisher.Interval
	}
	if c.Publisher.AccountWrites < 0 {
		c.Publisher.AccountWrites = 0
	}
	if c.Feed.DedupeMax <= 0 {
		c.Feed.DedupeMax = d.Feed.DedupeMax
	}
	if c.Feed.DedupeTTL <= 0 {
		c.Feed.DedupeTTL = d.Feed.DedupeTTL
	}
	if c.Server.MaxSubscribers < 0 {
		c.Server.MaxSubscribers = 0
	}
	c.Timeouts.normalize()
}

// Load reads a YAML config file (optional, pass "" for defaults only) and
// applies ACCOUNTSDB_* environment overrides.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()

	// Validate configuration
	validator := NewConfigValidator()
	if err := validator.Validate(&cfg); err != nil {
		return nil, err
	}

	// Print configuration summary
	PrintConfigurationSummary(&cfg)

	return &cfg, nil
}
