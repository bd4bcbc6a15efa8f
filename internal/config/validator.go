package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ValidationMode determines the strictness of configuration validation
type ValidationMode string

const (
	ValidationModeProduction  ValidationMode = "production"
	ValidationModeDevelopment ValidationMode = "development"
	ValidationModeTest        ValidationMode = "test"
)

// ModeEnv selects the validation mode.
const ModeEnv = "ACCOUNTSDB_MODE"

// ConfigValidator validates configuration for production readiness
type ConfigValidator struct {
	mode     ValidationMode
	errors   []string
	warnings []string
}

// NewConfigValidator creates a new configuration validator
func NewConfigValidator() *ConfigValidator {
	mode := ValidationModeDevelopment // Default to development

	// Check environment variable
	if envMode := os.Getenv(ModeEnv); envMode != "" {
		switch strings.ToLower(envMode) {
		case "production", "prod":
			mode = ValidationModeProduction
		case "test", "testing":
			mode = ValidationModeTest
		case "development", "dev":
			mode = ValidationModeDevelopment
		}
	}

	return &ConfigValidator{
		mode:     mode,
		errors:   []string{},
		warnings: []string{},
	}
}

// Mode reports the active validation mode.
func (v *ConfigValidator) Mode() ValidationMode { return v.mode }

// Warnings returns the warnings collected by the last Validate call.
func (v *ConfigValidator) Warnings() []string { return v.warnings }

// Validate checks the configuration for issues. Structural errors fail in
// every mode; policy findings only fail in production.
func (v *ConfigValidator) Validate(cfg *AppConfig) error {
	v.errors = []string{}
	v.warnings = []string{}
	var fatal []string

	fatal = append(fatal, v.validateRPC(cfg)...)
	fatal = append(fatal, v.validateFeed(cfg)...)
	fatal = append(fatal, v.validateMetrics(cfg)...)
	v.validatePublisher(cfg)
	v.validateSession(cfg)
	v.validateLogging(cfg)
	v.validateSecurity(cfg)

	if len(fatal) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(fatal, "\n"))
	}

	// Return errors if in production mode
	if v.mode == ValidationModeProduction && len(v.errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(v.errors, "\n"))
	}
	v.warnings = append(v.warnings, v.errors...)

	if len(v.warnings) > 0 && v.mode != ValidationModeTest {
		logrus.Warnf("Configuration warnings:\n%s", strings.Join(v.warnings, "\n"))
	}

	return nil
}

func (v *ConfigValidator) validateRPC(cfg *AppConfig) []string {
	var fatal []string
	if msg := checkAddr("rpc.listen_addr", cfg.RPC.ListenAddr); msg != "" {
		fatal = append(fatal, msg)
	} else {
		v.validatePort("rpc.listen_addr", cfg.RPC.ListenAddr)
	}
	return fatal
}

func (v *ConfigValidator) validateFeed(cfg *AppConfig) []string {
	if !cfg.Feed.Enabled {
		return nil
	}
	var fatal []string
	if strings.TrimSpace(cfg.Feed.URL) == "" {
		fatal = append(fatal, "feed.url is required when the feed is enabled")
	}
	if strings.TrimSpace(cfg.Feed.Subject) == "" {
		fatal = append(fatal, "feed.subject is required when the feed is enabled")
	}
	if cfg.Publisher.Enabled {
		v.warnings = append(v.warnings, "both the synthetic publisher and the upstream feed are enabled - subscribers will see interleaved sources")
	}
	return fatal
}

func (v *ConfigValidator) validateMetrics(cfg *AppConfig) []string {
	if !cfg.Metrics.Enabled {
		return nil
	}
	if msg := checkAddr("metrics.listen_addr", cfg.Metrics.ListenAddr); msg != "" {
		return []string{msg}
	}
	if cfg.Metrics.ListenAddr == cfg.RPC.ListenAddr {
		return []string{"metrics.listen_addr must differ from rpc.listen_addr"}
	}
	v.validatePort("metrics.listen_addr", cfg.Metrics.ListenAddr)
	return nil
}

func (v *ConfigValidator) validatePublisher(cfg *AppConfig) {
	if !cfg.Publisher.Enabled {
		return
	}
	if cfg.Publisher.Interval < 10*time.Millisecond {
		v.errors = append(v.errors, fmt.Sprintf("publisher.interval too short: %v", cfg.Publisher.Interval))
	}
	msg := "Synthetic publisher enabled - subscribers receive demonstration data"
	if v.mode == ValidationModeProduction {
		v.errors = append(v.errors, msg)
	} else {
		v.warnings = append(v.warnings, msg)
	}
}

func (v *ConfigValidator) validateSession(cfg *AppConfig) {
	if cfg.Session.OutboundBuffer < cfg.Bus.SubscriberBuffer/10 {
		v.warnings = append(v.warnings, fmt.Sprintf("session.outbound_buffer (%d) is much smaller than bus.subscriber_buffer (%d)",
			cfg.Session.OutboundBuffer, cfg.Bus.SubscriberBuffer))
	}
	if cfg.Session.IdleTimeout > 0 && cfg.Publisher.Enabled && cfg.Session.IdleTimeout <= cfg.Publisher.Interval {
		v.warnings = append(v.warnings, fmt.Sprintf("session.idle_timeout (%v) does not exceed publisher.interval (%v) - sessions may time out between ticks",
			cfg.Session.IdleTimeout, cfg.Publisher.Interval))
	}
}

func (v *ConfigValidator) validateLogging(cfg *AppConfig) {
	if _, err := logrus.ParseLevel(cfg.Logging.Level); err != nil {
		v.warnings = append(v.warnings, fmt.Sprintf("unknown logging.level %q, falling back to info", cfg.Logging.Level))
	}
	switch strings.ToLower(cfg.Logging.Format) {
	case "", "text", "json":
	default:
		v.warnings = append(v.warnings, fmt.Sprintf("unknown logging.format %q, falling back to text", cfg.Logging.Format))
	}
}

func (v *ConfigValidator) validateSecurity(cfg *AppConfig) {
	// Check RPC authentication
	if !cfg.RPC.Auth.Enabled && v.mode == ValidationModeProduction {
		v.warnings = append(v.warnings, "RPC authentication is disabled - consider enabling for production")
	}

	// Check bearer tokens
	if cfg.RPC.Auth.Enabled && len(cfg.RPC.Auth.BearerTokens) == 0 {
		v.errors = append(v.errors, "RPC authentication enabled but no bearer tokens configured")
	}
	for _, tok := range cfg.RPC.Auth.BearerTokens {
		if len(tok) < 16 {
			v.warnings = append(v.warnings, "bearer token shorter than 16 characters")
			break
		}
	}
}

func (v *ConfigValidator) validatePort(name string, addr string) {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if portNum, err := strconv.Atoi(portStr); err == nil {
		if portNum > 0 && portNum < 1024 {
			v.warnings = append(v.warnings, fmt.Sprintf("%s uses privileged port %d (< 1024)", name, portNum))
		}
	}
}

func checkAddr(name, addr string) string {
	_, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Sprintf("invalid %s %q: %v", name, addr, err)
	}
	portNum, err := strconv.Atoi(portStr)
	if err != nil || portNum < 0 || portNum > 65535 {
		return fmt.Sprintf("%s port out of range: %s", name, portStr)
	}
	return ""
}

// ValidateProductionReadiness performs strict validation for production deployments
func ValidateProductionReadiness(cfg *AppConfig) error {
	validator := &ConfigValidator{mode: ValidationModeProduction}
	return validator.Validate(cfg)
}

// PrintConfigurationSummary prints a summary of the configuration
func PrintConfigurationSummary(cfg *AppConfig) {
	fmt.Println("Configuration Summary:")
	fmt.Println("======================")

	fmt.Printf("Listen: %s\n", cfg.RPC.ListenAddr)
	fmt.Printf("Subscriber Buffer: %d (outbound %d)\n", cfg.Bus.SubscriberBuffer, cfg.Session.OutboundBuffer)
	if cfg.Session.IdleTimeout > 0 {
		fmt.Printf("Idle Timeout: %v\n", cfg.Session.IdleTimeout)
	}
	if cfg.Server.MaxSubscribers > 0 {
		fmt.Printf("Max Subscribers: %d\n", cfg.Server.MaxSubscribers)
	}

	if cfg.Publisher.Enabled {
		fmt.Printf("Publisher: every %v from slot %d\n", cfg.Publisher.Interval, cfg.Publisher.StartSlot)
	} else {
		fmt.Println("Publisher: disabled")
	}
	if cfg.Feed.Enabled {
		fmt.Printf("Feed: %s subject=%s\n", cfg.Feed.URL, cfg.Feed.Subject)
	} else {
		fmt.Println("Feed: disabled")
	}

	// Security settings
	fmt.Printf("RPC Auth Enabled: %v\n", cfg.RPC.Auth.Enabled)
	if cfg.Metrics.Enabled {
		fmt.Printf("Metrics: %s\n", cfg.Metrics.ListenAddr)
	}

	fmt.Println("======================")
}
