// Package config loads gateway configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for a CraftLink gateway.
type Config struct {
	Gateway   GatewayConfig   `yaml:"gateway"`
	Listen    ListenConfig    `yaml:"listen"`
	Eval      EvalConfig      `yaml:"eval"`
	Events    EventsConfig    `yaml:"events"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GatewayConfig identifies this gateway instance.
type GatewayConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// ListenConfig contains WebSocket server settings.
type ListenConfig struct {
	Address string `yaml:"address"`
	Path    string `yaml:"path"`
}

// EvalConfig contains remote evaluation settings.
type EvalConfig struct {
	// TimeoutSeconds bounds each evaluation round-trip.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// EventsConfig contains game event fan-out settings.
type EventsConfig struct {
	// Buffer is the per-subscriber event channel buffer size.
	Buffer int `yaml:"buffer"`
}

// DiscoveryConfig contains mDNS advertising settings.
type DiscoveryConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Interface string `yaml:"interface"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads configuration from a YAML file and applies environment variable
// overrides.
//
// The loading order is:
//  1. Default values
//  2. YAML file values (override defaults)
//  3. Environment variables (override file values)
//
// Environment variables follow the pattern CRAFTLINK_SECTION_KEY, for
// example CRAFTLINK_LISTEN_ADDRESS or CRAFTLINK_GATEWAY_ID.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Default returns a Config with working defaults.
func Default() *Config {
	return &Config{
		Gateway: GatewayConfig{
			ID:   "gateway-001",
			Name: "CraftLink",
		},
		Listen: ListenConfig{
			Address: ":5757",
			Path:    "/",
		},
		Eval: EvalConfig{
			TimeoutSeconds: 30,
		},
		Events: EventsConfig{
			Buffer: 64,
		},
		Discovery: DiscoveryConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CRAFTLINK_GATEWAY_ID"); v != "" {
		cfg.Gateway.ID = v
	}
	if v := os.Getenv("CRAFTLINK_GATEWAY_NAME"); v != "" {
		cfg.Gateway.Name = v
	}
	if v := os.Getenv("CRAFTLINK_LISTEN_ADDRESS"); v != "" {
		cfg.Listen.Address = v
	}
	if v := os.Getenv("CRAFTLINK_LISTEN_PATH"); v != "" {
		cfg.Listen.Path = v
	}
	if v := os.Getenv("CRAFTLINK_EVAL_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Eval.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("CRAFTLINK_DISCOVERY_ENABLED"); v != "" {
		cfg.Discovery.Enabled = v == "true" || v == "1"
	}
	if v := os.Getenv("CRAFTLINK_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []string

	if c.Gateway.ID == "" {
		errs = append(errs, "gateway.id is required")
	}
	if c.Listen.Address == "" {
		errs = append(errs, "listen.address is required")
	}
	if !strings.HasPrefix(c.Listen.Path, "/") {
		errs = append(errs, "listen.path must start with /")
	}
	if c.Eval.TimeoutSeconds <= 0 {
		errs = append(errs, "eval.timeout_seconds must be positive")
	}
	if c.Events.Buffer <= 0 {
		errs = append(errs, "events.buffer must be positive")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, "logging.level must be one of debug, info, warn, error")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// EvalTimeout returns the evaluation timeout as a Duration.
func (c *Config) EvalTimeout() time.Duration {
	return time.Duration(c.Eval.TimeoutSeconds) * time.Second
}
