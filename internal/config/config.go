// Package config loads connector defaults the way the axfor-aproxy proxy
// loads its own: a Go-literal DefaultConfig(), overridden by an optional
// YAML file via gopkg.in/yaml.v3, validated before use (SPEC_FULL.md
// §4.10).
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds connector-wide defaults applied to every Connector opened
// by this process, independent of any one connection's URL.
type Config struct {
	Pool          PoolConfig          `yaml:"pool"`
	Timeouts      TimeoutConfig       `yaml:"timeouts"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// PoolConfig holds outer-pool settings, independent of any one driver's
// own pool knobs. pkg/pool.New takes already-open members and reads none
// of these fields; only Validate reads Size.
type PoolConfig struct {
	Size            int           `yaml:"size"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
	HealthCheckPeriod time.Duration `yaml:"health_check_period"`
}

// TimeoutConfig bounds how long a single connector call may take before
// its context is canceled.
type TimeoutConfig struct {
	ConnectTimeout time.Duration `yaml:"connect_timeout"`
	QueryTimeout   time.Duration `yaml:"query_timeout"`
	SocketTimeout  time.Duration `yaml:"socket_timeout"`
}

// ObservabilityConfig controls logging and metrics verbosity.
type ObservabilityConfig struct {
	LogLevel         string `yaml:"log_level"`
	LogFormat        string `yaml:"log_format"`
	RedactParameters bool   `yaml:"redact_parameters"`
	MetricsEnabled   bool   `yaml:"metrics_enabled"`
}

// DefaultConfig returns the built-in defaults, applied before any YAML
// override is read.
func DefaultConfig() *Config {
	return &Config{
		Pool: PoolConfig{
			Size:              10,
			MaxConnLifetime:   time.Hour,
			MaxConnIdleTime:   30 * time.Minute,
			HealthCheckPeriod: time.Minute,
		},
		Timeouts: TimeoutConfig{
			ConnectTimeout: 10 * time.Second,
			QueryTimeout:   30 * time.Second,
			SocketTimeout:  0,
		},
		Observability: ObservabilityConfig{
			LogLevel:         "info",
			LogFormat:        "json",
			RedactParameters: true,
			MetricsEnabled:   true,
		},
	}
}

// LoadConfig returns DefaultConfig() unmodified if path does not exist,
// or the defaults overridden by path's YAML content otherwise.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Validate reports the first invalid field found, mirroring the
// fail-fast shape of the proxy's own Config.Validate.
func (c *Config) Validate() error {
	if c.Pool.Size < 1 {
		return fmt.Errorf("pool.size must be at least 1")
	}
	if c.Timeouts.ConnectTimeout < 0 {
		return fmt.Errorf("timeouts.connect_timeout must not be negative")
	}
	if c.Timeouts.QueryTimeout < 0 {
		return fmt.Errorf("timeouts.query_timeout must not be negative")
	}
	if c.Timeouts.SocketTimeout < 0 {
		return fmt.Errorf("timeouts.socket_timeout must not be negative")
	}
	switch c.Observability.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid observability.log_level: %s", c.Observability.LogLevel)
	}
	switch c.Observability.LogFormat {
	case "json", "console":
	default:
		return fmt.Errorf("invalid observability.log_format: %s", c.Observability.LogFormat)
	}
	return nil
}
