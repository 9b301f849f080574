// Package config provides configuration management for the turk tools.
// Values come from the environment first, with an optional YAML file layered
// on top. The client library itself never reads configuration sources
// directly; everything is resolved here and passed to constructors.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexbotov/turk/pkg/turk"
)

// Config holds all configuration for the turk tools.
type Config struct {
	AccessKeyID string         `yaml:"access_key_id"`
	SecretKey   string         `yaml:"secret_key"`
	Mode        string         `yaml:"mode"`
	Listen      ListenConfig   `yaml:"listen"`
	Database    DatabaseConfig `yaml:"database"`
	Defaults    DefaultsConfig `yaml:"defaults"`
}

// ListenConfig holds the notification receiver configuration.
type ListenConfig struct {
	Addr        string `yaml:"addr"`
	MaxSkewSecs int    `yaml:"max_skew_seconds"`
}

// DatabaseConfig holds the audit database configuration. An empty DSN
// disables the audit log.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// DefaultsConfig holds per-mode default request parameters. Sandbox values
// overlay production values when the client runs in sandbox mode.
type DefaultsConfig struct {
	Production map[string]string `yaml:"production"`
	Sandbox    map[string]string `yaml:"sandbox"`
}

// Load resolves configuration from the environment, then overlays the YAML
// file at path when one exists. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{
		AccessKeyID: getEnv("TURK_ACCESS_KEY_ID", os.Getenv("AWS_ACCESS_KEY_ID")),
		SecretKey:   getEnv("TURK_SECRET_KEY", os.Getenv("AWS_SECRET_ACCESS_KEY")),
		Mode:        getEnv("TURK_MODE", string(turk.ModeProduction)),
		Listen: ListenConfig{
			Addr:        getEnv("TURK_LISTEN_ADDR", ":8085"),
			MaxSkewSecs: 900,
		},
		Database: DatabaseConfig{
			Driver: getEnv("TURK_DB_DRIVER", "postgres"),
			DSN:    getEnv("TURK_DB_DSN", ""),
		},
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	switch turk.Mode(cfg.Mode) {
	case turk.ModeProduction, turk.ModeSandbox:
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	return cfg, nil
}

// ClientConfig builds the client configuration from the resolved settings.
func (c *Config) ClientConfig() *turk.ClientConfig {
	cfg := turk.DefaultConfig()
	cfg.Credentials = turk.Credentials{
		AccessKeyID: c.AccessKeyID,
		SecretKey:   c.SecretKey,
	}
	cfg.Mode = turk.Mode(c.Mode)
	cfg.ProductionDefaults = toParams(c.Defaults.Production)
	cfg.SandboxDefaults = toParams(c.Defaults.Sandbox)
	return cfg
}

func toParams(m map[string]string) turk.Params {
	if len(m) == 0 {
		return nil
	}
	p := make(turk.Params, len(m))
	for k, v := range m {
		p[k] = v
	}
	return p
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
