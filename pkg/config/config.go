package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/kerbaras/animes/pkg/data"
)

var ErrInvalidConfig = errors.New("invalid config")

const DefaultShutdownTimeout = 5 * time.Second

// Config holds the settings for running the GraphQL server. Every attribute
// is optional in a config file; missing ones keep their defaults.
type Config struct {
	ListenAddr      string `hcl:"listen_addr,optional"`
	Store           string `hcl:"store,optional"`
	GraphiQL        bool   `hcl:"graphiql,optional"`
	MaxBodySize     int64  `hcl:"max_body_size,optional"`
	ShutdownTimeout string `hcl:"shutdown_timeout,optional"`

	LogLevel  string `hcl:"log_level,optional"`
	LogFormat string `hcl:"log_format,optional"`
}

func Default() *Config {
	return &Config{
		ListenAddr:      ":5000",
		Store:           string(data.MemoryStoreType),
		GraphiQL:        true,
		MaxBodySize:     1 << 20,
		ShutdownTimeout: DefaultShutdownTimeout.String(),
		LogLevel:        "info",
		LogFormat:       "text",
	}
}

// Load reads an HCL config file on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("%w: listen_addr cannot be empty", ErrInvalidConfig)
	}
	if _, err := data.ParseStoreType(c.Store); err != nil {
		return fmt.Errorf("%w: store: %w", ErrInvalidConfig, err)
	}
	if c.MaxBodySize <= 0 {
		return fmt.Errorf("%w: max_body_size must be positive, got %d", ErrInvalidConfig, c.MaxBodySize)
	}
	timeout, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		return fmt.Errorf("%w: shutdown_timeout: %w", ErrInvalidConfig, err)
	}
	if timeout <= 0 {
		return fmt.Errorf("%w: shutdown_timeout must be positive", ErrInvalidConfig)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}

// Timeout returns ShutdownTimeout as a duration, or DefaultShutdownTimeout
// when the value does not parse to a positive duration.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || d <= 0 {
		return DefaultShutdownTimeout
	}
	return d
}
