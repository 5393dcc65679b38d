// Package config loads server settings from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines runtime settings for the Sleeper MCP server.
type Config struct {
	BaseURL     string `yaml:"baseURL"`
	Timeout     string `yaml:"timeout"`
	HTTPAddr    string `yaml:"httpAddr"`
	MCPPath     string `yaml:"mcpPath"`
	RequireAuth bool   `yaml:"requireAuth"`
	AuthHeader  string `yaml:"authHeader"`
	LogLevel    string `yaml:"logLevel"`
	LogFormat   string `yaml:"logFormat"`
}

// Load reads configuration from a YAML file and environment overrides.
// An empty path loads defaults only.
func Load(path string) (*Config, error) {
	cfg := &Config{
		BaseURL:     "https://api.sleeper.app/v1",
		Timeout:     "20s",
		MCPPath:     "/mcp",
		RequireAuth: true,
		AuthHeader:  "X-API-Key",
		LogLevel:    "info",
		LogFormat:   "text",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("SLEEPER_MCP_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("SLEEPER_MCP_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("SLEEPER_MCP_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SLEEPER_MCP_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	if _, err := time.ParseDuration(cfg.Timeout); err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", cfg.Timeout, err)
	}

	return cfg, nil
}

// HTTPTimeout returns the parsed client timeout.
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 20 * time.Second
	}
	return d
}

// DefaultConfigPath returns the default config file location, or empty when
// no file exists there.
func DefaultConfigPath() string {
	if path := os.Getenv("SLEEPER_MCP_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(home, ".sleeper-mcp", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
