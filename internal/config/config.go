// Package config provides configuration loading and validation for cv-studio.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds the runtime configuration for the server and CLI. Values come
// from an optional JSON file, overridden by environment variables, overridden
// by CLI flags.
type Config struct {
	Port        int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	DatabaseURL string `json:"database_url,omitempty"`

	// DefaultTheme is used when a request does not name one.
	DefaultTheme string `json:"default_theme,omitempty"`

	// Telemetry ingest endpoint. Leaving URL empty disables telemetry.
	TelemetryURL     string `json:"telemetry_url,omitempty" validate:"omitempty,url"`
	TelemetryToken   string `json:"telemetry_token,omitempty"`
	TelemetryDataset string `json:"telemetry_dataset,omitempty"`
}

// Load reads configuration from an optional JSON file and applies environment
// overrides. An empty path skips the file entirely.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()

	if cfg.Port == 0 {
		cfg.Port = 8080
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("DEFAULT_THEME"); v != "" {
		c.DefaultTheme = v
	}
	if v := os.Getenv("TELEMETRY_URL"); v != "" {
		c.TelemetryURL = v
	}
	if v := os.Getenv("TELEMETRY_TOKEN"); v != "" {
		c.TelemetryToken = v
	}
	if v := os.Getenv("TELEMETRY_DATASET"); v != "" {
		c.TelemetryDataset = v
	}
}

// Validate checks value ranges using the struct validator.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
