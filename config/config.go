// Package config provides configuration management for the boxnote CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration settings for the boxnote CLI.
// Configuration precedence in Load: environment variables > config file >
// defaults. Load does not read CLI flags.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string

	// LogFormat selects "console" or "json" log output.
	LogFormat string

	// OutputDir is the directory rendered PNG/PDF pages are written to.
	OutputDir string
}

// Load reads configuration from multiple sources and returns a Config.
// Sources are checked in this order: env vars > config file > defaults.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".boxnote")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("BOXNOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		LogLevel:  v.GetString("log-level"),
		LogFormat: v.GetString("log-format"),
		OutputDir: v.GetString("output-dir"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log-level", "info")
	v.SetDefault("log-format", "console")
	v.SetDefault("output-dir", ".")
}

// Validate checks that the configuration is valid and internally
// consistent.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log-level %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	validFormats := map[string]bool{"console": true, "json": true}
	if !validFormats[strings.ToLower(c.LogFormat)] {
		return fmt.Errorf("invalid log-format %q, must be one of: console, json", c.LogFormat)
	}
	c.LogFormat = strings.ToLower(c.LogFormat)

	if c.OutputDir == "" {
		return fmt.Errorf("output-dir cannot be empty")
	}
	return nil
}

// String returns a human-readable representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Configuration:\n  LogLevel: %s\n  LogFormat: %s\n  OutputDir: %s",
		c.LogLevel, c.LogFormat, c.OutputDir)
}
