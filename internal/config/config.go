// Package config loads the uilens configuration from .uilens/config.json.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the complete uilens configuration.
type Config struct {
	Version  int            `json:"version" mapstructure:"version"`
	Registry RegistryConfig `json:"registry" mapstructure:"registry"`
	Output   OutputConfig   `json:"output" mapstructure:"output"`
	Storage  StorageConfig  `json:"storage" mapstructure:"storage"`
	Logging  LoggingConfig  `json:"logging" mapstructure:"logging"`
}

// RegistryConfig selects the signature registry.
type RegistryConfig struct {
	// Path points at a .yaml/.yml or .toml registry file. Empty selects
	// the built-in default registry.
	Path string `json:"path" mapstructure:"path"`
}

// OutputConfig contains output limits and defaults.
type OutputConfig struct {
	Format         string `json:"format" mapstructure:"format"`
	ComponentLimit int    `json:"componentLimit" mapstructure:"componentLimit"`
}

// StorageConfig controls the run store.
type StorageConfig struct {
	Enabled bool `json:"enabled" mapstructure:"enabled"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Output: OutputConfig{
			Format:         "json",
			ComponentLimit: 100,
		},
		Storage: StorageConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <root>/.uilens/config.json,
// falling back to defaults when no config file exists.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("output.format", "json")
	v.SetDefault("output.componentLimit", 100)
	v.SetDefault("storage.enabled", true)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".uilens"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to <root>/.uilens/config.json.
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".uilens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	switch c.Output.Format {
	case "", "json", "human":
	default:
		return &ConfigError{Field: "output.format", Message: "must be json or human"}
	}
	return nil
}

// ConfigError describes an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
