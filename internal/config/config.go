// Package config loads the server configuration from a JSON config file,
// falling back to sensible defaults when no file exists.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete waveform-mcp configuration.
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	// RegistryPath points at the waveform registry TOML file. Aliases
	// defined there resolve to trace paths before loading.
	RegistryPath string `json:"registryPath" mapstructure:"registryPath"`

	Scanner   ScannerConfig   `json:"scanner" mapstructure:"scanner"`
	Telemetry TelemetryConfig `json:"telemetry" mapstructure:"telemetry"`
	Logging   LoggingConfig   `json:"logging" mapstructure:"logging"`
}

// ScannerConfig bounds transition scans.
type ScannerConfig struct {
	// MaxScanSteps caps the steps one transition scan may take.
	// Zero means unlimited.
	MaxScanSteps int `json:"maxScanSteps" mapstructure:"maxScanSteps"`
}

// TelemetryConfig controls the local tool invocation store.
type TelemetryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	Dir     string `json:"dir" mapstructure:"dir"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Version:      1,
		RegistryPath: "waveforms.toml",
		Scanner: ScannerConfig{
			MaxScanSteps: 0,
		},
		Telemetry: TelemetryConfig{
			Enabled: false,
			Dir:     ".waveform-mcp",
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from <dir>/.waveform-mcp/config.json.
// A missing file yields the defaults.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	v.SetDefault("version", 1)
	v.SetDefault("registryPath", "waveforms.toml")
	v.SetDefault("telemetry.dir", ".waveform-mcp")
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(dir, ".waveform-mcp"))

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

// Save writes the configuration to <dir>/.waveform-mcp/config.json.
func (c *Config) Save(dir string) error {
	configDir := filepath.Join(dir, ".waveform-mcp")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(configDir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Scanner.MaxScanSteps < 0 {
		return &ConfigError{Field: "scanner.maxScanSteps", Message: "must not be negative"}
	}
	return nil
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
