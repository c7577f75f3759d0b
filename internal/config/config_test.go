package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != 1 {
		t.Errorf("version = %d, want 1", cfg.Version)
	}
	if cfg.RegistryPath != "waveforms.toml" {
		t.Errorf("registry path = %s", cfg.RegistryPath)
	}
	if cfg.Scanner.MaxScanSteps != 0 {
		t.Errorf("max scan steps = %d, want 0", cfg.Scanner.MaxScanSteps)
	}
	if cfg.Logging.Format != "human" || cfg.Logging.Level != "info" {
		t.Errorf("logging defaults = %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Version != 1 || cfg.Logging.Level != "info" {
		t.Errorf("missing file should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ".waveform-mcp")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := `{
  "version": 1,
  "registryPath": "traces/registry.toml",
  "scanner": {"maxScanSteps": 5000},
  "telemetry": {"enabled": true, "dir": "/tmp/wfm"},
  "logging": {"format": "json", "level": "debug"}
}`
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(raw), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.RegistryPath != "traces/registry.toml" {
		t.Errorf("registry path = %s", cfg.RegistryPath)
	}
	if cfg.Scanner.MaxScanSteps != 5000 {
		t.Errorf("max scan steps = %d, want 5000", cfg.Scanner.MaxScanSteps)
	}
	if !cfg.Telemetry.Enabled || cfg.Telemetry.Dir != "/tmp/wfm" {
		t.Errorf("telemetry = %+v", cfg.Telemetry)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.Scanner.MaxScanSteps = 123
	if err := cfg.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Scanner.MaxScanSteps != 123 {
		t.Errorf("max scan steps = %d, want 123", loaded.Scanner.MaxScanSteps)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad version", func(c *Config) { c.Version = 2 }, true},
		{"negative scan cap", func(c *Config) { c.Scanner.MaxScanSteps = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
