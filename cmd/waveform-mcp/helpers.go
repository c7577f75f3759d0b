package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ynivin/waveform-mcp/internal/config"
	"github.com/ynivin/waveform-mcp/internal/engine"
	"github.com/ynivin/waveform-mcp/internal/logging"
	"github.com/ynivin/waveform-mcp/internal/registry"
	"github.com/ynivin/waveform-mcp/internal/telemetry"
	"github.com/ynivin/waveform-mcp/internal/wal"
)

// newLogger builds a logger from the persistent flags. CLI logs go to
// stderr so report output on stdout stays clean.
func newLogger(out io.Writer) *logging.Logger {
	if out == nil {
		out = os.Stderr
	}
	format := logging.HumanFormat
	if logFormatFlag == "json" {
		format = logging.JSONFormat
	}
	return logging.NewLogger(logging.Config{
		Format: format,
		Level:  logging.ParseLevel(logLevelFlag),
		Output: out,
	})
}

// mustLoadConfig loads the config for the current directory.
func mustLoadConfig(logger *logging.Logger) *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		logger.Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return config.DefaultConfig()
	}
	return cfg
}

// loadRegistry resolves the registry path (flag wins over config) and
// loads it. A missing registry file is fine.
func loadRegistry(cfg *config.Config, logger *logging.Logger) *registry.Registry {
	path := cfg.RegistryPath
	if registryFlag != "" {
		path = registryFlag
	}
	reg, err := registry.Load(path)
	if err != nil {
		logger.Warn("Failed to load waveform registry", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return registry.New()
	}
	return reg
}

// newEngine builds the query engine from configuration.
func newEngine(cfg *config.Config, logger *logging.Logger) *engine.Engine {
	return engine.New(&wal.VCDLoader{}, logger, engine.Options{
		MaxScanSteps: cfg.Scanner.MaxScanSteps,
	})
}

// openTelemetry opens the invocation store when enabled.
func openTelemetry(cfg *config.Config, logger *logging.Logger) *telemetry.Store {
	if !cfg.Telemetry.Enabled {
		return nil
	}
	store, err := telemetry.Open(cfg.Telemetry.Dir, logger)
	if err != nil {
		logger.Warn("Telemetry disabled", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}
	return store
}

// resolveWaveform maps an alias or path argument through the registry.
func resolveWaveform(reg *registry.Registry, arg string) string {
	return reg.Resolve(arg)
}

func fail(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
