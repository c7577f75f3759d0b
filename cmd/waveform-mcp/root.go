package main

import (
	"github.com/spf13/cobra"

	"github.com/ynivin/waveform-mcp/internal/version"
)

var (
	logLevelFlag  string
	logFormatFlag string
	registryFlag  string
	outputFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "waveform-mcp",
	Short: "waveform-mcp - waveform trace query engine",
	Long: `waveform-mcp answers questions about digital waveform traces: signal
inventories, transition histories, trace lengths, and arbitrary WAL
(Waveform Analysis Language) expressions. It runs either as an MCP
server for LLM clients or as a plain CLI for direct use.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("waveform-mcp version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "human",
		"Log format: human, json")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "",
		"Path to waveform registry TOML (default: from config)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "text",
		"Output format: text, json, yaml")
}
