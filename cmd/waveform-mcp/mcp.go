package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ynivin/waveform-mcp/internal/logging"
	"github.com/ynivin/waveform-mcp/internal/mcp"
	"github.com/ynivin/waveform-mcp/internal/version"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server for LLM client integration",
	Long: `Start the Model Context Protocol (MCP) server.

The server lets MCP clients query waveform traces over stdio using
JSON-RPC 2.0. It exposes the following tools:
  - getSignalList: List signals in a waveform, optionally filtered
  - getSignalTransitions: Scan a signal for value changes in a time range
  - getWaveformLength: Get the total number of time steps
  - executeWalExpression: Evaluate a WAL expression against a trace
  - getWalHelp: Built-in WAL documentation
  - getWalExamples: WAL examples named after the trace's own signals

This command is typically invoked by MCP clients and not directly by
users.`,
	RunE: runMCP,
}

var mcpStdio bool

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().BoolVar(&mcpStdio, "stdio", true, "Use stdio for communication (default)")
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Logs go to stderr since stdout carries the MCP protocol.
	logger := logging.NewLogger(logging.Config{
		Format: logging.JSONFormat,
		Level:  logging.ParseLevel(logLevelFlag),
		Output: os.Stderr,
	})

	logger.Info("Starting MCP server", map[string]interface{}{
		"version": version.Version,
	})

	cfg := mustLoadConfig(logger)
	eng := newEngine(cfg, logger)
	reg := loadRegistry(cfg, logger)
	tel := openTelemetry(cfg, logger)
	if tel != nil {
		defer tel.Close()
	}

	server := mcp.NewMCPServer(version.Version, eng, reg, tel, logger)
	if err := server.Start(); err != nil {
		logger.Error("MCP server error", map[string]interface{}{
			"error": err.Error(),
		})
		return err
	}
	return nil
}
