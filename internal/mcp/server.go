// Package mcp exposes the waveform query engine over the Model Context
// Protocol: JSON-RPC 2.0 messages, one per line, on stdio.
package mcp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ynivin/waveform-mcp/internal/engine"
	"github.com/ynivin/waveform-mcp/internal/logging"
	"github.com/ynivin/waveform-mcp/internal/registry"
	"github.com/ynivin/waveform-mcp/internal/telemetry"
)

// MCPServer represents the MCP server
type MCPServer struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
	logger  *logging.Logger
	version string

	engine    *engine.Engine
	registry  *registry.Registry
	telemetry *telemetry.Store // nil when telemetry is disabled

	tools map[string]ToolHandler
}

// NewMCPServer creates a new MCP server. The registry may be empty but
// not nil; the telemetry store may be nil.
func NewMCPServer(version string, eng *engine.Engine, reg *registry.Registry, tel *telemetry.Store, logger *logging.Logger) *MCPServer {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	server := &MCPServer{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		logger:    logger,
		version:   version,
		engine:    eng,
		registry:  reg,
		telemetry: tel,
		tools:     make(map[string]ToolHandler),
	}
	server.RegisterTools()
	return server
}

// Start starts the MCP server and begins processing messages
func (s *MCPServer) Start() error {
	s.logger.Info("MCP server starting", map[string]interface{}{
		"version": s.version,
	})

	for {
		msg, err := s.readMessage()
		if err != nil {
			if err == io.EOF {
				s.logger.Info("MCP server shutting down (EOF)", nil)
				return nil
			}
			s.logger.Error("Error reading message", map[string]interface{}{
				"error": err.Error(),
			})

			if msg != nil && msg.Id != nil {
				_ = s.writeError(msg.Id, ParseError, fmt.Sprintf("Failed to parse message: %v", err))
			}
			continue
		}

		response := s.handleMessage(msg)

		// Notifications don't generate responses.
		if response != nil {
			if err := s.writeMessage(response); err != nil {
				s.logger.Error("Error writing response", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// SetStdin sets the input stream (for testing)
func (s *MCPServer) SetStdin(r io.Reader) {
	s.stdin = r
	s.scanner = nil
}

// SetStdout sets the output stream (for testing)
func (s *MCPServer) SetStdout(w io.Writer) {
	s.stdout = w
}
