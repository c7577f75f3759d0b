package mcp

import "github.com/ynivin/waveform-mcp/internal/envelope"

// Tool represents a waveform analysis tool exposed via MCP
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// ToolHandler is a function that handles a tool call and returns an envelope response.
type ToolHandler func(params map[string]interface{}) (*envelope.Response, error)

// waveformFileProperty is shared by every tool that reads a trace.
func waveformFileProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Path to waveform file (.vcd, .vcd.gz) or a registered alias",
	}
}

// GetToolDefinitions returns all tool definitions
func (s *MCPServer) GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "getSignalList",
			Description: "Get hierarchical list of signals from waveform file",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"waveformFile": waveformFileProperty(),
					"pattern": map[string]interface{}{
						"type":        "string",
						"description": "Optional regex pattern to filter signals (e.g., 'cpu.*', 'top\\.m1\\.*')",
						"default":     "",
					},
				},
				"required": []string{"waveformFile"},
			},
		},
		{
			Name:        "getSignalTransitions",
			Description: "Get signal transitions within a time range",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"waveformFile": waveformFileProperty(),
					"signalName": map[string]interface{}{
						"type":        "string",
						"description": "Full signal name (e.g., 'cpu.pc')",
					},
					"startTime": map[string]interface{}{
						"type":        "integer",
						"description": "Start time in simulation time units",
						"default":     0,
					},
					"endTime": map[string]interface{}{
						"type":        "integer",
						"description": "End time in simulation time units (0 = end of simulation)",
						"default":     0,
					},
				},
				"required": []string{"waveformFile", "signalName"},
			},
		},
		{
			Name:        "getWaveformLength",
			Description: "Get the length of the waveform file",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"waveformFile": waveformFileProperty(),
				},
				"required": []string{"waveformFile"},
			},
		},
		{
			Name: "executeWalExpression",
			Description: `Execute WAL (Waveform Analysis Language) expressions for advanced signal analysis.

WAL is a functional language with Lisp-like syntax. Key capabilities:
• Signal access: SIGNALS (list all), signal_name (get value)
• Time navigation: (step N), INDEX, (find condition)
• Search/filter: (find condition), (count condition)
• Logic: (&&), (||), (=), (!=), (<), (>)
• Math: (+), (-), (*), (/)

Examples:
• (count (= clk 1)) - Count clock high periods
• (find (&& (= clk 1) (= data 0))) - Find clock high with data low
• (length (find (> counter 10))) - Time steps where counter > 10
• (find (= overflow 1)) - Find overflow events

Use getWalHelp for detailed documentation and examples.`,
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"waveformFile": waveformFileProperty(),
					"expression": map[string]interface{}{
						"type":        "string",
						"description": "WAL expression to execute",
					},
				},
				"required": []string{"waveformFile", "expression"},
			},
		},
		{
			Name:        "getWalHelp",
			Description: "Get WAL (Waveform Analysis Language) documentation and examples",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"topic": map[string]interface{}{
						"type":        "string",
						"description": "Help topic: 'overview', 'functions', 'examples', 'debugging', 'syntax'",
						"default":     "overview",
					},
				},
			},
		},
		{
			Name:        "getWalExamples",
			Description: "Get WAL examples customized for specific waveform signals",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"waveformFile": waveformFileProperty(),
				},
				"required": []string{"waveformFile"},
			},
		},
	}
}

// RegisterTools wires every tool definition to its handler.
func (s *MCPServer) RegisterTools() {
	s.tools["getSignalList"] = s.instrument("getSignalList", s.handleGetSignalList)
	s.tools["getSignalTransitions"] = s.instrument("getSignalTransitions", s.handleGetSignalTransitions)
	s.tools["getWaveformLength"] = s.instrument("getWaveformLength", s.handleGetWaveformLength)
	s.tools["executeWalExpression"] = s.instrument("executeWalExpression", s.handleExecuteWalExpression)
	s.tools["getWalHelp"] = s.instrument("getWalHelp", s.handleGetWalHelp)
	s.tools["getWalExamples"] = s.instrument("getWalExamples", s.handleGetWalExamples)
}
