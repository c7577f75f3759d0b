package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ynivin/waveform-mcp/internal/telemetry"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded tool invocation statistics",
	Long: `Summarize the tool invocations recorded by the MCP server. Requires
telemetry to be enabled in the configuration.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	logger := newLogger(nil)
	cfg := mustLoadConfig(logger)

	if !cfg.Telemetry.Enabled {
		return fail("telemetry is disabled; enable it in config to record invocations")
	}

	store, err := telemetry.Open(cfg.Telemetry.Dir, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	stats, err := store.Summary()
	if err != nil {
		return err
	}

	return render(stats, formatStats(stats))
}

func formatStats(stats []telemetry.ToolStats) string {
	if len(stats) == 0 {
		return "No tool invocations recorded."
	}
	lines := []string{"Tool invocations:"}
	for _, st := range stats {
		lines = append(lines, fmt.Sprintf("  %-24s calls=%-6d failures=%-4d avg=%dms",
			st.Tool, st.Calls, st.Failures, st.AvgDurationMs))
	}
	return strings.Join(lines, "\n")
}
