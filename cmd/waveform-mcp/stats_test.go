package main

import (
	"strings"
	"testing"

	"github.com/ynivin/waveform-mcp/internal/telemetry"
)

func TestFormatStats(t *testing.T) {
	out := formatStats([]telemetry.ToolStats{
		{Tool: "getSignalList", Calls: 12, Failures: 1, AvgDurationMs: 4},
		{Tool: "executeWalExpression", Calls: 3, Failures: 0, AvgDurationMs: 9},
	})

	if !strings.HasPrefix(out, "Tool invocations:") {
		t.Errorf("missing header:\n%s", out)
	}
	for _, needle := range []string{"getSignalList", "calls=12", "failures=1", "avg=9ms"} {
		if !strings.Contains(out, needle) {
			t.Errorf("output missing %q:\n%s", needle, out)
		}
	}
}

func TestFormatStatsEmpty(t *testing.T) {
	if got := formatStats(nil); got != "No tool invocations recorded." {
		t.Errorf("empty stats = %q", got)
	}
}
