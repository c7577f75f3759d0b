package engine

import (
	"fmt"
	"strings"
)

// ExamplesResult is the outcome of example synthesis for a trace.
type ExamplesResult struct {
	File        string `json:"file"`
	SignalCount int    `json:"signalCount"`
	Report      string `json:"report"`
}

// Examples synthesizes ready-to-run WAL expressions named after the
// trace's actual signals. Signals are bucketed by naming convention
// (clocks, resets, counters) and each bucket present in the trace gets
// its own section. A trace with no signals yields an informational
// report rather than an error.
func (e *Engine) Examples(path string) (*ExamplesResult, error) {
	h, err := e.cache.GetOrLoad(path)
	if err != nil {
		return nil, err
	}

	signals := h.Trace.Signals()
	res := &ExamplesResult{File: path, SignalCount: len(signals)}
	if len(signals) == 0 {
		res.Report = "No signals found in waveform file"
		return res, nil
	}

	var clocks, resets, counters []string
	for _, s := range signals {
		lower := strings.ToLower(s)
		if strings.Contains(lower, "clk") {
			clocks = append(clocks, s)
		}
		if strings.Contains(lower, "reset") || strings.Contains(lower, "rst") {
			resets = append(resets, s)
		}
		if strings.Contains(lower, "counter") || strings.Contains(lower, "count") {
			counters = append(counters, s)
		}
	}

	lines := []string{
		fmt.Sprintf("WAL Examples for %s", path),
		strings.Repeat("=", 60),
		fmt.Sprintf("Available signals: %d total", len(signals)),
		"",
		"BASIC SIGNAL ACCESS:",
		"• SIGNALS - List all signals in waveform",
		fmt.Sprintf("• %s - Get current value of %s", signals[0], signals[0]),
		"• INDEX - Current time index",
		"• (length (find true)) - Total simulation length",
		"",
	}

	if len(clocks) > 0 {
		clk := clocks[0]
		lines = append(lines,
			fmt.Sprintf("CLOCK ANALYSIS (using %s):", clk),
			fmt.Sprintf("• (find (= %s 1)) - Find all clock high times", clk),
			fmt.Sprintf("• (length (find (= %s 1))) - Count clock high periods", clk),
			fmt.Sprintf("• (step 0) (find (= %s 1)) - Go to start, find clock highs", clk),
			"")
	}
	if len(resets) > 0 {
		rst := resets[0]
		lines = append(lines,
			fmt.Sprintf("RESET ANALYSIS (using %s):", rst),
			fmt.Sprintf("• (find (= %s 1)) - Find reset assertion times", rst),
			fmt.Sprintf("• (find (= %s 0)) - Find reset deassertion times", rst),
			fmt.Sprintf("• (length (find (= %s 1))) - Total reset duration", rst),
			"")
	}
	if len(counters) > 0 {
		cnt := counters[0]
		lines = append(lines,
			fmt.Sprintf("COUNTER ANALYSIS (using %s):", cnt),
			fmt.Sprintf("• (find (= %s 0)) - Find when counter is zero", cnt),
			fmt.Sprintf("• (find (> %s 10)) - Find when counter > 10", cnt),
			fmt.Sprintf("• (length (find (>= %s 1))) - Non-zero periods", cnt),
			"")
	}
	if len(signals) >= 2 {
		sig1, sig2 := signals[0], signals[1]
		lines = append(lines,
			"MULTI-SIGNAL PATTERNS:",
			fmt.Sprintf("• (find (&& (= %s 1) (= %s 0))) - %s high AND %s low", sig1, sig2, sig1, sig2),
			fmt.Sprintf("• (find (|| (= %s 1) (= %s 1))) - Either signal high", sig1, sig2),
			fmt.Sprintf("• (find (&& (>= %s 1) (>= %s 1))) - Both signals non-zero", sig1, sig2),
			"")
	}

	last := signals[len(signals)-1]
	lines = append(lines,
		"DEBUGGING PATTERNS:",
		"• (find (= overflow 1)) - Find overflow events (if overflow signal exists)",
		"• (find (&& (= valid 1) (= ready 0))) - Handshake stalls (if protocol signals exist)",
		fmt.Sprintf("• (length (find (> %s 15))) - Values out of range (example: >15)", last),
		"",
		"TIMING ANALYSIS:",
		"• (step 0) INDEX - Go to start and show time",
		fmt.Sprintf("• (step 10) %s - Advance 10 steps and show signal value", signals[0]),
		fmt.Sprintf("• (find (= %s target)) - Find specific signal values", signals[0]),
		"",
		"For more help: use getWalHelp with topics 'functions', 'debugging', or 'syntax'")

	res.Report = strings.Join(lines, "\n")
	return res, nil
}
