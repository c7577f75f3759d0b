package engine

import (
	"fmt"
	"strings"
)

// HelpResult is the outcome of a documentation lookup.
type HelpResult struct {
	Topic  string `json:"topic"`
	Known  bool   `json:"known"`
	Report string `json:"report"`
}

// helpTopics is the fixed order topics are advertised in.
var helpTopics = []string{"overview", "functions", "examples", "debugging", "syntax"}

// Help returns built-in WAL documentation for a topic. An empty topic
// defaults to the overview; an unknown topic yields a report listing
// the available ones rather than an error.
func (e *Engine) Help(topic string) *HelpResult {
	if topic == "" {
		topic = "overview"
	}

	content, ok := walDocumentation[topic]
	if !ok {
		return &HelpResult{
			Topic: topic,
			Report: fmt.Sprintf("Unknown topic '%s'. Available topics: %s",
				topic, strings.Join(helpTopics, ", ")),
		}
	}

	lines := []string{
		fmt.Sprintf("WAL Help - %s", titleCase(topic)),
		strings.Repeat("=", 50),
		strings.TrimSpace(content),
		"",
		fmt.Sprintf("Available topics: %s", strings.Join(helpTopics, ", ")),
		"Use getWalHelp with different topic for more information.",
	}
	return &HelpResult{Topic: topic, Known: true, Report: strings.Join(lines, "\n")}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var walDocumentation = map[string]string{
	"overview": `
WAL (Waveform Analysis Language) - Quick Reference

WAL is a functional programming language designed for waveform analysis with Lisp-like syntax.
All expressions use parentheses: (function arg1 arg2 ...)

Key Concepts:
• Signals: Access by name (e.g., 'clk', 'tb.counter')
• Time: Navigate with (step N) or use INDEX for current time
• Lists: Most operations return lists of values/times
• Conditions: Use for filtering and searching
`,

	"functions": `
Core WAL Functions for Waveform Analysis:

TIME & NAVIGATION:
• (step N) - Move N steps forward in time
• INDEX - Current time index
• (find condition) - Find all times where condition is true

SIGNAL ACCESS:
• SIGNALS - List of all signal names
• signal_name - Access signal values at current time
• (length signal_or_list) - Get length of signal timeline or list

SEARCH & FILTER:
• (find condition) - Returns list of time indices where condition is true
• (count condition) - Count number of times condition is true
• (= signal value) - Test if signal equals value
• (!= signal value) - Test if signal not equal to value
• (> signal value) - Test if signal greater than value
• (< signal value) - Test if signal less than value

LOGICAL OPERATIONS:
• (&& cond1 cond2 ...) - Logical AND
• (|| cond1 cond2 ...) - Logical OR
• Note: 'and', 'or', 'not' are not available in this WAL implementation

ARITHMETIC:
• (+ arg1 arg2 ...) - Addition
• (- arg1 arg2 ...) - Subtraction
• (* arg1 arg2 ...) - Multiplication
• (/ arg1 arg2 ...) - Division
`,

	"examples": `
WAL Usage Examples:

BASIC SIGNAL ACCESS:
• SIGNALS - List all signals
• clk - Get clock value at current time
• (step 10) - Move 10 time steps forward

TIME & COUNTING:
• (length (find true)) - Total simulation length
• (count (= clk 1)) - Count clock high periods
• (count (= reset 0)) - Count time steps where reset is low

SIGNAL TRANSITIONS:
• (find (= clk 1)) - Find times when clock is high
• (find (&& (= clk 0) (= data 1))) - Find times when clk=0 AND data=1
• (find (|| (= sig1 1) (= sig2 1))) - Find times when either signal is high

COMPLEX CONDITIONS:
• (find (> counter 10)) - Find times when counter > 10
• (find (&& (= clk 1) (> counter 5))) - Find clk high with counter > 5
• (length (find (= state 3))) - How long was state = 3

DEBUGGING PATTERNS:
• (find (= overflow 1)) - Find overflow events
• (find (&& (= valid 1) (= ready 0))) - Find handshake violations

MULTI-STEP ANALYSIS:
• (step 0) (find (= reset 1)) - Go to start, find reset assertion times
• (length SIGNALS) - Number of signals in waveform
`,

	"debugging": `
Common WAL Debugging Patterns:

PROTOCOL ANALYSIS:
• Handshake: (find (&& (= valid 1) (= ready 0))) - Stalled transactions
• Bus idle: (find (&& (= valid 0) (= ready 1))) - Ready but no data
• State machines: (find (= state target_state)) - Time in specific state

TIMING ANALYSIS:
• Clock analysis: (length (find (= clk 1))) - Count clock high periods
• Pulse width: Use find with consecutive conditions
• Frequency: (/ (length (find true)) (length (find (= clk 1)))) - Approximate period

SIGNAL VALIDATION:
• Unknown states: (find (= signal x)) - Find X states (if supported)
• Range check: (find (> signal max_value)) - Values out of range
• Constant check: (count (!= signal expected)) - Non-constant periods

ERROR DETECTION:
• Glitches: Look for very short pulses
• Race conditions: Multiple signals changing simultaneously
• Protocol violations: Invalid state combinations
`,

	"syntax": `
WAL Syntax Reference:

BASIC SYNTAX:
• Parentheses required: (function arg1 arg2)
• Comments: ; This is a comment
• Numbers: 123, 0xFF (hex), 0b1010 (binary)
• Strings: text without spaces
• Booleans: #t (true), #f (false)

FUNCTION CALLS:
• (function) - No arguments
• (function arg) - One argument
• (function arg1 arg2 arg3) - Multiple arguments

OPERATORS:
• Arithmetic: + - * /
• Comparison: = != < > <= >=
• Logical: && ||
• List: length

VARIABLES:
• SIGNALS - Built-in list of signal names
• INDEX - Built-in current time index
• signal_name - Direct signal access

CONTROL FLOW:
• (if condition then else) - Conditional

COMMON PATTERNS:
• (function (condition signal value)) - Nested conditions
• (operation (find condition)) - Apply operation to search results
• (length (find condition)) - Count matching conditions
`,
}
