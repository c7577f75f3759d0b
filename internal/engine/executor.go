package engine

import (
	"fmt"
	"strings"

	"github.com/ynivin/waveform-mcp/internal/wal"
)

// ExecuteResult is the outcome of evaluating a WAL expression.
type ExecuteResult struct {
	File       string `json:"file"`
	Expression string `json:"expression"`
	Success    bool   `json:"success"`
	Result     string `json:"result,omitempty"`
	ResultType string `json:"resultType,omitempty"`
	Error      string `json:"error,omitempty"`
	ErrorClass string `json:"errorClass,omitempty"`
	Report     string `json:"report"`
}

// Execute parses and evaluates a WAL expression against a trace. Parse
// and evaluation failures are reported, not returned: the result carries
// the raw error text plus remediation suggestions built from the trace's
// actual signal names.
func (e *Engine) Execute(path, expression string) (*ExecuteResult, error) {
	h, err := e.cache.GetOrLoad(path)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	res := &ExecuteResult{File: path, Expression: expression}
	lines := []string{
		fmt.Sprintf("WAL Expression: %s", expression),
		fmt.Sprintf("Waveform file: %s", path),
		"",
	}

	expr, err := wal.ParseSexpr(expression)
	var value wal.Value
	if err == nil {
		value, err = wal.NewEvaluator(h.Trace).Eval(expr)
	}

	if err != nil {
		class := classifyEvalError(err)
		res.Error = err.Error()
		res.ErrorClass = class.String()
		lines = append(lines, fmt.Sprintf("Execution Error: %v", err), "")
		lines = append(lines, walSuggestions(class, h.Trace.Signals())...)
		lines = append(lines, "",
			"For more help: use getWalHelp with topics 'examples', 'functions', or 'debugging'")
		res.Report = strings.Join(lines, "\n")
		return res, nil
	}

	res.Success = true
	res.ResultType = wal.KindOf(value)
	if list, ok := value.([]wal.Value); ok && len(list) > 5 {
		res.Result = wal.FormatValue(value)
		lines = append(lines,
			fmt.Sprintf("Result: list of %d elements", len(list)),
			"First few elements:")
		for i := 0; i < 5; i++ {
			lines = append(lines, fmt.Sprintf("  [%d]: %s", i, wal.FormatValue(list[i])))
		}
		lines = append(lines, fmt.Sprintf("  ... and %d more", len(list)-5))
	} else {
		res.Result = wal.FormatValue(value)
		lines = append(lines,
			fmt.Sprintf("Result: %s", res.Result),
			fmt.Sprintf("Result type: %s", res.ResultType))
	}

	res.Report = strings.Join(lines, "\n")
	return res, nil
}

type evalErrorClass int

const (
	classGeneric evalErrorClass = iota
	classMissingName
	classTypeMismatch
)

func (c evalErrorClass) String() string {
	switch c {
	case classMissingName:
		return "missing-name"
	case classTypeMismatch:
		return "type-mismatch"
	default:
		return "generic"
	}
}

// classifyEvalError maps an evaluator failure onto a remediation class
// by substring matching on the lowered message text. This is a
// best-effort heuristic and the only place that inspects error prose;
// if the evaluator ever exposes structured error kinds, replace this
// function and nothing else.
func classifyEvalError(err error) evalErrorClass {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "undefined"):
		return classMissingName
	case strings.Contains(msg, "argument must be a list"):
		return classTypeMismatch
	default:
		return classGeneric
	}
}

// walSuggestions builds the remediation block for a failed expression.
// Examples use the trace's first signal name when one exists.
func walSuggestions(class evalErrorClass, signals []string) []string {
	name := "signal_name"
	if len(signals) > 0 {
		name = signals[0]
	}

	var lines []string
	switch class {
	case classMissingName:
		lines = append(lines,
			"Variable/function not found. Try:",
			"• Check signal names with SIGNALS",
			"• Use exact signal names from your waveform")
		if len(signals) > 0 {
			preview := signals
			suffix := ""
			if len(preview) > 5 {
				preview = preview[:5]
				suffix = "..."
			}
			lines = append(lines, fmt.Sprintf("• Available signals: %s%s", strings.Join(preview, ", "), suffix))
		}
	case classTypeMismatch:
		lines = append(lines,
			"Function expects a list. Try:",
			"• (find condition) returns a list of time indices",
			"• (length (find condition)) to count matches",
			fmt.Sprintf("• Use signal names directly: %s", name))
	default:
		lines = append(lines,
			"Common WAL patterns to try:",
			"• SIGNALS - List all signal names",
			"• (find (= signal_name value)) - Find when signal equals value",
			"• (count condition) - Count occurrences",
			"• (length (find true)) - Total simulation length")
	}

	lines = append(lines, "",
		fmt.Sprintf("Examples with your signals (using '%s'):", name),
		fmt.Sprintf("• (find (= %s 1)) - Find when %s is high", name, name),
		fmt.Sprintf("• (count (= %s 0)) - Count when %s is low", name, name),
		fmt.Sprintf("• (length (find (!= %s 0))) - Time steps when %s != 0", name, name))
	return lines
}
