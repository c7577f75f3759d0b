package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ynivin/waveform-mcp/internal/errors"
)

// SignalDescriptor describes one signal of a loaded trace.
type SignalDescriptor struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

// SignalListResult is the outcome of a signal listing operation.
type SignalListResult struct {
	File         string             `json:"file"`
	Pattern      string             `json:"pattern,omitempty"`
	Signals      []SignalDescriptor `json:"signals"`
	PatternError string             `json:"patternError,omitempty"`
	Report       string             `json:"report"`
}

// SignalList lists the signals of a waveform, optionally filtered by a
// regular expression matched anywhere in the full dotted name. A bad
// pattern is not fatal: the result carries the compile error and a
// report that echoes the offending pattern.
func (e *Engine) SignalList(path, pattern string) (*SignalListResult, error) {
	h, err := e.cache.GetOrLoad(path)
	if err != nil {
		return nil, err
	}

	res := &SignalListResult{File: path, Pattern: pattern}
	lines := []string{fmt.Sprintf("Signals in %s:", path)}

	descriptors, err := e.listSignals(h, pattern)
	if err != nil {
		var we *errors.WaveError
		cause := err
		if errors.As(err, &we) && we.Unwrap() != nil {
			cause = we.Unwrap()
		}
		res.PatternError = cause.Error()
		lines = append(lines,
			fmt.Sprintf("Invalid regex pattern '%s': %v", pattern, cause),
			"Please provide a valid regex pattern.")
		res.Report = strings.Join(lines, "\n")
		return res, nil
	}
	res.Signals = descriptors

	if pattern != "" {
		lines = append(lines, fmt.Sprintf("Filter pattern: %s", pattern))
	}
	if len(descriptors) == 0 {
		if pattern != "" {
			lines = append(lines, "  No signals found matching regex pattern.")
		} else {
			lines = append(lines, "  No signals found in waveform file.")
		}
	}
	for _, d := range descriptors {
		unit := "bits"
		if d.Width == 1 {
			unit = "bit"
		}
		lines = append(lines, fmt.Sprintf("  %s [%d %s]", d.Name, d.Width, unit))
	}

	res.Report = strings.Join(lines, "\n")
	return res, nil
}

func (e *Engine) listSignals(h *Handle, pattern string) ([]SignalDescriptor, error) {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, errors.NewPatternError(pattern, err)
		}
	}

	descriptors := make([]SignalDescriptor, 0)
	for _, name := range h.Trace.Signals() {
		if re != nil && !re.MatchString(name) {
			continue
		}
		width, err := h.Trace.SignalWidth(name)
		if err != nil {
			width = 1
		}
		descriptors = append(descriptors, SignalDescriptor{Name: name, Width: width})
	}
	return descriptors, nil
}
