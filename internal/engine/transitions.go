package engine

import (
	"fmt"
	"strings"

	"github.com/ynivin/waveform-mcp/internal/errors"
)

// Transition records one observed value change of a signal.
type Transition struct {
	Time int    `json:"time"`
	From string `json:"from"`
	To   string `json:"to"`
}

// TransitionsResult is the outcome of a transition scan.
type TransitionsResult struct {
	File         string       `json:"file"`
	Signal       string       `json:"signal"`
	Width        int          `json:"width"`
	InitialValue string       `json:"initialValue,omitempty"`
	StartTime    int          `json:"startTime"`
	EndTime      int          `json:"endTime"`
	Transitions  []Transition `json:"transitions"`
	StepsChecked int          `json:"stepsChecked"`
	Report       string       `json:"report"`
}

// Transitions scans a signal for value changes between startTime and
// endTime inclusive. An endTime of zero means the last time step of the
// trace. A signal that does not exist fails fast before any stepping; a
// stepping failure mid-scan ends the scan early and the report carries
// whatever transitions were found up to that point.
func (e *Engine) Transitions(path, signal string, startTime, endTime int) (*TransitionsResult, error) {
	h, err := e.cache.GetOrLoad(path)
	if err != nil {
		return nil, err
	}
	if !h.Trace.HasSignal(signal) {
		return nil, errors.NewSignalNotFoundError(signal, path)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	width, err := h.Trace.SignalWidth(signal)
	if err != nil {
		width = 1
	}

	res := &TransitionsResult{
		File:        path,
		Signal:      signal,
		Width:       width,
		StartTime:   startTime,
		Transitions: make([]Transition, 0),
	}
	lines := []string{
		fmt.Sprintf("Signal analysis for '%s':", signal),
		fmt.Sprintf("  Width: %d bits", width),
	}

	fail := func(cause error) (*TransitionsResult, error) {
		lines = append(lines, fmt.Sprintf("  Error during transition detection: %v", cause))
		res.Report = strings.Join(lines, "\n")
		return res, nil
	}

	actualEnd := endTime
	if endTime == 0 {
		length, err := e.traceLengthLocked(h)
		if err != nil {
			return fail(err)
		}
		actualEnd = length - 1
	}
	res.EndTime = actualEnd

	if err := h.Trace.Step(startTime - h.Trace.Index()); err != nil {
		return fail(err)
	}
	prev, err := h.Trace.SignalValue(signal)
	if err != nil {
		return fail(err)
	}
	res.InitialValue = prev
	lines = append(lines, fmt.Sprintf("  Initial value at time %d: %s", startTime, prev))

	current := startTime
	for current < actualEnd {
		if e.maxScanSteps > 0 && current-startTime >= e.maxScanSteps {
			break
		}
		if err := h.Trace.Step(1); err != nil {
			break
		}
		current++
		value, err := h.Trace.SignalValue(signal)
		if err != nil {
			break
		}
		if value != prev {
			res.Transitions = append(res.Transitions, Transition{Time: current, From: prev, To: value})
			prev = value
		}
	}
	res.StepsChecked = current - startTime

	lines = append(lines, "")
	if len(res.Transitions) == 0 {
		lines = append(lines, "No transitions detected in time range.")
	} else {
		lines = append(lines, fmt.Sprintf("Transitions detected (%d):", len(res.Transitions)))
		for _, t := range res.Transitions {
			lines = append(lines, fmt.Sprintf("  Time %d: %s -> %s", t.Time, t.From, t.To))
		}
	}
	lines = append(lines,
		"",
		fmt.Sprintf("Time range analyzed: %d to %d", startTime, actualEnd),
		fmt.Sprintf("Total time steps checked: %d", res.StepsChecked))

	res.Report = strings.Join(lines, "\n")
	return res, nil
}
