// Package wal implements the waveform collaborator boundary: loading traces
// from VCD files and evaluating WAL (Waveform Analysis Language) expressions
// against them.
//
// WAL is a small Lisp-like language for waveform analysis. This package
// implements the subset the query engine exercises: signal access, time
// navigation with step/INDEX, find/count/length, comparison, logic and
// arithmetic. The engine packages treat everything here as an external
// collaborator and never reach into trace internals.
package wal

import (
	"fmt"
)

// Signal describes one named value stream in a trace.
type Signal struct {
	Name  string `json:"name"`
	Width int    `json:"width"`
}

// Trace is a loaded waveform: an ordered set of signals sampled at a
// sequence of time indices, plus a cursor marking the current index.
//
// The cursor is shared mutable state: step, find and length all move it.
// Callers that need a consistent view across several operations must
// serialize access to the trace themselves.
type Trace struct {
	signals []Signal       // native declaration order
	byName  map[string]int // signal name -> position in signals
	samples [][]string     // samples[time][signal position]
	cursor  int
}

// NewTrace builds an in-memory trace. samples is indexed [time][signal],
// with one row per time index in the same order as signals.
func NewTrace(signals []Signal, samples [][]string) (*Trace, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("trace has no time steps")
	}
	byName := make(map[string]int, len(signals))
	for i, s := range signals {
		if _, dup := byName[s.Name]; dup {
			return nil, fmt.Errorf("duplicate signal name %q", s.Name)
		}
		byName[s.Name] = i
	}
	for t, row := range samples {
		if len(row) != len(signals) {
			return nil, fmt.Errorf("sample %d has %d values, want %d", t, len(row), len(signals))
		}
	}
	return &Trace{
		signals: signals,
		byName:  byName,
		samples: samples,
	}, nil
}

// Signals returns the signal names in the trace's native enumeration order.
func (t *Trace) Signals() []string {
	names := make([]string, len(t.signals))
	for i, s := range t.signals {
		names[i] = s.Name
	}
	return names
}

// SignalWidth returns the bit width of the named signal.
func (t *Trace) SignalWidth(name string) (int, error) {
	i, ok := t.byName[name]
	if !ok {
		return 0, fmt.Errorf("unknown signal %q", name)
	}
	return t.signals[i].Width, nil
}

// HasSignal reports whether the named signal exists in the trace.
func (t *Trace) HasSignal(name string) bool {
	_, ok := t.byName[name]
	return ok
}

// SignalValue returns the named signal's value at the current cursor.
func (t *Trace) SignalValue(name string) (string, error) {
	i, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("unknown signal %q", name)
	}
	return t.samples[t.cursor][i], nil
}

// Index returns the current cursor position.
func (t *Trace) Index() int {
	return t.cursor
}

// Length returns the number of time indices in the trace.
func (t *Trace) Length() int {
	return len(t.samples)
}

// Step moves the cursor by n time units (n may be negative). Stepping past
// either end of the trace leaves the cursor unchanged and returns an error.
func (t *Trace) Step(n int) error {
	next := t.cursor + n
	if next < 0 || next >= len(t.samples) {
		return fmt.Errorf("step to %d is outside trace range 0..%d", next, len(t.samples)-1)
	}
	t.cursor = next
	return nil
}

// setIndex seeks the cursor directly. Internal to the evaluator; the public
// surface offers stepping only.
func (t *Trace) setIndex(i int) {
	t.cursor = i
}
