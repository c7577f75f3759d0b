package engine

import (
	"fmt"
	"strings"

	"github.com/ynivin/waveform-mcp/internal/wal"
)

// LengthResult is the outcome of a waveform length query.
type LengthResult struct {
	File   string `json:"file"`
	Length int    `json:"length"`
	Report string `json:"report"`
}

// WaveformLength reports the total number of time steps in a trace.
// The count is computed through the expression language rather than
// trace metadata, so it exercises the same path user queries take.
func (e *Engine) WaveformLength(path string) (*LengthResult, error) {
	h, err := e.cache.GetOrLoad(path)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	res := &LengthResult{File: path}
	length, err := e.traceLengthLocked(h)
	if err != nil {
		res.Report = strings.Join([]string{
			fmt.Sprintf("Waveform file: %s", path),
			fmt.Sprintf("Error getting waveform length: %v", err),
		}, "\n")
		return res, nil
	}

	res.Length = length
	res.Report = strings.Join([]string{
		fmt.Sprintf("Waveform file: %s", path),
		fmt.Sprintf("Total time steps: %d", length),
		fmt.Sprintf("Time range: 0 to %d", length-1),
		"Method: WAL (length (find true))",
	}, "\n")
	return res, nil
}

// traceLengthLocked computes the trace length with the handle mutex held.
func (e *Engine) traceLengthLocked(h *Handle) (int, error) {
	expr, err := wal.ParseSexpr("(length (find true))")
	if err != nil {
		return 0, err
	}
	value, err := wal.NewEvaluator(h.Trace).Eval(expr)
	if err != nil {
		return 0, err
	}
	n, ok := value.(int64)
	if !ok {
		return 0, fmt.Errorf("unexpected length result type %s", wal.KindOf(value))
	}
	return int(n), nil
}
