package wal

import (
	"strconv"
	"strings"
	"testing"
)

// newCounterTrace builds the 81-step counter testbench trace: tb.clk toggles
// every step starting low, tb.reset is high for the first two steps, and
// tb.dut.counter increments every other step.
func newCounterTrace(t *testing.T) *Trace {
	t.Helper()

	signals := []Signal{
		{Name: "tb.clk", Width: 1},
		{Name: "tb.reset", Width: 1},
		{Name: "tb.dut.counter", Width: 4},
	}

	samples := make([][]string, 81)
	for i := range samples {
		clk := strconv.Itoa(i % 2)
		reset := "0"
		if i < 2 {
			reset = "1"
		}
		counter := strconv.Itoa((i / 2) % 16)
		samples[i] = []string{clk, reset, counter}
	}

	trace, err := NewTrace(signals, samples)
	if err != nil {
		t.Fatalf("NewTrace failed: %v", err)
	}
	return trace
}

func evalString(t *testing.T, trace *Trace, src string) Value {
	t.Helper()
	expr, err := ParseSexpr(src)
	if err != nil {
		t.Fatalf("ParseSexpr(%q) failed: %v", src, err)
	}
	v, err := NewEvaluator(trace).Eval(expr)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", src, err)
	}
	return v
}

func TestTraceStepAndValue(t *testing.T) {
	trace := newCounterTrace(t)

	v, err := trace.SignalValue("tb.clk")
	if err != nil {
		t.Fatalf("SignalValue failed: %v", err)
	}
	if v != "0" {
		t.Errorf("tb.clk at t0 = %q, want 0", v)
	}

	if err := trace.Step(1); err != nil {
		t.Fatalf("Step(1) failed: %v", err)
	}
	v, _ = trace.SignalValue("tb.clk")
	if v != "1" {
		t.Errorf("tb.clk at t1 = %q, want 1", v)
	}

	if err := trace.Step(-1); err != nil {
		t.Fatalf("Step(-1) failed: %v", err)
	}
	if trace.Index() != 0 {
		t.Errorf("Index() = %d, want 0", trace.Index())
	}
}

func TestTraceStepOutOfRange(t *testing.T) {
	trace := newCounterTrace(t)

	if err := trace.Step(-1); err == nil {
		t.Error("Step(-1) from t0 should fail")
	}
	if err := trace.Step(81); err == nil {
		t.Error("Step(81) should fail on an 81-step trace")
	}
	// Cursor unchanged after failed steps
	if trace.Index() != 0 {
		t.Errorf("Index() = %d after failed steps, want 0", trace.Index())
	}
}

func TestTraceSignalWidth(t *testing.T) {
	trace := newCounterTrace(t)

	w, err := trace.SignalWidth("tb.dut.counter")
	if err != nil {
		t.Fatalf("SignalWidth failed: %v", err)
	}
	if w != 4 {
		t.Errorf("width = %d, want 4", w)
	}

	if _, err := trace.SignalWidth("tb.nope"); err == nil {
		t.Error("SignalWidth of unknown signal should fail")
	}
}

func TestEvalTotalLength(t *testing.T) {
	trace := newCounterTrace(t)

	v := evalString(t, trace, "(length (find true))")
	if v != int64(81) {
		t.Errorf("(length (find true)) = %v, want 81", v)
	}
}

func TestEvalClockHighCount(t *testing.T) {
	trace := newCounterTrace(t)

	// Clock is high at odd indices 1..79: 40 samples.
	v := evalString(t, trace, "(length (find (= tb.clk 1)))")
	if v != int64(40) {
		t.Errorf("(length (find (= tb.clk 1))) = %v, want 40", v)
	}

	if v := evalString(t, trace, "(count (= tb.clk 1))"); v != int64(40) {
		t.Errorf("(count (= tb.clk 1)) = %v, want 40", v)
	}
}

func TestEvalFindReturnsIndices(t *testing.T) {
	trace := newCounterTrace(t)

	v := evalString(t, trace, "(find (= tb.reset 1))")
	list, ok := v.([]Value)
	if !ok {
		t.Fatalf("find should return a list, got %s", KindOf(v))
	}
	if len(list) != 2 || list[0] != int64(0) || list[1] != int64(1) {
		t.Errorf("reset high indices = %v, want [0 1]", list)
	}
}

func TestEvalLogicAndArith(t *testing.T) {
	trace := newCounterTrace(t)

	tests := []struct {
		src  string
		want Value
	}{
		{"(+ 1 2 3)", int64(6)},
		{"(- 10 4)", int64(6)},
		{"(* 2 3 4)", int64(24)},
		{"(/ 9 2)", int64(4)},
		{"(> 3 2)", true},
		{"(<= 3 2)", false},
		{"(!= 1 2)", true},
		{"(&& true (= 1 1))", true},
		{"(&& true false)", false},
		{"(|| false (= 1 1))", true},
		{"(if (> 2 1) 10 20)", int64(10)},
		{"0x10", int64(16)},
		{"0b101", int64(5)},
	}

	for _, tt := range tests {
		if got := evalString(t, trace, tt.src); got != tt.want {
			t.Errorf("Eval(%q) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestEvalStepMovesCursor(t *testing.T) {
	trace := newCounterTrace(t)

	v := evalString(t, trace, "(step 10)")
	if v != int64(10) {
		t.Errorf("(step 10) = %v, want 10", v)
	}
	if trace.Index() != 10 {
		t.Errorf("Index() = %d after step, want 10", trace.Index())
	}
}

func TestEvalUndefinedSymbol(t *testing.T) {
	trace := newCounterTrace(t)

	expr, err := ParseSexpr("(find (= bogus.signal 1))")
	if err != nil {
		t.Fatalf("ParseSexpr failed: %v", err)
	}
	_, err = NewEvaluator(trace).Eval(expr)
	if err == nil {
		t.Fatal("evaluation should fail for an unknown signal")
	}
	if !strings.Contains(err.Error(), "undefined") {
		t.Errorf("error should mention 'undefined', got: %v", err)
	}
}

func TestEvalLengthOfScalar(t *testing.T) {
	trace := newCounterTrace(t)

	expr, err := ParseSexpr("(length 5)")
	if err != nil {
		t.Fatalf("ParseSexpr failed: %v", err)
	}
	_, err = NewEvaluator(trace).Eval(expr)
	if err == nil {
		t.Fatal("length of a scalar should fail")
	}
	if !strings.Contains(err.Error(), "argument must be a list") {
		t.Errorf("error should mention 'argument must be a list', got: %v", err)
	}
}

func TestEvalDivisionByZero(t *testing.T) {
	trace := newCounterTrace(t)

	expr, _ := ParseSexpr("(/ 1 0)")
	if _, err := NewEvaluator(trace).Eval(expr); err == nil {
		t.Fatal("division by zero should fail")
	}
}

func TestEvalSignalsBuiltin(t *testing.T) {
	trace := newCounterTrace(t)

	v := evalString(t, trace, "SIGNALS")
	list, ok := v.([]Value)
	if !ok {
		t.Fatalf("SIGNALS should be a list, got %s", KindOf(v))
	}
	if len(list) != 3 || list[0] != "tb.clk" {
		t.Errorf("SIGNALS = %v", list)
	}

	if v := evalString(t, trace, "(length SIGNALS)"); v != int64(3) {
		t.Errorf("(length SIGNALS) = %v, want 3", v)
	}
}

func TestEvalIndexBuiltin(t *testing.T) {
	trace := newCounterTrace(t)

	if v := evalString(t, trace, "INDEX"); v != int64(0) {
		t.Errorf("INDEX = %v, want 0", v)
	}
	evalString(t, trace, "(step 5)")
	if v := evalString(t, trace, "INDEX"); v != int64(5) {
		t.Errorf("INDEX after (step 5) = %v, want 5", v)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{int64(40), "40"},
		{true, "true"},
		{"x", "x"},
		{[]Value{int64(1), int64(3)}, "[1 3]"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{int64(1), "int"},
		{true, "bool"},
		{"x", "str"},
		{[]Value{}, "list"},
		{nil, "nil"},
	}
	for _, tt := range tests {
		if got := KindOf(tt.v); got != tt.want {
			t.Errorf("KindOf(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
