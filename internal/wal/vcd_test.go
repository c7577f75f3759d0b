package wal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

const sampleVCD = `$date today $end
$version handwritten $end
$timescale 1ns $end
$scope module tb $end
$var wire 1 ! clk $end
$var wire 1 " reset $end
$scope module dut $end
$var wire 4 # counter $end
$upscope $end
$upscope $end
$enddefinitions $end
$dumpvars
0!
1"
b0000 #
$end
#0
#1
1!
#2
0!
0"
b0001 #
#3
1!
#4
0!
b0010 #
`

func parseSample(t *testing.T) *Trace {
	t.Helper()
	trace, err := ParseVCD(strings.NewReader(sampleVCD))
	if err != nil {
		t.Fatalf("ParseVCD failed: %v", err)
	}
	return trace
}

func TestParseVCDSignals(t *testing.T) {
	trace := parseSample(t)

	want := []string{"tb.clk", "tb.reset", "tb.dut.counter"}
	got := trace.Signals()
	if len(got) != len(want) {
		t.Fatalf("got %d signals, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("signal[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if w, _ := trace.SignalWidth("tb.dut.counter"); w != 4 {
		t.Errorf("tb.dut.counter width = %d, want 4", w)
	}
}

func TestParseVCDValues(t *testing.T) {
	trace := parseSample(t)

	if trace.Length() != 5 {
		t.Fatalf("Length() = %d, want 5", trace.Length())
	}

	// t0: initial dump values
	checkValue(t, trace, "tb.clk", "0")
	checkValue(t, trace, "tb.reset", "1")
	checkValue(t, trace, "tb.dut.counter", "0")

	// t2: clk low again, reset dropped, counter = 1
	if err := trace.Step(2); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	checkValue(t, trace, "tb.clk", "0")
	checkValue(t, trace, "tb.reset", "0")
	checkValue(t, trace, "tb.dut.counter", "1")

	// t3: values carry forward except clk
	if err := trace.Step(1); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	checkValue(t, trace, "tb.clk", "1")
	checkValue(t, trace, "tb.dut.counter", "1")
}

func checkValue(t *testing.T, trace *Trace, signal, want string) {
	t.Helper()
	got, err := trace.SignalValue(signal)
	if err != nil {
		t.Fatalf("SignalValue(%s) failed: %v", signal, err)
	}
	if got != want {
		t.Errorf("SignalValue(%s) at t%d = %q, want %q", signal, trace.Index(), got, want)
	}
}

func TestParseVCDErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"no signals", "$enddefinitions $end\n#0\n"},
		{"no samples", "$var wire 1 ! clk $end\n$enddefinitions $end\n"},
		{"bad width", "$var wire zero ! clk $end\n$enddefinitions $end\n#0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseVCD(strings.NewReader(tt.src)); err == nil {
				t.Errorf("ParseVCD should fail for %s", tt.name)
			}
		})
	}
}

func TestVCDLoaderPlainFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.vcd")
	if err := os.WriteFile(path, []byte(sampleVCD), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	trace, err := VCDLoader{}.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if trace.Length() != 5 {
		t.Errorf("Length() = %d, want 5", trace.Length())
	}
}

func TestVCDLoaderGzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.vcd.gz")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sampleVCD)); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := gz.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("file close failed: %v", err)
	}

	trace, err := VCDLoader{}.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if trace.Length() != 5 {
		t.Errorf("Length() = %d, want 5", trace.Length())
	}
	checkValue(t, trace, "tb.reset", "1")
}

func TestVCDLoaderMissingFile(t *testing.T) {
	if _, err := (VCDLoader{}).Load(filepath.Join(t.TempDir(), "missing.vcd")); err == nil {
		t.Error("Load of a missing file should fail")
	}
}

func TestVCDLoaderRepoFixture(t *testing.T) {
	trace, err := VCDLoader{}.Load(filepath.Join("..", "..", "testdata", "counter_tb.vcd"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if trace.Length() != 11 {
		t.Errorf("Length() = %d, want 11", trace.Length())
	}
	if !trace.HasSignal("tb.dut.overflow") {
		t.Error("tb.dut.overflow missing from fixture")
	}
	if err := trace.Step(9); err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	checkValue(t, trace, "tb.dut.counter", "4")
}
