package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	info := Info()
	if info == "" {
		t.Fatal("Info() returned empty string")
	}
	if !strings.HasPrefix(info, Version) {
		t.Errorf("Info() = %q, want prefix %q", info, Version)
	}
}

func TestInfoWithCommit(t *testing.T) {
	oldCommit := Commit
	defer func() { Commit = oldCommit }()

	Commit = "abcdef1234567890"
	info := Info()
	if info != Version+" (abcdef1)" {
		t.Errorf("Info() = %q, want %q", info, Version+" (abcdef1)")
	}
}

func TestFull(t *testing.T) {
	full := Full()
	for _, want := range []string{"waveform-mcp version", "Commit:", "Built:"} {
		if !strings.Contains(full, want) {
			t.Errorf("Full() missing %q in %q", want, full)
		}
	}
}
