package telemetry

import (
	"testing"
	"time"

	"github.com/ynivin/waveform-mcp/internal/logging"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(t.TempDir(), logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndSummarize(t *testing.T) {
	store := openTestStore(t)
	now := time.Now()

	store.RecordInvocation(Invocation{Tool: "getSignalList", OK: true, DurationMs: 10, CalledAt: now})
	store.RecordInvocation(Invocation{Tool: "getSignalList", OK: true, DurationMs: 30, CalledAt: now})
	store.RecordInvocation(Invocation{Tool: "executeWalExpression", OK: false, DurationMs: 5, CalledAt: now})

	stats, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d tools, want 2", len(stats))
	}
	// Most-called tool first.
	first := stats[0]
	if first.Tool != "getSignalList" || first.Calls != 2 || first.Failures != 0 {
		t.Errorf("first = %+v", first)
	}
	if first.AvgDurationMs != 20 {
		t.Errorf("avg duration = %d, want 20", first.AvgDurationMs)
	}
	second := stats[1]
	if second.Tool != "executeWalExpression" || second.Calls != 1 || second.Failures != 1 {
		t.Errorf("second = %+v", second)
	}
}

func TestSummaryEmpty(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("got %d tools on empty store, want 0", len(stats))
	}
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := Open(dir, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.RecordInvocation(Invocation{Tool: "getWaveformLength", OK: true, DurationMs: 1, CalledAt: time.Now()})
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(dir, logging.NewDiscardLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	stats, err := reopened.Summary()
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(stats) != 1 || stats[0].Calls != 1 {
		t.Errorf("stats after reopen = %+v", stats)
	}
}
