package envelope

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	resp := New().Data(map[string]string{"report": "ok"}).Build()

	if resp.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("schema version = %s, want %s", resp.SchemaVersion, CurrentSchemaVersion)
	}
	if resp.Error != nil {
		t.Errorf("unexpected error: %v", *resp.Error)
	}
	if len(resp.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", resp.Warnings)
	}
}

func TestBuilderErrorAndSuggestions(t *testing.T) {
	resp := New().
		Error("signal 'tb.nope' not found in counter.vcd").
		Suggest("getSignalList", "list available signals", map[string]interface{}{
			"waveformFile": "counter.vcd",
		}).
		Build()

	if resp.Error == nil || !strings.Contains(*resp.Error, "tb.nope") {
		t.Fatalf("error not carried: %v", resp.Error)
	}
	if len(resp.SuggestedNextCalls) != 1 {
		t.Fatalf("got %d suggestions, want 1", len(resp.SuggestedNextCalls))
	}
	if resp.SuggestedNextCalls[0].Tool != "getSignalList" {
		t.Errorf("suggested tool = %s", resp.SuggestedNextCalls[0].Tool)
	}
}

func TestEnvelopeJSONShape(t *testing.T) {
	resp := New().
		Data(map[string]int{"length": 81}).
		Warning("scan-truncated", "scan stopped early").
		Build()

	raw, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["schemaVersion"] != "1.0" {
		t.Errorf("schemaVersion = %v", decoded["schemaVersion"])
	}
	if _, ok := decoded["data"]; !ok {
		t.Error("data field missing")
	}
	if _, ok := decoded["error"]; ok {
		t.Error("error field should be omitted when unset")
	}
	warnings, ok := decoded["warnings"].([]interface{})
	if !ok || len(warnings) != 1 {
		t.Errorf("warnings = %v", decoded["warnings"])
	}
}

func TestOperational(t *testing.T) {
	resp := Operational("report text")
	if resp.Data != "report text" {
		t.Errorf("data = %v", resp.Data)
	}
	if resp.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("schema version = %s", resp.SchemaVersion)
	}
}
