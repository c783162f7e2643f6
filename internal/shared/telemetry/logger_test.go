package telemetry

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

func TestWriteEmitsFlatJSON(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Error("latex.compile_failed", map[string]any{
		"job":   "abc",
		"error": errors.New("exit status 1"),
	})

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json line %q: %v", buf.String(), err)
	}
	if entry["level"] != "error" {
		t.Fatalf("expected error level, got %v", entry["level"])
	}
	if entry["msg"] != "latex.compile_failed" {
		t.Fatalf("unexpected msg %v", entry["msg"])
	}
	if entry["job"] != "abc" || entry["error"] != "exit status 1" {
		t.Fatalf("unexpected fields %#v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("missing ts")
	}
}

func TestWarnLevelName(t *testing.T) {
	var buf bytes.Buffer
	restore := SetOutput(&buf)
	defer restore()

	Warn("latex.sweep_failed", nil)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if entry["level"] != "warn" {
		t.Fatalf("expected warn, got %v", entry["level"])
	}
}
