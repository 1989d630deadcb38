package logging

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestNewWritesECSJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "production")
	logger.Debug("hidden")
	logger.Info("payroll generated", "created", 3)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected a single JSON line, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "payroll generated" {
		t.Fatalf("expected ECS message key, got %v", entry)
	}
	if entry["app"] != "hrconsole" || entry["env"] != "production" {
		t.Fatalf("missing service attributes: %v", entry)
	}
}
