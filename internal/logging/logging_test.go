package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("warn", &buf, false)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info().Msg("hidden")
	log.Warn().Str("file", "a.png").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("Expected JSON output: %v", err)
	}
	if entry["level"] != "warn" || entry["file"] != "a.png" || entry["message"] != "shown" {
		t.Errorf("Unexpected entry %v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Error("Expected a timestamp field")
	}
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New("", &buf, true)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	log.Info().Msg("hello")
	if strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), "hello") {
		t.Errorf("Expected console output, got %q", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", &bytes.Buffer{}, false); err == nil {
		t.Error("Expected an error for an unknown level")
	}
}
