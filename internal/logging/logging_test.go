package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"info", InfoLevel},
		{"warn", WarnLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"verbose", InfoLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: WarnLevel, Output: &buf})

	logger.Debug("debug message", nil)
	logger.Info("info message", nil)
	logger.Warn("warn message", nil)
	logger.Error("error message", nil)

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn should be suppressed:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("warn and error should be emitted:\n%s", out)
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: JSONFormat, Level: DebugLevel, Output: &buf})

	logger.Info("Analysis complete", map[string]interface{}{"components": 4})

	var e struct {
		Timestamp string                 `json:"timestamp"`
		Level     string                 `json:"level"`
		Message   string                 `json:"message"`
		Fields    map[string]interface{} `json:"fields"`
	}
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if e.Level != "info" || e.Message != "Analysis complete" {
		t.Errorf("entry = %+v", e)
	}
	if e.Fields["components"] != float64(4) {
		t.Errorf("fields = %v", e.Fields)
	}
	if e.Timestamp == "" {
		t.Error("timestamp should be set")
	}
}

func TestHumanFormatSortsFieldKeys(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: DebugLevel, Output: &buf})

	logger.Info("msg", map[string]interface{}{"zebra": 1, "alpha": 2, "mid": 3})

	out := buf.String()
	a := strings.Index(out, "alpha=")
	m := strings.Index(out, "mid=")
	z := strings.Index(out, "zebra=")
	if a < 0 || m < 0 || z < 0 || !(a < m && m < z) {
		t.Errorf("field keys should be sorted: %s", out)
	}
}

func TestHumanFormatNoFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Format: HumanFormat, Level: DebugLevel, Output: &buf})

	logger.Info("plain message", nil)

	out := buf.String()
	if !strings.Contains(out, "[info] plain message") {
		t.Errorf("unexpected output: %s", out)
	}
	if strings.Contains(out, "|") {
		t.Errorf("no field separator without fields: %s", out)
	}
}
