package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"", "level=WARN msg=careful count=2\n"},
		{FormatText, "level=WARN msg=careful count=2\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger, err := New(&buf, tt.format, slog.LevelWarn)
		if err != nil {
			t.Fatalf("New(%q) error = %v", tt.format, err)
		}
		logger.Info("hidden")
		logger.Warn("careful", slog.Int("count", 2))

		// Drop the time attribute.
		got := buf.String()
		if i := strings.Index(got, " "); i >= 0 {
			got = got[i+1:]
		}
		if got != tt.want {
			t.Errorf("New(%q) wrote %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, FormatJSON, slog.LevelDebug)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Debug("schema built", slog.Int("classes", 3))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Unmarshal() error = %v\n%s", err, buf.String())
	}
	if rec["msg"] != "schema built" {
		t.Errorf("msg = %v, want %q", rec["msg"], "schema built")
	}
	if rec["classes"] != float64(3) {
		t.Errorf("classes = %v, want 3", rec["classes"])
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New(&bytes.Buffer{}, "xml", slog.LevelInfo); err == nil {
		t.Error("New(xml) error = nil, want error")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		verbose int
		want    slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{5, slog.LevelDebug},
	}
	for _, tt := range tests {
		if got := Level(tt.verbose); got != tt.want {
			t.Errorf("Level(%d) = %v, want %v", tt.verbose, got, tt.want)
		}
	}
}
