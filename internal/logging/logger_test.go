package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestConsoleLogger(buf *bytes.Buffer) *slog.Logger {
	lvl := new(slog.LevelVar)
	lvl.Set(slog.LevelDebug)
	return slog.New(newConsoleHandler(buf, lvl))
}

func TestConsoleHandlerFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsoleLogger(&buf)

	logger.Info("wrote artifact", String(FieldComponent, "schedule"), String(FieldTrackID, "s1t01"), Int("count", 24))

	line := buf.String()
	if !strings.Contains(line, "INFO schedule: wrote artifact") {
		t.Errorf("line = %q", line)
	}
	if !strings.Contains(line, "track_id=s1t01") || !strings.Contains(line, "count=24") {
		t.Errorf("attrs missing from %q", line)
	}
}

func TestConsoleHandlerQuotesAwkwardValues(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestConsoleLogger(&buf)

	logger.Warn("skip", String("title", "Morning Dew"))
	if !strings.Contains(buf.String(), `title="Morning Dew"`) {
		t.Errorf("line = %q", buf.String())
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Error("New accepted an unknown format")
	}
}

func TestNewJSONFormat(t *testing.T) {
	logger, err := New(Options{Format: "json", Level: "debug"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if logger == nil {
		t.Fatal("nil logger")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"loud", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestContextFields(t *testing.T) {
	ctx := WithRunID(WithTrackID(context.Background(), "s2t08"), "run-1")

	fields := ContextFields(ctx)
	if len(fields) != 2 {
		t.Fatalf("fields = %v", fields)
	}

	var buf bytes.Buffer
	logger := WithContext(ctx, newTestConsoleLogger(&buf))
	logger.Info("processing")
	line := buf.String()
	if !strings.Contains(line, "track_id=s2t08") || !strings.Contains(line, "run_id=run-1") {
		t.Errorf("line = %q", line)
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := NewNop()
	// Must not panic and must report disabled at every level.
	logger.Info("ignored")
	if logger.Enabled(context.Background(), slog.LevelError) {
		t.Error("no-op logger claims to be enabled")
	}
}
