package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewProvidesJSONLogger(t *testing.T) {
	l := New(slog.LevelInfo)
	if l == nil {
		t.Fatal("expected logger, got nil")
	}

	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}

	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}
}

func TestNewHonoursLevel(t *testing.T) {
	if !New(slog.LevelDebug).Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
	if New(slog.LevelError).Enabled(context.Background(), slog.LevelWarn) {
		t.Errorf("did not expect warn level to be enabled")
	}
}

func TestLoggerTagsService(t *testing.T) {
	var buf bytes.Buffer
	newWithWriter(&buf, slog.LevelInfo).Info("hello")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("expected json output: %v", err)
	}
	if record["service"] != "storeadmin" || record["msg"] != "hello" {
		t.Fatalf("unexpected record: %v", record)
	}
}
