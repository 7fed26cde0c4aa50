package logging

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	if _, err := New(cfg); err == nil {
		t.Fatal("expected error for unknown level")
	}
}

func TestNewDefaultConfig(t *testing.T) {
	logger, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	if logger == nil {
		t.Fatal("expected logger")
	}
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter(zapcore.InfoLevel, "json", &buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("generated npc", zap.String("gender", "Female"))
	logger.Debug("dropped")
	_ = logger.Sync()

	out := buf.String()
	if !strings.Contains(out, `"msg":"generated npc"`) {
		t.Fatalf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, `"gender":"Female"`) {
		t.Fatalf("expected field in output, got %q", out)
	}
	if strings.Contains(out, "dropped") {
		t.Fatalf("expected debug entry to be filtered, got %q", out)
	}
}

func TestNewWithWriterRejectsUnknownFormat(t *testing.T) {
	if _, err := NewWithWriter(zapcore.InfoLevel, "xml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("expected nop logger")
	}
	logger := zap.NewExample()
	if OrNop(logger) != logger {
		t.Fatal("expected logger passthrough")
	}
}
