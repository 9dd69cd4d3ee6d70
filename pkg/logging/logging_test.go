package logging_test

import (
	"log/slog"
	"testing"

	"github.com/layerbylayersg/slicer-estimate-api/pkg/logging"
)

func TestLevel_Validate(t *testing.T) {
	for _, level := range []logging.Level{
		logging.LevelDebug,
		logging.LevelInfo,
		logging.LevelWarn,
		logging.LevelError,
	} {
		if err := level.Validate(); err != nil {
			t.Errorf("Validate(%s) error = %v", level, err)
		}
	}

	if err := logging.Level("verbose").Validate(); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestLevel_ToSlogLevel(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  slog.Level
	}{
		{logging.LevelDebug, slog.LevelDebug},
		{logging.LevelInfo, slog.LevelInfo},
		{logging.LevelWarn, slog.LevelWarn},
		{logging.LevelError, slog.LevelError},
		{logging.Level("unknown"), slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.ToSlogLevel(); got != tt.want {
			t.Errorf("ToSlogLevel(%s) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestFormat_Validate(t *testing.T) {
	if err := logging.FormatJSON.Validate(); err != nil {
		t.Errorf("Validate(json) error = %v", err)
	}
	if err := logging.FormatText.Validate(); err != nil {
		t.Errorf("Validate(text) error = %v", err)
	}
	if err := logging.Format("xml").Validate(); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestConfig_Finalize(t *testing.T) {
	cfg := logging.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelInfo {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != logging.FormatText {
		t.Errorf("Format = %q, want text", cfg.Format)
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_LOG_LEVEL", "debug")
	t.Setenv("TEST_LOG_FORMAT", "json")

	cfg := logging.Config{}
	env := &logging.Env{Level: "TEST_LOG_LEVEL", Format: "TEST_LOG_FORMAT"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Level != logging.LevelDebug {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != logging.FormatJSON {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
}

func TestNew(t *testing.T) {
	cfg := &logging.Config{Level: logging.LevelDebug, Format: logging.FormatJSON}
	logger := logging.New(cfg)

	if logger == nil {
		t.Fatal("New() returned nil")
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug logging not enabled")
	}
}
