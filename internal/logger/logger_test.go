package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLogLevel(tc.input); got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestMultiHandlerFansOut(t *testing.T) {
	var first, second bytes.Buffer
	handler := newMultiHandler(
		slog.NewTextHandler(&first, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&second, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	log := slog.New(handler)
	log.Info("chamber generated", "count", 13)

	if !strings.Contains(first.String(), "chamber generated") {
		t.Error("info-level handler missed the record")
	}
	if second.Len() != 0 {
		t.Errorf("error-level handler received an info record: %s", second.String())
	}

	log.Error("generation failed")
	if !strings.Contains(second.String(), "generation failed") {
		t.Error("error-level handler missed the error record")
	}
}

func TestMultiHandlerEnabled(t *testing.T) {
	handler := newMultiHandler(
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)

	if !handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(debug) = false with a debug handler attached")
	}
}

func TestPackageFuncsSafeBeforeInitialize(t *testing.T) {
	saved := logger
	logger = nil
	defer func() { logger = saved }()

	// Must not panic
	Debug("debug")
	Info("info")
	Warning("warning")
	Error("error")
}

func TestLoadConfigDefaultsAndOverrides(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() on missing file = %v", err)
	}
	if cfg.Level != "INFO" || !cfg.ConsoleEnabled {
		t.Errorf("defaults = %+v", cfg)
	}

	path := filepath.Join(t.TempDir(), "logging.yaml")
	data := "logging:\n  level: DEBUG\n  console_enabled: true\n  file_enabled: true\n  file_path: out/test.log\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err = LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Level != "DEBUG" {
		t.Errorf("Level = %q, want DEBUG", cfg.Level)
	}
	if !cfg.FileEnabled || cfg.FilePath != "out/test.log" {
		t.Errorf("file settings = %+v", cfg)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LABYRINTH_LOG_LEVEL", "ERROR")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.Level != "ERROR" {
		t.Errorf("Level = %q, want the environment's ERROR", cfg.Level)
	}
}
