package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tc := range tests {
		if got := parseLevel(tc.in); got != tc.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.ConsoleEnabled {
		t.Error("console logging should be enabled by default")
	}
	if cfg.FileEnabled {
		t.Error("file logging should be disabled by default")
	}
	if cfg.Level != "INFO" {
		t.Errorf("default level = %q, want INFO", cfg.Level)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg := LoadConfig("/nonexistent/logging.yaml")
	if cfg.Level != "INFO" || !cfg.ConsoleEnabled {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.yaml")
	content := `
logging:
  level: DEBUG
  console_enabled: true
  file_enabled: true
  file_path: /tmp/forge.log
  file_max_size_mb: 25
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig(path)
	if cfg.Level != "DEBUG" {
		t.Errorf("Level = %q, want DEBUG", cfg.Level)
	}
	if !cfg.FileEnabled || cfg.FilePath != "/tmp/forge.log" {
		t.Errorf("file settings not applied: %+v", cfg)
	}
	if cfg.FileMaxSizeMB != 25 {
		t.Errorf("FileMaxSizeMB = %d, want 25", cfg.FileMaxSizeMB)
	}
	if cfg.FileMaxBackups != 5 {
		t.Errorf("FileMaxBackups = %d, want default 5", cfg.FileMaxBackups)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	cfg := LoadConfig("")
	if cfg.Level != "ERROR" {
		t.Errorf("Level = %q, want ERROR from environment", cfg.Level)
	}
}

func TestInitializeAndLog(t *testing.T) {
	// Smoke test: logging through every helper must not panic with any
	// handler combination.
	configs := []Config{
		{Level: "DEBUG", ConsoleEnabled: true, ConsoleFormat: "text"},
		{Level: "INFO", ConsoleEnabled: true, ConsoleFormat: "json"},
		{},
	}
	for _, cfg := range configs {
		Initialize(cfg)
		Debug("debug message", "k", 1)
		Info("info message", "k", 2)
		Warning("warning message")
		Error("error message", "err", "boom")
	}
}

func TestFileLoggingWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	Initialize(Config{
		Level:       "INFO",
		FileEnabled: true,
		FilePath:    path,
		FileFormat:  "text",
	})

	Info("written to file", "answer", 42)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message: %q", string(data))
	}
}
