package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env: "production",
		Log: config.LogConfig{
			Level:      "info",
			File:       filepath.Join(t.TempDir(), "fractiz.log"),
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}
}

func TestNew_WritesJSONToFile(t *testing.T) {
	cfg := testConfig(t)
	log, closeFn, err := New(cfg, Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	log.Info("game started", zap.String("tier", "easy"))
	log.Debug("dropped at info level")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(cfg.Log.File)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d log lines, want 1:\n%s", len(lines), data)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if rec["msg"] != "game started" || rec["tier"] != "easy" || rec["level"] != "INFO" {
		t.Errorf("unexpected record: %v", rec)
	}
}

func TestNew_ConsoleOnlyInDevelopment(t *testing.T) {
	var stderr bytes.Buffer

	cfg := testConfig(t)
	log, closeFn, err := New(cfg, Options{Console: true, Stderr: &stderr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("production line")
	_ = closeFn()
	if stderr.Len() != 0 {
		t.Errorf("production logger wrote to console: %q", stderr.String())
	}

	cfg = testConfig(t)
	cfg.Env = "development"
	log, closeFn, err = New(cfg, Options{Console: true, Stderr: &stderr})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	log.Info("development line")
	_ = closeFn()
	if !strings.Contains(stderr.String(), "development line") {
		t.Errorf("console missing record: %q", stderr.String())
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	cfg := testConfig(t)
	cfg.Log.Level = "loud"
	if _, _, err := New(cfg, Options{}); err == nil {
		t.Fatal("expected error for invalid level")
	}
}
