package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/magdy/fawkes/tidytodo/internal/config"
)

func TestNew_DisabledDiscards(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	logger, closeFn, err := New(config.LogConfig{Enabled: false, Path: path})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file, got err=%v", err)
	}
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.log")
	logger, closeFn, err := New(config.LogConfig{Enabled: true, Path: path, Level: "info"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("item added", "id", "item-1")
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line should be filtered: %s", out)
	}
	if !strings.Contains(out, `"msg":"item added"`) || !strings.Contains(out, `"id":"item-1"`) {
		t.Fatalf("expected json record, got %s", out)
	}
}

func TestNew_BadPathFallsBackToDiscard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "x.log")
	logger, closeFn, err := New(config.LogConfig{Enabled: true, Path: path})
	if err == nil {
		t.Fatalf("expected open error")
	}
	if logger == nil || closeFn == nil {
		t.Fatalf("expected usable logger and close func on error")
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("DEBUG") != slog.LevelDebug || ParseLevel("warning") != slog.LevelWarn || ParseLevel("") != slog.LevelInfo {
		t.Fatalf("unexpected level parsing")
	}
}
