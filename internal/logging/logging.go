package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/magdy/fawkes/tidytodo/internal/config"
)

// Discard returns a no-op logger that drops all output.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New opens the debug log described by cfg. When logging is off it returns a
// discard logger. The returned close func is always non-nil.
func New(cfg config.LogConfig) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Enabled {
		return Discard(), noop, nil
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Discard(), noop, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}))
	logger.Info("Logger initialized")
	return logger, f.Close, nil
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
