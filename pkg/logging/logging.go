// Package logging configures structured logging with log/slog.
//
// By default logs go to stderr through a colored tint handler. When a log
// directory is configured, logs are written as JSON to a dated file under it
// (one file per day) and mirrored to stderr.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info)
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures the default slog logger. dir may be empty to log to
// stderr only.
func Setup(dir string) error {
	level := levelFromEnv()

	if dir == "" {
		slog.SetDefault(slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
			}),
		))
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	name := fmt.Sprintf("contas-%s.log", time.Now().Format("2006-01-02"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	slog.SetDefault(slog.New(
		slog.NewJSONHandler(io.MultiWriter(os.Stderr, file), &slog.HandlerOptions{
			Level: level,
		}),
	))
	return nil
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
