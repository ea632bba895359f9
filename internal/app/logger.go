package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/yoonbyeo/quizflow/internal/config"
)

const serviceName = "quizflow"

// NewLogger creates the process logger from LogConfig, writes to os.Stderr
// and installs it as the slog default.
//
// Format "json" produces structured output for production; anything else
// produces text with source locations for development. Every record carries
// the service name.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	json := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}

	var handler slog.Handler
	if json {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
