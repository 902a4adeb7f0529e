package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/microservices-demo/catalog-api/internal/config"
)

// ParseLevel maps a configured level name to a slog.Level (case-insensitive).
// The boolean is false when the name is not recognised, in which case
// slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error", "fatal", "critical":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger on stdout
// with the appropriate log level and sets it as the default logger.
func Setup(cfg config.ServerConfig) *slog.Logger {
	return SetupWithWriter(cfg, os.Stdout)
}

// SetupWithWriter behaves like Setup but writes log records to out.
// Every record carries the configured environment label as "env".
func SetupWithWriter(cfg config.ServerConfig, out io.Writer) *slog.Logger {
	level, ok := ParseLevel(cfg.LogLevel)

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler)
	if cfg.Env != "" {
		logger = logger.With(slog.String("env", cfg.Env))
	}

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	// Allows using the slog package functions directly (slog.Info, slog.Error, etc.)
	slog.SetDefault(logger)

	return logger
}
