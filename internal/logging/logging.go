// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"chosenoffset.com/homestead/internal/config"
)

// Setup configures the global slog logger based on environment
func Setup(s config.Settings) *slog.Logger {
	return New(os.Stderr, s)
}

// New builds a logger writing to w and installs it as the default.
func New(w io.Writer, s config.Settings) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: s.LogLevel(),
	}

	var handler slog.Handler
	if s.IsProduction() {
		// JSON format for production
		handler = slog.NewJSONHandler(w, opts)
	} else {
		// Text format for development
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Discard returns a logger that drops everything. Tests use it.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithScene adds the scene name to logger context
func WithScene(logger *slog.Logger, scene string) *slog.Logger {
	return logger.With("scene", scene)
}

// WithError adds error to logger context
func WithError(logger *slog.Logger, err error) *slog.Logger {
	return logger.With("error", err.Error())
}
