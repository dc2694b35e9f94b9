// SPDX-License-Identifier: MIT

// Package logger provides the slog constructors used across the module.
// Library packages default to Discard so they stay quiet unless a caller
// passes a logger through their options.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

var (
	// Default is the process-wide convenience logger (JSON, info, stderr).
	Default = New("info", os.Stderr)

	discard = slog.New(slog.DiscardHandler)
)

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to a slog.Level. Unknown strings are an error.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", level)
	}
}

// New creates a JSON logger with the given level writing to output.
// Unknown levels fall back to info.
func New(level string, output io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)

	return slog.New(slog.NewJSONHandler(output, &slog.HandlerOptions{Level: lvl}))
}

// NewText creates a text-formatted logger (useful for development).
func NewText(level string, output io.Writer) *slog.Logger {
	lvl, _ := ParseLevel(level)

	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: lvl}))
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger { return discard }

// SetDefault replaces Default and the slog package default.
func SetDefault(l *slog.Logger) {
	Default = l
	slog.SetDefault(l)
}

// Debug logs a debug message on Default.
func Debug(msg string, args ...any) { Default.Debug(msg, args...) }

// Info logs an info message on Default.
func Info(msg string, args ...any) { Default.Info(msg, args...) }

// Warn logs a warning message on Default.
func Warn(msg string, args ...any) { Default.Warn(msg, args...) }

// Error logs an error message on Default.
func Error(msg string, args ...any) { Default.Error(msg, args...) }
