// SPDX-License-Identifier: MIT

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvqaoa/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
		ok   bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"loud", slog.LevelInfo, false},
	}
	for _, tc := range tests {
		got, err := logger.ParseLevel(tc.in)
		assert.Equal(t, tc.want, got, tc.in)
		assert.Equal(t, tc.ok, err == nil, tc.in)
	}
}

func TestNew_JSONRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New("warn", &buf)
	l.Info("hidden")
	l.Warn("shown", "layer", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, float64(3), rec["layer"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger.NewText("debug", &buf).Debug("step", "iter", 1)
	assert.Contains(t, buf.String(), "msg=step")
	assert.Contains(t, buf.String(), "iter=1")
}

func TestDefaultAndDiscard(t *testing.T) {
	prev := logger.Default
	defer logger.SetDefault(prev)

	var buf bytes.Buffer
	logger.SetDefault(logger.NewText("info", &buf))
	logger.Info("hello")
	logger.Debug("quiet")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "quiet")

	assert.False(t, logger.Discard().Enabled(context.Background(), slog.LevelError))
}
