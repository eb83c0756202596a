package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLogLevel(tt.input))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "INFO", cfg.Level)
	assert.True(t, cfg.ConsoleEnabled)
	assert.Equal(t, "text", cfg.ConsoleFormat)
	assert.False(t, cfg.FileEnabled)
}

func TestMultiHandlerFansOut(t *testing.T) {
	var first, second bytes.Buffer
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	handler := newMultiHandler(
		slog.NewTextHandler(&first, opts),
		slog.NewJSONHandler(&second, opts),
	)

	logger := slog.New(handler)
	logger.Info("tower collapsed", "floor", 3)

	require.Contains(t, first.String(), "tower collapsed")
	assert.Contains(t, first.String(), "floor=3")
	assert.Contains(t, second.String(), `"floor":3`)
}

func TestMultiHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer

	handler := newMultiHandler(
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}),
	)

	ctx := context.Background()
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.True(t, handler.Enabled(ctx, slog.LevelError))
}
