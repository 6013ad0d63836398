package common

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "trace", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewHandler(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger := slog.New(handler)
	logger.Debug("hidden")
	logger.Info("Recomputed credit score", "overall", 71)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "Recomputed credit score", record["msg"])
	assert.InDelta(t, 71, record["overall"], 0)
}

func TestNewHandler_Console(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewHandler(&buf, slog.LevelDebug, "console")
	require.NoError(t, err)

	slog.New(handler).Debug("Consent updated", "key", "credit_scoring")
	assert.Contains(t, buf.String(), "msg=\"Consent updated\"")
	assert.Contains(t, buf.String(), "key=credit_scoring")
}

func TestNewHandler_UnknownFormat(t *testing.T) {
	_, err := NewHandler(&bytes.Buffer{}, slog.LevelInfo, "xml")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	handler, err := NewHandler(&buf, slog.LevelDebug, "console")
	require.NoError(t, err)

	previous := slog.Default()
	slog.SetDefault(slog.New(handler))
	t.Cleanup(func() { slog.SetDefault(previous) })

	LogError(errors.New("boom"), "Import failed", Fields{"file": "jan.ofx"})
	LogDebug("Parsed rows", Fields{"rows": 3})

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "file=jan.ofx")
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "rows=3")
}

func TestSetupLogger(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	require.NoError(t, SetupLogger("debug", "json"))
	assert.True(t, slog.Default().Enabled(context.Background(), slog.LevelDebug))

	require.ErrorIs(t, SetupLogger("loud", "json"), ErrInvalidConfig)
	require.ErrorIs(t, SetupLogger("info", "yaml"), ErrInvalidConfig)
}
