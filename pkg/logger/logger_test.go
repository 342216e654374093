package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return buf
}

func TestWithContext_AttachesRequestAttributes(t *testing.T) {
	buf := captureDefault(t)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithUserID(ctx, "user-1")
	ctx = ContextWithRole(ctx, "ADMIN")

	Info(ctx, "request completed", "status", 200)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request completed", line["msg"])
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, "user-1", line["user_id"])
	assert.Equal(t, "ADMIN", line["role"])
	assert.EqualValues(t, 200, line["status"])
}

func TestWithContext_OmitsMissingAttributes(t *testing.T) {
	buf := captureDefault(t)

	Warn(context.Background(), "anonymous")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "request_id")
	assert.NotContains(t, line, "user_id")
	assert.NotContains(t, line, "role")
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.Equal(t, "abc", RequestIDFromContext(ContextWithRequestID(context.Background(), "abc")))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}
