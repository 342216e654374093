package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkerFunc func(ctx context.Context) error

func (f checkerFunc) Health(ctx context.Context) error { return f(ctx) }

func serveReady(t *testing.T, h *HealthHandler) (int, ReadyResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/ready", nil), rec)

	require.NoError(t, h.Ready(c))

	var body ReadyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealthHandler_Ready_AllHealthy(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("postgres", checkerFunc(func(context.Context) error { return nil }))
	h.RegisterChecker("redis", checkerFunc(func(context.Context) error { return nil }))

	code, body := serveReady(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ready", body.Status)
	require.Len(t, body.Dependencies, 2)
	assert.Equal(t, "postgres", body.Dependencies[0].Name)
	assert.Equal(t, "redis", body.Dependencies[1].Name)
}

func TestHealthHandler_Ready_UnhealthyDependency(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("postgres", checkerFunc(func(context.Context) error { return nil }))
	h.RegisterChecker("storage", checkerFunc(func(context.Context) error { return errors.New("export bucket does not exist") }))

	code, body := serveReady(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "not_ready", body.Status)
	require.Len(t, body.Dependencies, 2)
	assert.True(t, body.Dependencies[0].Healthy)
	assert.False(t, body.Dependencies[1].Healthy)
	assert.Equal(t, "export bucket does not exist", body.Dependencies[1].Error)
}

func TestHealthHandler_RegisterChecker_ReplacesSameName(t *testing.T) {
	h := NewHealthHandler()
	h.RegisterChecker("redis", checkerFunc(func(context.Context) error { return errors.New("down") }))
	h.RegisterChecker("redis", checkerFunc(func(context.Context) error { return nil }))

	code, body := serveReady(t, h)

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, body.Dependencies, 1)
}
