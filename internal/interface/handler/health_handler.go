package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// readyTimeout は依存サービスごとの疎通確認の上限時間です
const readyTimeout = 3 * time.Second

// HealthChecker は依存サービスの疎通確認を提供します
type HealthChecker interface {
	Health(ctx context.Context) error
}

type namedChecker struct {
	name    string
	checker HealthChecker
}

// HealthHandler は /health と /ready を提供します
type HealthHandler struct {
	checkers []namedChecker
}

// NewHealthHandler は新しいHealthHandlerを作成します
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterChecker は依存サービスを登録します。同名の登録は置き換えます
func (h *HealthHandler) RegisterChecker(name string, checker HealthChecker) {
	for i := range h.checkers {
		if h.checkers[i].name == name {
			h.checkers[i].checker = checker
			return
		}
	}
	h.checkers = append(h.checkers, namedChecker{name: name, checker: checker})
}

// HealthResponse はライブネスのレスポンスです
type HealthResponse struct {
	Status string `json:"status"`
}

// DependencyStatus は依存サービスごとの確認結果です
type DependencyStatus struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	LatencyMS int64  `json:"latencyMs"`
	Error     string `json:"error,omitempty"`
}

// ReadyResponse はレディネスのレスポンスです
type ReadyResponse struct {
	Status       string             `json:"status"`
	Dependencies []DependencyStatus `json:"dependencies"`
}

// Check はプロセスが応答できることだけを返します
// GET /health
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// Ready は登録済みの依存サービスを並行に確認します
// GET /ready (postgres, redis, storage)
func (h *HealthHandler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readyTimeout)
	defer cancel()

	// 各結果は自分の添字にのみ書き込むためロック不要
	results := make([]DependencyStatus, len(h.checkers))
	var g errgroup.Group
	for i, nc := range h.checkers {
		g.Go(func() error {
			started := time.Now()
			err := nc.checker.Health(ctx)
			results[i] = DependencyStatus{
				Name:      nc.name,
				Healthy:   err == nil,
				LatencyMS: time.Since(started).Milliseconds(),
			}
			if err != nil {
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	status, code := "ready", http.StatusOK
	for _, r := range results {
		if !r.Healthy {
			status, code = "not_ready", http.StatusServiceUnavailable
			break
		}
	}
	return c.JSON(code, ReadyResponse{Status: status, Dependencies: results})
}
