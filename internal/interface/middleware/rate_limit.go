package middleware

import (
	"context"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/cache"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/apperror"
	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// RateLimitType はレート制限の種類を定義します
type RateLimitType string

const (
	RateLimitAPIRead  RateLimitType = "api_read"
	RateLimitAPIWrite RateLimitType = "api_write"
	RateLimitExport   RateLimitType = "export"
)

// レート制限設定
var rateLimitConfigs = map[RateLimitType]cache.RateLimitConfig{
	RateLimitAPIRead:  cache.RateLimitAPIRead,
	RateLimitAPIWrite: cache.RateLimitAPIWrite,
	RateLimitExport:   cache.RateLimitExport,
}

// Limiter はレート制限の判定を提供します
type Limiter interface {
	Allow(ctx context.Context, identifier string, config cache.RateLimitConfig) (*cache.RateLimitResult, error)
}

// RateLimitMiddleware はレート制限ミドルウェアを提供します
type RateLimitMiddleware struct {
	limiter Limiter
	enabled bool
}

// NewRateLimitMiddleware は新しいRateLimitMiddlewareを作成します
func NewRateLimitMiddleware(limiter Limiter, enabled bool) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		enabled: enabled,
	}
}

// ByActor は行為者単位でレート制限するミドルウェアを返します
// 匿名の場合はIPアドレスで制限します
func (m *RateLimitMiddleware) ByActor(limitType RateLimitType) echo.MiddlewareFunc {
	config := rateLimitConfigs[limitType]
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !m.enabled || m.limiter == nil {
				return next(c)
			}

			identifier := GetUserID(c)
			if identifier == "" {
				identifier = "ip:" + c.RealIP()
			}

			result, err := m.limiter.Allow(c.Request().Context(), identifier, config)
			if err != nil {
				// レート制限チェックに失敗した場合はリクエストを許可
				logger.Warn(c.Request().Context(), "rate limit check failed", "error", err)
				return next(c)
			}

			setRateLimitHeaders(c, config, result)

			if !result.Allowed {
				return apperror.NewTooManyRequestsError("rate limit exceeded")
			}

			return next(c)
		}
	}
}

// setRateLimitHeaders はレート制限ヘッダーを設定します
func setRateLimitHeaders(c echo.Context, config cache.RateLimitConfig, result *cache.RateLimitResult) {
	h := c.Response().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(config.Requests))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	h.Set("X-RateLimit-Reset", result.ResetAt.UTC().Format("2006-01-02T15:04:05Z"))
	if !result.Allowed && !result.RetryAt.IsZero() {
		h.Set("Retry-After", result.RetryAt.UTC().Format("2006-01-02T15:04:05Z"))
	}
}
