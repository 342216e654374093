package di

import (
	"github.com/mentorpal/mentor-graphql-sub001/internal/interface/middleware"
)

// Middlewares はアプリケーションのミドルウェアを保持します
type Middlewares struct {
	JWTAuth   *middleware.JWTAuthMiddleware
	RateLimit *middleware.RateLimitMiddleware
}

// NewMiddlewares はContainerから全てのミドルウェアを初期化します
func NewMiddlewares(c *Container) *Middlewares {
	return &Middlewares{
		JWTAuth:   middleware.NewJWTAuthMiddleware(c.JWTService, c.DisabledUsers),
		RateLimit: middleware.NewRateLimitMiddleware(c.RateLimiter, c.config.Security.RateLimitEnabled),
	}
}
