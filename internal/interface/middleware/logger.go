package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/pkg/logger"
)

// Logger はリクエストロギングミドルウェアを返します
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// ステータスを確定させるため先にエラーハンドラーを通す
				c.Error(err)
			}

			latency := time.Since(start)

			// 構造化ログ出力
			logger.Info(c.Request().Context(), "request",
				"method", c.Request().Method,
				"route", c.Path(),
				"uri", c.Request().RequestURI,
				"status", c.Response().Status,
				"latency_ms", latency.Milliseconds(),
				"ip", c.RealIP(),
				"user_agent", c.Request().UserAgent(),
				"bytes_in", c.Request().ContentLength,
				"bytes_out", c.Response().Size,
			)

			return nil
		}
	}
}
