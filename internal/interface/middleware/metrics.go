package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mentorpal/mentor-graphql-sub001/internal/infrastructure/metrics"
)

// Metrics はHTTPリクエストのメトリクスを記録するミドルウェアを返します
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response().Status)).Inc()
			m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return nil
		}
	}
}
