package middleware

import (
	"dress-rental-service/prometheus"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records count and duration of every request
func MetricsMiddleware(m *prometheus.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			// let echo write the error response first so the status is final
			if err != nil {
				c.Error(err)
			}

			m.ObserveHTTPRequest(c.Request().Method, c.Path(), strconv.Itoa(c.Response().Status), time.Since(start))
			return nil
		}
	}
}
