package handlers

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID carries the request id in both directions.
const HeaderRequestID = "X-Request-ID"

// RequestID returns a middleware that keeps an incoming X-Request-ID or assigns a new UUID,
// echoes it on the response and logs the request once it completes.
func RequestID(logger log.Logger) echo.MiddlewareFunc {
	logger = log.WithPrefix(logger, "component", "http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(HeaderRequestID)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}
			c.Set(HeaderRequestID, id)
			c.Response().Header().Set(HeaderRequestID, id)

			start := time.Now()
			err := next(c)
			if err != nil {
				// Render now so the logged status is the one sent.
				c.Error(err)
			}
			level.Debug(logger).Log(
				"msg", "request",
				"request_id", id,
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"took", time.Since(start),
			)
			return nil
		}
	}
}
