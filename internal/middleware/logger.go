package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// Logger tags every request with a generated id, threads an id-scoped logger
// through the request context, and emits one summary line per request.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		requestID := uuid.New().String()

		reqLogger := log.With().Str("request_id", requestID).Logger()
		ctx := reqLogger.WithContext(c.Request().Context())
		c.SetRequest(c.Request().WithContext(ctx))

		err := next(c)

		req := c.Request()
		res := c.Response()

		log.Ctx(req.Context()).Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", res.Status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Msg("request handled")

		return err
	}
}
