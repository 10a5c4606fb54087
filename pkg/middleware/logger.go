// pkg/middleware/logger.go

package middleware

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hotel-backoffice/pkg/contextkeys"
)

const HeaderRequestID = echo.HeaderXRequestID

// RequestLogger - присваивает запросу id (берёт X-Request-ID клиента, если он есть)
// и пишет строку лога после ответа.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(HeaderRequestID, requestID)
			ctx := context.WithValue(c.Request().Context(), contextkeys.RequestIDKey, requestID)
			c.SetRequest(c.Request().WithContext(ctx))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			logger.Info("HTTP запрос",
				zap.String("request_id", requestID),
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("latency", time.Since(start)),
			)
			return nil
		}
	}
}
