// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"request-approvals/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status, duration and
// acting user, and counts them.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		status := c.Response().StatusCode()
		metrics.HTTPRequest(c.Method(), status)
		log.Infow("http",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", status,
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"request_id", reqID,
			"user_id", c.Get(HeaderUserID),
		)
		return err
	}
}
