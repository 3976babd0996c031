package middlewares

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const slowRequestThreshold = 2 * time.Second

// RequestLogger writes one line per request. Server errors log at ERROR and
// slow requests at WARN.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration", elapsed,
			"request_id", c.GetString("requestID"),
		}
		if uid := c.GetUint("userID"); uid != 0 {
			attrs = append(attrs, "user_id", uid)
		}

		switch {
		case status >= 500:
			logger.Error("request failed", attrs...)
		case elapsed >= slowRequestThreshold:
			logger.Warn("slow request", attrs...)
		default:
			logger.Info("request", attrs...)
		}
	}
}
