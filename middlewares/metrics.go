package middlewares

import (
	"strconv"
	"time"

	"aifit/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency by route template, so /api/videos/:id is
// one series regardless of id.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
