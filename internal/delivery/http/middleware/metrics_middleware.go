package middleware

import (
	"time"

	"go-jobportal-backend/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route.
func Metrics(collector *metrics.Collector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		collector.RecordHTTPRequest(c.Request.Method, route, c.Writer.Status())
		collector.RecordHTTPLatency(time.Since(start))
	}
}
