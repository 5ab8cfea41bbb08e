package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/supplynet-backend/internal/supply_network/metrics"
)

// MetricsMiddleware records request counts and latencies by route template,
// so ids in paths do not blow up label cardinality.
func MetricsMiddleware(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		reg.RecordHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
