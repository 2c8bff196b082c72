package middleware

import (
	"strconv"
	"time"

	"stays/internal/obs"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency by route template
func Metrics(m *obs.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start).Seconds())
	}
}
