package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/grafana/pyroscope-go"
)

// Profiling attaches the matched route and method to the CPU profile samples
// taken while the request runs. Health, metrics and swagger routes are not
// labelled.
func Profiling(enabled bool) gin.HandlerFunc {
	if !enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" || skipProfiling(route) {
			c.Next()
			return
		}
		labels := pyroscope.Labels("route", route, "method", c.Request.Method, "resource", resourceOf(route))
		pyroscope.TagWrapper(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}

func skipProfiling(route string) bool {
	return strings.HasPrefix(route, "/health") ||
		strings.HasPrefix(route, "/ready") ||
		strings.HasPrefix(route, "/swagger")
}

// resourceOf returns the first segment after /api/v1, e.g. "purchase-orders"
func resourceOf(route string) string {
	rest, ok := strings.CutPrefix(route, "/api/v1/")
	if !ok {
		return ""
	}
	resource, _, _ := strings.Cut(rest, "/")
	return resource
}
