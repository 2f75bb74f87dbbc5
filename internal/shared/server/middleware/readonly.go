package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
)

// ReadOnly rejects mutating requests when the instance-wide kill switch is
// set. GET, HEAD and OPTIONS pass through so dashboards keep rendering.
func ReadOnly(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !enabled {
			c.Next()
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			respond.Error(c, http.StatusServiceUnavailable, "read_only", "instance is in read-only mode", nil)
		}
	}
}
