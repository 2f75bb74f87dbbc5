package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
	"compliance-backend/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a standardized error response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic.recovered", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      fmt.Sprintf("%v", rec),
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				respond.Error(c, http.StatusInternalServerError, "internal", "unexpected server error", nil)
				c.Abort()
			}
		}()
		c.Next()
	}
}
