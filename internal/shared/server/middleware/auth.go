package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
)

// Auth enforces the shared access token perimeter. An empty token disables
// the check entirely (open instance). The health endpoint is always open.
func Auth(accessToken string) gin.HandlerFunc {
	accessToken = strings.TrimSpace(accessToken)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}
		if accessToken == "" {
			c.Next()
			return
		}

		path := c.Request.URL.Path
		if strings.HasSuffix(path, "/health") {
			c.Next()
			return
		}

		presented := tokenFromRequest(c)
		if presented == "" {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "missing access token", nil)
			return
		}
		if subtle.ConstantTimeCompare([]byte(presented), []byte(accessToken)) != 1 {
			respond.Error(c, http.StatusUnauthorized, "unauthorized", "invalid access token", nil)
			return
		}

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer"))
	}
	return strings.TrimSpace(c.GetHeader("X-Access-Token"))
}
