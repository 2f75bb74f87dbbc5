package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/analytics"
	"compliance-backend/internal/providers"
	"compliance-backend/internal/shared/config"
	"compliance-backend/internal/shared/server/middleware"
	"compliance-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config           config.Config
	ProviderHandler  *providers.Handler
	AnalyticsHandler *analytics.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.AccessToken),
		middleware.ReadOnly(deps.Config.ReadOnly),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	deps.ProviderHandler.RegisterRoutes(api)
	deps.AnalyticsHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
