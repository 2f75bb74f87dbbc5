package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
)

// Handler exposes the aggregation over HTTP.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analytics routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/overview", h.overview)
}

// overview returns either the complete summary or a single top-level error;
// there is no partial-success shape.
func (h *Handler) overview(c *gin.Context) {
	overview, err := h.Svc.Overview(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "db_error", "failed to compute analytics overview", nil)
		return
	}
	respond.OK(c, overview)
}
