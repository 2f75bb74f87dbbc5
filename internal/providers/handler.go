package providers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches provider routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers", h.list)
	rg.POST("/providers", h.upsert)
	rg.GET("/providers/:id", h.get)
	rg.PUT("/providers/:id/checklist/:key", h.updateChecklistItem)
	rg.PUT("/providers/:id/onboarding", h.updateOnboarding)
}

func (h *Handler) list(c *gin.Context) {
	list, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "db_error", "failed to list providers", nil)
		return
	}
	respond.OK(c, gin.H{"providers": list})
}

func (h *Handler) get(c *gin.Context) {
	providerID := c.Param("id")
	c.Set("providerId", providerID)

	provider, err := h.Svc.GetOrCreate(c.Request.Context(), providerID)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "db_error", "failed to load provider", nil)
		}
		return
	}
	respond.OK(c, provider)
}

type upsertRequest struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ProviderTypeCode string `json:"providerTypeCode"`
	JurisdictionCode string `json:"jurisdictionCode"`
}

func (h *Handler) upsert(c *gin.Context) {
	var req upsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	provider, err := h.Svc.Upsert(c.Request.Context(), UpsertInput{
		ID:               req.ID,
		Name:             req.Name,
		ProviderTypeCode: req.ProviderTypeCode,
		JurisdictionCode: req.JurisdictionCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "db_error", "failed to save provider", nil)
		}
		return
	}
	c.Set("providerId", provider.ID)
	respond.Created(c, provider)
}

type checklistUpdateRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *Handler) updateChecklistItem(c *gin.Context) {
	providerID := c.Param("id")
	itemKey := c.Param("key")
	c.Set("providerId", providerID)
	c.Set("checklistKey", itemKey)

	var req checklistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	item, err := h.Svc.UpdateChecklistItem(c.Request.Context(), providerID, itemKey, req.Status, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrItemNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "checklist item not found", nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "provider not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "db_error", "failed to update checklist item", nil)
		}
		return
	}
	respond.OK(c, item)
}

type onboardingRequest struct {
	Status       string `json:"status"`
	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`
	OrgName      string `json:"orgName"`
	OrgNPI       string `json:"orgNpi"`
}

func (h *Handler) updateOnboarding(c *gin.Context) {
	providerID := c.Param("id")
	c.Set("providerId", providerID)

	var req onboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	provider, err := h.Svc.UpdateOnboarding(c.Request.Context(), providerID, OnboardingInput{
		Status:       req.Status,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		OrgName:      req.OrgName,
		OrgNPI:       req.OrgNPI,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "provider not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "db_error", "failed to update onboarding", nil)
		}
		return
	}
	respond.OK(c, provider)
}
