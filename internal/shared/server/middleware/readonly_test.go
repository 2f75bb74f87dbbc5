package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newReadOnlyRouter(enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ReadOnly(enabled))
	router.GET("/providers", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	router.POST("/providers", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})
	return router
}

func TestReadOnlyBlocksMutations(t *testing.T) {
	router := newReadOnlyRouter(true)

	req := httptest.NewRequest(http.MethodPost, "/providers", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}

func TestReadOnlyAllowsReads(t *testing.T) {
	router := newReadOnlyRouter(true)

	req := httptest.NewRequest(http.MethodGet, "/providers", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestReadOnlyDisabledPassesThrough(t *testing.T) {
	router := newReadOnlyRouter(false)

	req := httptest.NewRequest(http.MethodPost, "/providers", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.Code)
	}
}
