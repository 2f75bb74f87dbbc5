package providers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"compliance-backend/internal/bootstrap"
	"compliance-backend/internal/shared/config"
)

func buildApp(t *testing.T, cfg config.Config) *bootstrap.App {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(cfg)
	if err != nil {
		t.Fatalf("bootstrap build: %v", err)
	}
	return app
}

func devConfig() config.Config {
	return config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	}
}

func doJSON(t *testing.T, app *bootstrap.App, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body == "" {
		reader = &bytes.Buffer{}
	} else {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	return resp
}

func TestCreateProviderDerivesID(t *testing.T) {
	app := buildApp(t, devConfig())

	resp := doJSON(t, app, http.MethodPost, "/api/v1/providers",
		`{"name":"Sunrise Family Care","jurisdictionCode":"CA"}`)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		JurisdictionCode string `json:"jurisdictionCode"`
		Checklist        []struct {
			Key    string `json:"key"`
			Status string `json:"status"`
		} `json:"checklist"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if !strings.HasPrefix(created.ID, "sunrise-family-care-") {
		t.Fatalf("expected slug-derived id, got %s", created.ID)
	}
	if created.JurisdictionCode != "CA" {
		t.Fatalf("expected jurisdiction CA, got %s", created.JurisdictionCode)
	}
	if len(created.Checklist) == 0 {
		t.Fatalf("expected seeded checklist")
	}
}

func TestGetProviderCreatesOnAccess(t *testing.T) {
	app := buildApp(t, devConfig())

	resp := doJSON(t, app, http.MethodGet, "/api/v1/providers/new-clinic", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var provider struct {
		ID        string `json:"id"`
		Checklist []any  `json:"checklist"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if provider.ID != "new-clinic" {
		t.Fatalf("expected id new-clinic, got %s", provider.ID)
	}
	if len(provider.Checklist) == 0 {
		t.Fatalf("expected checklist seeded on create-on-access")
	}
}

func TestUpdateChecklistValidation(t *testing.T) {
	app := buildApp(t, devConfig())
	if resp := doJSON(t, app, http.MethodGet, "/api/v1/providers/p1", ""); resp.Code != http.StatusOK {
		t.Fatalf("seed provider: %d", resp.Code)
	}

	resp := doJSON(t, app, http.MethodPut, "/api/v1/providers/p1/checklist/npi_verified",
		`{"status":"done"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid status, got %d", resp.Code)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/v1/providers/p1/checklist/no_such_item",
		`{"status":"complete"}`)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown item, got %d", resp.Code)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/v1/providers/p1/checklist/npi_verified",
		`{"status":"complete","notes":"verified in NPPES"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var item struct {
		Status      string  `json:"status"`
		Notes       string  `json:"notes"`
		CompletedAt *string `json:"completedAt"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		t.Fatalf("decode item: %v", err)
	}
	if item.Status != "complete" || item.CompletedAt == nil {
		t.Fatalf("unexpected item: %+v", item)
	}
	if item.Notes != "verified in NPPES" {
		t.Fatalf("unexpected notes: %q", item.Notes)
	}
}

func TestUpdateOnboardingEndpoint(t *testing.T) {
	app := buildApp(t, devConfig())
	if resp := doJSON(t, app, http.MethodGet, "/api/v1/providers/p1", ""); resp.Code != http.StatusOK {
		t.Fatalf("seed provider: %d", resp.Code)
	}

	resp := doJSON(t, app, http.MethodPut, "/api/v1/providers/p1/onboarding",
		`{"status":"in_progress","contactName":"Dana Velez","orgName":"Sunrise Family Care"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var provider struct {
		Onboard struct {
			Status      string `json:"status"`
			ContactName string `json:"contactName"`
		} `json:"onboard"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&provider); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if provider.Onboard.Status != "in_progress" || provider.Onboard.ContactName != "Dana Velez" {
		t.Fatalf("unexpected onboarding: %+v", provider.Onboard)
	}
}

func TestReadOnlyModeBlocksWrites(t *testing.T) {
	cfg := devConfig()
	cfg.ReadOnly = true
	app := buildApp(t, cfg)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/providers", `{"name":"Blocked Clinic"}`)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 in read-only mode, got %d", resp.Code)
	}

	// Reads, including create-on-access, still work.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/providers", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 for read, got %d", resp.Code)
	}
}

func TestAccessTokenPerimeter(t *testing.T) {
	cfg := devConfig()
	cfg.AccessToken = "s3cret"
	app := buildApp(t, cfg)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/providers", "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/providers", nil)
	req.Header.Set("X-Access-Token", "s3cret")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}

	// Health is reachable without the token.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/health", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected open health endpoint, got %d", resp.Code)
	}
}
