package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"squad-stats-backend/internal/api/handlers"
	"squad-stats-backend/internal/api/routes"
	"squad-stats-backend/internal/auth"
	"squad-stats-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(authEnabled bool) *config.Config {
	return &config.Config{
		Environment:    "test",
		AllowedOrigins: []string{"http://localhost:5173"},
		AuthEnabled:    authEnabled,
		JWTSecret:      "routes-test-secret",
		StatsCacheTTL:  time.Minute,
	}
}

func serve(router *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if method == http.MethodPost {
		body = strings.NewReader(`{"name":"Hawks"}`)
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestSetupRoutes_NoRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := routes.SetupRoutes(nil, nil, testConfig(false))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
	req.Header.Set("X-Request-ID", "req-123")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"request_id":"req-123"`)
	assert.Contains(t, recorder.Body.String(), "Endpoint not found")
}

func TestSetupRoutes_PublicEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := routes.SetupRoutes(nil, nil, testConfig(true))

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health/live", "").Code)

	// Counted by the metrics middleware above
	recorder := serve(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "squad_http_requests_total")
}

func TestSetupRoutes_Auth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(true)
	router := routes.SetupRoutes(nil, nil, cfg)
	tokens := auth.NewTokenService(cfg.JWTSecret)

	viewer, err := tokens.GenerateJWT("fan@example.com", auth.RoleViewer, time.Hour)
	require.NoError(t, err)

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/api/v1/teams", "").Code)
	})

	t.Run("forged token", func(t *testing.T) {
		forged, err := auth.NewTokenService("other-secret").GenerateJWT("x", auth.RoleCoach, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodGet, "/api/v1/teams", forged).Code)
	})

	t.Run("viewer cannot mutate", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, serve(router, http.MethodPost, "/api/v1/teams", viewer).Code)
		assert.Equal(t, http.StatusForbidden, serve(router, http.MethodPost, "/api/v1/ai/analyze", viewer).Code)
	})

	t.Run("viewer reaches handler", func(t *testing.T) {
		// Malformed IDs are rejected before any repository access
		recorder := serve(router, http.MethodGet, "/api/v1/teams/not-a-uuid", viewer)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestSetupHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := routes.SetupHealthRoutes(map[string]handlers.HealthCheck{
		"database": func(context.Context) error { return nil },
	})

	recorder := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"database":"healthy"`)
}
