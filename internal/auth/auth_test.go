package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "squad-stats-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService(t *testing.T) {
	svc := NewTokenService("test-signing-key")

	t.Run("round trip", func(t *testing.T) {
		token, err := svc.GenerateJWT("coach-1", RoleCoach, time.Hour)
		require.NoError(t, err)

		claims, err := svc.ValidateJWT(token)
		require.NoError(t, err)
		assert.Equal(t, "coach-1", claims.Subject)
		assert.Equal(t, RoleCoach, claims.Role)
		assert.Equal(t, "squad-stats-backend", claims.Issuer)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewTokenService("other-key").GenerateJWT("coach-1", RoleCoach, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		past := NewTokenService("test-signing-key")
		past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		token, err := past.GenerateJWT("coach-1", RoleCoach, time.Hour)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(token)
		assert.True(t, apperrors.IsAuthentication(err))
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, &AuthClaims{
			RegisteredClaims: jwt.RegisteredClaims{Issuer: "squad-stats-backend", Subject: "x"},
		})
		raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateJWT(raw)
		assert.Error(t, err)
	})

	t.Run("invalid input", func(t *testing.T) {
		_, err := svc.GenerateJWT("", RoleCoach, time.Hour)
		assert.True(t, apperrors.IsValidation(err))

		_, err = svc.GenerateJWT("coach-1", RoleCoach, 0)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func setupRouter(svc *TokenService, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mw := NewAuthMiddleware(svc)

	handlers := []gin.HandlerFunc{mw.RequireAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, mw.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims, _ := GetAuthClaims(c)
		c.JSON(http.StatusOK, gin.H{"subject": claims.Subject})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestRequireAuth(t *testing.T) {
	svc := NewTokenService("test-signing-key")
	router := setupRouter(svc)
	valid, err := svc.GenerateJWT("coach-1", RoleCoach, time.Hour)
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		status int
		errMsg string
	}{
		{name: "missing header", header: "", status: http.StatusUnauthorized, errMsg: "Authorization header is required"},
		{name: "not bearer", header: "Token " + valid, status: http.StatusUnauthorized, errMsg: "Invalid authorization header format"},
		{name: "garbage token", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized, errMsg: "Invalid token"},
		{name: "valid token", header: "Bearer " + valid, status: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tc.errMsg != "" {
				assert.Equal(t, tc.errMsg, body["error"])
			} else {
				assert.Equal(t, "coach-1", body["subject"])
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	svc := NewTokenService("test-signing-key")
	router := setupRouter(svc, RoleCoach)

	viewer, err := svc.GenerateJWT("fan", RoleViewer, time.Hour)
	require.NoError(t, err)
	coach, err := svc.GenerateJWT("coach-1", RoleCoach, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+viewer)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+coach)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
