package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hospital-appointment-server/internal/config"
	"hospital-appointment-server/internal/models"
	"hospital-appointment-server/internal/utils"
)

func authTestRouter(cfg *config.Config, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	chain := append([]gin.HandlerFunc{AuthMiddleware(cfg)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": principal.ID, "role": principal.Role})
	})
	router.GET("/protected", chain...)
	return router
}

// tokenTTL derives the test token lifetime from the configured
// expiration, the way the identity service would.
func tokenTTL(cfg *config.Config) time.Duration {
	return time.Duration(cfg.JWTExpirationMinutes) * time.Minute
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 15}
	router := authTestRouter(cfg)

	token, err := utils.GenerateToken("user-1", models.RolePatient, cfg.JWTSecret, tokenTTL(cfg))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), "patient")
}

func TestAuthMiddlewareRejectsBadRequests(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 15}
	router := authTestRouter(cfg)

	wrongSecret, err := utils.GenerateToken("user-1", models.RolePatient, "other-secret", tokenTTL(cfg))
	require.NoError(t, err)

	expired, err := utils.GenerateToken("user-1", models.RolePatient, cfg.JWTSecret, -tokenTTL(cfg))
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong secret", "Bearer " + wrongSecret},
		{"expired", "Bearer " + expired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRoleAuthMiddleware(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationMinutes: 15}
	router := authTestRouter(cfg, RoleAuthMiddleware(models.RoleAdmin))

	adminToken, err := utils.GenerateToken("admin-1", models.RoleAdmin, cfg.JWTSecret, tokenTTL(cfg))
	require.NoError(t, err)
	patientToken, err := utils.GenerateToken("patient-1", models.RolePatient, cfg.JWTSecret, tokenTTL(cfg))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+patientToken)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
