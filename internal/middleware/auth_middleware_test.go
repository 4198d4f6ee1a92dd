package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushq/mentorhub/internal/app/models"
	"github.com/campushq/mentorhub/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestJWTService(accessExp time.Duration) *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "mentorhub.test",
	})
}

func protectedRouter(m *AuthMiddleware, role models.RoleType) *gin.Engine {
	router := gin.New()
	group := router.Group("/", m.JWTAuth())
	handler := func(c *gin.Context) {
		id, _ := GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	}
	if role != "" {
		group.GET("/protected", m.RoleRequired(role), handler)
	} else {
		group.GET("/protected", handler)
	}
	return router
}

func TestJWTAuthMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	router := protectedRouter(m, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	router := protectedRouter(m, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m, "")

	user := &models.User{ID: 7, Email: "johndoe@college.edu", Role: models.RoleMentor}
	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":7`)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	m := NewAuthMiddleware(svc)
	router := protectedRouter(m, "")

	user := &models.User{ID: 7, Email: "johndoe@college.edu", Role: models.RoleMentor}
	access, _, _, _, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_005")
}

func TestRoleRequired(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	m := NewAuthMiddleware(svc)

	mentor := &models.User{ID: 7, Email: "johndoe@college.edu", Role: models.RoleMentor}
	access, _, _, _, err := svc.GenerateTokenPair(mentor)
	require.NoError(t, err)

	mentorOnly := protectedRouter(m, models.RoleMentor)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	mentorOnly.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	adminOnly := protectedRouter(m, models.RoleAdmin)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	adminOnly.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
