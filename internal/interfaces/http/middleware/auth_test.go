package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/pkg/jwt"
	"startup-nexus.backend/pkg/redis"
)

type stubSessions map[string]*redis.SessionData

func (s stubSessions) GetSession(_ context.Context, id string) (*redis.SessionData, error) {
	if d, ok := s[id]; ok {
		return d, nil
	}
	return nil, redis.ErrSessionNotFound
}

func decodeCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["code"]
}

func TestAuthMiddleware_BearerFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	userID := uuid.New()

	r := gin.New()
	r.Use(AuthMiddleware(jwtService, nil))
	r.GET("/me", func(c *gin.Context) {
		actor, ok := GetActor(c)
		require.True(t, ok)
		assert.Equal(t, userID, actor.ID)
		assert.Equal(t, entities.UserRoleStartup, actor.Role)
		c.Status(http.StatusNoContent)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, domainerrors.CodeUnauthorized, decodeCode(t, w))
	})

	t.Run("bad format", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(AuthorizationHeader, "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(AuthorizationHeader, "Bearer invalid")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(userID, "f@acme.io", "startup")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(AuthorizationHeader, BearerPrefix+pair.RefreshToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		pair, err := jwtService.GenerateTokenPair(userID, "f@acme.io", "startup")
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", -time.Minute, time.Hour)
	pair, err := jwtService.GenerateTokenPair(uuid.New(), "f@acme.io", "talent")
	require.NoError(t, err)

	r := gin.New()
	r.Use(AuthMiddleware(jwtService, nil))
	r.GET("/me", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, domainerrors.CodeTokenExpired, decodeCode(t, w))
}

func TestAuthMiddleware_Session(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)
	userID := uuid.New()
	sessions := stubSessions{
		"good":   {UserID: userID.String(), Email: "t@acme.io", Role: "talent"},
		"broken": {UserID: "not-a-uuid"},
	}

	r := gin.New()
	r.Use(AuthMiddleware(jwtService, sessions))
	r.GET("/me", func(c *gin.Context) {
		id, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		c.String(http.StatusOK, id.String()+"|"+email)
	})

	for _, tc := range []struct {
		session string
		status  int
	}{
		{"good", http.StatusOK},
		{"broken", http.StatusUnauthorized},
		{"missing", http.StatusUnauthorized},
	} {
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set(SessionHeader, tc.session)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, tc.status, w.Code, tc.session)
		if tc.status == http.StatusOK {
			assert.Equal(t, userID.String()+"|t@acme.io", w.Body.String())
		}
	}
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := jwt.NewJWTService("secret", time.Minute, time.Hour)

	r := gin.New()
	r.Use(OptionalAuth(jwtService, nil))
	r.GET("/x", func(c *gin.Context) {
		_, ok := GetActor(c)
		if ok {
			c.String(http.StatusOK, "user")
			return
		}
		c.String(http.StatusOK, "anonymous")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "anonymous", w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(AuthorizationHeader, "Bearer garbage")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "anonymous", w.Body.String())

	pair, err := jwtService.GenerateTokenPair(uuid.New(), "t@acme.io", "talent")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(AuthorizationHeader, BearerPrefix+pair.AccessToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "user", w.Body.String())
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(role string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if role != "" {
				c.Set(UserRoleKey, role)
			}
			c.Next()
		})
		r.GET("/startup", RequireRole(entities.UserRoleStartup, entities.UserRoleAdmin), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		r.GET("/admin", RequireAdmin(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
		return r
	}

	cases := []struct {
		role, path string
		want       int
	}{
		{"", "/startup", http.StatusUnauthorized},
		{"talent", "/startup", http.StatusForbidden},
		{"startup", "/startup", http.StatusNoContent},
		{"admin", "/startup", http.StatusNoContent},
		{"startup", "/admin", http.StatusForbidden},
		{"admin", "/admin", http.StatusNoContent},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		build(tc.role).ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
		assert.Equal(t, tc.want, w.Code, "%s %s", tc.role, tc.path)
	}
}

func TestGetters_WrongTypes(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Set(UserIDKey, "not-a-uuid")
	_, ok := GetUserID(c)
	assert.False(t, ok)
	_, ok = GetActor(c)
	assert.False(t, ok)
	_, ok = GetUserEmail(c)
	assert.False(t, ok)

}
