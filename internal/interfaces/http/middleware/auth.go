package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
	"startup-nexus.backend/pkg/jwt"
	"startup-nexus.backend/pkg/logger"
	"startup-nexus.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// SessionHeader carries the opaque id returned by a session login
	SessionHeader = "X-Session-Id"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// SessionReader resolves server-side sessions.
type SessionReader interface {
	GetSession(ctx context.Context, sessionID string) (*redis.SessionData, error)
}

type identity struct {
	id    uuid.UUID
	email string
	role  string
}

// AuthMiddleware requires a bearer access token or a session id.
func AuthMiddleware(jwtService *jwt.JWTService, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		who, err := authenticate(c, jwtService, sessions)
		if err != nil {
			logger.Warn(c.Request.Context(), "Authentication failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
			response.Error(c, err)
			c.Abort()
			return
		}
		setIdentity(c, who)
		c.Next()
	}
}

// OptionalAuth attaches the caller when credentials are valid and lets
// anonymous requests through.
func OptionalAuth(jwtService *jwt.JWTService, sessions SessionReader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(AuthorizationHeader) == "" && c.GetHeader(SessionHeader) == "" {
			c.Next()
			return
		}
		if who, err := authenticate(c, jwtService, sessions); err == nil {
			setIdentity(c, who)
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, jwtService *jwt.JWTService, sessions SessionReader) (*identity, error) {
	if sessionID := c.GetHeader(SessionHeader); sessionID != "" && sessions != nil {
		session, err := sessions.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			return nil, domainerrors.Unauthorized("invalid or expired session")
		}
		id, err := uuid.Parse(session.UserID)
		if err != nil {
			return nil, domainerrors.Unauthorized("invalid or expired session")
		}
		return &identity{id: id, email: session.Email, role: session.Role}, nil
	}

	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return nil, domainerrors.Unauthorized("Authorization header is required")
	}
	if !strings.HasPrefix(authHeader, BearerPrefix) {
		return nil, domainerrors.Unauthorized("Invalid authorization format. Use: Bearer <token>")
	}

	claims, err := jwtService.ValidateTyped(strings.TrimPrefix(authHeader, BearerPrefix), jwt.TokenTypeAccess)
	if err != nil {
		if errors.Is(err, jwt.ErrExpiredToken) {
			return nil, domainerrors.ErrTokenExpired
		}
		return nil, domainerrors.Unauthorized("Invalid token")
	}
	return &identity{id: claims.UserID, email: claims.Email, role: claims.Role}, nil
}

func setIdentity(c *gin.Context, who *identity) {
	c.Set(UserIDKey, who.id)
	c.Set(UserEmailKey, who.email)
	c.Set(UserRoleKey, who.role)
	c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), who.id.String()))
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail gets the user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(UserEmailKey)
	if !exists {
		return "", false
	}
	s, ok := email.(string)
	return s, ok
}

// GetUserRole gets the user role from context
func GetUserRole(c *gin.Context) (string, bool) {
	role, exists := c.Get(UserRoleKey)
	if !exists {
		return "", false
	}
	s, ok := role.(string)
	return s, ok
}

// GetActor builds the usecase actor for an authenticated request.
func GetActor(c *gin.Context) (usecases.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return usecases.Actor{}, false
	}
	email, _ := GetUserEmail(c)
	role, _ := GetUserRole(c)
	r, _ := entities.ParseUserRole(role)
	return usecases.Actor{ID: id, Email: email, Role: r}, true
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(roles ...entities.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := GetUserRole(c)
		if !exists {
			response.Error(c, domainerrors.Unauthorized("User role not found"))
			c.Abort()
			return
		}

		for _, role := range roles {
			if userRole == string(role) {
				c.Next()
				return
			}
		}

		response.Error(c, domainerrors.Forbidden("Insufficient permissions"))
		c.Abort()
	}
}

// RequireAdmin creates a middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entities.UserRoleAdmin)
}
