package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/middleware"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

const (
	accessCookie  = "token"
	refreshCookie = "refresh_token"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
	secure      bool
}

// NewAuthHandler creates a new auth handler. secure marks cookies Secure.
func NewAuthHandler(authUsecase *usecases.AuthUsecase, secure bool) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, secure: secure}
}

// Signup handles account creation
// POST /api/v1/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var input entities.SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Signup(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setCookies(c, resp.AccessToken, resp.RefreshToken)
	response.Success(c, http.StatusCreated, resp)
}

// Login handles user login
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "Invalid email or password", err))
			return
		}
		response.Error(c, err)
		return
	}
	h.setCookies(c, resp.AccessToken, resp.RefreshToken)
	response.Success(c, http.StatusOK, resp)
}

// Refresh re-issues tokens from the body or the refresh cookie
// POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if c.Request.ContentLength > 0 {
		_ = c.ShouldBindJSON(&input)
	}
	if input.RefreshToken == "" {
		if cookie, err := c.Cookie(refreshCookie); err == nil {
			input.RefreshToken = cookie
		}
	}
	if input.RefreshToken == "" {
		response.Error(c, domainerrors.BadRequest("Refresh token is required"))
		return
	}

	pair, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.setCookies(c, pair.AccessToken, pair.RefreshToken)
	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

// Logout drops the session and clears cookies
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.authUsecase.Logout(c.Request.Context(), c.GetHeader(middleware.SessionHeader)); err != nil {
		response.Error(c, err)
		return
	}
	c.SetCookie(accessCookie, "", -1, "/", "", h.secure, true)
	c.SetCookie(refreshCookie, "", -1, "/", "", h.secure, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me returns current authenticated user details
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	user, err := h.authUsecase.Me(c.Request.Context(), a.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) setCookies(c *gin.Context, access, refresh string) {
	if access == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookie, access, 3600*24, "/", "", h.secure, true)
	c.SetCookie(refreshCookie, refresh, 3600*24*7, "/", "", h.secure, true)
}
