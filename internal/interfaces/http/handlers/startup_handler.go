package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

// StartupHandler serves public startup profiles and the brand editor.
type StartupHandler struct {
	startupUsecase *usecases.StartupUsecase
}

func NewStartupHandler(startupUsecase *usecases.StartupUsecase) *StartupHandler {
	return &StartupHandler{startupUsecase: startupUsecase}
}

// ListStartups lists public startup profiles
// GET /api/v1/startups?industry=&q=
func (h *StartupHandler) ListStartups(c *gin.Context) {
	items, err := h.startupUsecase.ListStartups(c.Request.Context(), c.Query("industry"), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"startups": items})
}

// GetStartup returns one public startup profile
// GET /api/v1/startups/:id
func (h *StartupHandler) GetStartup(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	profile, err := h.startupUsecase.GetStartup(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"startup": profile})
}

// GetMyStartup returns the caller's brand profile
// GET /api/v1/dashboard/startup
func (h *StartupHandler) GetMyStartup(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	profile, err := h.startupUsecase.GetMyStartup(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"startup": profile})
}

// SaveMyStartup upserts the brand profile.
// PUT /api/v1/dashboard/startup
func (h *StartupHandler) SaveMyStartup(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var input entities.BrandProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	profile, err := h.startupUsecase.SaveBrandProfile(c.Request.Context(), a, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"startup": profile})
}
