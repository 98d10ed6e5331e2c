package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

type PreferenceHandler struct {
	prefUsecase *usecases.PreferenceUsecase
}

func NewPreferenceHandler(prefUsecase *usecases.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{prefUsecase: prefUsecase}
}

// GetLanguage returns the caller's interface language
// GET /api/v1/settings/language
func (h *PreferenceHandler) GetLanguage(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	lang, err := h.prefUsecase.GetLanguage(c.Request.Context(), a.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"language": lang, "supported": h.prefUsecase.Supported()})
}

// SetLanguage stores the caller's interface language
// PUT /api/v1/settings/language
func (h *PreferenceHandler) SetLanguage(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var input struct {
		Language string `json:"language" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	lang, err := h.prefUsecase.SetLanguage(c.Request.Context(), a.ID, input.Language)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"language": lang})
}
