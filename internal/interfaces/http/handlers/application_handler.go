package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/middleware"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

// ApplicationHandler serves job applications.
type ApplicationHandler struct {
	appUsecase *usecases.ApplicationUsecase
}

func NewApplicationHandler(appUsecase *usecases.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{appUsecase: appUsecase}
}

// Apply accepts anonymous and logged-in candidates.
// POST /api/v1/jobs/:id/applications
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input entities.ApplyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	var who *usecases.Actor
	if a, ok := middleware.GetActor(c); ok {
		who = &a
	}
	app, err := h.appUsecase.Apply(c.Request.Context(), who, jobID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"application": app})
}

// ListJobApplications lists applicants for one job
// GET /api/v1/jobs/:id/applications
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	jobID, ok := paramID(c, "id")
	if !ok {
		return
	}
	apps, err := h.appUsecase.ListJobApplications(c.Request.Context(), a, jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// ListStartupApplications returns applications to every job the caller owns.
// GET /api/v1/dashboard/applications
func (h *ApplicationHandler) ListStartupApplications(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	apps, err := h.appUsecase.ListStartupApplications(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// ListMyApplications lists the caller's own applications
// GET /api/v1/me/applications
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	apps, err := h.appUsecase.ListMyApplications(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps})
}

// UpdateStatus moves an application through the hiring pipeline
// PUT /api/v1/applications/:id/status
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	app, err := h.appUsecase.UpdateApplicationStatus(c.Request.Context(), a, id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"application": app})
}
