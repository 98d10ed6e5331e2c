package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

// JobHandler serves job listings.
type JobHandler struct {
	jobUsecase *usecases.JobUsecase
}

func NewJobHandler(jobUsecase *usecases.JobUsecase) *JobHandler {
	return &JobHandler{jobUsecase: jobUsecase}
}

// ListPublicJobs returns approved and verified jobs, featured first.
// GET /api/v1/jobs?region=&type=&q=&page=&limit=
func (h *JobHandler) ListPublicJobs(c *gin.Context) {
	filter := entities.JobFilter{
		Region: strings.TrimSpace(c.Query("region")),
		Type:   strings.TrimSpace(c.Query("type")),
		Query:  strings.TrimSpace(c.Query("q")),
	}
	jobs, meta, err := h.jobUsecase.ListPublicJobs(c.Request.Context(), filter, pagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, "jobs", jobs, meta)
}

// GetPublicJob returns an approved job
// GET /api/v1/jobs/:id
func (h *JobHandler) GetPublicJob(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	job, err := h.jobUsecase.GetPublicJob(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// CreateJob submits a listing for moderation.
// POST /api/v1/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var input entities.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	job, err := h.jobUsecase.AddJob(c.Request.Context(), a, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"job": job})
}

// UpdateJob edits a job owned by the caller
// PUT /api/v1/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input entities.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	job, err := h.jobUsecase.UpdateJob(c.Request.Context(), a, id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}

// DeleteJob removes a job and its applications
// DELETE /api/v1/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.jobUsecase.DeleteJob(c.Request.Context(), a, id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMyJobs returns the caller's jobs in every status.
// GET /api/v1/dashboard/jobs
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	jobs, err := h.jobUsecase.ListOwnerJobs(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"jobs": jobs})
}

// ListAllJobs is the admin listing.
// GET /api/v1/admin/jobs?status=&q=
func (h *JobHandler) ListAllJobs(c *gin.Context) {
	jobs, meta, err := h.jobUsecase.ListAllJobs(c.Request.Context(), c.Query("status"), c.Query("q"), pagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, "jobs", jobs, meta)
}

// ModerateJob approves or rejects a job posting
// PUT /api/v1/admin/jobs/:id/moderation
func (h *JobHandler) ModerateJob(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	job, err := h.jobUsecase.ModerateJob(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"job": job})
}
