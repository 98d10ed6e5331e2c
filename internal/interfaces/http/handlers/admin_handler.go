package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

// AdminHandler covers moderation, user management and maintenance.
type AdminHandler struct {
	moderation *usecases.ModerationUsecase
	ecosystem  *usecases.EcosystemUsecase
	stats      *usecases.StatsUsecase
}

func NewAdminHandler(moderation *usecases.ModerationUsecase, ecosystem *usecases.EcosystemUsecase, stats *usecases.StatsUsecase) *AdminHandler {
	return &AdminHandler{moderation: moderation, ecosystem: ecosystem, stats: stats}
}

// ModerationQueue returns pending jobs and investors.
// GET /api/v1/admin/moderation
func (h *AdminHandler) ModerationQueue(c *gin.Context) {
	queue, err := h.moderation.Queue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, queue)
}

// ListUsers lists ecosystem users filtered by search text and role
// GET /api/v1/admin/users?q=&role=
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.ecosystem.ListUsers(c.Request.Context(), c.Query("q"), c.Query("role"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// ToggleBan flips a user between active and banned
// POST /api/v1/admin/users/:id/ban
func (h *AdminHandler) ToggleBan(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, err := h.ecosystem.ToggleBan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// DeleteUser removes a user account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.ecosystem.DeleteUser(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CleanupFakeUsers removes throwaway accounts. dryRun=true only reports them.
// POST /api/v1/admin/users/cleanup?dryRun=true
func (h *AdminHandler) CleanupFakeUsers(c *gin.Context) {
	dryRun, _ := strconv.ParseBool(c.DefaultQuery("dryRun", "false"))
	result, err := h.ecosystem.CleanupFakeUsers(c.Request.Context(), dryRun)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// Purge empties one collection.
// DELETE /api/v1/admin/purge/:collection
func (h *AdminHandler) Purge(c *gin.Context) {
	collection := c.Param("collection")
	removed, err := h.ecosystem.Purge(c.Request.Context(), collection)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"collection": collection, "removed": removed})
}

// Stats returns platform counters for the admin dashboard
// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
