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

// InvestorHandler serves the investor directory.
type InvestorHandler struct {
	investorUsecase *usecases.InvestorUsecase
}

func NewInvestorHandler(investorUsecase *usecases.InvestorUsecase) *InvestorHandler {
	return &InvestorHandler{investorUsecase: investorUsecase}
}

// ListPublicInvestors lists approved investors
// GET /api/v1/investors?stage=&vertical=&q=
func (h *InvestorHandler) ListPublicInvestors(c *gin.Context) {
	filter := entities.InvestorFilter{
		Stage:    strings.TrimSpace(c.Query("stage")),
		Vertical: strings.TrimSpace(c.Query("vertical")),
		Query:    strings.TrimSpace(c.Query("q")),
	}
	investors, meta, err := h.investorUsecase.ListPublicInvestors(c.Request.Context(), filter, pagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, http.StatusOK, "investors", investors, meta)
}

// CreateInvestor is the public onboarding form.
// POST /api/v1/investors
func (h *InvestorHandler) CreateInvestor(c *gin.Context) {
	var input entities.InvestorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	investor, err := h.investorUsecase.AddInvestor(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"investor": investor})
}

// ListAllInvestors lists investors in every moderation state
// GET /api/v1/admin/investors?q=
func (h *InvestorHandler) ListAllInvestors(c *gin.Context) {
	investors, err := h.investorUsecase.ListAllInvestors(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investors": investors})
}

// ModerateInvestor approves or rejects an investor listing
// PUT /api/v1/admin/investors/:id/moderation
func (h *InvestorHandler) ModerateInvestor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	investor, err := h.investorUsecase.ModerateInvestor(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"investor": investor})
}

// DeleteInvestor removes an investor listing
// DELETE /api/v1/admin/investors/:id
func (h *InvestorHandler) DeleteInvestor(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := h.investorUsecase.DeleteInvestor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
