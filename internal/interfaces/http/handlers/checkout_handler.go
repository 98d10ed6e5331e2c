package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/domain/entities"
	domainerrors "startup-nexus.backend/internal/domain/errors"
	"startup-nexus.backend/internal/interfaces/http/response"
	"startup-nexus.backend/internal/usecases"
)

// CheckoutHandler exposes the simulated payment flow.
type CheckoutHandler struct {
	checkoutUsecase *usecases.CheckoutUsecase
}

func NewCheckoutHandler(checkoutUsecase *usecases.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkoutUsecase: checkoutUsecase}
}

// CreateCheckout starts a payment that settles after the configured delay.
// POST /api/v1/checkout
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var input entities.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	checkout, err := h.checkoutUsecase.CreateCheckout(c.Request.Context(), a, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"checkout": checkout})
}

// GetCheckout is polled by the client until the status leaves processing.
// GET /api/v1/checkout/:id
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	checkout, err := h.checkoutUsecase.GetCheckout(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"checkout": checkout})
}

// CancelCheckout abandons a checkout that is still processing.
// POST /api/v1/checkout/:id/cancel
func (h *CheckoutHandler) CancelCheckout(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	checkout, err := h.checkoutUsecase.CancelCheckout(c.Request.Context(), a, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"checkout": checkout})
}
