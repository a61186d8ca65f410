package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	orderingapp "github.com/meatdirect/backend/internal/application/ordering"
	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/interfaces/http/dto"
)

// CheckoutHandler turns carts into orders with payment intents
type CheckoutHandler struct {
	BaseHandler
	checkoutService *orderingapp.CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService *orderingapp.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req orderingapp.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, shared.ErrGatewayFailure) {
			h.Error(c, http.StatusBadGateway, "GATEWAY_FAILURE", "Unable to create payment intent.")
			return
		}
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(resp))
}
