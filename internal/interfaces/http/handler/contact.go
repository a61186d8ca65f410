package handler

import (
	"github.com/gin-gonic/gin"

	contactapp "github.com/meatdirect/backend/internal/application/contact"
)

// ContactHandler takes contact and bulk quote form submissions
type ContactHandler struct {
	BaseHandler
	contactService *contactapp.Service
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService *contactapp.Service) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// RegisterRoutes registers contact routes
func (h *ContactHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitMessage)
	rg.POST("/quote-request", h.SubmitQuote)
}

// SubmitMessage handles POST /contact
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req contactapp.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// SubmitQuote handles POST /quote-request
func (h *ContactHandler) SubmitQuote(c *gin.Context) {
	var req contactapp.QuoteRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contactService.SubmitQuote(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}
