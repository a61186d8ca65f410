package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	paymentapp "github.com/meatdirect/backend/internal/application/payment"
	"github.com/meatdirect/backend/internal/infrastructure/config"
)

// maxWebhookBody caps webhook payload reads
const maxWebhookBody = 1 << 20

// PaymentsHandler exposes the payment processor configuration and the
// webhook endpoint
type PaymentsHandler struct {
	BaseHandler
	stripeConfig   *config.StripeConfig
	webhookService *paymentapp.WebhookService
	logger         *zap.Logger
}

// NewPaymentsHandler creates a new PaymentsHandler
func NewPaymentsHandler(stripeConfig *config.StripeConfig, webhookService *paymentapp.WebhookService, logger *zap.Logger) *PaymentsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentsHandler{
		stripeConfig:   stripeConfig,
		webhookService: webhookService,
		logger:         logger,
	}
}

// RegisterRoutes registers payment routes
func (h *PaymentsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments/config", h.GetConfig)
	rg.POST("/webhooks/stripe", h.StripeWebhook)
}

// GetConfig handles GET /payments/config
func (h *PaymentsHandler) GetConfig(c *gin.Context) {
	key := h.stripeConfig.PublishableKey
	if key == "" {
		h.Error(c, http.StatusServiceUnavailable, "SERVICE_DISABLED",
			"Stripe publishable key is not configured.")
		return
	}
	h.Success(c, gin.H{
		"publishable_key": key,
		"livemode":        strings.HasPrefix(key, "pk_live"),
	})
}

// StripeWebhook handles POST /webhooks/stripe. The processor only
// needs an acknowledgment, so the body stays outside the response
// envelope.
func (h *PaymentsHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.BadRequest(c, "Unable to read webhook payload.")
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	result, err := h.webhookService.ProcessWebhook(c.Request.Context(), payload, signature)
	if err != nil {
		if errors.Is(err, paymentapp.ErrInvalidPayload) {
			h.logger.Warn("webhook rejected", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid webhook payload."})
			return
		}
		h.logger.Error("webhook processing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Webhook processing failed."})
		return
	}

	if !result.Handled {
		h.logger.Debug("webhook acknowledged without action", zap.String("reason", result.Reason))
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
