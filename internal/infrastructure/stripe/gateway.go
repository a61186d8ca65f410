package stripe

import (
	"context"
	"errors"

	stripeapi "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/payment"
	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/infrastructure/config"
)

// Gateway implements the payment gateway port using the Stripe API
type Gateway struct {
	config *config.StripeConfig
	logger *zap.Logger
}

// NewGateway creates a new Stripe gateway and sets the global API key
func NewGateway(cfg *config.StripeConfig, logger *zap.Logger) *Gateway {
	stripeapi.Key = cfg.SecretKey
	return &Gateway{
		config: cfg,
		logger: logger,
	}
}

// CreatePaymentIntent creates a payment intent carrying the order id in its
// metadata so webhooks can resolve it back to the order
func (g *Gateway) CreatePaymentIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	if !g.config.Enabled() {
		return nil, shared.ErrServiceDisabled
	}

	currency := req.Currency
	if currency == "" {
		currency = g.config.Currency
	}

	params := &stripeapi.PaymentIntentParams{
		Amount:   stripeapi.Int64(req.AmountCents),
		Currency: stripeapi.String(currency),
		AutomaticPaymentMethods: &stripeapi.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripeapi.Bool(true),
		},
	}
	params.Context = ctx
	params.Metadata = map[string]string{
		"order_id": req.OrderID.String(),
	}
	if req.ReceiptEmail != "" {
		params.ReceiptEmail = stripeapi.String(req.ReceiptEmail)
	}
	if req.Description != "" {
		params.Description = stripeapi.String(req.Description)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("failed to create payment intent",
			zap.String("order_id", req.OrderID.String()),
			zap.Int64("amount_cents", req.AmountCents),
			zap.Error(err))
		return nil, errors.Join(shared.ErrGatewayFailure, err)
	}

	g.logger.Info("created payment intent",
		zap.String("order_id", req.OrderID.String()),
		zap.String("payment_intent_id", intent.ID),
		zap.Int64("amount_cents", req.AmountCents))

	return &payment.Intent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// Ensure Gateway implements the port
var _ payment.Gateway = (*Gateway)(nil)
