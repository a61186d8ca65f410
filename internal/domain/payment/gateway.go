package payment

import (
	"context"

	"github.com/google/uuid"
)

// IntentRequest asks the processor to prepare a charge for an order
type IntentRequest struct {
	OrderID      uuid.UUID
	AmountCents  int64
	Currency     string
	ReceiptEmail string
	Description  string
}

// Intent is the processor's handle for an attempted charge
type Intent struct {
	ID           string
	ClientSecret string
}

// Gateway abstracts the payment processor used at checkout
type Gateway interface {
	// CreatePaymentIntent creates a payment intent carrying the order id
	// in its metadata so webhooks can resolve it back to the order
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Intent, error)
}
