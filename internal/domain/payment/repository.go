package payment

import (
	"context"

	"github.com/google/uuid"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// Save creates or updates a payment record
	Save(ctx context.Context, payment *Payment) error

	// FindByIntentID finds a payment by its processor intent id
	FindByIntentID(ctx context.Context, intentID string) (*Payment, error)

	// FindByOrder lists payments recorded for an order
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
}
