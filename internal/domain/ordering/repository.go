package ordering

import (
	"context"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// Save creates or updates an order together with its line items in
	// one transaction
	Save(ctx context.Context, order *Order) error

	// FindByID finds an order by ID, items included
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)

	// FindByPaymentIntentID finds the order holding a payment intent handle
	FindByPaymentIntentID(ctx context.Context, intentID string) (*Order, error)

	// FindRecent lists the most recently created orders
	FindRecent(ctx context.Context, limit int) ([]Order, error)
}
