package payment

import (
	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// Payment records the latest known processor state for one payment
// intent. Rows are keyed by the intent id, so webhook replays update
// in place instead of duplicating.
type Payment struct {
	shared.BaseEntity
	OrderID               uuid.UUID
	StripePaymentIntentID string
	AmountCents           int64
	Currency              string
	Status                string
}

// NewPayment creates a payment record for an order
func NewPayment(orderID uuid.UUID, intentID string, amountCents int64, currency, status string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order ID cannot be empty")
	}
	if intentID == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_INTENT", "Payment intent ID cannot be empty")
	}

	return &Payment{
		BaseEntity:            shared.NewBaseEntity(),
		OrderID:               orderID,
		StripePaymentIntentID: intentID,
		AmountCents:           amountCents,
		Currency:              currency,
		Status:                status,
	}, nil
}

// ApplyProcessorState overwrites amount, currency and status from a
// fresh processor event, skipping absent values so a sparse replay
// never blanks earlier data
func (p *Payment) ApplyProcessorState(amountCents int64, currency, status string) {
	if amountCents > 0 {
		p.AmountCents = amountCents
	}
	if currency != "" {
		p.Currency = currency
	}
	if status != "" {
		p.Status = status
	}
	p.Touch()
}
