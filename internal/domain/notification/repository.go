package notification

import (
	"context"

	"github.com/google/uuid"
)

// EmailNotificationRepository defines the interface for notification persistence
type EmailNotificationRepository interface {
	// Save creates or updates a notification row
	Save(ctx context.Context, n *EmailNotification) error

	// FindLatestSentReceipt returns the most recent sent receipt for an
	// order, ordered by sent_at then created_at descending, or nil when
	// no receipt went out yet
	FindLatestSentReceipt(ctx context.Context, orderID uuid.UUID) (*EmailNotification, error)

	// FindByOrder lists all notification rows for an order, newest first
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]EmailNotification, error)
}
