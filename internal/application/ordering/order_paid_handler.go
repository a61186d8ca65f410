package ordering

import (
	"context"

	"go.uber.org/zap"

	domainnotification "github.com/meatdirect/backend/internal/domain/notification"
	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// ReceiptSender sends the order receipt email at most once per order
type ReceiptSender interface {
	SendOrderReceiptOnce(ctx context.Context, order *ordering.Order) (*domainnotification.EmailNotification, error)
}

// InventoryDecrementer pushes sold quantities back to the inventory source
type InventoryDecrementer interface {
	DecrementInventoryForOrder(ctx context.Context, order *ordering.Order) error
}

// OrderPaidHandler reacts to confirmed payments: it emails the receipt
// and decrements external inventory. The decrement is best effort and
// never fails the handler.
type OrderPaidHandler struct {
	orderRepo ordering.OrderRepository
	receipts  ReceiptSender
	inventory InventoryDecrementer
	logger    *zap.Logger
}

// NewOrderPaidHandler creates a new OrderPaidHandler
func NewOrderPaidHandler(
	orderRepo ordering.OrderRepository,
	receipts ReceiptSender,
	inventory InventoryDecrementer,
	logger *zap.Logger,
) *OrderPaidHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderPaidHandler{
		orderRepo: orderRepo,
		receipts:  receipts,
		inventory: inventory,
		logger:    logger,
	}
}

// Handle processes an OrderPaid event
func (h *OrderPaidHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	order, err := h.orderRepo.FindByID(ctx, event.AggregateID())
	if err != nil {
		return err
	}

	if _, err := h.receipts.SendOrderReceiptOnce(ctx, order); err != nil {
		return err
	}

	if h.inventory != nil {
		if err := h.inventory.DecrementInventoryForOrder(ctx, order); err != nil {
			h.logger.Error("inventory decrement failed",
				zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}
	return nil
}

// EventTypes returns the event types this handler is interested in
func (h *OrderPaidHandler) EventTypes() []string {
	return []string{ordering.EventTypeOrderPaid}
}
