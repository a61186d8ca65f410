package ordering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainnotification "github.com/meatdirect/backend/internal/domain/notification"
	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// StatusUpdateSender emails the customer about a status change. The
// previous status lets the message show the full transition.
type StatusUpdateSender interface {
	SendOrderStatusUpdate(ctx context.Context, order *ordering.Order, previous ordering.OrderStatus) (*domainnotification.EmailNotification, error)
}

// OrderStatusChangedHandler emails the customer whenever their order
// moves to a new status
type OrderStatusChangedHandler struct {
	orderRepo ordering.OrderRepository
	updates   StatusUpdateSender
	logger    *zap.Logger
}

// NewOrderStatusChangedHandler creates a new OrderStatusChangedHandler
func NewOrderStatusChangedHandler(
	orderRepo ordering.OrderRepository,
	updates StatusUpdateSender,
	logger *zap.Logger,
) *OrderStatusChangedHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderStatusChangedHandler{
		orderRepo: orderRepo,
		updates:   updates,
		logger:    logger,
	}
}

// Handle processes an OrderStatusChanged event
func (h *OrderStatusChangedHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	statusEvent, ok := event.(*ordering.OrderStatusChangedEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", ordering.EventTypeOrderStatusChanged),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			ordering.EventTypeOrderStatusChanged, event.EventType())
	}

	order, err := h.orderRepo.FindByID(ctx, event.AggregateID())
	if err != nil {
		return err
	}

	row, err := h.updates.SendOrderStatusUpdate(ctx, order, statusEvent.PreviousStatus)
	if err != nil {
		return err
	}
	if row.Status == domainnotification.StatusFailed {
		h.logger.Warn("status update not delivered",
			zap.String("order_id", order.ID.String()), zap.String("reason", row.Error))
	}
	return nil
}

// EventTypes returns the event types this handler is interested in
func (h *OrderStatusChangedHandler) EventTypes() []string {
	return []string{ordering.EventTypeOrderStatusChanged}
}
