package ordering

import (
	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeOrder = "Order"

// Event type constants
const (
	EventTypeOrderPlaced        = "OrderPlaced"
	EventTypeOrderStatusChanged = "OrderStatusChanged"
	EventTypeOrderPaid          = "OrderPaid"
)

// OrderItemInfo carries line item details on events
type OrderItemInfo struct {
	ItemID         uuid.UUID `json:"item_id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
}

func itemInfos(order *Order) []OrderItemInfo {
	items := make([]OrderItemInfo, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemInfo{
			ItemID:         item.ID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			TotalCents:     item.TotalCents,
		}
	}
	return items
}

// OrderPlacedEvent is raised when a new order is created at checkout
type OrderPlacedEvent struct {
	shared.BaseDomainEvent
	OrderID    uuid.UUID       `json:"order_id"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	OrderType  OrderType       `json:"order_type"`
	TotalCents int64           `json:"total_cents"`
	Items      []OrderItemInfo `json:"items"`
}

// NewOrderPlacedEvent creates a new OrderPlacedEvent
func NewOrderPlacedEvent(order *Order) *OrderPlacedEvent {
	return &OrderPlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPlaced, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		FullName:        order.FullName,
		Email:           order.Email,
		OrderType:       order.OrderType,
		TotalCents:      order.TotalCents,
		Items:           itemInfos(order),
	}
}

// EventType returns the event type name
func (e *OrderPlacedEvent) EventType() string {
	return EventTypeOrderPlaced
}

// OrderStatusChangedEvent is raised on every real status transition.
// It carries both statuses explicitly so subscribers never depend on
// hidden prior state.
type OrderStatusChangedEvent struct {
	shared.BaseDomainEvent
	OrderID        uuid.UUID   `json:"order_id"`
	Email          string      `json:"email"`
	PreviousStatus OrderStatus `json:"previous_status"`
	NewStatus      OrderStatus `json:"new_status"`
}

// NewOrderStatusChangedEvent creates a new OrderStatusChangedEvent
func NewOrderStatusChangedEvent(order *Order, previous, next OrderStatus) *OrderStatusChangedEvent {
	return &OrderStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderStatusChanged, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		Email:           order.Email,
		PreviousStatus:  previous,
		NewStatus:       next,
	}
}

// EventType returns the event type name
func (e *OrderStatusChangedEvent) EventType() string {
	return EventTypeOrderStatusChanged
}

// OrderPaidEvent is raised after a successful payment is recorded.
// Subscribers send the receipt and decrement external inventory.
type OrderPaidEvent struct {
	shared.BaseDomainEvent
	OrderID         uuid.UUID       `json:"order_id"`
	Email           string          `json:"email"`
	PaymentIntentID string          `json:"payment_intent_id"`
	TotalCents      int64           `json:"total_cents"`
	Items           []OrderItemInfo `json:"items"`
}

// NewOrderPaidEvent creates a new OrderPaidEvent
func NewOrderPaidEvent(order *Order) *OrderPaidEvent {
	return &OrderPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderPaid, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		Email:           order.Email,
		PaymentIntentID: order.StripePaymentIntentID,
		TotalCents:      order.TotalCents,
		Items:           itemInfos(order),
	}
}

// EventType returns the event type name
func (e *OrderPaidEvent) EventType() string {
	return EventTypeOrderPaid
}
