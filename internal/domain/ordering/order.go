package ordering

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// OrderType distinguishes pickup orders from delivery orders
type OrderType string

const (
	OrderTypePickup   OrderType = "pickup"
	OrderTypeDelivery OrderType = "delivery"
)

// IsValid checks if the order type is known
func (t OrderType) IsValid() bool {
	return t == OrderTypePickup || t == OrderTypeDelivery
}

// String returns the string representation of OrderType
func (t OrderType) String() string {
	return string(t)
}

// Label returns the human readable form used in receipts and emails
func (t OrderType) Label() string {
	switch t {
	case OrderTypePickup:
		return "Pickup"
	case OrderTypeDelivery:
		return "Delivery"
	}
	return string(t)
}

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPlaced     OrderStatus = "placed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// Label returns the customer-facing display name for the status.
// Unknown raw values pass through title-cased so notification text
// never renders an empty label.
func (s OrderStatus) Label() string {
	switch s {
	case OrderStatusPlaced:
		return "Placed"
	case OrderStatusProcessing:
		return "Processing"
	case OrderStatusShipped:
		return "Shipped"
	case OrderStatusDelivered:
		return "Delivered"
	case OrderStatusCancelled:
		return "Cancelled"
	}
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPlaced:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusShipped || target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusShipped:
		return target == OrderStatusDelivered || target == OrderStatusCancelled
	case OrderStatusDelivered, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

var taxRate = decimal.RequireFromString("0.05")

// CalculateTaxCents computes the flat 5% tax on subtotal plus delivery
// fee, rounded half to even to the nearest cent.
func CalculateTaxCents(subtotalCents, deliveryFeeCents int64) int64 {
	taxable := decimal.NewFromInt(subtotalCents + deliveryFeeCents)
	return taxable.Mul(taxRate).RoundBank(0).IntPart()
}

// OrderItem is a line item snapshot: product name and unit price are
// frozen at order-creation time
type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int64
	UnitPriceCents int64
	TotalCents     int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewOrderItem creates a new order line item
func NewOrderItem(orderID, productID uuid.UUID, productName string, quantity, unitPriceCents int64) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	if unitPriceCents < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &OrderItem{
		ID:             uuid.New(),
		OrderID:        orderID,
		ProductID:      productID,
		ProductName:    productName,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
		TotalCents:     quantity * unitPriceCents,
		CreatedAt:      now,
		UpdatedAt:      now,
	}, nil
}

// Order is the aggregate root for a customer order. Money fields are
// integer cents and always satisfy total == subtotal + deliveryFee + tax.
type Order struct {
	shared.BaseAggregateRoot
	FullName     string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	PostalCode   string

	OrderType OrderType
	Status    OrderStatus

	SubtotalCents    int64
	TaxCents         int64
	DeliveryFeeCents int64
	TotalCents       int64

	DeliveryServiceArea string
	DeliveryETAText     string

	Notes              string
	DeliveryNotes      string
	PickupLocation     string
	PickupInstructions string

	StripePaymentIntentID string

	Items []OrderItem
}

// NewOrder creates a new order in the placed state
func NewOrder(fullName, email, phone string, orderType OrderType) (*Order, error) {
	if fullName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Full name cannot be empty")
	}
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Order type must be pickup or delivery")
	}

	return &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		FullName:          fullName,
		Email:             email,
		Phone:             phone,
		OrderType:         orderType,
		Status:            OrderStatusPlaced,
		Items:             make([]OrderItem, 0),
	}, nil
}

// SetDeliveryDetails records the delivery address and the resolved
// zone quote on the order, then reprices it
func (o *Order) SetDeliveryDetails(line1, line2, city, postalCode string, quote DeliveryQuote, deliveryNotes string) {
	o.AddressLine1 = line1
	o.AddressLine2 = line2
	o.City = city
	o.PostalCode = postalCode
	o.DeliveryServiceArea = quote.ServiceArea
	o.DeliveryETAText = quote.ETAText
	o.DeliveryFeeCents = quote.FeeCents
	o.DeliveryNotes = deliveryNotes
	o.recalculateTotals()
}

// SetPickupDetails records pickup location and instructions
func (o *Order) SetPickupDetails(location, instructions string) {
	o.PickupLocation = location
	o.PickupInstructions = instructions
}

// AddItem appends a line item snapshot and reprices the order
func (o *Order) AddItem(productID uuid.UUID, productName string, quantity, unitPriceCents int64) error {
	item, err := NewOrderItem(o.ID, productID, productName, quantity, unitPriceCents)
	if err != nil {
		return err
	}
	o.Items = append(o.Items, *item)
	o.recalculateTotals()
	return nil
}

// recalculateTotals recomputes subtotal, tax and total from the current
// line items and delivery fee
func (o *Order) recalculateTotals() {
	var subtotal int64
	for _, item := range o.Items {
		subtotal += item.TotalCents
	}
	o.SubtotalCents = subtotal
	o.TaxCents = CalculateTaxCents(subtotal, o.DeliveryFeeCents)
	o.TotalCents = subtotal + o.DeliveryFeeCents + o.TaxCents
	o.Touch()
}

// AttachPaymentIntent records the external payment intent handle
func (o *Order) AttachPaymentIntent(intentID string) {
	o.StripePaymentIntentID = intentID
	o.Touch()
}

// ChangeStatus transitions the order to a new status and raises an
// OrderStatusChangedEvent carrying both the previous and new status
func (o *Order) ChangeStatus(target OrderStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Unknown order status: "+target.String())
	}
	if target == o.Status {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION", "Order is already "+target.String())
	}
	if !o.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATUS_TRANSITION",
			"Cannot transition order from "+o.Status.String()+" to "+target.String())
	}

	previous := o.Status
	o.Status = target
	o.Touch()
	o.AddDomainEvent(NewOrderStatusChangedEvent(o, previous, target))
	return nil
}

// MarkPlaced raises the creation event once the order is fully priced
func (o *Order) MarkPlaced() {
	o.AddDomainEvent(NewOrderPlacedEvent(o))
}

// MarkPaid raises the payment event used to drive post-commit side
// effects (receipt email, inventory decrement)
func (o *Order) MarkPaid() {
	o.AddDomainEvent(NewOrderPaidEvent(o))
}
