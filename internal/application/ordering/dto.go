package ordering

import (
	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/ordering"
)

// CheckoutItemRequest is one cart line submitted at checkout
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// CheckoutAddressRequest is the delivery address submitted at checkout
type CheckoutAddressRequest struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes"`
}

// CheckoutRequest is the full checkout payload
type CheckoutRequest struct {
	Items              []CheckoutItemRequest   `json:"items"`
	FullName           string                  `json:"full_name"`
	Email              string                  `json:"email"`
	Phone              string                  `json:"phone"`
	OrderType          string                  `json:"order_type"`
	Address            *CheckoutAddressRequest `json:"address"`
	Notes              string                  `json:"notes"`
	PickupLocation     string                  `json:"pickup_location"`
	PickupInstructions string                  `json:"pickup_instructions"`
	DeliveryNotes      string                  `json:"delivery_notes"`
}

// CheckoutResponse returns the created order and its payment handle
type CheckoutResponse struct {
	OrderID             uuid.UUID `json:"order_id"`
	ClientSecret        string    `json:"client_secret"`
	Amount              int64     `json:"amount"`
	SubtotalCents       int64     `json:"subtotal_cents"`
	TaxCents            int64     `json:"tax_cents"`
	DeliveryFeeCents    int64     `json:"delivery_fee_cents"`
	DeliveryServiceArea string    `json:"delivery_service_area,omitempty"`
	DeliveryETAText     string    `json:"delivery_eta_text,omitempty"`
}

// OrderItemResponse is one order line in API responses
type OrderItemResponse struct {
	ID             uuid.UUID `json:"id"`
	ProductID      uuid.UUID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	Quantity       int64     `json:"quantity"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	TotalCents     int64     `json:"total_cents"`
}

// OrderResponse is the full order representation
type OrderResponse struct {
	ID                  uuid.UUID           `json:"id"`
	FullName            string              `json:"full_name"`
	Email               string              `json:"email"`
	Phone               string              `json:"phone"`
	OrderType           string              `json:"order_type"`
	Status              string              `json:"status"`
	SubtotalCents       int64               `json:"subtotal_cents"`
	TaxCents            int64               `json:"tax_cents"`
	DeliveryFeeCents    int64               `json:"delivery_fee_cents"`
	TotalCents          int64               `json:"total_cents"`
	DeliveryServiceArea string              `json:"delivery_service_area,omitempty"`
	DeliveryETAText     string              `json:"delivery_eta_text,omitempty"`
	Items               []OrderItemResponse `json:"items"`
}

// ToOrderResponse converts a domain order to its API representation
func ToOrderResponse(o *ordering.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			Quantity:       item.Quantity,
			UnitPriceCents: item.UnitPriceCents,
			TotalCents:     item.TotalCents,
		})
	}
	return OrderResponse{
		ID:                  o.ID,
		FullName:            o.FullName,
		Email:               o.Email,
		Phone:               o.Phone,
		OrderType:           o.OrderType.String(),
		Status:              o.Status.String(),
		SubtotalCents:       o.SubtotalCents,
		TaxCents:            o.TaxCents,
		DeliveryFeeCents:    o.DeliveryFeeCents,
		TotalCents:          o.TotalCents,
		DeliveryServiceArea: o.DeliveryServiceArea,
		DeliveryETAText:     o.DeliveryETAText,
		Items:               items,
	}
}
