package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// OrderModel is the persistence model for the Order aggregate.
type OrderModel struct {
	BaseModel
	FullName     string `gorm:"type:varchar(200);not null"`
	Email        string `gorm:"type:varchar(254);index"`
	Phone        string `gorm:"type:varchar(32)"`
	AddressLine1 string `gorm:"type:varchar(255)"`
	AddressLine2 string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"type:varchar(16)"`

	OrderType string `gorm:"type:varchar(20);not null"`
	Status    string `gorm:"type:varchar(20);not null;default:'placed';index"`

	SubtotalCents    int64 `gorm:"not null;default:0"`
	TaxCents         int64 `gorm:"not null;default:0"`
	DeliveryFeeCents int64 `gorm:"not null;default:0"`
	TotalCents       int64 `gorm:"not null;default:0"`

	DeliveryServiceArea string `gorm:"type:varchar(100)"`
	DeliveryETAText     string `gorm:"type:varchar(100)"`

	Notes              string `gorm:"type:text"`
	DeliveryNotes      string `gorm:"type:text"`
	PickupLocation     string `gorm:"type:varchar(255)"`
	PickupInstructions string `gorm:"type:text"`

	StripePaymentIntentID string `gorm:"type:varchar(255);index"`

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for an order line item.
type OrderItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
	OrderID        uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName    string    `gorm:"type:varchar(200);not null"`
	Quantity       int64     `gorm:"not null"`
	UnitPriceCents int64     `gorm:"not null"`
	TotalCents     int64     `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order aggregate.
func (m *OrderModel) ToDomain() *ordering.Order {
	items := make([]ordering.OrderItem, 0, len(m.Items))
	for i := range m.Items {
		items = append(items, *m.Items[i].ToDomain())
	}
	return &ordering.Order{
		BaseAggregateRoot: shared.BaseAggregateRoot{
			BaseEntity: shared.BaseEntity{
				ID:        m.ID,
				CreatedAt: m.CreatedAt,
				UpdatedAt: m.UpdatedAt,
			},
		},
		FullName:              m.FullName,
		Email:                 m.Email,
		Phone:                 m.Phone,
		AddressLine1:          m.AddressLine1,
		AddressLine2:          m.AddressLine2,
		City:                  m.City,
		PostalCode:            m.PostalCode,
		OrderType:             ordering.OrderType(m.OrderType),
		Status:                ordering.OrderStatus(m.Status),
		SubtotalCents:         m.SubtotalCents,
		TaxCents:              m.TaxCents,
		DeliveryFeeCents:      m.DeliveryFeeCents,
		TotalCents:            m.TotalCents,
		DeliveryServiceArea:   m.DeliveryServiceArea,
		DeliveryETAText:       m.DeliveryETAText,
		Notes:                 m.Notes,
		DeliveryNotes:         m.DeliveryNotes,
		PickupLocation:        m.PickupLocation,
		PickupInstructions:    m.PickupInstructions,
		StripePaymentIntentID: m.StripePaymentIntentID,
		Items:                 items,
	}
}

// FromDomain populates the persistence model from a domain Order aggregate.
func (m *OrderModel) FromDomain(o *ordering.Order) {
	m.FromDomainBaseEntity(o.BaseEntity)
	m.FullName = o.FullName
	m.Email = o.Email
	m.Phone = o.Phone
	m.AddressLine1 = o.AddressLine1
	m.AddressLine2 = o.AddressLine2
	m.City = o.City
	m.PostalCode = o.PostalCode
	m.OrderType = string(o.OrderType)
	m.Status = string(o.Status)
	m.SubtotalCents = o.SubtotalCents
	m.TaxCents = o.TaxCents
	m.DeliveryFeeCents = o.DeliveryFeeCents
	m.TotalCents = o.TotalCents
	m.DeliveryServiceArea = o.DeliveryServiceArea
	m.DeliveryETAText = o.DeliveryETAText
	m.Notes = o.Notes
	m.DeliveryNotes = o.DeliveryNotes
	m.PickupLocation = o.PickupLocation
	m.PickupInstructions = o.PickupInstructions
	m.StripePaymentIntentID = o.StripePaymentIntentID
	m.Items = make([]OrderItemModel, 0, len(o.Items))
	for i := range o.Items {
		m.Items = append(m.Items, *OrderItemModelFromDomain(&o.Items[i]))
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order aggregate.
func OrderModelFromDomain(o *ordering.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}

// ToDomain converts the persistence model to a domain OrderItem.
func (m *OrderItemModel) ToDomain() *ordering.OrderItem {
	return &ordering.OrderItem{
		ID:             m.ID,
		OrderID:        m.OrderID,
		ProductID:      m.ProductID,
		ProductName:    m.ProductName,
		Quantity:       m.Quantity,
		UnitPriceCents: m.UnitPriceCents,
		TotalCents:     m.TotalCents,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// OrderItemModelFromDomain creates a new persistence model from a domain OrderItem.
func OrderItemModelFromDomain(it *ordering.OrderItem) *OrderItemModel {
	return &OrderItemModel{
		ID:             it.ID,
		CreatedAt:      it.CreatedAt,
		UpdatedAt:      it.UpdatedAt,
		OrderID:        it.OrderID,
		ProductID:      it.ProductID,
		ProductName:    it.ProductName,
		Quantity:       it.Quantity,
		UnitPriceCents: it.UnitPriceCents,
		TotalCents:     it.TotalCents,
	}
}
