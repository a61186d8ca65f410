package models

import (
	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/payment"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// PaymentModel is the persistence model for a payment record.
type PaymentModel struct {
	BaseModel
	OrderID               uuid.UUID `gorm:"type:uuid;not null;index"`
	StripePaymentIntentID string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	AmountCents           int64     `gorm:"not null;default:0"`
	Currency              string    `gorm:"type:varchar(3)"`
	Status                string    `gorm:"type:varchar(40)"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *payment.Payment {
	return &payment.Payment{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		OrderID:               m.OrderID,
		StripePaymentIntentID: m.StripePaymentIntentID,
		AmountCents:           m.AmountCents,
		Currency:              m.Currency,
		Status:                m.Status,
	}
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *payment.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomainBaseEntity(p.BaseEntity)
	m.OrderID = p.OrderID
	m.StripePaymentIntentID = p.StripePaymentIntentID
	m.AmountCents = p.AmountCents
	m.Currency = p.Currency
	m.Status = p.Status
	return m
}
