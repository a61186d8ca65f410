package models

import (
	"github.com/meatdirect/backend/internal/domain/contact"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// QuoteRequestModel is the persistence model for a quote request.
type QuoteRequestModel struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null"`
	Phone       string `gorm:"type:varchar(32);not null"`
	Email       string `gorm:"type:varchar(254);not null"`
	Address     string `gorm:"type:varchar(255);not null"`
	Fulfillment string `gorm:"type:varchar(20)"`
	Message     string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (QuoteRequestModel) TableName() string {
	return "quote_requests"
}

// ToDomain converts the persistence model to a domain QuoteRequest.
func (m *QuoteRequestModel) ToDomain() *contact.QuoteRequest {
	return &contact.QuoteRequest{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:        m.Name,
		Phone:       m.Phone,
		Email:       m.Email,
		Address:     m.Address,
		Fulfillment: m.Fulfillment,
		Message:     m.Message,
	}
}

// QuoteRequestModelFromDomain creates a new persistence model from a domain QuoteRequest.
func QuoteRequestModelFromDomain(q *contact.QuoteRequest) *QuoteRequestModel {
	m := &QuoteRequestModel{}
	m.FromDomainBaseEntity(q.BaseEntity)
	m.Name = q.Name
	m.Phone = q.Phone
	m.Email = q.Email
	m.Address = q.Address
	m.Fulfillment = q.Fulfillment
	m.Message = q.Message
	return m
}

// ContactMessageModel is the persistence model for a contact message.
type ContactMessageModel struct {
	BaseModel
	Name    string `gorm:"type:varchar(200);not null"`
	Email   string `gorm:"type:varchar(254);not null"`
	Phone   string `gorm:"type:varchar(32)"`
	Message string `gorm:"type:text;not null"`
}

// TableName returns the table name for GORM
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// ToDomain converts the persistence model to a domain ContactMessage.
func (m *ContactMessageModel) ToDomain() *contact.ContactMessage {
	return &contact.ContactMessage{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		Name:    m.Name,
		Email:   m.Email,
		Phone:   m.Phone,
		Message: m.Message,
	}
}

// ContactMessageModelFromDomain creates a new persistence model from a domain ContactMessage.
func ContactMessageModelFromDomain(c *contact.ContactMessage) *ContactMessageModel {
	m := &ContactMessageModel{}
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.Message = c.Message
	return m
}
