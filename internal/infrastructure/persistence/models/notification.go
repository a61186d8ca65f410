package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/notification"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// EmailNotificationModel is the persistence model for an email notification record.
type EmailNotificationModel struct {
	BaseModel
	OrderID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Kind       string     `gorm:"type:varchar(30);not null;index"`
	ToEmail    string     `gorm:"type:varchar(254)"`
	Subject    string     `gorm:"type:varchar(255)"`
	Status     string     `gorm:"type:varchar(20);not null;default:'pending'"`
	MessageID  string     `gorm:"type:varchar(255)"`
	Error      string     `gorm:"type:text"`
	SentAt     *time.Time `gorm:"index"`
	ReceiptPDF []byte     `gorm:"type:bytea"`
}

// TableName returns the table name for GORM
func (EmailNotificationModel) TableName() string {
	return "email_notifications"
}

// ToDomain converts the persistence model to a domain EmailNotification.
func (m *EmailNotificationModel) ToDomain() *notification.EmailNotification {
	return &notification.EmailNotification{
		BaseEntity: shared.BaseEntity{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
		OrderID:    m.OrderID,
		Kind:       notification.NotificationKind(m.Kind),
		ToEmail:    m.ToEmail,
		Subject:    m.Subject,
		Status:     notification.NotificationStatus(m.Status),
		MessageID:  m.MessageID,
		Error:      m.Error,
		SentAt:     m.SentAt,
		ReceiptPDF: m.ReceiptPDF,
	}
}

// EmailNotificationModelFromDomain creates a new persistence model from a domain EmailNotification.
func EmailNotificationModelFromDomain(n *notification.EmailNotification) *EmailNotificationModel {
	m := &EmailNotificationModel{}
	m.FromDomainBaseEntity(n.BaseEntity)
	m.OrderID = n.OrderID
	m.Kind = string(n.Kind)
	m.ToEmail = n.ToEmail
	m.Subject = n.Subject
	m.Status = string(n.Status)
	m.MessageID = n.MessageID
	m.Error = n.Error
	m.SentAt = n.SentAt
	m.ReceiptPDF = n.ReceiptPDF
	return m
}
