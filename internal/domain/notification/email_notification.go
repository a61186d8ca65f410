package notification

import (
	"time"

	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/shared"
)

// NotificationKind identifies what an email notification is about
type NotificationKind string

const (
	KindOrderReceipt      NotificationKind = "order_receipt"
	KindOrderStatusUpdate NotificationKind = "order_status_update"
)

// NotificationStatus is the delivery outcome of one attempt
type NotificationStatus string

const (
	StatusPending NotificationStatus = "pending"
	StatusSent    NotificationStatus = "sent"
	StatusFailed  NotificationStatus = "failed"
)

// IsValid checks if the status is a valid NotificationStatus
func (s NotificationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusSent, StatusFailed:
		return true
	}
	return false
}

// EmailNotification is an append-only log row recording one email
// attempt and its outcome. The only mutation after creation is
// attaching the generated receipt PDF to a sent receipt.
type EmailNotification struct {
	shared.BaseEntity
	OrderID    uuid.UUID
	Kind       NotificationKind
	ToEmail    string
	Subject    string
	Status     NotificationStatus
	MessageID  string
	Error      string
	SentAt     *time.Time
	ReceiptPDF []byte
}

// NewSentNotification records a successful delivery
func NewSentNotification(orderID uuid.UUID, kind NotificationKind, toEmail, subject, messageID string) *EmailNotification {
	now := time.Now()
	return &EmailNotification{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Kind:       kind,
		ToEmail:    toEmail,
		Subject:    subject,
		Status:     StatusSent,
		MessageID:  messageID,
		SentAt:     &now,
	}
}

// NewFailedNotification records a delivery that did not happen
func NewFailedNotification(orderID uuid.UUID, kind NotificationKind, toEmail, subject, errText string) *EmailNotification {
	return &EmailNotification{
		BaseEntity: shared.NewBaseEntity(),
		OrderID:    orderID,
		Kind:       kind,
		ToEmail:    toEmail,
		Subject:    subject,
		Status:     StatusFailed,
		Error:      errText,
	}
}

// AttachReceiptPDF stores the generated receipt on a sent notification
func (n *EmailNotification) AttachReceiptPDF(pdf []byte) {
	n.ReceiptPDF = pdf
	n.Touch()
}
