package contact

import (
	"github.com/meatdirect/backend/internal/domain/shared"
)

// QuoteRequest is a custom-order inquiry from the quote form
type QuoteRequest struct {
	shared.BaseEntity
	Name        string
	Phone       string
	Email       string
	Address     string
	Fulfillment string
	Message     string
}

// NewQuoteRequest creates a quote request
func NewQuoteRequest(name, phone, email, address, fulfillment, message string) (*QuoteRequest, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if phone == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if address == "" {
		return nil, shared.NewDomainError("INVALID_ADDRESS", "Address cannot be empty")
	}

	return &QuoteRequest{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        name,
		Phone:       phone,
		Email:       email,
		Address:     address,
		Fulfillment: fulfillment,
		Message:     message,
	}, nil
}

// ContactMessage is a general inquiry from the contact form
type ContactMessage struct {
	shared.BaseEntity
	Name    string
	Email   string
	Phone   string
	Message string
}

// NewContactMessage creates a contact message
func NewContactMessage(name, email, phone, message string) (*ContactMessage, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if message == "" {
		return nil, shared.NewDomainError("INVALID_MESSAGE", "Message cannot be empty")
	}

	return &ContactMessage{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
	}, nil
}
