package contact

import "context"

// QuoteRequestRepository defines the interface for quote request persistence
type QuoteRequestRepository interface {
	// Save creates a quote request
	Save(ctx context.Context, quote *QuoteRequest) error
}

// ContactMessageRepository defines the interface for contact message persistence
type ContactMessageRepository interface {
	// Save creates a contact message
	Save(ctx context.Context, message *ContactMessage) error
}
