package contact

import (
	"context"

	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/contact"
)

// TeamNotifier forwards form submissions to the shop's inboxes
type TeamNotifier interface {
	NotifyQuoteRequest(ctx context.Context, req *contact.QuoteRequest)
	NotifyContactMessage(ctx context.Context, msg *contact.ContactMessage)
}

// Service stores contact and quote form submissions and forwards them
// to the team. Forwarding is best effort; the submission is accepted
// even when the notification email fails.
type Service struct {
	quotes   contact.QuoteRequestRepository
	messages contact.ContactMessageRepository
	notifier TeamNotifier
	logger   *zap.Logger
}

// NewService creates a contact service
func NewService(
	quotes contact.QuoteRequestRepository,
	messages contact.ContactMessageRepository,
	notifier TeamNotifier,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		quotes:   quotes,
		messages: messages,
		notifier: notifier,
		logger:   logger,
	}
}

// SubmitQuote stores a bulk quote request
func (s *Service) SubmitQuote(ctx context.Context, req QuoteRequestRequest) (*SubmissionResponse, error) {
	quote, err := contact.NewQuoteRequest(req.Name, req.Phone, req.Email, req.Address, req.Fulfillment, req.Message)
	if err != nil {
		return nil, err
	}
	if err := s.quotes.Save(ctx, quote); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyQuoteRequest(ctx, quote)
	}

	s.logger.Info("quote request logged",
		zap.String("quote_id", quote.ID.String()),
		zap.String("email", quote.Email),
		zap.String("fulfillment", quote.Fulfillment))
	return &SubmissionResponse{Status: "received", ID: quote.ID.String()}, nil
}

// SubmitMessage stores a contact form message
func (s *Service) SubmitMessage(ctx context.Context, req ContactMessageRequest) (*SubmissionResponse, error) {
	message, err := contact.NewContactMessage(req.Name, req.Email, req.Phone, req.Message)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Save(ctx, message); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyContactMessage(ctx, message)
	}

	s.logger.Info("contact message received",
		zap.String("contact_id", message.ID.String()),
		zap.String("email", message.Email))
	return &SubmissionResponse{Status: "received", ID: message.ID.String()}, nil
}
