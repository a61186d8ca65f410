package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/meatdirect/backend/internal/domain/contact"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// MockQuoteRequestRepository is a mock implementation of QuoteRequestRepository
type MockQuoteRequestRepository struct {
	mock.Mock
}

func (m *MockQuoteRequestRepository) Save(ctx context.Context, quote *contact.QuoteRequest) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

// MockContactMessageRepository is a mock implementation of ContactMessageRepository
type MockContactMessageRepository struct {
	mock.Mock
}

func (m *MockContactMessageRepository) Save(ctx context.Context, message *contact.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// MockTeamNotifier is a mock team notifier
type MockTeamNotifier struct {
	mock.Mock
}

func (m *MockTeamNotifier) NotifyQuoteRequest(ctx context.Context, req *contact.QuoteRequest) {
	m.Called(ctx, req)
}

func (m *MockTeamNotifier) NotifyContactMessage(ctx context.Context, msg *contact.ContactMessage) {
	m.Called(ctx, msg)
}

func TestService_SubmitQuote(t *testing.T) {
	quotes := new(MockQuoteRequestRepository)
	messages := new(MockContactMessageRepository)
	notifier := new(MockTeamNotifier)
	svc := NewService(quotes, messages, notifier, nil)

	quotes.On("Save", mock.Anything, mock.MatchedBy(func(q *contact.QuoteRequest) bool {
		return q.Name == "Pat Smith" && q.Fulfillment == "delivery"
	})).Return(nil)
	notifier.On("NotifyQuoteRequest", mock.Anything, mock.Anything).Return()

	resp, err := svc.SubmitQuote(context.Background(), QuoteRequestRequest{
		Name:        "Pat Smith",
		Phone:       "7805551234",
		Email:       "pat@example.com",
		Address:     "12 Main St, St. Albert",
		Fulfillment: "delivery",
		Message:     "Looking for a quarter beef.",
	})

	require.NoError(t, err)
	assert.Equal(t, "received", resp.Status)
	assert.NotEmpty(t, resp.ID)
	quotes.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestService_SubmitQuote_Invalid(t *testing.T) {
	quotes := new(MockQuoteRequestRepository)
	messages := new(MockContactMessageRepository)
	svc := NewService(quotes, messages, nil, nil)

	_, err := svc.SubmitQuote(context.Background(), QuoteRequestRequest{Phone: "780"})

	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	quotes.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_SubmitMessage(t *testing.T) {
	quotes := new(MockQuoteRequestRepository)
	messages := new(MockContactMessageRepository)
	notifier := new(MockTeamNotifier)
	svc := NewService(quotes, messages, notifier, nil)

	messages.On("Save", mock.Anything, mock.MatchedBy(func(m *contact.ContactMessage) bool {
		return m.Name == "Dana Lee" && m.Message == "Do you carry goat?"
	})).Return(nil)
	notifier.On("NotifyContactMessage", mock.Anything, mock.Anything).Return()

	resp, err := svc.SubmitMessage(context.Background(), ContactMessageRequest{
		Name:    "Dana Lee",
		Email:   "dana@example.com",
		Message: "Do you carry goat?",
	})

	require.NoError(t, err)
	assert.Equal(t, "received", resp.Status)
	messages.AssertExpectations(t)
	notifier.AssertExpectations(t)
}
