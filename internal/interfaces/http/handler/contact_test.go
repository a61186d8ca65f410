package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	contactapp "github.com/meatdirect/backend/internal/application/contact"
	"github.com/meatdirect/backend/internal/domain/contact"
)

type noopTeamNotifier struct{}

func (noopTeamNotifier) NotifyQuoteRequest(ctx context.Context, req *contact.QuoteRequest) {}

func (noopTeamNotifier) NotifyContactMessage(ctx context.Context, msg *contact.ContactMessage) {}

func setupContactRouter(quotes *MockQuoteRequestRepository, messages *MockContactMessageRepository) *gin.Engine {
	service := contactapp.NewService(quotes, messages, noopTeamNotifier{}, nil)
	engine := gin.New()
	NewContactHandler(service).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestContactHandler_SubmitMessage(t *testing.T) {
	messages := new(MockContactMessageRepository)
	messages.On("Save", mock.Anything, mock.Anything).Return(nil)
	engine := setupContactRouter(new(MockQuoteRequestRepository), messages)

	w := postJSON(engine, "/api/v1/contact", `{
		"name": "Pat Doe",
		"email": "pat@example.com",
		"message": "Do you carry bison?"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"received"`)
	messages.AssertExpectations(t)
}

func TestContactHandler_SubmitMessage_MissingFields(t *testing.T) {
	messages := new(MockContactMessageRepository)
	engine := setupContactRouter(new(MockQuoteRequestRepository), messages)

	w := postJSON(engine, "/api/v1/contact", `{"name": "Pat Doe"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	messages.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestContactHandler_SubmitQuote(t *testing.T) {
	quotes := new(MockQuoteRequestRepository)
	quotes.On("Save", mock.Anything, mock.Anything).Return(nil)
	engine := setupContactRouter(quotes, new(MockContactMessageRepository))

	w := postJSON(engine, "/api/v1/quote-request", `{
		"name": "Pat Doe",
		"phone": "780-555-0100",
		"email": "pat@example.com",
		"fulfillment": "delivery",
		"message": "Quarter beef for a freezer"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"received"`)
	quotes.AssertExpectations(t)
}
