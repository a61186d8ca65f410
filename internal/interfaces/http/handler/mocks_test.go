package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v81"
	"github.com/stretchr/testify/mock"

	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/contact"
	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/payment"
	"github.com/meatdirect/backend/internal/domain/wholesale"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySquareVariationIDs(ctx context.Context, variationIDs []string) ([]catalog.Product, error) {
	args := m.Called(ctx, variationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllWithSquareVariation(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) DeactivateMissingVariations(ctx context.Context, seenVariationIDs []string) error {
	args := m.Called(ctx, seenVariationIDs)
	return args.Error(0)
}

// MockSettingsRepository is a mock implementation of StorefrontSettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Save(ctx context.Context, settings *catalog.StorefrontSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) Get(ctx context.Context) (*catalog.StorefrontSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.StorefrontSettings), args.Error(1)
}

// MockOrderRepository is a mock implementation of OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (*ordering.Order, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ordering.Order), args.Error(1)
}

func (m *MockOrderRepository) FindRecent(ctx context.Context, limit int) ([]ordering.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ordering.Order), args.Error(1)
}

// MockGateway is a mock payment gateway
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreatePaymentIntent(ctx context.Context, req payment.IntentRequest) (*payment.Intent, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Intent), args.Error(1)
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	args := m.Called(ctx, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]payment.Payment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]payment.Payment), args.Error(1)
}

// MockVerifier is a mock webhook verifier
type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(payload []byte, signature string) (*stripeapi.Event, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripeapi.Event), args.Error(1)
}

// MockAccessKeyRepository is a mock implementation of AccessKeyRepository
type MockAccessKeyRepository struct {
	mock.Mock
}

func (m *MockAccessKeyRepository) Save(ctx context.Context, key *wholesale.AccessKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockAccessKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*wholesale.AccessKey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wholesale.AccessKey), args.Error(1)
}

func (m *MockAccessKeyRepository) FindActive(ctx context.Context, now time.Time) ([]wholesale.AccessKey, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wholesale.AccessKey), args.Error(1)
}

// MockAccessRequestRepository is a mock implementation of AccessRequestRepository
type MockAccessRequestRepository struct {
	mock.Mock
}

func (m *MockAccessRequestRepository) Save(ctx context.Context, request *wholesale.AccessRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockAccessRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*wholesale.AccessRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wholesale.AccessRequest), args.Error(1)
}

func (m *MockAccessRequestRepository) FindByStatus(ctx context.Context, status wholesale.RequestStatus) ([]wholesale.AccessRequest, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wholesale.AccessRequest), args.Error(1)
}

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
