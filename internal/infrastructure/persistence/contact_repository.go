package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/contact"
	"github.com/meatdirect/backend/internal/infrastructure/persistence/models"
)

// GormQuoteRequestRepository implements QuoteRequestRepository using GORM
type GormQuoteRequestRepository struct {
	db *gorm.DB
}

// NewGormQuoteRequestRepository creates a new GormQuoteRequestRepository
func NewGormQuoteRequestRepository(db *gorm.DB) *GormQuoteRequestRepository {
	return &GormQuoteRequestRepository{db: db}
}

// Save creates a quote request
func (r *GormQuoteRequestRepository) Save(ctx context.Context, quote *contact.QuoteRequest) error {
	model := models.QuoteRequestModelFromDomain(quote)
	return r.db.WithContext(ctx).Save(model).Error
}

// GormContactMessageRepository implements ContactMessageRepository using GORM
type GormContactMessageRepository struct {
	db *gorm.DB
}

// NewGormContactMessageRepository creates a new GormContactMessageRepository
func NewGormContactMessageRepository(db *gorm.DB) *GormContactMessageRepository {
	return &GormContactMessageRepository{db: db}
}

// Save creates a contact message
func (r *GormContactMessageRepository) Save(ctx context.Context, message *contact.ContactMessage) error {
	model := models.ContactMessageModelFromDomain(message)
	return r.db.WithContext(ctx).Save(model).Error
}
