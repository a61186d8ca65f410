package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/payment"
	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/infrastructure/persistence/models"
)

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// Save creates or updates a payment record
func (r *GormPaymentRepository) Save(ctx context.Context, p *payment.Payment) error {
	model := models.PaymentModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByIntentID finds a payment by its processor intent id
func (r *GormPaymentRepository) FindByIntentID(ctx context.Context, intentID string) (*payment.Payment, error) {
	if intentID == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_INTENT", "Payment intent id cannot be empty")
	}
	var model models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("stripe_payment_intent_id = ?", intentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrder lists payments recorded for an order
func (r *GormPaymentRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]payment.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]payment.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = *paymentModels[i].ToDomain()
	}
	return payments, nil
}
