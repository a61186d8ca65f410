package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/infrastructure/persistence/models"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Save creates or updates an order together with its line items in one transaction
func (r *GormOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := model.Items
		model.Items = nil
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		for i := range items {
			if err := tx.Save(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID finds an order by ID, items included
func (r *GormOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*ordering.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByPaymentIntentID finds the order holding a payment intent handle
func (r *GormOrderRepository) FindByPaymentIntentID(ctx context.Context, intentID string) (*ordering.Order, error) {
	if intentID == "" {
		return nil, shared.NewDomainError("INVALID_PAYMENT_INTENT", "Payment intent id cannot be empty")
	}
	var model models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("stripe_payment_intent_id = ?", intentID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindRecent lists the most recently created orders
func (r *GormOrderRepository) FindRecent(ctx context.Context, limit int) ([]ordering.Order, error) {
	var orderModels []models.OrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]ordering.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = *orderModels[i].ToDomain()
	}
	return orders, nil
}
