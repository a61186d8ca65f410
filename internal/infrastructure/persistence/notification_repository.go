package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/notification"
	"github.com/meatdirect/backend/internal/infrastructure/persistence/models"
)

// GormEmailNotificationRepository implements EmailNotificationRepository using GORM
type GormEmailNotificationRepository struct {
	db *gorm.DB
}

// NewGormEmailNotificationRepository creates a new GormEmailNotificationRepository
func NewGormEmailNotificationRepository(db *gorm.DB) *GormEmailNotificationRepository {
	return &GormEmailNotificationRepository{db: db}
}

// Save creates or updates a notification row
func (r *GormEmailNotificationRepository) Save(ctx context.Context, n *notification.EmailNotification) error {
	model := models.EmailNotificationModelFromDomain(n)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindLatestSentReceipt returns the most recent sent receipt for an order,
// or nil when no receipt went out yet
func (r *GormEmailNotificationRepository) FindLatestSentReceipt(ctx context.Context, orderID uuid.UUID) (*notification.EmailNotification, error) {
	var model models.EmailNotificationModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ? AND kind = ? AND status = ?",
			orderID, string(notification.KindOrderReceipt), string(notification.StatusSent)).
		Order("sent_at DESC, created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOrder lists all notification rows for an order, newest first
func (r *GormEmailNotificationRepository) FindByOrder(ctx context.Context, orderID uuid.UUID) ([]notification.EmailNotification, error) {
	var notificationModels []models.EmailNotificationModel
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&notificationModels).Error; err != nil {
		return nil, err
	}

	notifications := make([]notification.EmailNotification, len(notificationModels))
	for i := range notificationModels {
		notifications[i] = *notificationModels[i].ToDomain()
	}
	return notifications, nil
}
