package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/domain/wholesale"
	"github.com/meatdirect/backend/internal/infrastructure/persistence/models"
)

// GormAccessKeyRepository implements AccessKeyRepository using GORM
type GormAccessKeyRepository struct {
	db *gorm.DB
}

// NewGormAccessKeyRepository creates a new GormAccessKeyRepository
func NewGormAccessKeyRepository(db *gorm.DB) *GormAccessKeyRepository {
	return &GormAccessKeyRepository{db: db}
}

// Save creates or updates an access key
func (r *GormAccessKeyRepository) Save(ctx context.Context, key *wholesale.AccessKey) error {
	model := models.AccessKeyModelFromDomain(key)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a key by its ID
func (r *GormAccessKeyRepository) FindByID(ctx context.Context, id uuid.UUID) (*wholesale.AccessKey, error) {
	var model models.AccessKeyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActive lists active keys whose expiry is unset or after now, newest first
func (r *GormAccessKeyRepository) FindActive(ctx context.Context, now time.Time) ([]wholesale.AccessKey, error) {
	var keyModels []models.AccessKeyModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ? AND (expires_at IS NULL OR expires_at > ?)", true, now).
		Order("created_at DESC").
		Find(&keyModels).Error; err != nil {
		return nil, err
	}

	keys := make([]wholesale.AccessKey, len(keyModels))
	for i := range keyModels {
		keys[i] = *keyModels[i].ToDomain()
	}
	return keys, nil
}

// GormAccessRequestRepository implements AccessRequestRepository using GORM
type GormAccessRequestRepository struct {
	db *gorm.DB
}

// NewGormAccessRequestRepository creates a new GormAccessRequestRepository
func NewGormAccessRequestRepository(db *gorm.DB) *GormAccessRequestRepository {
	return &GormAccessRequestRepository{db: db}
}

// Save creates or updates an access request
func (r *GormAccessRequestRepository) Save(ctx context.Context, request *wholesale.AccessRequest) error {
	model := models.AccessRequestModelFromDomain(request)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a request by its ID
func (r *GormAccessRequestRepository) FindByID(ctx context.Context, id uuid.UUID) (*wholesale.AccessRequest, error) {
	var model models.AccessRequestModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByStatus lists requests in a review state, newest first
func (r *GormAccessRequestRepository) FindByStatus(ctx context.Context, status wholesale.RequestStatus) ([]wholesale.AccessRequest, error) {
	var requestModels []models.AccessRequestModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, err
	}

	requests := make([]wholesale.AccessRequest, len(requestModels))
	for i := range requestModels {
		requests[i] = *requestModels[i].ToDomain()
	}
	return requests, nil
}
