package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/infrastructure/persistence/models"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	model := models.ProductModelFromDomain(product)
	return r.db.WithContext(ctx).Save(model).Error
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds products by a set of IDs
func (r *GormProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.Product, error) {
	if len(ids) == 0 {
		return []catalog.Product{}, nil
	}
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// FindBySlug finds a product by its slug
func (r *GormProductRepository) FindBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Slug cannot be empty")
	}
	var model models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll lists products matching the filter, name-ordered
func (r *GormProductRepository) FindAll(ctx context.Context, filter catalog.ProductFilter) ([]catalog.Product, error) {
	var productModels []models.ProductModel
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.Category != "" {
		query = query.Where("LOWER(category) = ?", strings.ToLower(filter.Category))
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", pattern, pattern)
	}

	if err := query.Order("name ASC").Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// FindBySquareVariationIDs finds products by their Square variation ids
func (r *GormProductRepository) FindBySquareVariationIDs(ctx context.Context, variationIDs []string) ([]catalog.Product, error) {
	if len(variationIDs) == 0 {
		return []catalog.Product{}, nil
	}
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("square_variation_id IN ?", variationIDs).
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// FindAllWithSquareVariation lists every product linked to a Square variation
func (r *GormProductRepository) FindAllWithSquareVariation(ctx context.Context) ([]catalog.Product, error) {
	var productModels []models.ProductModel
	if err := r.db.WithContext(ctx).
		Where("square_variation_id <> ''").
		Find(&productModels).Error; err != nil {
		return nil, err
	}
	return toDomainProducts(productModels), nil
}

// DeactivateMissingVariations deactivates products whose Square variation id
// is set but missing from the seen set
func (r *GormProductRepository) DeactivateMissingVariations(ctx context.Context, seenVariationIDs []string) error {
	query := r.db.WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("square_variation_id <> ''")
	if len(seenVariationIDs) > 0 {
		query = query.Where("square_variation_id NOT IN ?", seenVariationIDs)
	}
	return query.Update("is_active", false).Error
}

func toDomainProducts(productModels []models.ProductModel) []catalog.Product {
	products := make([]catalog.Product, len(productModels))
	for i := range productModels {
		products[i] = *productModels[i].ToDomain()
	}
	return products
}

// GormStorefrontSettingsRepository implements StorefrontSettingsRepository using GORM
type GormStorefrontSettingsRepository struct {
	db *gorm.DB
}

// NewGormStorefrontSettingsRepository creates a new GormStorefrontSettingsRepository
func NewGormStorefrontSettingsRepository(db *gorm.DB) *GormStorefrontSettingsRepository {
	return &GormStorefrontSettingsRepository{db: db}
}

// Get returns the settings row, or nil when none exists yet
func (r *GormStorefrontSettingsRepository) Get(ctx context.Context) (*catalog.StorefrontSettings, error) {
	var model models.StorefrontSettingsModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates the settings row
func (r *GormStorefrontSettingsRepository) Save(ctx context.Context, settings *catalog.StorefrontSettings) error {
	model := models.StorefrontSettingsModelFromDomain(settings)
	return r.db.WithContext(ctx).Save(model).Error
}
