package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductFilter narrows product listings
type ProductFilter struct {
	// Category filters by exact category, case-insensitive
	Category string
	// Search matches a substring of name or category, case-insensitive
	Search string
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindByIDs finds products by a set of IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)

	// FindBySlug finds a product by its slug
	FindBySlug(ctx context.Context, slug string) (*Product, error)

	// FindAll lists products matching the filter, name-ordered
	FindAll(ctx context.Context, filter ProductFilter) ([]Product, error)

	// FindBySquareVariationIDs finds products by their Square variation ids
	FindBySquareVariationIDs(ctx context.Context, variationIDs []string) ([]Product, error)

	// FindAllWithSquareVariation lists every product linked to a Square variation
	FindAllWithSquareVariation(ctx context.Context) ([]Product, error)

	// DeactivateMissingVariations deactivates products whose Square
	// variation id is set but not in the seen set
	DeactivateMissingVariations(ctx context.Context, seenVariationIDs []string) error
}

// StorefrontSettingsRepository reads and writes the single settings row
type StorefrontSettingsRepository interface {
	// Get returns the settings row, or nil when none exists yet
	Get(ctx context.Context) (*StorefrontSettings, error)

	// Save creates or updates the settings row
	Save(ctx context.Context, settings *StorefrontSettings) error
}
