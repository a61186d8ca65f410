package catalog

import (
	"github.com/google/uuid"

	"github.com/meatdirect/backend/internal/domain/catalog"
)

// ProductResponse is the public product representation
type ProductResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	PriceCents     int64     `json:"price_cents"`
	ImageURL       string    `json:"image_url"`
	MainImageURL   string    `json:"main_image_url"`
	Category       string    `json:"category"`
	IsActive       bool      `json:"is_active"`
	IsPopular      bool      `json:"is_popular"`
	SquareQuantity int64     `json:"square_quantity"`
}

// ToProductResponse converts a domain product to its public representation
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Slug:           p.Slug,
		Description:    p.Description,
		PriceCents:     p.PriceCents,
		ImageURL:       p.ImageURL,
		MainImageURL:   p.MainImageURL,
		Category:       p.Category,
		IsActive:       p.IsActive,
		IsPopular:      p.IsPopular,
		SquareQuantity: p.SquareQuantity,
	}
}

// ProductListFilter narrows the public product listing
type ProductListFilter struct {
	Category string
	Search   string
}

// StorefrontSettingsResponse is the public settings representation
type StorefrontSettingsResponse struct {
	LargeCutsCategory string `json:"large_cuts_category"`
}
