package catalog

import (
	"github.com/meatdirect/backend/internal/domain/shared"
)

// Product is one sellable variation of the catalog. Products synced
// from Square carry the upstream item and variation ids plus a cached
// stock quantity.
type Product struct {
	shared.BaseAggregateRoot
	Name         string
	Slug         string
	Description  string
	PriceCents   int64
	ImageURL     string
	MainImageURL string
	Category     string
	IsActive     bool
	IsPopular    bool

	SquareItemID      string
	SquareVariationID string
	SquareQuantity    int64
}

// NewProduct creates a new active product
func NewProduct(name, slug string, priceCents int64) (*Product, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if slug == "" {
		return nil, shared.NewDomainError("INVALID_SLUG", "Product slug cannot be empty")
	}
	if priceCents < 0 {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Slug:              slug,
		PriceCents:        priceCents,
		IsActive:          true,
	}, nil
}

// SquareVariationData is the upstream state of one catalog variation
type SquareVariationData struct {
	ItemID       string
	VariationID  string
	Name         string
	PriceCents   int64
	ImageURL     string
	Description  string
	CategoryName string
}

// ApplySquareData overwrites the synced fields from upstream catalog data
func (p *Product) ApplySquareData(data SquareVariationData) {
	p.Name = data.Name
	p.PriceCents = data.PriceCents
	p.SquareItemID = data.ItemID
	p.SquareVariationID = data.VariationID
	p.ImageURL = data.ImageURL
	p.MainImageURL = data.ImageURL
	p.Description = data.Description
	p.Category = data.CategoryName
	p.Touch()
}

// UpdateInventory refreshes the cached quantity. A product with no
// stock is taken off sale.
func (p *Product) UpdateInventory(quantity int64) {
	p.SquareQuantity = quantity
	p.IsActive = quantity > 0
	p.Touch()
}

// DecrementCachedQuantity reduces the local stock cache after a sale,
// never below zero, deactivating the product when it runs out
func (p *Product) DecrementCachedQuantity(quantity int64) {
	remaining := p.SquareQuantity - quantity
	if remaining < 0 {
		remaining = 0
	}
	p.SquareQuantity = remaining
	if remaining <= 0 {
		p.IsActive = false
	}
	p.Touch()
}

// Deactivate takes the product off sale
func (p *Product) Deactivate() {
	p.IsActive = false
	p.Touch()
}
