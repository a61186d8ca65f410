package catalog

import (
	"context"

	"github.com/meatdirect/backend/internal/domain/catalog"
)

// ProductService serves the public storefront catalog
type ProductService struct {
	productRepo  catalog.ProductRepository
	settingsRepo catalog.StorefrontSettingsRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository, settingsRepo catalog.StorefrontSettingsRepository) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
	}
}

// List returns active products matching the filter
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) ([]ProductResponse, error) {
	products, err := s.productRepo.FindAll(ctx, catalog.ProductFilter{
		Category: filter.Category,
		Search:   filter.Search,
	})
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(products))
	for i := range products {
		if !products[i].IsActive {
			continue
		}
		responses = append(responses, ToProductResponse(&products[i]))
	}
	return responses, nil
}

// GetBySlug returns one product by its slug
func (s *ProductService) GetBySlug(ctx context.Context, slug string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetSettings returns the storefront settings, zero-valued when unset
func (s *ProductService) GetSettings(ctx context.Context) (*StorefrontSettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	response := &StorefrontSettingsResponse{}
	if settings != nil {
		response.LargeCutsCategory = settings.LargeCutsCategory
	}
	return response, nil
}
