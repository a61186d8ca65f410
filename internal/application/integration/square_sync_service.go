package integration

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/shared"
	"github.com/meatdirect/backend/internal/infrastructure/square"
)

// SquareClient is the slice of the Square API the sync service needs
type SquareClient interface {
	Enabled() bool
	ListCatalog(ctx context.Context) ([]square.CatalogObject, error)
	BatchRetrieveInventoryCounts(ctx context.Context, variationIDs []string) (map[string]int64, error)
	BatchChangeInventoryForSale(ctx context.Context, adjustments []square.InventoryAdjustment, idempotencyKey string) error
}

// SquareSyncService mirrors the Square catalog and inventory into the
// local product table. Each ITEM_VARIATION becomes one product, keyed
// by its variation id; variations that vanish upstream are deactivated.
type SquareSyncService struct {
	client      SquareClient
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewSquareSyncService creates a Square sync service
func NewSquareSyncService(client SquareClient, productRepo catalog.ProductRepository, logger *zap.Logger) *SquareSyncService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SquareSyncService{
		client:      client,
		productRepo: productRepo,
		logger:      logger,
	}
}

// variationMeta is the normalized upstream state of one variation
type variationMeta struct {
	data catalog.SquareVariationData
}

// SyncProducts pulls the Square catalog and upserts products from it
func (s *SquareSyncService) SyncProducts(ctx context.Context) (*SyncResult, error) {
	if !s.client.Enabled() {
		return nil, shared.ErrServiceDisabled
	}

	objects, err := s.client.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list square catalog: %w", err)
	}
	if len(objects) == 0 {
		return &SyncResult{}, nil
	}

	metas := collectVariationMeta(objects)
	if len(metas) == 0 {
		return &SyncResult{}, nil
	}

	variationIDs := make([]string, 0, len(metas))
	for id := range metas {
		variationIDs = append(variationIDs, id)
	}

	counts, err := s.client.BatchRetrieveInventoryCounts(ctx, variationIDs)
	if err != nil {
		// catalog data is still usable without stock levels
		s.logger.Warn("inventory counts unavailable during sync", zap.Error(err))
		counts = nil
	}

	existing, err := s.productRepo.FindBySquareVariationIDs(ctx, variationIDs)
	if err != nil {
		return nil, err
	}
	byVariation := make(map[string]*catalog.Product, len(existing))
	for i := range existing {
		byVariation[existing[i].SquareVariationID] = &existing[i]
	}

	result := &SyncResult{}
	for variationID, meta := range metas {
		product, found := byVariation[variationID]
		if !found {
			product, err = catalog.NewProduct(meta.data.Name,
				catalog.GenerateSlug(meta.data.Name, variationID), meta.data.PriceCents)
			if err != nil {
				s.logger.Warn("skipping unusable square variation",
					zap.String("variation_id", variationID), zap.Error(err))
				continue
			}
			result.Created++
		} else {
			result.Updated++
		}

		product.ApplySquareData(meta.data)
		if qty, ok := counts[variationID]; ok {
			product.UpdateInventory(qty)
		} else {
			product.IsActive = true
		}

		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.DeactivateMissingVariations(ctx, variationIDs); err != nil {
		return nil, err
	}

	s.logger.Info("square catalog synced",
		zap.Int("created", result.Created), zap.Int("updated", result.Updated))
	return result, nil
}

// SyncInventory refreshes cached stock levels for all linked products.
// Variations the counts response omits keep their previous quantity.
func (s *SquareSyncService) SyncInventory(ctx context.Context) (*InventoryResult, error) {
	if !s.client.Enabled() {
		return nil, shared.ErrServiceDisabled
	}

	products, err := s.productRepo.FindAllWithSquareVariation(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return &InventoryResult{}, nil
	}

	variationIDs := make([]string, 0, len(products))
	for i := range products {
		variationIDs = append(variationIDs, products[i].SquareVariationID)
	}

	counts, err := s.client.BatchRetrieveInventoryCounts(ctx, variationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inventory counts: %w", err)
	}

	result := &InventoryResult{}
	for i := range products {
		product := &products[i]
		qty, ok := counts[product.SquareVariationID]
		if !ok {
			result.Skipped++
			continue
		}
		product.UpdateInventory(qty)
		if err := s.productRepo.Save(ctx, product); err != nil {
			return nil, err
		}
		result.Refreshed++
	}
	return result, nil
}

// DecrementInventoryForOrder records the sold quantities in Square and
// then lowers the local stock cache. The local update is best effort.
func (s *SquareSyncService) DecrementInventoryForOrder(ctx context.Context, order *ordering.Order) error {
	if !s.client.Enabled() {
		return nil
	}

	productIDs := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	products, err := s.productRepo.FindByIDs(ctx, productIDs)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		byID[products[i].ID] = &products[i]
	}

	var adjustments []square.InventoryAdjustment
	soldByProduct := make(map[uuid.UUID]int64)
	for _, item := range order.Items {
		product, ok := byID[item.ProductID]
		if !ok || product.SquareVariationID == "" || item.Quantity <= 0 {
			continue
		}
		adjustments = append(adjustments, square.InventoryAdjustment{
			VariationID: product.SquareVariationID,
			Quantity:    item.Quantity,
		})
		soldByProduct[item.ProductID] += item.Quantity
	}
	if len(adjustments) == 0 {
		return nil
	}

	idempotencyKey := fmt.Sprintf("order-%s-sold", order.ID)
	if err := s.client.BatchChangeInventoryForSale(ctx, adjustments, idempotencyKey); err != nil {
		return err
	}

	for productID, qty := range soldByProduct {
		product := byID[productID]
		product.DecrementCachedQuantity(qty)
		if err := s.productRepo.Save(ctx, product); err != nil {
			s.logger.Warn("failed to update cached quantity after sale",
				zap.String("product_id", productID.String()), zap.Error(err))
		}
	}
	return nil
}

// collectVariationMeta flattens the catalog listing into per-variation
// upstream state, resolving image and category references
func collectVariationMeta(objects []square.CatalogObject) map[string]variationMeta {
	imageURLs := make(map[string]string)
	categoryNames := make(map[string]string)
	for _, obj := range objects {
		switch obj.Type {
		case "IMAGE":
			if obj.ImageData != nil && obj.ImageData.URL != "" {
				imageURLs[obj.ID] = obj.ImageData.URL
			}
		case "CATEGORY":
			if obj.CategoryData != nil {
				if name := strings.TrimSpace(obj.CategoryData.Name); name != "" {
					categoryNames[obj.ID] = name
				}
			}
		}
	}

	metas := make(map[string]variationMeta)
	for _, obj := range objects {
		if obj.Type != "ITEM" || obj.IsDeleted || obj.ItemData == nil {
			continue
		}
		itemName := strings.TrimSpace(obj.ItemData.Name)
		description := strings.TrimSpace(obj.ItemData.Description)

		categoryName := ""
		if len(obj.ItemData.Categories) > 0 {
			categoryName = categoryNames[obj.ItemData.Categories[0].ID]
		}

		imageURL := ""
		if len(obj.ItemData.ImageIDs) > 0 {
			imageURL = imageURLs[obj.ItemData.ImageIDs[0]]
		}

		for _, variation := range obj.ItemData.Variations {
			if variation.ID == "" || variation.ItemVariation == nil {
				continue
			}
			data := variation.ItemVariation

			name := itemName
			if vName := strings.TrimSpace(data.Name); vName != "" {
				name = fmt.Sprintf("%s (%s)", itemName, vName)
			}

			var priceCents int64
			if data.PriceMoney != nil {
				priceCents = data.PriceMoney.Amount
			}

			metas[variation.ID] = variationMeta{data: catalog.SquareVariationData{
				ItemID:       obj.ID,
				VariationID:  variation.ID,
				Name:         name,
				PriceCents:   priceCents,
				ImageURL:     imageURL,
				Description:  description,
				CategoryName: categoryName,
			}}
		}
	}
	return metas
}
