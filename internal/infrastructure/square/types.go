package square

// CatalogObject is one entry from the Square catalog listing.
// Only the fields the sync reads are mapped.
type CatalogObject struct {
	Type          string             `json:"type"`
	ID            string             `json:"id"`
	IsDeleted     bool               `json:"is_deleted,omitempty"`
	ItemData      *CatalogItemData   `json:"item_data,omitempty"`
	ImageData     *CatalogImageData  `json:"image_data,omitempty"`
	CategoryData  *CategoryData      `json:"category_data,omitempty"`
	ItemVariation *ItemVariationData `json:"item_variation_data,omitempty"`
}

// CatalogItemData carries the sellable item attributes
type CatalogItemData struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	ImageIDs    []string        `json:"image_ids,omitempty"`
	Categories  []CategoryRef   `json:"categories,omitempty"`
	Variations  []CatalogObject `json:"variations,omitempty"`
}

// CategoryRef links an item to a category object
type CategoryRef struct {
	ID string `json:"id"`
}

// CatalogImageData carries a hosted image URL
type CatalogImageData struct {
	URL string `json:"url"`
}

// CategoryData carries a category name
type CategoryData struct {
	Name string `json:"name"`
}

// ItemVariationData carries the purchasable variation attributes
type ItemVariationData struct {
	ItemID     string `json:"item_id"`
	Name       string `json:"name"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

// Money is a Square money amount in the currency's smallest unit
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type listCatalogResponse struct {
	Objects []CatalogObject `json:"objects"`
	Cursor  string          `json:"cursor"`
}

type batchRetrieveCountsRequest struct {
	CatalogObjectIDs []string `json:"catalog_object_ids"`
	LocationIDs      []string `json:"location_ids"`
	States           []string `json:"states"`
}

type inventoryCount struct {
	CatalogObjectID string `json:"catalog_object_id"`
	LocationID      string `json:"location_id"`
	State           string `json:"state"`
	Quantity        string `json:"quantity"`
}

type batchRetrieveCountsResponse struct {
	Counts []inventoryCount `json:"counts"`
	Cursor string           `json:"cursor"`
}

// InventoryAdjustment moves stock between inventory states
type InventoryAdjustment struct {
	VariationID string
	Quantity    int64
}

type inventoryChange struct {
	Type       string               `json:"type"`
	Adjustment *inventoryAdjustment `json:"adjustment,omitempty"`
}

type inventoryAdjustment struct {
	FromState       string `json:"from_state"`
	ToState         string `json:"to_state"`
	LocationID      string `json:"location_id"`
	CatalogObjectID string `json:"catalog_object_id"`
	Quantity        string `json:"quantity"`
	OccurredAt      string `json:"occurred_at"`
}

type batchChangeRequest struct {
	IdempotencyKey string            `json:"idempotency_key"`
	Changes        []inventoryChange `json:"changes"`
}
