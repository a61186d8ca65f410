package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/infrastructure/config"
)

const (
	// maxResponseSize caps response bodies read from the Square API
	maxResponseSize = 10 * 1024 * 1024

	// countChunkSize is the largest id batch one counts request may carry
	countChunkSize = 100
)

// Client is a thin wrapper over the Square REST API covering the catalog
// and inventory endpoints the storefront sync needs
type Client struct {
	config     *config.SquareConfig
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new Square API client
func NewClient(cfg *config.SquareConfig, logger *zap.Logger) *Client {
	return &Client{
		config:  cfg,
		baseURL: cfg.BaseURL(),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Enabled reports whether the client holds credentials to talk to Square
func (c *Client) Enabled() bool {
	return c.config.Enabled()
}

// ListCatalog pages through the full catalog listing, returning ITEM,
// IMAGE and CATEGORY objects
func (c *Client) ListCatalog(ctx context.Context) ([]CatalogObject, error) {
	if !c.config.Enabled() {
		return nil, nil
	}

	objects := make([]CatalogObject, 0)
	cursor := ""

	for {
		params := url.Values{}
		params.Set("types", "ITEM,IMAGE,CATEGORY")
		if cursor != "" {
			params.Set("cursor", cursor)
		}

		body, err := c.get(ctx, "/v2/catalog/list?"+params.Encode())
		if err != nil {
			return nil, err
		}

		var page listCatalogResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("square: failed to parse catalog response: %w", err)
		}

		objects = append(objects, page.Objects...)
		cursor = page.Cursor
		if cursor == "" {
			break
		}
	}

	return objects, nil
}

// BatchRetrieveInventoryCounts fetches IN_STOCK quantities for the given
// variation ids at the configured location
func (c *Client) BatchRetrieveInventoryCounts(ctx context.Context, variationIDs []string) (map[string]int64, error) {
	counts := make(map[string]int64)
	if !c.config.Enabled() || c.config.LocationID == "" || len(variationIDs) == 0 {
		return counts, nil
	}

	for start := 0; start < len(variationIDs); start += countChunkSize {
		end := start + countChunkSize
		if end > len(variationIDs) {
			end = len(variationIDs)
		}

		reqBody := batchRetrieveCountsRequest{
			CatalogObjectIDs: variationIDs[start:end],
			LocationIDs:      []string{c.config.LocationID},
			States:           []string{"IN_STOCK"},
		}

		body, err := c.post(ctx, "/v2/inventory/counts/batch-retrieve", reqBody)
		if err != nil {
			return nil, err
		}

		var page batchRetrieveCountsResponse
		if err := json.Unmarshal(body, &page); err != nil {
			return nil, fmt.Errorf("square: failed to parse counts response: %w", err)
		}

		for _, count := range page.Counts {
			if count.LocationID != c.config.LocationID || count.State != "IN_STOCK" {
				continue
			}
			if count.CatalogObjectID == "" {
				continue
			}
			qty, err := strconv.ParseInt(count.Quantity, 10, 64)
			if err != nil {
				qty = 0
			}
			counts[count.CatalogObjectID] = qty
		}
	}

	return counts, nil
}

// BatchChangeInventoryForSale records IN_STOCK to SOLD adjustments for the
// given variations. The idempotency key keeps webhook replays from double
// counting a sale.
func (c *Client) BatchChangeInventoryForSale(ctx context.Context, adjustments []InventoryAdjustment, idempotencyKey string) error {
	if !c.config.Enabled() || c.config.LocationID == "" || len(adjustments) == 0 {
		return nil
	}

	occurredAt := time.Now().UTC().Format(time.RFC3339)
	changes := make([]inventoryChange, 0, len(adjustments))
	for _, adj := range adjustments {
		if adj.VariationID == "" || adj.Quantity <= 0 {
			continue
		}
		changes = append(changes, inventoryChange{
			Type: "ADJUSTMENT",
			Adjustment: &inventoryAdjustment{
				FromState:       "IN_STOCK",
				ToState:         "SOLD",
				LocationID:      c.config.LocationID,
				CatalogObjectID: adj.VariationID,
				Quantity:        strconv.FormatInt(adj.Quantity, 10),
				OccurredAt:      occurredAt,
			},
		})
	}
	if len(changes) == 0 {
		return nil
	}

	reqBody := batchChangeRequest{
		IdempotencyKey: idempotencyKey,
		Changes:        changes,
	}
	if _, err := c.post(ctx, "/v2/inventory/changes/batch-create", reqBody); err != nil {
		return err
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("square: failed to create request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("square: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("square: failed to create request: %w", err)
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	req.Header.Set("Square-Version", c.config.APIVersion)
	req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("square: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("square: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		c.logger.Error("square API error",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("square: HTTP %d from %s", resp.StatusCode, req.URL.Path)
	}

	return body, nil
}
