package square

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/infrastructure/config"
)

func newTestClient(serverURL string) *Client {
	cfg := &config.SquareConfig{
		AccessToken: "test-token",
		Environment: "sandbox",
		LocationID:  "LOC1",
		APIVersion:  "2024-07-17",
	}
	client := NewClient(cfg, zap.NewNop())
	client.baseURL = serverURL
	return client
}

func TestClient_ListCatalog_Pagination(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "/v2/catalog/list", r.URL.Path)
		assert.Equal(t, "ITEM,IMAGE,CATEGORY", r.URL.Query().Get("types"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-07-17", r.Header.Get("Square-Version"))

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("cursor") == "" {
			_ = json.NewEncoder(w).Encode(listCatalogResponse{
				Objects: []CatalogObject{{Type: "ITEM", ID: "ITEM1"}},
				Cursor:  "next-page",
			})
			return
		}
		assert.Equal(t, "next-page", r.URL.Query().Get("cursor"))
		_ = json.NewEncoder(w).Encode(listCatalogResponse{
			Objects: []CatalogObject{{Type: "IMAGE", ID: "IMG1"}},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	objects, err := client.ListCatalog(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, objects, 2)
	assert.Equal(t, "ITEM1", objects[0].ID)
	assert.Equal(t, "IMG1", objects[1].ID)
}

func TestClient_ListCatalog_DisabledWithoutToken(t *testing.T) {
	client := NewClient(&config.SquareConfig{}, zap.NewNop())

	objects, err := client.ListCatalog(context.Background())

	require.NoError(t, err)
	assert.Nil(t, objects)
}

func TestClient_BatchRetrieveInventoryCounts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/inventory/counts/batch-retrieve", r.URL.Path)

		var req batchRetrieveCountsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"VAR1", "VAR2"}, req.CatalogObjectIDs)
		assert.Equal(t, []string{"LOC1"}, req.LocationIDs)
		assert.Equal(t, []string{"IN_STOCK"}, req.States)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(batchRetrieveCountsResponse{
			Counts: []inventoryCount{
				{CatalogObjectID: "VAR1", LocationID: "LOC1", State: "IN_STOCK", Quantity: "7"},
				{CatalogObjectID: "VAR2", LocationID: "OTHER", State: "IN_STOCK", Quantity: "3"},
				{CatalogObjectID: "VAR2", LocationID: "LOC1", State: "SOLD", Quantity: "2"},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	counts, err := client.BatchRetrieveInventoryCounts(context.Background(), []string{"VAR1", "VAR2"})

	require.NoError(t, err)
	// Counts from other locations or states are ignored
	assert.Equal(t, map[string]int64{"VAR1": 7}, counts)
}

func TestClient_BatchChangeInventoryForSale(t *testing.T) {
	var received batchChangeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/inventory/changes/batch-create", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	err := client.BatchChangeInventoryForSale(context.Background(), []InventoryAdjustment{
		{VariationID: "VAR1", Quantity: 2},
		{VariationID: "", Quantity: 5},
		{VariationID: "VAR2", Quantity: 0},
	}, "order-abc-sold")

	require.NoError(t, err)
	assert.Equal(t, "order-abc-sold", received.IdempotencyKey)
	require.Len(t, received.Changes, 1)
	change := received.Changes[0]
	assert.Equal(t, "ADJUSTMENT", change.Type)
	require.NotNil(t, change.Adjustment)
	assert.Equal(t, "IN_STOCK", change.Adjustment.FromState)
	assert.Equal(t, "SOLD", change.Adjustment.ToState)
	assert.Equal(t, "VAR1", change.Adjustment.CatalogObjectID)
	assert.Equal(t, "2", change.Adjustment.Quantity)
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"category":"AUTHENTICATION_ERROR"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.ListCatalog(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}
