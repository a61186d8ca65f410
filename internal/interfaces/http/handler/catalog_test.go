package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogapp "github.com/meatdirect/backend/internal/application/catalog"
	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/shared"
)

func setupCatalogRouter(products *MockProductRepository, settings *MockSettingsRepository) *gin.Engine {
	engine := gin.New()
	service := catalogapp.NewProductService(products, settings)
	NewCatalogHandler(service).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	products := new(MockProductRepository)
	settings := new(MockSettingsRepository)
	engine := setupCatalogRouter(products, settings)

	active, err := catalog.NewProduct("Ribeye Steak", "ribeye-steak", 2999)
	require.NoError(t, err)
	inactive, err := catalog.NewProduct("Sold Out Roast", "sold-out-roast", 4999)
	require.NoError(t, err)
	inactive.Deactivate()

	products.On("FindAll", mock.Anything, catalog.ProductFilter{Category: "beef"}).
		Return([]catalog.Product{*active, *inactive}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=beef", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool                         `json:"success"`
		Data    []catalogapp.ProductResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "Ribeye Steak", body.Data[0].Name)
}

func TestCatalogHandler_GetProduct_NotFound(t *testing.T) {
	products := new(MockProductRepository)
	settings := new(MockSettingsRepository)
	engine := setupCatalogRouter(products, settings)

	products.On("FindBySlug", mock.Anything, "missing").Return(nil, shared.ErrNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/missing", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogHandler_GetStorefrontSettings(t *testing.T) {
	products := new(MockProductRepository)
	settings := new(MockSettingsRepository)
	engine := setupCatalogRouter(products, settings)

	settings.On("Get", mock.Anything).Return(catalog.NewStorefrontSettings("Large Cuts"), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storefront-settings", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"large_cuts_category":"Large Cuts"`)
}
