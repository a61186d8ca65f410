package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/meatdirect/backend/internal/application/catalog"
)

// CatalogHandler serves the public product catalog and storefront settings
type CatalogHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(productService *catalogapp.ProductService) *CatalogHandler {
	return &CatalogHandler{productService: productService}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.ListProducts)
	rg.GET("/products/:slug", h.GetProduct)
	rg.GET("/storefront-settings", h.GetStorefrontSettings)
}

// ListProducts handles GET /products
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.List(c.Request.Context(), catalogapp.ProductListFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// GetProduct handles GET /products/:slug
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// GetStorefrontSettings handles GET /storefront-settings
func (h *CatalogHandler) GetStorefrontSettings(c *gin.Context) {
	settings, err := h.productService.GetSettings(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, settings)
}
