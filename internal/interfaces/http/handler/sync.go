package handler

import (
	"github.com/gin-gonic/gin"

	integrationapp "github.com/meatdirect/backend/internal/application/integration"
)

// SyncHandler triggers Square catalog and inventory pulls
type SyncHandler struct {
	BaseHandler
	syncService *integrationapp.SquareSyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(syncService *integrationapp.SquareSyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// RegisterRoutes registers sync routes
func (h *SyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/sync/square", h.SyncSquare)
}

// SyncSquare handles POST /sync/square: a full catalog pull followed
// by an inventory refresh
func (h *SyncHandler) SyncSquare(c *gin.Context) {
	products, err := h.syncService.SyncProducts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	inventory, err := h.syncService.SyncInventory(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"products":  products,
		"inventory": inventory,
	})
}
