package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	wholesaleapp "github.com/meatdirect/backend/internal/application/wholesale"
	"github.com/meatdirect/backend/internal/infrastructure/config"
)

// WholesaleHandler runs the wholesale gate endpoints. The session
// travels in an HTTP-only cookie set by the verify endpoint.
type WholesaleHandler struct {
	BaseHandler
	accessService *wholesaleapp.AccessService
	cookieConfig  *config.WholesaleConfig
}

// NewWholesaleHandler creates a new WholesaleHandler
func NewWholesaleHandler(accessService *wholesaleapp.AccessService, cookieConfig *config.WholesaleConfig) *WholesaleHandler {
	return &WholesaleHandler{
		accessService: accessService,
		cookieConfig:  cookieConfig,
	}
}

// RegisterRoutes registers wholesale routes
func (h *WholesaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	wholesale := rg.Group("/wholesale")
	{
		wholesale.POST("/request", h.SubmitRequest)
		wholesale.POST("/verify", h.Verify)
		wholesale.GET("/session", h.Session)
		wholesale.GET("/catalog", h.Catalog)
	}
}

// SubmitRequest handles POST /wholesale/request
func (h *WholesaleHandler) SubmitRequest(c *gin.Context) {
	var req wholesaleapp.SubmitRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accessService.SubmitRequest(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Verify handles POST /wholesale/verify
func (h *WholesaleHandler) Verify(c *gin.Context) {
	var req wholesaleapp.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.accessService.VerifyCode(c.Request.Context(), req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.SetSameSite(h.sameSite())
	c.SetCookie(h.cookieConfig.CookieName, result.Token, int(result.MaxAge.Seconds()),
		"/", "", h.cookieConfig.CookieSecure, true)
	h.Success(c, gin.H{
		"status":     "ok",
		"expires_at": result.ExpiresAt,
		"key_label":  result.KeyLabel,
	})
}

// Session handles GET /wholesale/session
func (h *WholesaleHandler) Session(c *gin.Context) {
	token, err := c.Cookie(h.cookieConfig.CookieName)
	if err != nil || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"active": false})
		return
	}

	session, err := h.accessService.ValidateSession(c.Request.Context(), token)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, session)
}

// Catalog handles GET /wholesale/catalog
func (h *WholesaleHandler) Catalog(c *gin.Context) {
	token, err := c.Cookie(h.cookieConfig.CookieName)
	if err != nil || token == "" {
		h.Error(c, http.StatusUnauthorized, "INVALID_SESSION", "Access code required.")
		return
	}

	catalog, err := h.accessService.Catalog(c.Request.Context(), token)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, catalog)
}

func (h *WholesaleHandler) sameSite() http.SameSite {
	switch h.cookieConfig.CookieSameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}
