package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	wholesaleapp "github.com/meatdirect/backend/internal/application/wholesale"
	"github.com/meatdirect/backend/internal/domain/wholesale"
	"github.com/meatdirect/backend/internal/infrastructure/auth"
	"github.com/meatdirect/backend/internal/infrastructure/config"
)

type noopRequestNotifier struct{}

func (noopRequestNotifier) NotifyWholesaleRequest(ctx context.Context, req *wholesale.AccessRequest) {
}

func setupWholesaleRouter(keys *MockAccessKeyRepository, requests *MockAccessRequestRepository) *gin.Engine {
	cookieConfig := &config.WholesaleConfig{
		SigningSecret: "test-signing-secret",
		CookieName:    "wholesale_access",
		CookieSecure:  false,
		TokenLifetime: 14 * 24 * time.Hour,
	}
	tokens := auth.NewSessionTokenService(cookieConfig)
	service := wholesaleapp.NewAccessService(keys, requests, tokens, noopRequestNotifier{},
		cookieConfig.TokenLifetime, nil)

	engine := gin.New()
	NewWholesaleHandler(service, cookieConfig).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func TestWholesaleHandler_SubmitRequest(t *testing.T) {
	requests := new(MockAccessRequestRepository)
	requests.On("Save", mock.Anything, mock.Anything).Return(nil)
	engine := setupWholesaleRouter(new(MockAccessKeyRepository), requests)

	w := postJSON(engine, "/api/v1/wholesale/request", `{
		"name": "Sam Cook",
		"email": "sam@prairiebistro.ca",
		"company": "Prairie Bistro",
		"message": "Weekly beef order"
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"received"`)
	requests.AssertExpectations(t)
}

func TestWholesaleHandler_VerifyAndSession(t *testing.T) {
	key, err := wholesale.NewAccessKey("Restaurants 2026", "BEEF-2026", "admin", nil)
	require.NoError(t, err)

	keys := new(MockAccessKeyRepository)
	keys.On("FindActive", mock.Anything, mock.Anything).Return([]wholesale.AccessKey{*key}, nil)
	keys.On("FindByID", mock.Anything, key.ID).Return(key, nil)
	keys.On("Save", mock.Anything, mock.Anything).Return(nil)
	engine := setupWholesaleRouter(keys, new(MockAccessRequestRepository))

	w := postJSON(engine, "/api/v1/wholesale/verify", `{"code": "BEEF-2026"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	assert.Contains(t, w.Body.String(), `"key_label":"Restaurants 2026"`)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "wholesale_access", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.NotEmpty(t, cookie.Value)

	sessionReq := httptest.NewRequest(http.MethodGet, "/api/v1/wholesale/session", nil)
	sessionReq.AddCookie(cookie)
	sw := httptest.NewRecorder()
	engine.ServeHTTP(sw, sessionReq)

	assert.Equal(t, http.StatusOK, sw.Code)
	assert.Contains(t, sw.Body.String(), `"active":true`)
	assert.Contains(t, sw.Body.String(), `"key_label":"Restaurants 2026"`)
}

func TestWholesaleHandler_Verify_InvalidCode(t *testing.T) {
	keys := new(MockAccessKeyRepository)
	keys.On("FindActive", mock.Anything, mock.Anything).Return([]wholesale.AccessKey{}, nil)
	engine := setupWholesaleRouter(keys, new(MockAccessRequestRepository))

	w := postJSON(engine, "/api/v1/wholesale/verify", `{"code": "WRONG"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired code.")
}

func TestWholesaleHandler_Session_NoCookie(t *testing.T) {
	engine := setupWholesaleRouter(new(MockAccessKeyRepository), new(MockAccessRequestRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wholesale/session", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"active": false}`, w.Body.String())
}

func TestWholesaleHandler_Session_GarbageToken(t *testing.T) {
	engine := setupWholesaleRouter(new(MockAccessKeyRepository), new(MockAccessRequestRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wholesale/session", nil)
	req.AddCookie(&http.Cookie{Name: "wholesale_access", Value: "not-a-token"})
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid session.")
}

func TestWholesaleHandler_Catalog_RequiresCookie(t *testing.T) {
	engine := setupWholesaleRouter(new(MockAccessKeyRepository), new(MockAccessRequestRepository))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wholesale/catalog", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Access code required.")
}

func TestWholesaleHandler_Catalog(t *testing.T) {
	key, err := wholesale.NewAccessKey("Restaurants 2026", "BEEF-2026", "admin", nil)
	require.NoError(t, err)

	keys := new(MockAccessKeyRepository)
	keys.On("FindActive", mock.Anything, mock.Anything).Return([]wholesale.AccessKey{*key}, nil)
	keys.On("FindByID", mock.Anything, key.ID).Return(key, nil)
	keys.On("Save", mock.Anything, mock.Anything).Return(nil)
	engine := setupWholesaleRouter(keys, new(MockAccessRequestRepository))

	vw := postJSON(engine, "/api/v1/wholesale/verify", `{"code": "BEEF-2026"}`)
	require.Equal(t, http.StatusOK, vw.Code)
	cookies := vw.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/wholesale/catalog", nil)
	req.AddCookie(cookies[0])
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "Prime Ribeye"))
}
