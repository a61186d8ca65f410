package wholesale

import (
	"time"

	"github.com/meatdirect/backend/internal/domain/wholesale"
)

// SubmitRequestRequest is the wholesale access request form payload
type SubmitRequestRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Message string `json:"message"`
}

// SubmitRequestResponse acknowledges a received access request
type SubmitRequestResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

// VerifyRequest carries the access code to check
type VerifyRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyResult is a freshly minted wholesale session. Token and MaxAge
// feed the session cookie; the rest goes in the response body.
type VerifyResult struct {
	Token     string
	MaxAge    time.Duration
	ExpiresAt time.Time
	KeyLabel  string
}

// SessionInfo describes an authenticated wholesale session
type SessionInfo struct {
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expires_at"`
	KeyLabel  string    `json:"key_label"`
}

// CatalogResponse is the gated wholesale price list
type CatalogResponse struct {
	Items     []wholesale.CatalogItem `json:"items"`
	ExpiresAt time.Time               `json:"expires_at"`
}
