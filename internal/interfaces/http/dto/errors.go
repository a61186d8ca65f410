package dto

import (
	"net/http"
	"strings"
)

// Common error codes used directly by handlers
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// GetHTTPStatus maps a domain error code to its HTTP status code.
// Validation codes all start with INVALID_, so unknown ones still map
// to 400 instead of leaking as 500s.
func GetHTTPStatus(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "SESSION_EXPIRED", "INVALID_SESSION":
		return http.StatusUnauthorized
	case "GATEWAY_FAILURE":
		return http.StatusBadGateway
	case "SERVICE_DISABLED":
		return http.StatusServiceUnavailable
	case "OUTSIDE_SERVICE_AREA", "PRODUCTS_NOT_FOUND", ErrCodeBadRequest:
		return http.StatusBadRequest
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
