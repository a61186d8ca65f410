package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{"NOT_FOUND", http.StatusNotFound},
		{"SESSION_EXPIRED", http.StatusUnauthorized},
		{"INVALID_SESSION", http.StatusUnauthorized},
		{"GATEWAY_FAILURE", http.StatusBadGateway},
		{"SERVICE_DISABLED", http.StatusServiceUnavailable},
		{"OUTSIDE_SERVICE_AREA", http.StatusBadRequest},
		{"PRODUCTS_NOT_FOUND", http.StatusBadRequest},
		{"INVALID_ITEMS", http.StatusBadRequest},
		{"INVALID_ORDER_TYPE", http.StatusBadRequest},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}
