package payment

import "github.com/google/uuid"

// WebhookResult reports what processing a webhook event amounted to.
// Handled is false for event types and payloads the service ignores;
// those are still acknowledged to the processor.
type WebhookResult struct {
	Handled bool
	OrderID uuid.UUID
	Reason  string
}

func ignored(reason string) *WebhookResult {
	return &WebhookResult{Handled: false, Reason: reason}
}
