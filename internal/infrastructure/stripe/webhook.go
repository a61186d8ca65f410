package stripe

import (
	"encoding/json"
	"fmt"

	stripeapi "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
)

// WebhookVerifier turns a raw webhook payload into a verified Stripe event
type WebhookVerifier struct {
	secret string
}

// NewWebhookVerifier creates a verifier for the given endpoint secret.
// An empty secret disables signature checks for local development.
func NewWebhookVerifier(secret string) *WebhookVerifier {
	return &WebhookVerifier{secret: secret}
}

// Verify parses the payload and checks its signature when a secret is set
func (v *WebhookVerifier) Verify(payload []byte, signature string) (*stripeapi.Event, error) {
	if v.secret == "" {
		var event stripeapi.Event
		if err := json.Unmarshal(payload, &event); err != nil {
			return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
		}
		return &event, nil
	}

	event, err := webhook.ConstructEvent(payload, signature, v.secret)
	if err != nil {
		return nil, fmt.Errorf("webhook signature verification failed: %w", err)
	}
	return &event, nil
}
