package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	stripeapi "github.com/stripe/stripe-go/v81"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/payment"
	"github.com/meatdirect/backend/internal/domain/shared"
)

const eventPaymentIntentSucceeded = "payment_intent.succeeded"

// ErrInvalidPayload marks deliveries that failed authentication or
// parsing; the endpoint answers those with 400 instead of 500
var ErrInvalidPayload = shared.NewDomainError("INVALID_WEBHOOK", "Invalid webhook payload.")

// Verifier authenticates a raw webhook payload and returns the event
type Verifier interface {
	Verify(payload []byte, signature string) (*stripeapi.Event, error)
}

// WebhookService applies processor webhook events to orders. Only
// payment_intent.succeeded changes state; everything else is
// acknowledged and dropped so the processor stops retrying.
type WebhookService struct {
	verifier       Verifier
	orderRepo      ordering.OrderRepository
	paymentRepo    payment.PaymentRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewWebhookService creates a webhook service
func NewWebhookService(
	verifier Verifier,
	orderRepo ordering.OrderRepository,
	paymentRepo payment.PaymentRepository,
	logger *zap.Logger,
) *WebhookService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebhookService{
		verifier:    verifier,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for post-save side effects
func (s *WebhookService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// ProcessWebhook verifies and applies one webhook delivery. A non-nil
// error means the payload could not be authenticated or a store
// operation failed; callers should reject the delivery so the
// processor retries. Everything else acknowledges.
func (s *WebhookService) ProcessWebhook(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	event, err := s.verifier.Verify(payload, signature)
	if err != nil {
		return nil, errors.Join(ErrInvalidPayload, err)
	}

	if string(event.Type) != eventPaymentIntentSucceeded {
		s.logger.Debug("ignoring webhook event", zap.String("type", string(event.Type)))
		return ignored("unhandled event type"), nil
	}

	var intent stripeapi.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
		return nil, errors.Join(ErrInvalidPayload, fmt.Errorf("failed to parse payment intent payload: %w", err))
	}

	rawOrderID, ok := intent.Metadata["order_id"]
	if !ok || rawOrderID == "" {
		s.logger.Warn("payment intent carries no order_id metadata",
			zap.String("intent_id", intent.ID))
		return ignored("missing order_id metadata"), nil
	}

	orderID, err := uuid.Parse(rawOrderID)
	if err != nil {
		s.logger.Warn("payment intent order_id is not a valid id",
			zap.String("intent_id", intent.ID), zap.String("order_id", rawOrderID))
		return ignored("malformed order_id metadata"), nil
	}

	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("payment intent references unknown order",
				zap.String("intent_id", intent.ID), zap.String("order_id", rawOrderID))
			return ignored("unknown order"), nil
		}
		return nil, err
	}

	if err := s.recordPayment(ctx, order, &intent); err != nil {
		return nil, err
	}

	order.AttachPaymentIntent(intent.ID)
	if order.Status == ordering.OrderStatusPlaced {
		if err := order.ChangeStatus(ordering.OrderStatusProcessing); err != nil {
			return nil, err
		}
	}
	order.MarkPaid()

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err != nil {
			s.logger.Error("failed to publish order events", zap.Error(err))
		}
		order.ClearDomainEvents()
	}

	s.logger.Info("payment confirmed",
		zap.String("order_id", order.ID.String()),
		zap.String("intent_id", intent.ID))
	return &WebhookResult{Handled: true, OrderID: order.ID}, nil
}

// recordPayment upserts the payment row keyed by intent id so webhook
// replays update in place
func (s *WebhookService) recordPayment(ctx context.Context, order *ordering.Order, intent *stripeapi.PaymentIntent) error {
	record, err := s.paymentRepo.FindByIntentID(ctx, intent.ID)
	switch {
	case err == nil:
		record.ApplyProcessorState(intent.Amount, string(intent.Currency), string(intent.Status))
	case errors.Is(err, shared.ErrNotFound):
		record, err = payment.NewPayment(order.ID, intent.ID, intent.Amount,
			string(intent.Currency), string(intent.Status))
		if err != nil {
			return err
		}
	default:
		return err
	}
	return s.paymentRepo.Save(ctx, record)
}
