package ordering

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meatdirect/backend/internal/domain/catalog"
	"github.com/meatdirect/backend/internal/domain/ordering"
	"github.com/meatdirect/backend/internal/domain/payment"
	"github.com/meatdirect/backend/internal/domain/shared"
)

// CheckoutService prices a cart, creates the order and prepares its payment
type CheckoutService struct {
	orderRepo      ordering.OrderRepository
	productRepo    catalog.ProductRepository
	gateway        payment.Gateway
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
	now            func() time.Time
}

// NewCheckoutService creates a new CheckoutService
func NewCheckoutService(orderRepo ordering.OrderRepository, productRepo catalog.ProductRepository, gateway payment.Gateway, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gateway:     gateway,
		logger:      logger,
		now:         time.Now,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CheckoutService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Checkout validates the cart, persists the order and creates its payment intent
func (s *CheckoutService) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	items, err := s.validateItems(req.Items)
	if err != nil {
		return nil, err
	}

	productMap, err := s.loadProducts(ctx, items)
	if err != nil {
		return nil, err
	}

	orderType := ordering.OrderType(req.OrderType)
	if !orderType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORDER_TYPE", "Invalid order type.")
	}

	order, err := ordering.NewOrder(req.FullName, req.Email, req.Phone, orderType)
	if err != nil {
		return nil, err
	}
	order.Notes = req.Notes

	if orderType == ordering.OrderTypeDelivery {
		quote, err := s.resolveDelivery(req.Address)
		if err != nil {
			return nil, err
		}
		order.SetDeliveryDetails(req.Address.Line1, req.Address.Line2, req.Address.City,
			req.Address.PostalCode, *quote, req.DeliveryNotes)
	} else {
		order.SetPickupDetails(req.PickupLocation, req.PickupInstructions)
	}

	for _, item := range items {
		product := productMap[item.productID]
		if err := order.AddItem(product.ID, product.Name, item.quantity, product.PriceCents); err != nil {
			return nil, err
		}
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, payment.IntentRequest{
		OrderID:      order.ID,
		AmountCents:  order.TotalCents,
		ReceiptEmail: order.Email,
	})
	if err != nil {
		return nil, err
	}
	order.AttachPaymentIntent(intent.ID)
	order.MarkPlaced()

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		if err := s.eventPublisher.Publish(ctx, order.GetDomainEvents()...); err != nil {
			s.logger.Error("failed to publish order events",
				zap.String("order_id", order.ID.String()), zap.Error(err))
		}
		order.ClearDomainEvents()
	}

	return &CheckoutResponse{
		OrderID:             order.ID,
		ClientSecret:        intent.ClientSecret,
		Amount:              order.TotalCents,
		SubtotalCents:       order.SubtotalCents,
		TaxCents:            order.TaxCents,
		DeliveryFeeCents:    order.DeliveryFeeCents,
		DeliveryServiceArea: order.DeliveryServiceArea,
		DeliveryETAText:     order.DeliveryETAText,
	}, nil
}

// GetOrder returns one order by id
func (s *CheckoutService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToOrderResponse(order)
	return &response, nil
}

type checkoutItem struct {
	productID uuid.UUID
	quantity  int64
}

func (s *CheckoutService) validateItems(reqItems []CheckoutItemRequest) ([]checkoutItem, error) {
	if len(reqItems) == 0 {
		return nil, shared.NewDomainError("INVALID_ITEMS", "Items are required.")
	}

	items := make([]checkoutItem, 0, len(reqItems))
	for i, item := range reqItems {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_PRODUCT_ID",
				fmt.Sprintf("Invalid product_id in item %d.", i+1))
		}
		if item.Quantity < 1 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1.")
		}
		items = append(items, checkoutItem{productID: productID, quantity: item.Quantity})
	}
	return items, nil
}

func (s *CheckoutService) loadProducts(ctx context.Context, items []checkoutItem) (map[uuid.UUID]*catalog.Product, error) {
	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]bool, len(items))
	for _, item := range items {
		if !seen[item.productID] {
			seen[item.productID] = true
			ids = append(ids, item.productID)
		}
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*catalog.Product, len(products))
	for i := range products {
		if !products[i].IsActive {
			continue
		}
		productMap[products[i].ID] = &products[i]
	}

	missing := make([]string, 0)
	for _, id := range ids {
		if _, ok := productMap[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	if len(missing) > 0 {
		return nil, shared.NewDomainError("PRODUCTS_NOT_FOUND",
			fmt.Sprintf("Products not found: %s.", strings.Join(missing, ", ")))
	}
	return productMap, nil
}

func (s *CheckoutService) resolveDelivery(address *CheckoutAddressRequest) (*ordering.DeliveryQuote, error) {
	if address == nil {
		address = &CheckoutAddressRequest{}
	}

	missing := make([]string, 0, 3)
	if address.Line1 == "" {
		missing = append(missing, "line1")
	}
	if address.City == "" {
		missing = append(missing, "city")
	}
	if address.PostalCode == "" {
		missing = append(missing, "postal_code")
	}
	if len(missing) > 0 {
		return nil, shared.NewDomainError("INVALID_ADDRESS",
			fmt.Sprintf("Delivery requires: %s.", strings.Join(missing, ", ")))
	}

	return ordering.ResolveDeliveryQuote(address.Line1, address.City, address.PostalCode, s.now())
}
