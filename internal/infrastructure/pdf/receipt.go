package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/meatdirect/backend/internal/domain/ordering"
)

const (
	marginLeft = 50.0
	topOffset  = 50.0
	lineHeight = 18.0
)

// ReceiptGenerator renders one-page PDF receipts for orders
type ReceiptGenerator struct{}

// NewReceiptGenerator creates a new receipt generator
func NewReceiptGenerator() *ReceiptGenerator {
	return &ReceiptGenerator{}
}

// Generate renders the receipt for an order and returns raw PDF bytes
func (g *ReceiptGenerator) Generate(order *ordering.Order) ([]byte, error) {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetTitle(fmt.Sprintf("Order Receipt #%s", order.ID), true)
	doc.SetFont("Helvetica", "", 12)
	doc.AddPage()

	y := topOffset
	writeLine := func(text string) {
		doc.Text(marginLeft, y, text)
		y += lineHeight
	}

	writeLine(fmt.Sprintf("Order Receipt #%s", order.ID))
	writeLine(fmt.Sprintf("Created: %s", order.CreatedAt.Format("2006-01-02 15:04")))
	writeLine(fmt.Sprintf("Customer: %s", order.FullName))
	writeLine(fmt.Sprintf("Email: %s", order.Email))
	writeLine(fmt.Sprintf("Fulfillment: %s", order.OrderType.Label()))

	switch order.OrderType {
	case ordering.OrderTypeDelivery:
		if order.AddressLine1 != "" {
			writeLine(fmt.Sprintf("Address: %s", order.AddressLine1))
		}
		if order.AddressLine2 != "" {
			writeLine(order.AddressLine2)
		}
		cityLine := strings.TrimSpace(strings.Join(nonEmpty(order.City, order.PostalCode), " "))
		if cityLine != "" {
			writeLine(cityLine)
		}
		if order.DeliveryNotes != "" {
			writeLine(fmt.Sprintf("Delivery notes: %s", order.DeliveryNotes))
		}
		if order.DeliveryServiceArea != "" {
			writeLine(fmt.Sprintf("Service area: %s", order.DeliveryServiceArea))
		}
		if order.DeliveryETAText != "" {
			writeLine(fmt.Sprintf("ETA: %s", order.DeliveryETAText))
		}
	case ordering.OrderTypePickup:
		if order.PickupLocation != "" {
			writeLine(fmt.Sprintf("Pickup location: %s", order.PickupLocation))
		}
		if order.PickupInstructions != "" {
			writeLine(fmt.Sprintf("Pickup instructions: %s", order.PickupInstructions))
		}
	}

	writeLine("")
	writeLine("Items:")
	for _, item := range order.Items {
		writeLine(fmt.Sprintf("- %s x%d: %s", item.ProductName, item.Quantity, formatCents(item.TotalCents)))
	}

	writeLine("")
	writeLine(fmt.Sprintf("Subtotal: %s", formatCents(order.SubtotalCents)))
	if order.OrderType == ordering.OrderTypeDelivery {
		writeLine(fmt.Sprintf("Delivery: %s", formatCents(order.DeliveryFeeCents)))
	}
	writeLine(fmt.Sprintf("Tax: %s", formatCents(order.TaxCents)))
	writeLine(fmt.Sprintf("Total: %s", formatCents(order.TotalCents)))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: failed to render receipt: %w", err)
	}
	return buf.Bytes(), nil
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func nonEmpty(parts ...string) []string {
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
