package notification

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/meatdirect/backend/internal/domain/ordering"
)

var receiptHTMLTemplate = template.Must(template.New("receipt").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Order Receipt #{{.OrderID}}</h2>
  <p>Hi {{.FullName}},</p>
  <p>Thanks for your order with Meat Direct. Your receipt is attached as a PDF.</p>
  <table cellpadding="4" cellspacing="0">
    {{range .Items}}<tr><td>{{.Name}} x{{.Quantity}}</td><td align="right">{{.Total}}</td></tr>
    {{end}}
    <tr><td>Subtotal</td><td align="right">{{.Subtotal}}</td></tr>
    {{if .DeliveryFee}}<tr><td>Delivery</td><td align="right">{{.DeliveryFee}}</td></tr>{{end}}
    <tr><td>Tax</td><td align="right">{{.Tax}}</td></tr>
    <tr><td><strong>Total</strong></td><td align="right"><strong>{{.Total}}</strong></td></tr>
  </table>
  {{if .DeliveryLine}}<p>{{.DeliveryLine}}</p>{{end}}
  {{if .PickupLine}}<p>{{.PickupLine}}</p>{{end}}
  <p>Meat Direct</p>
</body>
</html>`))

var statusHTMLTemplate = template.Must(template.New("status").Parse(`<html>
<body style="font-family: Arial, sans-serif; color: #222;">
  <h2>Order #{{.OrderID}}</h2>
  <p>Hi {{.FullName}},</p>
  <p>Your Meat Direct order is now <strong>{{.StatusLabel}}</strong>{{if .PreviousLabel}} (previously {{.PreviousLabel}}){{end}}.</p>
  {{if .DeliveryLine}}<p>{{.DeliveryLine}}</p>{{end}}
  {{if .PickupLine}}<p>{{.PickupLine}}</p>{{end}}
  <p>Meat Direct</p>
</body>
</html>`))

type receiptItemView struct {
	Name     string
	Quantity int64
	Total    string
}

type receiptView struct {
	OrderID      string
	FullName     string
	Items        []receiptItemView
	Subtotal     string
	DeliveryFee  string
	Tax          string
	Total        string
	DeliveryLine  string
	PickupLine    string
	StatusLabel   string
	PreviousLabel string
}

func formatCents(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100)
}

func buildOrderView(order *ordering.Order) receiptView {
	view := receiptView{
		OrderID:     order.ID.String(),
		FullName:    order.FullName,
		Subtotal:    formatCents(order.SubtotalCents),
		Tax:         formatCents(order.TaxCents),
		Total:       formatCents(order.TotalCents),
		StatusLabel: order.Status.Label(),
	}
	for _, item := range order.Items {
		view.Items = append(view.Items, receiptItemView{
			Name:     item.ProductName,
			Quantity: item.Quantity,
			Total:    formatCents(item.TotalCents),
		})
	}
	switch order.OrderType {
	case ordering.OrderTypeDelivery:
		view.DeliveryFee = formatCents(order.DeliveryFeeCents)
		eta := ordering.EstimateDeliveryDate(order.CreatedAt)
		view.DeliveryLine = fmt.Sprintf("Delivery to %s, estimated for %s.",
			order.AddressLine1, eta.Format("Monday, January 2"))
		if order.DeliveryETAText != "" {
			view.DeliveryLine += " " + order.DeliveryETAText + "."
		}
	case ordering.OrderTypePickup:
		location := order.PickupLocation
		if location == "" {
			location = "our shop"
		}
		view.PickupLine = fmt.Sprintf("Pickup at %s.", location)
		if order.PickupInstructions != "" {
			view.PickupLine += " " + order.PickupInstructions
		}
	}
	return view
}

func renderReceiptText(order *ordering.Order) string {
	view := buildOrderView(order)
	var b strings.Builder
	fmt.Fprintf(&b, "Order Receipt #%s\n\n", view.OrderID)
	fmt.Fprintf(&b, "Hi %s,\n\n", view.FullName)
	b.WriteString("Thanks for your order with Meat Direct. Your receipt is attached as a PDF.\n\n")
	for _, item := range view.Items {
		fmt.Fprintf(&b, "- %s x%d: %s\n", item.Name, item.Quantity, item.Total)
	}
	fmt.Fprintf(&b, "\nSubtotal: %s\n", view.Subtotal)
	if view.DeliveryFee != "" {
		fmt.Fprintf(&b, "Delivery: %s\n", view.DeliveryFee)
	}
	fmt.Fprintf(&b, "Tax: %s\n", view.Tax)
	fmt.Fprintf(&b, "Total: %s\n", view.Total)
	if view.DeliveryLine != "" {
		b.WriteString("\n" + view.DeliveryLine + "\n")
	}
	if view.PickupLine != "" {
		b.WriteString("\n" + view.PickupLine + "\n")
	}
	b.WriteString("\nMeat Direct\n")
	return b.String()
}

func renderReceiptHTML(order *ordering.Order) string {
	var b strings.Builder
	if err := receiptHTMLTemplate.Execute(&b, buildOrderView(order)); err != nil {
		return ""
	}
	return b.String()
}

func buildStatusView(order *ordering.Order, previous ordering.OrderStatus) receiptView {
	view := buildOrderView(order)
	if previous != "" {
		view.PreviousLabel = previous.Label()
	}
	return view
}

func renderStatusText(order *ordering.Order, previous ordering.OrderStatus) string {
	view := buildStatusView(order, previous)
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", view.FullName)
	if view.PreviousLabel != "" {
		fmt.Fprintf(&b, "Your Meat Direct order #%s is now %s (previously %s).\n",
			view.OrderID, view.StatusLabel, view.PreviousLabel)
	} else {
		fmt.Fprintf(&b, "Your Meat Direct order #%s is now %s.\n", view.OrderID, view.StatusLabel)
	}
	if view.DeliveryLine != "" {
		b.WriteString("\n" + view.DeliveryLine + "\n")
	}
	if view.PickupLine != "" {
		b.WriteString("\n" + view.PickupLine + "\n")
	}
	b.WriteString("\nMeat Direct\n")
	return b.String()
}

func renderStatusHTML(order *ordering.Order, previous ordering.OrderStatus) string {
	var b strings.Builder
	if err := statusHTMLTemplate.Execute(&b, buildStatusView(order, previous)); err != nil {
		return ""
	}
	return b.String()
}
