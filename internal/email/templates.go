package email

import (
	"fmt"
	"strings"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// BuildOrderConfirmation renders the customer-facing checkout email.
func BuildOrderConfirmation(order *models.Order) (subject, body string) {
	subject = fmt.Sprintf("Your BookHaven order %s", order.Reference)

	var b strings.Builder
	b.WriteString("Thank you for your order!\n\n")
	fmt.Fprintf(&b, "Order reference: %s\n", order.Reference)
	fmt.Fprintf(&b, "Status: %s\n\n", order.Status)
	b.WriteString(renderLines(order))
	fmt.Fprintf(&b, "\nTotal: %.2f\n\n", order.TotalAmount)
	fmt.Fprintf(&b, "Shipping to:\n%s\n%s, %s %s\n%s\n",
		order.ShippingStreet, order.ShippingCity, order.ShippingRegion,
		order.ShippingPostalCode, order.ShippingCountry)
	b.WriteString("\nWe will email you again once your order ships.\n")

	return subject, b.String()
}

// BuildAdminOrderAlert renders the internal new-order notification.
func BuildAdminOrderAlert(order *models.Order) (subject, body string) {
	subject = fmt.Sprintf("New order %s (%.2f)", order.Reference, order.TotalAmount)

	var b strings.Builder
	fmt.Fprintf(&b, "Order %s placed by user %d.\n\n", order.Reference, order.UserID)
	b.WriteString(renderLines(order))
	fmt.Fprintf(&b, "\nTotal: %.2f\n", order.TotalAmount)
	fmt.Fprintf(&b, "Payment method: %s\n", order.PaymentMethod)
	fmt.Fprintf(&b, "Contact: %s / %s\n", order.CustomerEmail, order.CustomerPhone)

	return subject, b.String()
}

// BuildVerificationEmail renders the signup verification code message.
func BuildVerificationEmail(code string) (subject, body string) {
	subject = "Verify your BookHaven account"
	body = fmt.Sprintf(
		"Welcome to BookHaven!\n\nYour verification code is: %s\n\nThis code will expire in 15 minutes.",
		code,
	)
	return subject, body
}

func renderLines(order *models.Order) string {
	var b strings.Builder
	for _, line := range order.Lines {
		title := line.BookTitle
		if title == "" {
			title = fmt.Sprintf("book #%d", line.BookID)
		}
		fmt.Fprintf(&b, "  %d x %s @ %.2f\n", line.Quantity, title, line.UnitPrice)
	}
	return b.String()
}
