package notify

import (
	"context"

	"github.com/bookhaven/bookhaven-golang/internal/email"
	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// Notifier dispatches post-checkout notifications. Implementations are
// best-effort: the order is already committed when these run, so callers
// log failures and move on.
type Notifier interface {
	NotifyCustomer(ctx context.Context, order *models.Order) error
	NotifyAdmin(ctx context.Context, order *models.Order) error
}

// EmailNotifier sends order notifications through the email sender.
type EmailNotifier struct {
	sender     *email.Sender
	adminEmail string
}

// NewEmailNotifier wires the sender plus the ops inbox for admin alerts.
func NewEmailNotifier(sender *email.Sender, adminEmail string) *EmailNotifier {
	return &EmailNotifier{sender: sender, adminEmail: adminEmail}
}

func (n *EmailNotifier) NotifyCustomer(ctx context.Context, order *models.Order) error {
	subject, body := email.BuildOrderConfirmation(order)
	return n.sender.Send(order.CustomerEmail, subject, body)
}

func (n *EmailNotifier) NotifyAdmin(ctx context.Context, order *models.Order) error {
	subject, body := email.BuildAdminOrderAlert(order)
	return n.sender.Send(n.adminEmail, subject, body)
}
