package orders

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bookhaven/bookhaven-golang/internal/models"
	"github.com/bookhaven/bookhaven-golang/internal/notify"
	"github.com/bookhaven/bookhaven-golang/internal/store"
)

// Service owns the order lifecycle: converting a cart into an order,
// cancelling pending orders, and re-ordering past purchases. All writes to
// orders, order lines and cart lines go through here.
//
// Every multi-row write runs inside store.WithTx, so a checkout either fully
// commits (order + lines written, cart cleared) or leaves no trace at all.
type Service struct {
	store    store.Store
	notifier notify.Notifier

	// dispatched tracks in-flight notification goroutines so tests and
	// shutdown can wait for them.
	dispatched sync.WaitGroup
}

// NewService wires the transaction manager to its collaborators.
func NewService(st store.Store, notifier notify.Notifier) *Service {
	return &Service{store: st, notifier: notifier}
}

// ShippingAddress is the structured delivery address captured on an order.
type ShippingAddress struct {
	Street     string
	City       string
	Region     string
	PostalCode string
	Country    string
}

// CreateOrderInput carries the checkout fields. Field validation (required
// sub-fields, email syntax, phone length) happens at the HTTP layer; the
// service assumes it on entry.
type CreateOrderInput struct {
	Shipping      ShippingAddress
	PaymentMethod string
	CustomerEmail string
	CustomerPhone string
	Notes         *string
}

// ReorderInput carries the fields a reorder may change. Contact details are
// copied from the original order.
type ReorderInput struct {
	Shipping      ShippingAddress
	PaymentMethod string
	Notes         *string
}

// CreateOrder converts the owner's cart into a pending order.
//
// Inside one transaction it loads the cart joined with books, rejects an
// empty cart (ErrEmptyCart) or any book that is not available
// (BookUnavailableError), computes the total from current prices, writes the
// order and its snapshot-priced lines, and clears the cart. After commit it
// reloads the hydrated order and fires best-effort customer and admin
// notifications; their failure is logged, never surfaced.
func (s *Service) CreateOrder(ctx context.Context, ownerID int64, input CreateOrderInput) (*models.Order, error) {
	var created *models.Order

	err := s.store.WithTx(ctx, func(tx store.Store) error {
		lines, err := tx.Carts().ListLines(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("load cart lines: %w", err)
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}

		now := time.Now()
		var total float64
		orderLines := make([]models.OrderLine, 0, len(lines))

		for _, line := range lines {
			book := line.Book
			if book.Availability != models.AvailabilityAvailable {
				return &BookUnavailableError{Title: book.Title}
			}

			price := 0.0
			if book.Price != nil {
				price = *book.Price
			}
			total += float64(line.Quantity) * price

			orderLines = append(orderLines, models.OrderLine{
				BookID:    line.BookID,
				Quantity:  line.Quantity,
				UnitPrice: price,
				CreatedAt: now,
			})
		}

		order := &models.Order{
			Reference:          uuid.NewString(),
			UserID:             ownerID,
			Status:             models.OrderStatusPending,
			TotalAmount:        roundCents(total),
			ShippingStreet:     input.Shipping.Street,
			ShippingCity:       input.Shipping.City,
			ShippingRegion:     input.Shipping.Region,
			ShippingPostalCode: input.Shipping.PostalCode,
			ShippingCountry:    input.Shipping.Country,
			PaymentMethod:      input.PaymentMethod,
			CustomerEmail:      input.CustomerEmail,
			CustomerPhone:      input.CustomerPhone,
			Notes:              input.Notes,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		if err := tx.Orders().Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for i := range orderLines {
			orderLines[i].OrderID = order.ID
		}
		if _, err := tx.Orders().CreateLines(ctx, orderLines); err != nil {
			return fmt.Errorf("create order lines: %w", err)
		}
		if err := tx.Carts().DeleteAll(ctx, ownerID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	full := s.reload(ctx, created, ownerID)
	s.dispatchNotifications(full)
	return full, nil
}

// CancelOrder flips an owner's pending order to cancelled. Any other
// current status fails with InvalidStateTransitionError and mutates nothing.
func (s *Service) CancelOrder(ctx context.Context, ownerID, orderID int64) (*models.Order, error) {
	order, err := s.store.Orders().FindByID(ctx, orderID, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status != models.OrderStatusPending {
		return nil, &InvalidStateTransitionError{Current: order.Status}
	}

	// Compare-and-set on the status column so a concurrent transition
	// cannot be overwritten.
	updated, err := s.store.Orders().UpdateStatus(ctx, orderID, ownerID, models.OrderStatusPending, models.OrderStatusCancelled)
	if err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}
	if !updated {
		current, err := s.store.Orders().FindByID(ctx, orderID, ownerID)
		if err != nil || current == nil {
			return nil, ErrOrderNotFound
		}
		return nil, &InvalidStateTransitionError{Current: current.Status}
	}

	order.Status = models.OrderStatusCancelled
	return order, nil
}

// Reorder creates a fresh order from a past order's books. Availability is
// re-validated and every line is re-priced from the book's CURRENT price,
// not the frozen price on the original order. Reorder never touches the
// cart and never sends notifications; that is specific to checkout.
func (s *Service) Reorder(ctx context.Context, ownerID, originalOrderID int64, input ReorderInput) (*models.Order, error) {
	var created *models.Order

	err := s.store.WithTx(ctx, func(tx store.Store) error {
		original, err := tx.Orders().FindByID(ctx, originalOrderID, ownerID)
		if err != nil {
			return fmt.Errorf("load original order: %w", err)
		}
		if original == nil {
			return ErrOrderNotFound
		}
		if len(original.Lines) == 0 {
			return ErrEmptyCart
		}

		now := time.Now()
		var total float64
		orderLines := make([]models.OrderLine, 0, len(original.Lines))

		for _, line := range original.Lines {
			book, err := tx.Books().GetByID(ctx, line.BookID)
			if err != nil {
				return fmt.Errorf("load book %d: %w", line.BookID, err)
			}
			if book == nil {
				// Book removed from the catalog since the original purchase.
				return &BookUnavailableError{Title: line.BookTitle}
			}
			if book.Availability != models.AvailabilityAvailable {
				return &BookUnavailableError{Title: book.Title}
			}

			price := 0.0
			if book.Price != nil {
				price = *book.Price
			}
			total += float64(line.Quantity) * price

			orderLines = append(orderLines, models.OrderLine{
				BookID:    line.BookID,
				Quantity:  line.Quantity,
				UnitPrice: price,
				CreatedAt: now,
			})
		}

		order := &models.Order{
			Reference:          uuid.NewString(),
			UserID:             ownerID,
			Status:             models.OrderStatusPending,
			TotalAmount:        roundCents(total),
			ShippingStreet:     input.Shipping.Street,
			ShippingCity:       input.Shipping.City,
			ShippingRegion:     input.Shipping.Region,
			ShippingPostalCode: input.Shipping.PostalCode,
			ShippingCountry:    input.Shipping.Country,
			PaymentMethod:      input.PaymentMethod,
			CustomerEmail:      original.CustomerEmail,
			CustomerPhone:      original.CustomerPhone,
			Notes:              input.Notes,
			CreatedAt:          now,
			UpdatedAt:          now,
		}

		if err := tx.Orders().Create(ctx, order); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		for i := range orderLines {
			orderLines[i].OrderID = order.ID
		}
		if _, err := tx.Orders().CreateLines(ctx, orderLines); err != nil {
			return fmt.Errorf("create order lines: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.reload(ctx, created, ownerID), nil
}

// CancelStaleOrders cancels pending orders older than olderThan. It backs
// the background worker that sweeps abandoned checkouts.
func (s *Service) CancelStaleOrders(ctx context.Context, olderThan time.Duration) (int64, error) {
	return s.store.Orders().CancelStalePending(ctx, time.Now().Add(-olderThan))
}

// reload fetches the committed order with lines and book titles. The order
// is already durable at this point, so a read failure only degrades the
// response, it cannot fail the call.
func (s *Service) reload(ctx context.Context, order *models.Order, ownerID int64) *models.Order {
	full, err := s.store.Orders().FindByID(ctx, order.ID, ownerID)
	if err != nil || full == nil {
		log.Printf("Warning: failed to reload order %d after commit: %v", order.ID, err)
		return order
	}
	return full
}

// dispatchNotifications fires the customer confirmation and admin alert in
// the background, strictly after commit. Failures are logged and swallowed:
// a committed order must never look failed because an email bounced.
func (s *Service) dispatchNotifications(order *models.Order) {
	if s.notifier == nil {
		return
	}

	s.dispatched.Add(1)
	go func() {
		defer s.dispatched.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := s.notifier.NotifyCustomer(ctx, order); err != nil {
			log.Printf("Warning: customer notification for order %d failed: %v", order.ID, err)
		}
		if err := s.notifier.NotifyAdmin(ctx, order); err != nil {
			log.Printf("Warning: admin notification for order %d failed: %v", order.ID, err)
		}
	}()
}

// Flush waits for in-flight notification dispatches. Used on shutdown.
func (s *Service) Flush() {
	s.dispatched.Wait()
}
