package orders

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart means checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderNotFound means the order does not exist or belongs to
	// another user; the two cases are deliberately indistinguishable.
	ErrOrderNotFound = errors.New("order not found")
)

// BookUnavailableError aborts a checkout or reorder when any single book in
// it is not purchasable. One unavailable book blocks the whole order.
type BookUnavailableError struct {
	Title string
}

func (e *BookUnavailableError) Error() string {
	return fmt.Sprintf("book %q is not available for purchase", e.Title)
}

// InvalidStateTransitionError means an order was asked to move to a status
// its current status does not allow (only pending orders can be cancelled).
type InvalidStateTransitionError struct {
	Current string
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("order cannot be cancelled in status %q", e.Current)
}
