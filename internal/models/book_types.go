package models

import "time"

// Book availability states. A book can only be checked out while it is
// AvailabilityAvailable; the other two states block checkout entirely.
const (
	AvailabilityAvailable  = "available"
	AvailabilityOutOfStock = "out_of_stock"
	AvailabilityPreOrder   = "pre_order"
)

// ValidAvailability reports whether s is one of the known availability states.
func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityAvailable, AvailabilityOutOfStock, AvailabilityPreOrder:
		return true
	}
	return false
}

// Book is the model for the 'books' table.
// Authors and Categories are stored as JSON columns and unmarshalled manually.
type Book struct {
	ID          int64    `json:"id" db:"id"`
	Title       string   `json:"title" db:"title"`
	Authors     []string `json:"authors" db:"authors"`
	Categories  []string `json:"categories" db:"categories"`
	Description string   `json:"description" db:"description"`

	// Price is nullable: imported catalog volumes do not always carry one.
	// A nil price is treated as 0.00 at checkout.
	Price        *float64 `json:"price,omitempty" db:"price"`
	Availability string   `json:"availability" db:"availability"`

	ISBN       *string `json:"isbn,omitempty" db:"isbn"`
	ExternalID *string `json:"externalId,omitempty" db:"external_id"` // catalog API volume ID

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
