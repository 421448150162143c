package models

import "time"

// CartLine is the model for the 'cart_lines' table.
// A user holds at most one line per book, enforced by a UNIQUE
// (user_id, book_id) constraint; repeat adds bump the quantity instead.
type CartLine struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	BookID    int64     `json:"bookId" db:"book_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Book is populated by the JOIN in CartStore.ListLines; not a column.
	Book *Book `json:"book,omitempty" db:"-"`
}
