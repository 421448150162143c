package models

import "time"

// Order status values. Statuses only move forward; the single transition
// this API drives itself is pending -> cancelled (customer or system).
// confirmed/shipped/delivered are set by fulfillment tooling.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Order is the model for the 'orders' table.
type Order struct {
	ID        int64  `json:"id" db:"id"`
	Reference string `json:"reference" db:"reference"` // public order number (UUID)
	UserID    int64  `json:"userId" db:"user_id"`
	Status    string `json:"status" db:"status"`

	// TotalAmount is the sum of quantity * unit price across all lines,
	// rounded half-up to 2 decimals at creation time.
	TotalAmount float64 `json:"totalAmount" db:"total_amount"`

	ShippingStreet     string `json:"shippingStreet" db:"shipping_street"`
	ShippingCity       string `json:"shippingCity" db:"shipping_city"`
	ShippingRegion     string `json:"shippingRegion" db:"shipping_region"`
	ShippingPostalCode string `json:"shippingPostalCode" db:"shipping_postal_code"`
	ShippingCountry    string `json:"shippingCountry" db:"shipping_country"`

	PaymentMethod string  `json:"paymentMethod" db:"payment_method"`
	CustomerEmail string  `json:"customerEmail" db:"customer_email"`
	CustomerPhone string  `json:"customerPhone" db:"customer_phone"`
	Notes         *string `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Lines is populated by OrderStore.FindByID; not a column.
	Lines []OrderLine `json:"lines,omitempty" db:"-"`
}

// OrderLine is the model for the 'order_lines' table. Rows are written once
// during order creation and never mutated: UnitPrice is the book's price at
// the moment of purchase, deliberately decoupled from later catalog edits.
type OrderLine struct {
	ID        int64     `json:"id" db:"id"`
	OrderID   int64     `json:"orderId" db:"order_id"`
	BookID    int64     `json:"bookId" db:"book_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	UnitPrice float64   `json:"unitPrice" db:"unit_price"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`

	// BookTitle is joined in for display; not a column on order_lines.
	BookTitle string `json:"bookTitle,omitempty" db:"-"`
}
