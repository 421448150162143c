package store

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

// Store bundles one repository per entity plus a transaction scope.
// WithTx runs fn against a Store whose repositories all share a single
// database transaction; returning an error rolls everything back.
//
// All mutation of cart lines, orders and order lines funnels through these
// repositories — nothing else in the codebase writes those tables.
type Store interface {
	Carts() CartStore
	Books() BookStore
	Orders() OrderStore
	Users() UserStore
	Categories() CategoryStore

	WithTx(ctx context.Context, fn func(Store) error) error
}

// CartStore manages the 'cart_lines' table.
type CartStore interface {
	// ListLines returns the owner's cart lines with Book populated.
	ListLines(ctx context.Context, ownerID int64) ([]models.CartLine, error)

	// Upsert adds quantity to the owner's line for bookID, creating the
	// line if it does not exist yet.
	Upsert(ctx context.Context, ownerID, bookID int64, quantity int) error

	// SetQuantity overwrites the quantity of an existing line. It reports
	// false when no such line exists.
	SetQuantity(ctx context.Context, ownerID, bookID int64, quantity int) (bool, error)

	// DeleteLine removes a single line, reporting false when absent.
	DeleteLine(ctx context.Context, ownerID, bookID int64) (bool, error)

	// DeleteAll clears the owner's cart.
	DeleteAll(ctx context.Context, ownerID int64) error
}

// BookFilter narrows BookStore.List.
type BookFilter struct {
	Query        string // matches title, authors, description
	Category     string
	Availability string
	MinPrice     *float64
	MaxPrice     *float64
	Page         int
	PageSize     int
}

// BookStore manages the 'books' table.
type BookStore interface {
	// GetByID returns nil, nil when the book does not exist.
	GetByID(ctx context.Context, id int64) (*models.Book, error)

	// GetByExternalID looks a book up by its catalog API volume ID,
	// returning nil, nil when absent. Used to deduplicate imports.
	GetByExternalID(ctx context.Context, externalID string) (*models.Book, error)
	List(ctx context.Context, filter BookFilter) ([]models.Book, int, error)
	Create(ctx context.Context, book *models.Book) error
	Update(ctx context.Context, book *models.Book) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	UpdateAvailability(ctx context.Context, id int64, availability string) (bool, error)
}

// OrderStore manages the 'orders' and 'order_lines' tables.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	CreateLines(ctx context.Context, lines []models.OrderLine) ([]models.OrderLine, error)

	// FindByID returns the owner-scoped order with its lines, or nil, nil
	// when absent or owned by somebody else.
	FindByID(ctx context.Context, id, ownerID int64) (*models.Order, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]models.Order, error)

	// UpdateStatus flips status from 'from' to 'to' in one atomic write and
	// reports whether a row actually changed.
	UpdateStatus(ctx context.Context, id, ownerID int64, from, to string) (bool, error)

	// CancelStalePending cancels every pending order created before cutoff,
	// returning how many rows were affected.
	CancelStalePending(ctx context.Context, cutoff time.Time) (int64, error)
}

// UserStore manages the 'users' table.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	MarkVerified(ctx context.Context, id int64) error
	SetVerificationCode(ctx context.Context, id int64, code string, expiry time.Time) error
}

// CategoryStore manages the 'categories' table.
type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	List(ctx context.Context) ([]models.Category, error)
}
