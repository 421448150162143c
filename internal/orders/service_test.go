package orders

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookhaven/bookhaven-golang/internal/models"
	"github.com/bookhaven/bookhaven-golang/internal/store"
)

//
// --- In-memory store double ---
//
// memStore implements store.Store over plain maps. WithTx snapshots all
// state before running fn and restores it when fn errors, mirroring the
// rollback semantics the MySQL store gets from real transactions.
//

type memStore struct {
	mu sync.Mutex

	books  map[int64]*models.Book
	cart   map[int64][]models.CartLine // keyed by owner
	orders map[int64]*models.Order
	lines  map[int64][]models.OrderLine // keyed by order ID

	nextOrderID int64
	nextLineID  int64

	failCreateLines bool
}

func newMemStore() *memStore {
	return &memStore{
		books:  make(map[int64]*models.Book),
		cart:   make(map[int64][]models.CartLine),
		orders: make(map[int64]*models.Order),
		lines:  make(map[int64][]models.OrderLine),
	}
}

func (m *memStore) Carts() store.CartStore          { return &memCarts{m} }
func (m *memStore) Books() store.BookStore          { return &memBooks{m} }
func (m *memStore) Orders() store.OrderStore        { return &memOrders{m} }
func (m *memStore) Users() store.UserStore          { return nil }
func (m *memStore) Categories() store.CategoryStore { return nil }

func (m *memStore) WithTx(ctx context.Context, fn func(store.Store) error) error {
	m.mu.Lock()
	snapshot := m.clone()
	m.mu.Unlock()

	if err := fn(m); err != nil {
		m.mu.Lock()
		m.books = snapshot.books
		m.cart = snapshot.cart
		m.orders = snapshot.orders
		m.lines = snapshot.lines
		m.nextOrderID = snapshot.nextOrderID
		m.nextLineID = snapshot.nextLineID
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memStore) clone() *memStore {
	c := newMemStore()
	c.nextOrderID = m.nextOrderID
	c.nextLineID = m.nextLineID
	for id, b := range m.books {
		cp := *b
		c.books[id] = &cp
	}
	for owner, lines := range m.cart {
		c.cart[owner] = append([]models.CartLine(nil), lines...)
	}
	for id, o := range m.orders {
		cp := *o
		c.orders[id] = &cp
	}
	for id, lines := range m.lines {
		c.lines[id] = append([]models.OrderLine(nil), lines...)
	}
	return c
}

// seed helpers

func (m *memStore) addBook(id int64, title string, price *float64, availability string) {
	m.books[id] = &models.Book{ID: id, Title: title, Price: price, Availability: availability}
}

func (m *memStore) addCartLine(owner, bookID int64, quantity int) {
	m.cart[owner] = append(m.cart[owner], models.CartLine{
		UserID: owner, BookID: bookID, Quantity: quantity,
	})
}

type memCarts struct{ s *memStore }

func (c *memCarts) ListLines(ctx context.Context, ownerID int64) ([]models.CartLine, error) {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	var out []models.CartLine
	for _, line := range c.s.cart[ownerID] {
		book := *c.s.books[line.BookID]
		line.Book = &book
		out = append(out, line)
	}
	return out, nil
}

func (c *memCarts) Upsert(ctx context.Context, ownerID, bookID int64, quantity int) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	c.s.cart[ownerID] = append(c.s.cart[ownerID], models.CartLine{UserID: ownerID, BookID: bookID, Quantity: quantity})
	return nil
}

func (c *memCarts) SetQuantity(ctx context.Context, ownerID, bookID int64, quantity int) (bool, error) {
	return false, errors.New("not implemented")
}

func (c *memCarts) DeleteLine(ctx context.Context, ownerID, bookID int64) (bool, error) {
	return false, errors.New("not implemented")
}

func (c *memCarts) DeleteAll(ctx context.Context, ownerID int64) error {
	c.s.mu.Lock()
	defer c.s.mu.Unlock()
	delete(c.s.cart, ownerID)
	return nil
}

type memBooks struct{ s *memStore }

func (b *memBooks) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	book, ok := b.s.books[id]
	if !ok {
		return nil, nil
	}
	cp := *book
	return &cp, nil
}

func (b *memBooks) GetByExternalID(ctx context.Context, externalID string) (*models.Book, error) {
	return nil, errors.New("not implemented")
}

func (b *memBooks) List(ctx context.Context, filter store.BookFilter) ([]models.Book, int, error) {
	return nil, 0, errors.New("not implemented")
}

func (b *memBooks) Create(ctx context.Context, book *models.Book) error {
	return errors.New("not implemented")
}

func (b *memBooks) Update(ctx context.Context, book *models.Book) (bool, error) {
	return false, errors.New("not implemented")
}

func (b *memBooks) Delete(ctx context.Context, id int64) (bool, error) {
	return false, errors.New("not implemented")
}

func (b *memBooks) UpdateAvailability(ctx context.Context, id int64, availability string) (bool, error) {
	return false, errors.New("not implemented")
}

type memOrders struct{ s *memStore }

func (o *memOrders) Create(ctx context.Context, order *models.Order) error {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	o.s.nextOrderID++
	order.ID = o.s.nextOrderID
	cp := *order
	o.s.orders[order.ID] = &cp
	return nil
}

func (o *memOrders) CreateLines(ctx context.Context, lines []models.OrderLine) ([]models.OrderLine, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	if o.s.failCreateLines {
		return nil, errors.New("simulated storage failure")
	}
	for i := range lines {
		o.s.nextLineID++
		lines[i].ID = o.s.nextLineID
		o.s.lines[lines[i].OrderID] = append(o.s.lines[lines[i].OrderID], lines[i])
	}
	return lines, nil
}

func (o *memOrders) FindByID(ctx context.Context, id, ownerID int64) (*models.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	order, ok := o.s.orders[id]
	if !ok || order.UserID != ownerID {
		return nil, nil
	}
	cp := *order
	for _, line := range o.s.lines[id] {
		if book, ok := o.s.books[line.BookID]; ok {
			line.BookTitle = book.Title
		}
		cp.Lines = append(cp.Lines, line)
	}
	return &cp, nil
}

func (o *memOrders) ListByOwner(ctx context.Context, ownerID int64) ([]models.Order, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var out []models.Order
	for _, order := range o.s.orders {
		if order.UserID == ownerID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (o *memOrders) UpdateStatus(ctx context.Context, id, ownerID int64, from, to string) (bool, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	order, ok := o.s.orders[id]
	if !ok || order.UserID != ownerID || order.Status != from {
		return false, nil
	}
	order.Status = to
	order.UpdatedAt = time.Now()
	return true, nil
}

func (o *memOrders) CancelStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	var n int64
	for _, order := range o.s.orders {
		if order.Status == models.OrderStatusPending && order.CreatedAt.Before(cutoff) {
			order.Status = models.OrderStatusCancelled
			n++
		}
	}
	return n, nil
}

//
// --- Notifier double ---
//

type recordingNotifier struct {
	mu           sync.Mutex
	customer     []int64
	admin        []int64
	failCustomer bool
}

func (n *recordingNotifier) NotifyCustomer(ctx context.Context, order *models.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.failCustomer {
		return errors.New("smtp down")
	}
	n.customer = append(n.customer, order.ID)
	return nil
}

func (n *recordingNotifier) NotifyAdmin(ctx context.Context, order *models.Order) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.admin = append(n.admin, order.ID)
	return nil
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.customer), len(n.admin)
}

//
// --- Test helpers ---
//

func floatPtr(v float64) *float64 { return &v }

func testInput() CreateOrderInput {
	return CreateOrderInput{
		Shipping: ShippingAddress{
			Street:     "12 Harbour Lane",
			City:       "Port Arthur",
			Region:     "TAS",
			PostalCode: "7182",
			Country:    "AU",
		},
		PaymentMethod: "card",
		CustomerEmail: "reader@example.com",
		CustomerPhone: "0412345678",
	}
}

//
// --- CreateOrder ---
//

func TestCreateOrderComputesTotalAndClearsCart(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "The Sea of Tranquility", floatPtr(12.50), models.AvailabilityAvailable)
	st.addBook(2, "Piranesi", floatPtr(7.25), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 2)
	st.addCartLine(7, 2, 1)

	notifier := &recordingNotifier{}
	svc := NewService(st, notifier)

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 32.25, order.TotalAmount, 0.0001)
	assert.NotEmpty(t, order.Reference)
	require.Len(t, order.Lines, 2)
	assert.InDelta(t, 12.50, order.Lines[0].UnitPrice, 0.0001)
	assert.Equal(t, 2, order.Lines[0].Quantity)
	assert.InDelta(t, 7.25, order.Lines[1].UnitPrice, 0.0001)

	// Cart must be empty after a successful checkout.
	lines, err := st.Carts().ListLines(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// Both notifications fire after commit.
	svc.Flush()
	customer, admin := notifier.counts()
	assert.Equal(t, 1, customer)
	assert.Equal(t, 1, admin)
}

func TestCreateOrderTotalMatchesLineSum(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "A", floatPtr(3.33), models.AvailabilityAvailable)
	st.addBook(2, "B", floatPtr(0.07), models.AvailabilityAvailable)
	st.addBook(3, "C", floatPtr(19.99), models.AvailabilityAvailable)
	st.addCartLine(1, 1, 3)
	st.addCartLine(1, 2, 11)
	st.addCartLine(1, 3, 1)

	svc := NewService(st, &recordingNotifier{})

	order, err := svc.CreateOrder(context.Background(), 1, testInput())
	require.NoError(t, err)

	var sum float64
	for _, line := range order.Lines {
		sum += float64(line.Quantity) * line.UnitPrice
	}
	assert.InDelta(t, roundCents(sum), order.TotalAmount, 0.0001)
	svc.Flush()
}

func TestCreateOrderEmptyCart(t *testing.T) {
	st := newMemStore()
	svc := NewService(st, &recordingNotifier{})

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Nil(t, order)
	assert.Empty(t, st.orders)
}

func TestCreateOrderUnavailableBookAbortsEverything(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Available One", floatPtr(10.00), models.AvailabilityAvailable)
	st.addBook(2, "Gone Fishing", floatPtr(5.00), models.AvailabilityOutOfStock)
	st.addCartLine(7, 1, 1)
	st.addCartLine(7, 2, 1)

	notifier := &recordingNotifier{}
	svc := NewService(st, notifier)

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.Error(t, err)
	assert.Nil(t, order)

	var unavailable *BookUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Gone Fishing", unavailable.Title)

	// No order created, cart intact with both lines.
	assert.Empty(t, st.orders)
	lines, err := st.Carts().ListLines(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	svc.Flush()
	customer, admin := notifier.counts()
	assert.Zero(t, customer)
	assert.Zero(t, admin)
}

func TestCreateOrderPreOrderBookBlocksCheckout(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Not Yet Out", floatPtr(25.00), models.AvailabilityPreOrder)
	st.addCartLine(7, 1, 1)

	svc := NewService(st, &recordingNotifier{})

	_, err := svc.CreateOrder(context.Background(), 7, testInput())
	var unavailable *BookUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Not Yet Out", unavailable.Title)
}

func TestCreateOrderNilPriceCountsAsZero(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Free Sampler", nil, models.AvailabilityAvailable)
	st.addBook(2, "Paid Book", floatPtr(9.99), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 3)
	st.addCartLine(7, 2, 1)

	svc := NewService(st, &recordingNotifier{})

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)
	assert.InDelta(t, 9.99, order.TotalAmount, 0.0001)
	assert.InDelta(t, 0.0, order.Lines[0].UnitPrice, 0.0001)
	svc.Flush()
}

func TestCreateOrderRollsBackOnStorageFailure(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 2)
	st.failCreateLines = true

	notifier := &recordingNotifier{}
	svc := NewService(st, notifier)

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.Error(t, err)
	assert.Nil(t, order)

	// Rollback: no order rows, cart exactly as before.
	assert.Empty(t, st.orders)
	lines, err := st.Carts().ListLines(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	svc.Flush()
	customer, admin := notifier.counts()
	assert.Zero(t, customer)
	assert.Zero(t, admin)
}

func TestCreateOrderNotificationFailureDoesNotFailOrder(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 1)

	notifier := &recordingNotifier{failCustomer: true}
	svc := NewService(st, notifier)

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)
	require.NotNil(t, order)

	// The admin alert still goes out even though the customer email failed.
	svc.Flush()
	customer, admin := notifier.counts()
	assert.Zero(t, customer)
	assert.Equal(t, 1, admin)

	// The order stays committed.
	found, err := st.Orders().FindByID(context.Background(), order.ID, 7)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, models.OrderStatusPending, found.Status)
}

func TestSecondCheckoutAfterCommitSeesEmptyCart(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 1)

	svc := NewService(st, &recordingNotifier{})

	_, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)

	// The same owner checking out again must not double-spend the cart.
	_, err = svc.CreateOrder(context.Background(), 7, testInput())
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Len(t, st.orders, 1)
	svc.Flush()
}

func TestSnapshotPriceSurvivesCatalogEdit(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 1)

	svc := NewService(st, &recordingNotifier{})

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)
	svc.Flush()

	// Catalog price change after checkout.
	st.mu.Lock()
	st.books[1].Price = floatPtr(99.99)
	st.mu.Unlock()

	found, err := st.Orders().FindByID(context.Background(), order.ID, 7)
	require.NoError(t, err)
	require.Len(t, found.Lines, 1)
	assert.InDelta(t, 10.00, found.Lines[0].UnitPrice, 0.0001)
	assert.InDelta(t, 10.00, found.TotalAmount, 0.0001)
}

//
// --- CancelOrder ---
//

func TestCancelOrderPendingSucceeds(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)
	st.addCartLine(7, 1, 1)

	svc := NewService(st, &recordingNotifier{})

	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)
	svc.Flush()

	cancelled, err := svc.CancelOrder(context.Background(), 7, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)

	// A second cancel must fail: the order is no longer pending.
	_, err = svc.CancelOrder(context.Background(), 7, order.ID)
	var badState *InvalidStateTransitionError
	require.ErrorAs(t, err, &badState)
	assert.Equal(t, models.OrderStatusCancelled, badState.Current)
}

func TestCancelOrderNonPendingFails(t *testing.T) {
	st := newMemStore()
	st.orders[1] = &models.Order{ID: 1, UserID: 7, Status: models.OrderStatusConfirmed}
	st.nextOrderID = 1

	svc := NewService(st, &recordingNotifier{})

	_, err := svc.CancelOrder(context.Background(), 7, 1)
	var badState *InvalidStateTransitionError
	require.ErrorAs(t, err, &badState)
	assert.Equal(t, models.OrderStatusConfirmed, badState.Current)

	// Status unchanged.
	assert.Equal(t, models.OrderStatusConfirmed, st.orders[1].Status)
}

func TestCancelOrderNotFound(t *testing.T) {
	st := newMemStore()
	st.orders[1] = &models.Order{ID: 1, UserID: 8, Status: models.OrderStatusPending}
	st.nextOrderID = 1

	svc := NewService(st, &recordingNotifier{})

	// Missing order.
	_, err := svc.CancelOrder(context.Background(), 7, 99)
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// Somebody else's order looks identical to a missing one.
	_, err = svc.CancelOrder(context.Background(), 7, 1)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Equal(t, models.OrderStatusPending, st.orders[1].Status)
}

//
// --- Reorder ---
//

func seedOriginalOrder(t *testing.T, st *memStore, svc *Service) *models.Order {
	t.Helper()
	st.addCartLine(7, 1, 2)
	order, err := svc.CreateOrder(context.Background(), 7, testInput())
	require.NoError(t, err)
	svc.Flush()
	return order
}

func TestReorderUsesCurrentPricesNotSnapshot(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)

	notifier := &recordingNotifier{}
	svc := NewService(st, notifier)
	original := seedOriginalOrder(t, st, svc)

	// Price rises after the original purchase.
	st.mu.Lock()
	st.books[1].Price = floatPtr(15.00)
	st.mu.Unlock()

	reordered, err := svc.Reorder(context.Background(), 7, original.ID, ReorderInput{
		Shipping:      testInput().Shipping,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.Len(t, reordered.Lines, 1)
	assert.InDelta(t, 15.00, reordered.Lines[0].UnitPrice, 0.0001)
	assert.InDelta(t, 30.00, reordered.TotalAmount, 0.0001)
	assert.NotEqual(t, original.ID, reordered.ID)
	assert.Equal(t, models.OrderStatusPending, reordered.Status)

	// Contact details are copied from the original order.
	assert.Equal(t, original.CustomerEmail, reordered.CustomerEmail)
	assert.Equal(t, original.CustomerPhone, reordered.CustomerPhone)

	// The original order's frozen prices are untouched.
	foundOriginal, err := st.Orders().FindByID(context.Background(), original.ID, 7)
	require.NoError(t, err)
	assert.InDelta(t, 10.00, foundOriginal.Lines[0].UnitPrice, 0.0001)
}

func TestReorderLeavesCartAloneAndSendsNothing(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)
	st.addBook(2, "Cart Filler", floatPtr(5.00), models.AvailabilityAvailable)

	notifier := &recordingNotifier{}
	svc := NewService(st, notifier)
	original := seedOriginalOrder(t, st, svc)

	customerBefore, adminBefore := notifier.counts()

	// The user has a fresh cart going when they reorder.
	st.addCartLine(7, 2, 3)

	_, err := svc.Reorder(context.Background(), 7, original.ID, ReorderInput{
		Shipping:      testInput().Shipping,
		PaymentMethod: "card",
	})
	require.NoError(t, err)

	// Cart untouched by the reorder.
	lines, err := st.Carts().ListLines(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	// No notifications for reorders.
	svc.Flush()
	customerAfter, adminAfter := notifier.counts()
	assert.Equal(t, customerBefore, customerAfter)
	assert.Equal(t, adminBefore, adminAfter)
}

func TestReorderUnavailableBookBlocks(t *testing.T) {
	st := newMemStore()
	st.addBook(1, "Some Book", floatPtr(10.00), models.AvailabilityAvailable)

	svc := NewService(st, &recordingNotifier{})
	original := seedOriginalOrder(t, st, svc)

	st.mu.Lock()
	st.books[1].Availability = models.AvailabilityOutOfStock
	st.mu.Unlock()

	_, err := svc.Reorder(context.Background(), 7, original.ID, ReorderInput{
		Shipping:      testInput().Shipping,
		PaymentMethod: "card",
	})
	var unavailable *BookUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Some Book", unavailable.Title)

	// Only the original order exists.
	assert.Len(t, st.orders, 1)
}

func TestReorderUnknownOrder(t *testing.T) {
	st := newMemStore()
	svc := NewService(st, &recordingNotifier{})

	_, err := svc.Reorder(context.Background(), 7, 42, ReorderInput{
		Shipping:      testInput().Shipping,
		PaymentMethod: "card",
	})
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

//
// --- Stale order sweep ---
//

func TestCancelStaleOrders(t *testing.T) {
	st := newMemStore()
	st.orders[1] = &models.Order{ID: 1, UserID: 7, Status: models.OrderStatusPending, CreatedAt: time.Now().Add(-72 * time.Hour)}
	st.orders[2] = &models.Order{ID: 2, UserID: 7, Status: models.OrderStatusPending, CreatedAt: time.Now().Add(-1 * time.Hour)}
	st.orders[3] = &models.Order{ID: 3, UserID: 7, Status: models.OrderStatusConfirmed, CreatedAt: time.Now().Add(-72 * time.Hour)}
	st.nextOrderID = 3

	svc := NewService(st, &recordingNotifier{})

	cancelled, err := svc.CancelStaleOrders(context.Background(), 48*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cancelled)

	assert.Equal(t, models.OrderStatusCancelled, st.orders[1].Status)
	assert.Equal(t, models.OrderStatusPending, st.orders[2].Status)
	assert.Equal(t, models.OrderStatusConfirmed, st.orders[3].Status)
}
