package store

import (
	"context"
	"database/sql"
	"fmt"
)

// querier is satisfied by both *sql.DB and *sql.Tx so the same query code
// runs inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore is the MySQL-backed Store.
type SQLStore struct {
	db *sql.DB
	q  querier
}

// NewSQLStore wraps an open connection pool.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db, q: db}
}

func (s *SQLStore) Carts() CartStore          { return &cartStore{q: s.q} }
func (s *SQLStore) Books() BookStore          { return &bookStore{q: s.q} }
func (s *SQLStore) Orders() OrderStore        { return &orderStore{q: s.q} }
func (s *SQLStore) Users() UserStore          { return &userStore{q: s.q} }
func (s *SQLStore) Categories() CategoryStore { return &categoryStore{q: s.q} }

// WithTx runs fn inside a Serializable transaction. Serializable is what
// carries the checkout consistency guarantees: concurrent checkouts against
// the same cart cannot both observe the lines, so the loser sees an empty
// cart instead of double-spending it.
func (s *SQLStore) WithTx(ctx context.Context, fn func(Store) error) error {
	if _, inTx := s.q.(*sql.Tx); inTx {
		// Already inside a transaction scope; just reuse it.
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net; no-op after Commit.

	if err := fn(&SQLStore{db: s.db, q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
