package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

type orderStore struct {
	q querier
}

const orderColumns = `id, reference, user_id, status, total_amount,
	shipping_street, shipping_city, shipping_region, shipping_postal_code, shipping_country,
	payment_method, customer_email, customer_phone, notes, created_at, updated_at`

func scanOrder(scan func(dest ...any) error) (*models.Order, error) {
	var o models.Order
	if err := scan(
		&o.ID, &o.Reference, &o.UserID, &o.Status, &o.TotalAmount,
		&o.ShippingStreet, &o.ShippingCity, &o.ShippingRegion, &o.ShippingPostalCode, &o.ShippingCountry,
		&o.PaymentMethod, &o.CustomerEmail, &o.CustomerPhone, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *orderStore) Create(ctx context.Context, order *models.Order) error {
	result, err := s.q.ExecContext(ctx, `
		INSERT INTO orders
		(reference, user_id, status, total_amount,
		 shipping_street, shipping_city, shipping_region, shipping_postal_code, shipping_country,
		 payment_method, customer_email, customer_phone, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		order.Reference, order.UserID, order.Status, order.TotalAmount,
		order.ShippingStreet, order.ShippingCity, order.ShippingRegion,
		order.ShippingPostalCode, order.ShippingCountry,
		order.PaymentMethod, order.CustomerEmail, order.CustomerPhone,
		order.Notes, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	order.ID = id
	return nil
}

func (s *orderStore) CreateLines(ctx context.Context, lines []models.OrderLine) ([]models.OrderLine, error) {
	for i := range lines {
		result, err := s.q.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, book_id, quantity, unit_price, created_at)
			VALUES (?, ?, ?, ?, ?)`,
			lines[i].OrderID, lines[i].BookID, lines[i].Quantity, lines[i].UnitPrice, lines[i].CreatedAt)
		if err != nil {
			return nil, err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, err
		}
		lines[i].ID = id
	}
	return lines, nil
}

func (s *orderStore) FindByID(ctx context.Context, id, ownerID int64) (*models.Order, error) {
	row := s.q.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = ? AND user_id = ?", id, ownerID)
	order, err := scanOrder(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	// LEFT JOIN: a book deleted from the catalog must not hide the line,
	// the order still owns its snapshot of the purchase.
	rows, err := s.q.QueryContext(ctx, `
		SELECT ol.id, ol.order_id, ol.book_id, ol.quantity, ol.unit_price, ol.created_at,
		       COALESCE(b.title, '')
		FROM order_lines ol
		LEFT JOIN books b ON ol.book_id = b.id
		WHERE ol.order_id = ?
		ORDER BY ol.id ASC`, order.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line models.OrderLine
		if err := rows.Scan(
			&line.ID, &line.OrderID, &line.BookID, &line.Quantity,
			&line.UnitPrice, &line.CreatedAt, &line.BookTitle,
		); err != nil {
			return nil, err
		}
		order.Lines = append(order.Lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *orderStore) ListByOwner(ctx context.Context, ownerID int64) ([]models.Order, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = ? ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

func (s *orderStore) UpdateStatus(ctx context.Context, id, ownerID int64, from, to string) (bool, error) {
	result, err := s.q.ExecContext(ctx, `
		UPDATE orders
		SET status = ?, updated_at = ?
		WHERE id = ? AND user_id = ? AND status = ?`,
		to, time.Now(), id, ownerID, from)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *orderStore) CancelStalePending(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.q.ExecContext(ctx, `
		UPDATE orders
		SET status = ?, updated_at = ?
		WHERE status = ? AND created_at < ?`,
		models.OrderStatusCancelled, time.Now(), models.OrderStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
