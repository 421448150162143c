package store

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

type cartStore struct {
	q querier
}

func (s *cartStore) ListLines(ctx context.Context, ownerID int64) ([]models.CartLine, error) {
	rows, err := s.q.QueryContext(ctx, `
		SELECT
			cl.id, cl.user_id, cl.book_id, cl.quantity, cl.created_at, cl.updated_at,
			b.id, b.title, b.authors, b.categories, b.description, b.price,
			b.availability, b.isbn, b.external_id, b.created_at, b.updated_at
		FROM cart_lines cl
		JOIN books b ON cl.book_id = b.id
		WHERE cl.user_id = ?
		ORDER BY cl.created_at ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		var line models.CartLine
		book, err := scanCartLine(rows.Scan, &line)
		if err != nil {
			return nil, err
		}
		line.Book = book
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// scanCartLine scans the line columns followed by the joined book columns.
func scanCartLine(scan func(dest ...any) error, line *models.CartLine) (*models.Book, error) {
	var book models.Book
	var dbAuthors, dbCategories []byte

	if err := scan(
		&line.ID, &line.UserID, &line.BookID, &line.Quantity, &line.CreatedAt, &line.UpdatedAt,
		&book.ID, &book.Title, &dbAuthors, &dbCategories, &book.Description, &book.Price,
		&book.Availability, &book.ISBN, &book.ExternalID, &book.CreatedAt, &book.UpdatedAt,
	); err != nil {
		return nil, err
	}

	decodeJSONList(dbAuthors, &book.Authors)
	decodeJSONList(dbCategories, &book.Categories)
	return &book, nil
}

func (s *cartStore) Upsert(ctx context.Context, ownerID, bookID int64, quantity int) error {
	now := time.Now()
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO cart_lines (user_id, book_id, quantity, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			quantity = quantity + VALUES(quantity),
			updated_at = VALUES(updated_at)`,
		ownerID, bookID, quantity, now, now)
	return err
}

func (s *cartStore) SetQuantity(ctx context.Context, ownerID, bookID int64, quantity int) (bool, error) {
	result, err := s.q.ExecContext(ctx, `
		UPDATE cart_lines
		SET quantity = ?, updated_at = ?
		WHERE user_id = ? AND book_id = ?`,
		quantity, time.Now(), ownerID, bookID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *cartStore) DeleteLine(ctx context.Context, ownerID, bookID int64) (bool, error) {
	result, err := s.q.ExecContext(ctx,
		"DELETE FROM cart_lines WHERE user_id = ? AND book_id = ?", ownerID, bookID)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *cartStore) DeleteAll(ctx context.Context, ownerID int64) error {
	_, err := s.q.ExecContext(ctx, "DELETE FROM cart_lines WHERE user_id = ?", ownerID)
	return err
}
