package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

type bookStore struct {
	q querier
}

const bookColumns = `id, title, authors, categories, description, price, availability, isbn, external_id, created_at, updated_at`

// scanBook scans one row into a Book, decoding the JSON columns.
func scanBook(scan func(dest ...any) error) (*models.Book, error) {
	var book models.Book
	var dbAuthors, dbCategories []byte

	if err := scan(
		&book.ID,
		&book.Title,
		&dbAuthors,
		&dbCategories,
		&book.Description,
		&book.Price,
		&book.Availability,
		&book.ISBN,
		&book.ExternalID,
		&book.CreatedAt,
		&book.UpdatedAt,
	); err != nil {
		return nil, err
	}

	decodeJSONList(dbAuthors, &book.Authors)
	decodeJSONList(dbCategories, &book.Categories)
	return &book, nil
}

// decodeJSONList unmarshals a JSON array column, defaulting to an empty
// slice so responses never serialize null.
func decodeJSONList(data []byte, out *[]string) {
	if len(data) > 0 {
		_ = json.Unmarshal(data, out)
	}
	if *out == nil {
		*out = []string{}
	}
}

func marshalList(values []string) []byte {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return data
}

func (s *bookStore) GetByID(ctx context.Context, id int64) (*models.Book, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+bookColumns+" FROM books WHERE id = ?", id)
	book, err := scanBook(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return book, nil
}

func (s *bookStore) GetByExternalID(ctx context.Context, externalID string) (*models.Book, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+bookColumns+" FROM books WHERE external_id = ?", externalID)
	book, err := scanBook(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return book, nil
}

func (s *bookStore) List(ctx context.Context, filter BookFilter) ([]models.Book, int, error) {
	var where strings.Builder
	var args []interface{}

	where.WriteString(" WHERE 1=1")
	if filter.Query != "" {
		where.WriteString(" AND (title LIKE ? OR authors LIKE ? OR description LIKE ?)")
		term := "%" + filter.Query + "%"
		args = append(args, term, term, term)
	}
	if filter.Category != "" {
		where.WriteString(" AND categories LIKE ?")
		args = append(args, "%"+filter.Category+"%")
	}
	if filter.Availability != "" {
		where.WriteString(" AND availability = ?")
		args = append(args, filter.Availability)
	}
	if filter.MinPrice != nil {
		where.WriteString(" AND price >= ?")
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		where.WriteString(" AND price <= ?")
		args = append(args, *filter.MaxPrice)
	}

	var total int
	if err := s.q.QueryRowContext(ctx, "SELECT COUNT(*) FROM books"+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	query := "SELECT " + bookColumns + " FROM books" + where.String() +
		" ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var books []models.Book
	for rows.Next() {
		book, err := scanBook(rows.Scan)
		if err != nil {
			return nil, 0, err
		}
		books = append(books, *book)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return books, total, nil
}

func (s *bookStore) Create(ctx context.Context, book *models.Book) error {
	now := time.Now()
	book.CreatedAt = now
	book.UpdatedAt = now
	if book.Availability == "" {
		book.Availability = models.AvailabilityAvailable
	}

	result, err := s.q.ExecContext(ctx, `
		INSERT INTO books
		(title, authors, categories, description, price, availability, isbn, external_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		book.Title,
		marshalList(book.Authors),
		marshalList(book.Categories),
		book.Description,
		book.Price,
		book.Availability,
		book.ISBN,
		book.ExternalID,
		book.CreatedAt,
		book.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	book.ID = id
	return nil
}

func (s *bookStore) Update(ctx context.Context, book *models.Book) (bool, error) {
	book.UpdatedAt = time.Now()

	result, err := s.q.ExecContext(ctx, `
		UPDATE books
		SET title = ?, authors = ?, categories = ?, description = ?, price = ?,
		    availability = ?, isbn = ?, updated_at = ?
		WHERE id = ?`,
		book.Title,
		marshalList(book.Authors),
		marshalList(book.Categories),
		book.Description,
		book.Price,
		book.Availability,
		book.ISBN,
		book.UpdatedAt,
		book.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *bookStore) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := s.q.ExecContext(ctx, "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *bookStore) UpdateAvailability(ctx context.Context, id int64, availability string) (bool, error) {
	result, err := s.q.ExecContext(ctx,
		"UPDATE books SET availability = ?, updated_at = ? WHERE id = ?",
		availability, time.Now(), id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
