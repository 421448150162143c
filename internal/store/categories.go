package store

import (
	"context"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

type categoryStore struct {
	q querier
}

func (s *categoryStore) Create(ctx context.Context, category *models.Category) error {
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	result, err := s.q.ExecContext(ctx, `
		INSERT INTO categories (name, slug, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		category.Name, category.Slug, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	category.ID = id
	return nil
}

func (s *categoryStore) List(ctx context.Context) ([]models.Category, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, name, slug, created_at, updated_at FROM categories ORDER BY name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
