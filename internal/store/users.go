package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/bookhaven/bookhaven-golang/internal/models"
)

type userStore struct {
	q querier
}

const userColumns = `id, role, status, email, password_hash, full_name, phone_number,
	verification_code, verification_expiry, created_at, updated_at`

func scanUser(scan func(dest ...any) error) (*models.User, error) {
	var u models.User
	if err := scan(
		&u.ID, &u.Role, &u.Status, &u.Email, &u.PasswordHash, &u.FullName, &u.PhoneNumber,
		&u.VerificationCode, &u.VerificationExpiry, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *userStore) Create(ctx context.Context, user *models.User) error {
	result, err := s.q.ExecContext(ctx, `
		INSERT INTO users
		(role, status, email, password_hash, full_name, phone_number,
		 verification_code, verification_expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		user.Role, user.Status, user.Email, user.PasswordHash, user.FullName, user.PhoneNumber,
		user.VerificationCode, user.VerificationExpiry, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE email = ?", email)
	user, err := scanUser(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *userStore) MarkVerified(ctx context.Context, id int64) error {
	_, err := s.q.ExecContext(ctx, `
		UPDATE users
		SET status = ?, verification_code = NULL, verification_expiry = NULL, updated_at = ?
		WHERE id = ?`,
		models.UserStatusActive, time.Now(), id)
	return err
}

func (s *userStore) SetVerificationCode(ctx context.Context, id int64, code string, expiry time.Time) error {
	_, err := s.q.ExecContext(ctx, `
		UPDATE users
		SET verification_code = ?, verification_expiry = ?, updated_at = ?
		WHERE id = ?`,
		code, expiry, time.Now(), id)
	return err
}
