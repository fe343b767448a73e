package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, password_hash, totp_secret, totp_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Username, user.Email, user.PasswordHash, nullString(user.TOTPSecret), user.TOTPEnabled, user.CreatedAt, user.UpdatedAt)
	return err
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, totp_secret, totp_enabled, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id))
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx, `
		SELECT id, username, email, password_hash, totp_secret, totp_enabled, created_at, updated_at
		FROM users
		WHERE username = $1
	`, username))
}

func (s *Store) UpdateUser(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET email = $2, password_hash = $3, totp_secret = $4, totp_enabled = $5, updated_at = $6
		WHERE id = $1
	`, user.ID, user.Email, user.PasswordHash, nullString(user.TOTPSecret), user.TOTPEnabled, user.UpdatedAt)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) UsernameExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	return exists, err
}

func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (s *Store) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var totpSecret sql.NullString

	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&totpSecret, &user.TOTPEnabled, &user.CreatedAt, &user.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.TOTPSecret = totpSecret.String
	return &user, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
