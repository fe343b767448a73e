package postgres

import (
	"context"
	"database/sql"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	var userID sql.NullString
	if category.UserID != nil {
		userID = sql.NullString{String: *category.UserID, Valid: true}
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name, user_id)
		VALUES ($1, $2, $3)
	`, category.ID, category.Name, userID)
	return err
}

func (s *Store) GetCategoryByID(ctx context.Context, id string) (*models.Category, error) {
	return s.scanCategory(s.db.QueryRowContext(ctx, `
		SELECT id, name, user_id FROM categories WHERE id = $1
	`, id))
}

func (s *Store) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	return s.scanCategory(s.db.QueryRowContext(ctx, `
		SELECT id, name, user_id FROM categories WHERE name = $1
	`, name))
}

func (s *Store) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, user_id FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		var userID sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &userID); err != nil {
			return nil, err
		}
		if userID.Valid {
			c.UserID = &userID.String
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) scanCategory(row *sql.Row) (*models.Category, error) {
	var c models.Category
	var userID sql.NullString
	err := row.Scan(&c.ID, &c.Name, &userID)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if userID.Valid {
		c.UserID = &userID.String
	}
	return &c, nil
}
