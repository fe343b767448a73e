package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

func (s *Store) CreateExpense(ctx context.Context, expense *models.Expense) error {
	expense.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO expenses (id, title, amount, category, date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, expense.ID, expense.Title, expense.Amount, nullStringPtr(expense.Category),
		expense.Date, expense.UserID, expense.CreatedAt)
	return err
}

func (s *Store) GetExpenseByID(ctx context.Context, id string) (*models.Expense, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, amount, category, date, user_id, created_at
		FROM expenses
		WHERE id = $1
	`, id)

	var e models.Expense
	var category sql.NullString
	err := row.Scan(&e.ID, &e.Title, &e.Amount, &category, &e.Date, &e.UserID, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if category.Valid {
		e.Category = &category.String
	}
	return &e, nil
}

func (s *Store) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE expenses
		SET title = $2, amount = $3, category = $4, date = $5
		WHERE id = $1
	`, expense.ID, expense.Title, expense.Amount, nullStringPtr(expense.Category), expense.Date)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) ListExpensesByUserDateDesc(ctx context.Context, userID string) ([]models.Expense, error) {
	return s.listExpenses(ctx, `
		SELECT id, title, amount, category, date, user_id, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
	`, userID)
}

func (s *Store) ListExpensesInRange(ctx context.Context, userID string, start, end models.Date) ([]models.Expense, error) {
	return s.listExpenses(ctx, `
		SELECT id, title, amount, category, date, user_id, created_at
		FROM expenses
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date DESC, created_at DESC
	`, userID, start, end)
}

func (s *Store) listExpenses(ctx context.Context, query string, args ...interface{}) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		var category sql.NullString
		if err := rows.Scan(&e.ID, &e.Title, &e.Amount, &category, &e.Date, &e.UserID, &e.CreatedAt); err != nil {
			return nil, err
		}
		if category.Valid {
			e.Category = &category.String
		}
		expenses = append(expenses, e)
	}
	return expenses, rows.Err()
}

func nullStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
