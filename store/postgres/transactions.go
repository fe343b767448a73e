package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

const transactionColumns = `
	t.id, t.description, t.amount, t.type, t.category_id, c.name, t.date, t.user_id, t.created_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	tx.CreatedAt = time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (id, description, amount, type, category_id, date, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, tx.ID, tx.Description, tx.Amount, tx.Type, nullStringPtr(tx.CategoryID),
		tx.Date, tx.UserID, tx.CreatedAt)
	return err
}

func (s *Store) GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.id = $1
	`, id)

	tx, err := scanTransactionRow(row.Scan)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotFound
	}
	return tx, err
}

func (s *Store) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET description = $2, amount = $3, type = $4, category_id = $5, date = $6
		WHERE id = $1
	`, tx.ID, tx.Description, tx.Amount, tx.Type, nullStringPtr(tx.CategoryID), tx.Date)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (s *Store) ListTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error) {
	return s.listTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1
		ORDER BY t.created_at, t.id
	`, userID)
}

func (s *Store) ListTransactionsInRange(ctx context.Context, userID string, start, end models.Date) ([]models.Transaction, error) {
	return s.listTransactions(ctx, `
		SELECT `+transactionColumns+`
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE t.user_id = $1 AND t.date BETWEEN $2 AND $3
		ORDER BY t.date DESC, t.created_at DESC
	`, userID, start, end)
}

func (s *Store) listTransactions(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		tx, err := scanTransactionRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func scanTransactionRow(scan func(...interface{}) error) (*models.Transaction, error) {
	var tx models.Transaction
	var categoryID, categoryName sql.NullString

	err := scan(&tx.ID, &tx.Description, &tx.Amount, &tx.Type, &categoryID,
		&categoryName, &tx.Date, &tx.UserID, &tx.CreatedAt)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		tx.CategoryID = &categoryID.String
	}
	if categoryName.Valid {
		tx.CategoryName = &categoryName.String
	}
	return &tx, nil
}
