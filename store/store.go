// Package store defines the persistence interfaces consumed by the service
// layer. This abstraction allows swapping storage backends (PostgreSQL in
// production, in-memory in tests) without changing the services.
package store

import (
	"context"
	"errors"

	"github.com/myfinance/tracker-api/models"
)

// ErrNotFound is returned when a looked-up entity does not exist.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, category *models.Category) error
	GetCategoryByID(ctx context.Context, id string) (*models.Category, error)
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type ExpenseStore interface {
	CreateExpense(ctx context.Context, expense *models.Expense) error
	GetExpenseByID(ctx context.Context, id string) (*models.Expense, error)
	UpdateExpense(ctx context.Context, expense *models.Expense) error
	DeleteExpense(ctx context.Context, id string) error

	// ListExpensesByUserDateDesc returns the user's expenses newest date
	// first. This is the scan order for mirror-deletion candidates.
	ListExpensesByUserDateDesc(ctx context.Context, userID string) ([]models.Expense, error)
	ListExpensesInRange(ctx context.Context, userID string, start, end models.Date) ([]models.Expense, error)

	// Aggregations for the report endpoints. All tolerate zero rows.
	TotalByCategory(ctx context.Context, userID string) (map[string]float64, error)
	TotalByMonth(ctx context.Context, userID string) (map[string]float64, error)
	TotalInRange(ctx context.Context, userID string, start, end models.Date) (float64, error)
	TotalByCategoryInRange(ctx context.Context, userID string, start, end models.Date) (map[string]float64, error)
}

type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, id string) error

	// ListTransactionsByUser returns the user's transactions in insertion
	// order. Mirror matching takes the first hit in this order.
	ListTransactionsByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	ListTransactionsInRange(ctx context.Context, userID string, start, end models.Date) ([]models.Transaction, error)
}

// Store bundles all entity stores behind one value, which is how the service
// layer receives its persistence.
type Store interface {
	UserStore
	CategoryStore
	ExpenseStore
	TransactionStore
}
