// Package memory implements store.Store with plain slices. It keeps
// insertion order, which makes the "first match wins" behavior of the mirror
// synchronizer deterministic in tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

type Store struct {
	mu           sync.Mutex
	users        []models.User
	categories   []models.Category
	expenses     []models.Expense
	transactions []models.Transaction
}

func New() *Store {
	return &Store{}
}

// ============================================================================
// USERS
// ============================================================================

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("duplicate username %q", user.Username)
		}
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	s.users = append(s.users, *user)
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == user.ID {
			s.users[i] = *user
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) UsernameExists(_ context.Context, username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ============================================================================
// CATEGORIES
// ============================================================================

func (s *Store) CreateCategory(_ context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.categories {
		if c.Name == category.Name {
			return fmt.Errorf("duplicate category %q", category.Name)
		}
	}
	s.categories = append(s.categories, *category)
	return nil
}

func (s *Store) GetCategoryByID(_ context.Context, id string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) GetCategoryByName(_ context.Context, name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].Name == name {
			c := s.categories[i]
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) ListCategories(_ context.Context) ([]models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *Store) DeleteCategory(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.categories {
		if s.categories[i].ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) categoryName(id *string) *string {
	if id == nil {
		return nil
	}
	for i := range s.categories {
		if s.categories[i].ID == *id {
			name := s.categories[i].Name
			return &name
		}
	}
	return nil
}

// ============================================================================
// EXPENSES
// ============================================================================

func (s *Store) CreateExpense(_ context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append(s.expenses, *expense)
	return nil
}

func (s *Store) GetExpenseByID(_ context.Context, id string) (*models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			e := s.expenses[i]
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateExpense(_ context.Context, expense *models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID == expense.ID {
			s.expenses[i] = *expense
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteExpense(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListExpensesByUserDateDesc(_ context.Context, userID string) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.expensesOf(userID)
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

func (s *Store) ListExpensesInRange(_ context.Context, userID string, start, end models.Date) ([]models.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Expense{}
	for _, e := range s.expensesOf(userID) {
		if inRange(e.Date, start, end) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

func (s *Store) expensesOf(userID string) []models.Expense {
	out := []models.Expense{}
	for _, e := range s.expenses {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

// ============================================================================
// EXPENSE AGGREGATIONS
// ============================================================================

func (s *Store) TotalByCategory(_ context.Context, userID string) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := map[string]float64{}
	for _, e := range s.expensesOf(userID) {
		totals[derefOrEmpty(e.Category)] += e.Amount
	}
	return totals, nil
}

func (s *Store) TotalByMonth(_ context.Context, userID string) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := map[string]float64{}
	for _, e := range s.expensesOf(userID) {
		totals[fmt.Sprintf("%04d-%02d", e.Date.Year(), int(e.Date.Month()))] += e.Amount
	}
	return totals, nil
}

func (s *Store) TotalInRange(_ context.Context, userID string, start, end models.Date) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, e := range s.expensesOf(userID) {
		if inRange(e.Date, start, end) {
			total += e.Amount
		}
	}
	return total, nil
}

func (s *Store) TotalByCategoryInRange(_ context.Context, userID string, start, end models.Date) (map[string]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	totals := map[string]float64{}
	for _, e := range s.expensesOf(userID) {
		if inRange(e.Date, start, end) {
			totals[derefOrEmpty(e.Category)] += e.Amount
		}
	}
	return totals, nil
}

// ============================================================================
// TRANSACTIONS
// ============================================================================

func (s *Store) CreateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *tx
	stored.CategoryName = s.categoryName(stored.CategoryID)
	s.transactions = append(s.transactions, stored)
	return nil
}

func (s *Store) GetTransactionByID(_ context.Context, id string) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			tx := s.transactions[i]
			tx.CategoryName = s.categoryName(tx.CategoryID)
			return &tx, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *Store) UpdateTransaction(_ context.Context, tx *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			stored := *tx
			stored.CategoryName = s.categoryName(stored.CategoryID)
			s.transactions[i] = stored
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) DeleteTransaction(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.transactions {
		if s.transactions[i].ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (s *Store) ListTransactionsByUser(_ context.Context, userID string) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactionsOf(userID), nil
}

func (s *Store) ListTransactionsInRange(_ context.Context, userID string, start, end models.Date) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Transaction{}
	for _, tx := range s.transactionsOf(userID) {
		if inRange(tx.Date, start, end) {
			out = append(out, tx)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	return out, nil
}

func (s *Store) transactionsOf(userID string) []models.Transaction {
	out := []models.Transaction{}
	for _, tx := range s.transactions {
		if tx.UserID == userID {
			tx.CategoryName = s.categoryName(tx.CategoryID)
			out = append(out, tx)
		}
	}
	return out
}

func inRange(d, start, end models.Date) bool {
	return !d.Before(start) && !d.After(end)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
