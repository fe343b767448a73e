package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
	"github.com/myfinance/tracker-api/utils"
)

// ExpenseService owns the expense side of the mirror relationship: every
// expense mutation is followed by a best-effort write to the matching debit
// transaction. There is no shared key between the two tables, so the match
// is heuristic (description/amount/date, first hit in insertion order) and
// lossy under duplicates.
type ExpenseService struct {
	store store.Store
}

func NewExpenseService(s store.Store) *ExpenseService {
	return &ExpenseService{store: s}
}

// AddExpense persists a new expense for the user, then mirrors it into a
// debit transaction. Mirror failure never fails the expense creation.
func (s *ExpenseService) AddExpense(ctx context.Context, username string, req models.ExpenseRequest) (*models.Expense, MirrorResult, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, mirrorSkipped(), err
	}

	expense := &models.Expense{
		ID:       uuid.New().String(),
		Title:    req.Title,
		Amount:   amountOrZero(req.Amount),
		Category: req.Category,
		Date:     req.Date,
		UserID:   user.ID,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, mirrorSkipped(), err
	}

	return expense, s.mirrorCreate(ctx, expense), nil
}

// GetUserExpensesInRange lists the user's expenses with dates in
// [start, end], newest first.
func (s *ExpenseService) GetUserExpensesInRange(ctx context.Context, username string, start, end models.Date) ([]models.Expense, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.ListExpensesInRange(ctx, user.ID, start, end)
}

// UpdateExpense overwrites title/amount/category/date after ownership
// checks, then patches the first debit transaction whose description equals
// the updated title. Matching runs against the post-update title, so
// renaming an expense orphans its old mirror unless another debit
// transaction already carries the new title.
func (s *ExpenseService) UpdateExpense(ctx context.Context, username, id string, req models.ExpenseRequest) (*models.Expense, MirrorResult, error) {
	expense, err := s.ownedExpense(ctx, username, id)
	if err != nil {
		return nil, mirrorSkipped(), err
	}

	expense.Title = req.Title
	expense.Amount = amountOrZero(req.Amount)
	expense.Category = req.Category
	expense.Date = req.Date

	if err := s.store.UpdateExpense(ctx, expense); err != nil {
		return nil, mirrorSkipped(), err
	}

	return expense, s.mirrorPatch(ctx, expense), nil
}

// DeleteExpense removes the expense after ownership checks, then deletes the
// first debit transaction matching the deleted title. No match is a no-op.
func (s *ExpenseService) DeleteExpense(ctx context.Context, username, id string) (MirrorResult, error) {
	expense, err := s.ownedExpense(ctx, username, id)
	if err != nil {
		return mirrorSkipped(), err
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		return mirrorSkipped(), err
	}

	return s.mirrorDelete(ctx, expense), nil
}

func (s *ExpenseService) ownedExpense(ctx context.Context, username, id string) (*models.Expense, error) {
	expense, err := s.store.GetExpenseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if expense.UserID != user.ID {
		return nil, ErrUnauthorized
	}
	return expense, nil
}

// ============================================================================
// MIRROR SIDE (best-effort, errors swallowed)
// ============================================================================

func (s *ExpenseService) mirrorCreate(ctx context.Context, expense *models.Expense) MirrorResult {
	tx := &models.Transaction{
		ID:          uuid.New().String(),
		Description: expense.Title,
		Amount:      expense.Amount,
		Type:        models.TransactionDebit,
		Date:        expense.Date,
		UserID:      expense.UserID,
	}
	tx.CategoryID = s.resolveCategoryID(ctx, expense.Category)

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		utils.Warnf("⚠️ Mirror transaction for expense %s not created: %v", expense.ID, err)
		return mirrorFailed(err)
	}
	return mirrorSynced()
}

func (s *ExpenseService) mirrorPatch(ctx context.Context, expense *models.Expense) MirrorResult {
	match, err := s.findDebitByDescription(ctx, expense.UserID, expense.Title)
	if err != nil {
		utils.Warnf("⚠️ Mirror lookup for expense %s failed: %v", expense.ID, err)
		return mirrorFailed(err)
	}
	if match == nil {
		return mirrorSkipped()
	}

	match.Description = expense.Title
	match.Amount = expense.Amount
	match.Date = expense.Date
	if expense.Category != nil {
		if id := s.resolveCategoryID(ctx, expense.Category); id != nil {
			match.CategoryID = id
		}
	}

	if err := s.store.UpdateTransaction(ctx, match); err != nil {
		utils.Warnf("⚠️ Mirror transaction %s not patched: %v", match.ID, err)
		return mirrorFailed(err)
	}
	return mirrorSynced()
}

func (s *ExpenseService) mirrorDelete(ctx context.Context, expense *models.Expense) MirrorResult {
	match, err := s.findDebitByDescription(ctx, expense.UserID, expense.Title)
	if err != nil {
		utils.Warnf("⚠️ Mirror lookup for deleted expense %s failed: %v", expense.ID, err)
		return mirrorFailed(err)
	}
	if match == nil {
		return mirrorSkipped()
	}

	if err := s.store.DeleteTransaction(ctx, match.ID); err != nil {
		utils.Warnf("⚠️ Mirror transaction %s not deleted: %v", match.ID, err)
		return mirrorFailed(err)
	}
	return mirrorSynced()
}

// findDebitByDescription returns the user's first debit transaction whose
// description equals title, in insertion order. Ambiguity under duplicate
// descriptions resolves to first encountered, not best match.
func (s *ExpenseService) findDebitByDescription(ctx context.Context, userID, title string) (*models.Transaction, error) {
	transactions, err := s.store.ListTransactionsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range transactions {
		tx := &transactions[i]
		if tx.Description == title && strings.EqualFold(tx.Type, models.TransactionDebit) {
			return tx, nil
		}
	}
	return nil, nil
}

func (s *ExpenseService) resolveCategoryID(ctx context.Context, name *string) *string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return nil
	}
	category, err := s.store.GetCategoryByName(ctx, *name)
	if err != nil {
		return nil
	}
	return &category.ID
}

func amountOrZero(amount *float64) float64 {
	if amount == nil {
		return 0.0
	}
	return *amount
}
