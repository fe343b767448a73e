package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
	"github.com/myfinance/tracker-api/utils"
)

// TransactionService owns the transaction side of the mirror relationship.
// Debit transactions mirror into expenses on create and delete; transaction
// updates never propagate back to expenses, only expense edits chase their
// mirror. That asymmetry is deliberate.
type TransactionService struct {
	store store.Store
}

func NewTransactionService(s store.Store) *TransactionService {
	return &TransactionService{store: s}
}

// SaveTransaction persists a new transaction for the user. categoryID may be
// empty; a non-empty id that resolves to nothing is an error. Debit
// transactions (case-insensitive) get a best-effort mirror expense.
func (s *TransactionService) SaveTransaction(ctx context.Context, username string, req models.TransactionRequest, categoryID string) (*models.Transaction, MirrorResult, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, mirrorSkipped(), err
	}

	tx := &models.Transaction{
		ID:          uuid.New().String(),
		Description: req.Description,
		Amount:      amountOrZero(req.Amount),
		Type:        req.Type,
		Date:        req.Date,
		UserID:      user.ID,
	}

	var category *models.Category
	if categoryID != "" {
		category, err = s.store.GetCategoryByID(ctx, categoryID)
		if err != nil {
			return nil, mirrorSkipped(), err
		}
		tx.CategoryID = &category.ID
		tx.CategoryName = &category.Name
	}

	if err := s.store.CreateTransaction(ctx, tx); err != nil {
		return nil, mirrorSkipped(), err
	}

	if !strings.EqualFold(tx.Type, models.TransactionDebit) {
		// Credits are income; they never mirror into the expense table.
		return tx, mirrorSkipped(), nil
	}
	return tx, s.mirrorExpense(ctx, tx, category), nil
}

// GetTransactionsByUsername lists all of the user's transactions in
// insertion order.
func (s *TransactionService) GetTransactionsByUsername(ctx context.Context, username string) ([]models.Transaction, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.ListTransactionsByUser(ctx, user.ID)
}

// GetTransactionsInRange lists the user's transactions with dates in
// [start, end], newest first.
func (s *TransactionService) GetTransactionsInRange(ctx context.Context, username string, start, end models.Date) ([]models.Transaction, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.ListTransactionsInRange(ctx, user.ID, start, end)
}

// DeleteTransaction removes the transaction after ownership checks. For
// debits it first attempts to delete the matching expense: equal amount and
// date, and either an empty transaction description or a title equal to it.
// Candidates are scanned newest date first; every error on that path is
// swallowed, the transaction delete always proceeds.
func (s *TransactionService) DeleteTransaction(ctx context.Context, username, id string) (MirrorResult, error) {
	tx, err := s.store.GetTransactionByID(ctx, id)
	if err != nil {
		return mirrorSkipped(), err
	}
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return mirrorSkipped(), err
	}
	if tx.UserID != user.ID {
		return mirrorSkipped(), ErrUnauthorized
	}

	mirror := mirrorSkipped()
	if strings.EqualFold(tx.Type, models.TransactionDebit) {
		mirror = s.deleteMirrorExpense(ctx, tx)
	}

	if err := s.store.DeleteTransaction(ctx, tx.ID); err != nil {
		return mirror, err
	}
	return mirror, nil
}

// GetSummaryByUsername computes the dashboard aggregate over all of the
// user's transactions. Credit (case-insensitive) counts as income; any other
// type, including blank, counts as expense.
func (s *TransactionService) GetSummaryByUsername(ctx context.Context, username string) (*models.Summary, error) {
	transactions, err := s.GetTransactionsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{}
	for _, tx := range transactions {
		if strings.EqualFold(tx.Type, models.TransactionCredit) {
			summary.Income += tx.Amount
		} else {
			summary.Expense += tx.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expense
	return summary, nil
}

// GetCategorySummary sums the user's transactions per category name.
// Transactions without a category are skipped.
func (s *TransactionService) GetCategorySummary(ctx context.Context, username string) (map[string]float64, error) {
	transactions, err := s.GetTransactionsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	totals := map[string]float64{}
	for _, tx := range transactions {
		if tx.CategoryName == nil {
			continue
		}
		totals[*tx.CategoryName] += tx.Amount
	}
	return totals, nil
}

// ============================================================================
// MIRROR SIDE (best-effort, errors swallowed)
// ============================================================================

func (s *TransactionService) mirrorExpense(ctx context.Context, tx *models.Transaction, category *models.Category) MirrorResult {
	expense := &models.Expense{
		ID:     uuid.New().String(),
		Title:  tx.Description,
		Amount: tx.Amount,
		Date:   tx.Date,
		UserID: tx.UserID,
	}
	if category != nil {
		expense.Category = &category.Name
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		utils.Warnf("⚠️ Mirror expense for transaction %s not created: %v", tx.ID, err)
		return mirrorFailed(err)
	}
	return mirrorSynced()
}

func (s *TransactionService) deleteMirrorExpense(ctx context.Context, tx *models.Transaction) MirrorResult {
	expenses, err := s.store.ListExpensesByUserDateDesc(ctx, tx.UserID)
	if err != nil {
		utils.Warnf("⚠️ Mirror expense lookup for transaction %s failed: %v", tx.ID, err)
		return mirrorFailed(err)
	}

	for i := range expenses {
		e := &expenses[i]
		if e.Amount != tx.Amount || !e.Date.Equal(tx.Date) {
			continue
		}
		if tx.Description != "" && e.Title != tx.Description {
			continue
		}
		if err := s.store.DeleteExpense(ctx, e.ID); err != nil {
			utils.Warnf("⚠️ Mirror expense %s not deleted: %v", e.ID, err)
			return mirrorFailed(err)
		}
		return mirrorSynced()
	}
	return mirrorSkipped()
}
