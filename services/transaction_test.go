package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

func TestSaveDebitTransactionCreatesMirrorExpense(t *testing.T) {
	s := newSeededStore(t)
	category := seedCategory(t, s, "Transport")

	transactions := NewTransactionService(s)

	tx, mirror, err := transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Bus pass",
		Amount:      floatPtr(30),
		Type:        "Debit", // case-insensitive
		Date:        date(2025, time.August, 1),
	}, category.ID)
	if err != nil {
		t.Fatalf("SaveTransaction failed: %v", err)
	}
	if !mirror.Synced {
		t.Fatalf("expected mirror expense, got %+v", mirror)
	}
	if tx.CategoryName == nil || *tx.CategoryName != "Transport" {
		t.Errorf("category not resolved: %+v", tx)
	}

	expenses, err := NewExpenseService(s).GetUserExpensesInRange(context.Background(), "alice",
		date(2025, time.August, 1), date(2025, time.August, 31))
	if err != nil {
		t.Fatalf("listing expenses failed: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected exactly 1 mirror expense, got %d", len(expenses))
	}
	e := expenses[0]
	if e.Title != "Bus pass" || e.Amount != 30 {
		t.Errorf("unexpected mirror expense: %+v", e)
	}
	if e.Category == nil || *e.Category != "Transport" {
		t.Errorf("mirror expense category mismatch: %+v", e.Category)
	}
}

func TestSaveCreditTransactionNeverMirrors(t *testing.T) {
	s := newSeededStore(t)

	transactions := NewTransactionService(s)

	_, mirror, err := transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Salary",
		Amount:      floatPtr(2500),
		Type:        "credit",
		Date:        date(2025, time.August, 1),
	}, "")
	if err != nil {
		t.Fatalf("SaveTransaction failed: %v", err)
	}
	if mirror.Attempted {
		t.Errorf("credit transactions must not mirror, got %+v", mirror)
	}

	expenses, _ := NewExpenseService(s).GetUserExpensesInRange(context.Background(), "alice",
		date(2025, time.January, 1), date(2025, time.December, 31))
	if len(expenses) != 0 {
		t.Errorf("expected no mirror expense, got %+v", expenses)
	}
}

func TestSaveTransactionUnknownCategoryFails(t *testing.T) {
	s := newSeededStore(t)

	_, _, err := NewTransactionService(s).SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Misc",
		Amount:      floatPtr(1),
		Type:        "debit",
		Date:        date(2025, time.August, 1),
	}, "no-such-category")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound for bad category id, got %v", err)
	}
}

func TestDeleteTransactionRemovesMatchingExpense(t *testing.T) {
	s := newSeededStore(t)

	transactions := NewTransactionService(s)
	tx, _, err := transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Dinner",
		Amount:      floatPtr(42),
		Type:        "debit",
		Date:        date(2025, time.August, 2),
	}, "")
	if err != nil {
		t.Fatalf("SaveTransaction failed: %v", err)
	}

	mirror, err := transactions.DeleteTransaction(context.Background(), "alice", tx.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction failed: %v", err)
	}
	if !mirror.Synced {
		t.Errorf("expected mirror expense deletion, got %+v", mirror)
	}

	expenses, _ := NewExpenseService(s).GetUserExpensesInRange(context.Background(), "alice",
		date(2025, time.January, 1), date(2025, time.December, 31))
	if len(expenses) != 0 {
		t.Errorf("mirror expense should be gone, got %+v", expenses)
	}
}

func TestDeleteTransactionWithoutMatchStillSucceeds(t *testing.T) {
	s := newSeededStore(t)

	transactions := NewTransactionService(s)
	tx, _, err := transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Dinner",
		Amount:      floatPtr(42),
		Type:        "debit",
		Date:        date(2025, time.August, 2),
	}, "")
	if err != nil {
		t.Fatalf("SaveTransaction failed: %v", err)
	}

	// Remove the mirror expense out of band so the heuristic finds nothing.
	expenses, _ := NewExpenseService(s).GetUserExpensesInRange(context.Background(), "alice",
		date(2025, time.January, 1), date(2025, time.December, 31))
	if len(expenses) != 1 {
		t.Fatalf("expected the mirror expense, got %d", len(expenses))
	}
	if err := s.DeleteExpense(context.Background(), expenses[0].ID); err != nil {
		t.Fatalf("removing mirror out of band: %v", err)
	}

	mirror, err := transactions.DeleteTransaction(context.Background(), "alice", tx.ID)
	if err != nil {
		t.Fatalf("DeleteTransaction must succeed without a mirror match: %v", err)
	}
	if mirror.Attempted || mirror.Err != nil {
		t.Errorf("expected silent no-op, got %+v", mirror)
	}
}

func TestDeleteTransactionWrongOwner(t *testing.T) {
	s := newSeededStore(t)
	seedUser(t, s, "bob")

	transactions := NewTransactionService(s)
	tx, _, _ := transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Private",
		Amount:      floatPtr(5),
		Type:        "debit",
		Date:        date(2025, time.August, 3),
	}, "")

	if _, err := transactions.DeleteTransaction(context.Background(), "bob", tx.ID); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSummaryWithNoTransactionsIsAllZero(t *testing.T) {
	s := newSeededStore(t)

	summary, err := NewTransactionService(s).GetSummaryByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetSummaryByUsername failed: %v", err)
	}
	if summary.Income != 0 || summary.Expense != 0 || summary.Balance != 0 {
		t.Errorf("expected zero summary, got %+v", summary)
	}
}

func TestSummaryCountsNonCreditAsExpense(t *testing.T) {
	s := newSeededStore(t)

	transactions := NewTransactionService(s)
	add := func(desc, typ string, amount float64) {
		t.Helper()
		_, _, err := transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
			Description: desc,
			Amount:      floatPtr(amount),
			Type:        typ,
			Date:        date(2025, time.August, 4),
		}, "")
		if err != nil {
			t.Fatalf("SaveTransaction(%s) failed: %v", desc, err)
		}
	}

	add("Salary", "CREDIT", 1000)
	add("Rent", "debit", 600)
	add("Unknown kind", "transfer", 50)
	add("Untyped", "", 25)

	summary, err := transactions.GetSummaryByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetSummaryByUsername failed: %v", err)
	}
	if summary.Income != 1000 {
		t.Errorf("income = %f, want 1000", summary.Income)
	}
	if summary.Expense != 675 {
		t.Errorf("expense = %f, want 675 (non-credit types all count)", summary.Expense)
	}
	if summary.Balance != 325 {
		t.Errorf("balance = %f, want 325", summary.Balance)
	}
}

func TestCategorySummarySkipsUncategorized(t *testing.T) {
	s := newSeededStore(t)
	category := seedCategory(t, s, "Food")

	transactions := NewTransactionService(s)
	transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Lunch", Amount: floatPtr(10), Type: "debit", Date: date(2025, time.August, 5),
	}, category.ID)
	transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "Dinner", Amount: floatPtr(20), Type: "debit", Date: date(2025, time.August, 5),
	}, category.ID)
	transactions.SaveTransaction(context.Background(), "alice", models.TransactionRequest{
		Description: "No category", Amount: floatPtr(99), Type: "debit", Date: date(2025, time.August, 5),
	}, "")

	totals, err := transactions.GetCategorySummary(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetCategorySummary failed: %v", err)
	}
	if len(totals) != 1 || totals["Food"] != 30 {
		t.Errorf("unexpected totals: %+v", totals)
	}
}
