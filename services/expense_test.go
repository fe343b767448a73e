package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

func TestAddExpenseCreatesMirrorDebitTransaction(t *testing.T) {
	s := newSeededStore(t)
	seedCategory(t, s, "Food")

	expenses := NewExpenseService(s)
	transactions := NewTransactionService(s)

	expense, mirror, err := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:    "Coffee",
		Amount:   floatPtr(4.5),
		Category: strPtr("Food"),
		Date:     date(2025, time.August, 1),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if !mirror.Synced {
		t.Errorf("expected mirror transaction to be created, got %+v", mirror)
	}
	if expense.Title != "Coffee" || expense.Amount != 4.5 {
		t.Errorf("unexpected expense: %+v", expense)
	}

	list, err := transactions.GetTransactionsByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetTransactionsByUsername failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected exactly 1 mirror transaction, got %d", len(list))
	}
	tx := list[0]
	if tx.Description != "Coffee" || tx.Amount != 4.5 || tx.Type != models.TransactionDebit {
		t.Errorf("unexpected mirror transaction: %+v", tx)
	}
	if !tx.Date.Equal(date(2025, time.August, 1)) {
		t.Errorf("mirror date mismatch: %v", tx.Date)
	}
	if tx.CategoryName == nil || *tx.CategoryName != "Food" {
		t.Errorf("mirror category not resolved: %+v", tx.CategoryName)
	}
}

func TestAddExpenseUnknownCategoryLeavesMirrorUncategorized(t *testing.T) {
	s := newSeededStore(t)

	expenses := NewExpenseService(s)

	_, mirror, err := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:    "Snacks",
		Amount:   floatPtr(3),
		Category: strPtr("DoesNotExist"),
		Date:     date(2025, time.August, 2),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if !mirror.Synced {
		t.Fatalf("expected mirror to be created, got %+v", mirror)
	}

	list, _ := NewTransactionService(s).GetTransactionsByUsername(context.Background(), "alice")
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(list))
	}
	if list[0].CategoryID != nil {
		t.Errorf("expected nil category reference, got %v", *list[0].CategoryID)
	}
}

func TestAddExpenseMissingAmountDefaultsToZero(t *testing.T) {
	s := newSeededStore(t)

	expense, _, err := NewExpenseService(s).AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title: "Mystery",
		Date:  date(2025, time.August, 3),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if expense.Amount != 0.0 {
		t.Errorf("expected zero amount, got %f", expense.Amount)
	}
}

func TestUpdateExpenseNotFound(t *testing.T) {
	s := newSeededStore(t)

	_, _, err := NewExpenseService(s).UpdateExpense(context.Background(), "alice", "missing-id", models.ExpenseRequest{
		Title: "x",
		Date:  date(2025, time.August, 1),
	})
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateExpenseWrongOwner(t *testing.T) {
	s := newSeededStore(t)
	seedUser(t, s, "bob")

	expenses := NewExpenseService(s)
	expense, _, err := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:  "Rent",
		Amount: floatPtr(800),
		Date:   date(2025, time.August, 1),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	_, _, err = expenses.UpdateExpense(context.Background(), "bob", expense.ID, models.ExpenseRequest{
		Title: "Rent",
		Date:  date(2025, time.August, 1),
	})
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestUpdateExpensePatchesMirrorWithSameTitle(t *testing.T) {
	s := newSeededStore(t)

	expenses := NewExpenseService(s)
	expense, _, err := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:  "Groceries",
		Amount: floatPtr(50),
		Date:   date(2025, time.August, 5),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	_, mirror, err := expenses.UpdateExpense(context.Background(), "alice", expense.ID, models.ExpenseRequest{
		Title:  "Groceries",
		Amount: floatPtr(65),
		Date:   date(2025, time.August, 6),
	})
	if err != nil {
		t.Fatalf("UpdateExpense failed: %v", err)
	}
	if !mirror.Synced {
		t.Fatalf("expected mirror patch, got %+v", mirror)
	}

	list, _ := NewTransactionService(s).GetTransactionsByUsername(context.Background(), "alice")
	if len(list) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(list))
	}
	if list[0].Amount != 65 || !list[0].Date.Equal(date(2025, time.August, 6)) {
		t.Errorf("mirror not patched: %+v", list[0])
	}
}

// Matching runs against the post-update title, so a rename leaves the old
// mirror untouched when no debit transaction carries the new title.
func TestUpdateExpenseRenameOrphansOldMirror(t *testing.T) {
	s := newSeededStore(t)

	expenses := NewExpenseService(s)
	expense, _, err := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:  "Cinema",
		Amount: floatPtr(12),
		Date:   date(2025, time.August, 7),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	_, mirror, err := expenses.UpdateExpense(context.Background(), "alice", expense.ID, models.ExpenseRequest{
		Title:  "Theater",
		Amount: floatPtr(20),
		Date:   date(2025, time.August, 7),
	})
	if err != nil {
		t.Fatalf("UpdateExpense failed: %v", err)
	}
	if mirror.Attempted {
		t.Errorf("expected no mirror match after rename, got %+v", mirror)
	}

	list, _ := NewTransactionService(s).GetTransactionsByUsername(context.Background(), "alice")
	if len(list) != 1 || list[0].Description != "Cinema" || list[0].Amount != 12 {
		t.Errorf("old mirror should be untouched: %+v", list)
	}
}

func TestDeleteExpenseRemovesMirror(t *testing.T) {
	s := newSeededStore(t)

	expenses := NewExpenseService(s)
	expense, _, err := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:  "Taxi",
		Amount: floatPtr(18),
		Date:   date(2025, time.August, 8),
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	mirror, err := expenses.DeleteExpense(context.Background(), "alice", expense.ID)
	if err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if !mirror.Synced {
		t.Errorf("expected mirror deletion, got %+v", mirror)
	}

	list, _ := NewTransactionService(s).GetTransactionsByUsername(context.Background(), "alice")
	if len(list) != 0 {
		t.Errorf("mirror transaction should be gone, got %+v", list)
	}
}

func TestDeleteExpenseWithoutMirrorIsNoop(t *testing.T) {
	s := newSeededStore(t)
	user, err := s.GetUserByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("lookup user: %v", err)
	}

	// Expense inserted directly, without a mirror transaction.
	expense := &models.Expense{
		ID:     uuid.New().String(),
		Title:  "Loose record",
		Amount: 9,
		Date:   date(2025, time.August, 9),
		UserID: user.ID,
	}
	if err := s.CreateExpense(context.Background(), expense); err != nil {
		t.Fatalf("seed expense: %v", err)
	}

	mirror, err := NewExpenseService(s).DeleteExpense(context.Background(), "alice", expense.ID)
	if err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}
	if mirror.Attempted || mirror.Err != nil {
		t.Errorf("expected silent no-op, got %+v", mirror)
	}
}

func TestDeleteExpenseRemovesAtMostOneOfDuplicates(t *testing.T) {
	s := newSeededStore(t)

	expenses := NewExpenseService(s)
	first, _, _ := expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:  "Lunch",
		Amount: floatPtr(10),
		Date:   date(2025, time.August, 10),
	})
	expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title:  "Lunch",
		Amount: floatPtr(10),
		Date:   date(2025, time.August, 11),
	})

	if _, err := expenses.DeleteExpense(context.Background(), "alice", first.ID); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}

	list, _ := NewTransactionService(s).GetTransactionsByUsername(context.Background(), "alice")
	if len(list) != 1 {
		t.Errorf("expected exactly one surviving mirror, got %d", len(list))
	}
}

func TestGetUserExpensesInRange(t *testing.T) {
	s := newSeededStore(t)

	expenses := NewExpenseService(s)
	expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title: "In", Amount: floatPtr(5), Date: date(2025, time.August, 15),
	})
	expenses.AddExpense(context.Background(), "alice", models.ExpenseRequest{
		Title: "Out", Amount: floatPtr(5), Date: date(2025, time.September, 15),
	})

	list, err := expenses.GetUserExpensesInRange(context.Background(), "alice",
		date(2025, time.August, 1), date(2025, time.August, 31))
	if err != nil {
		t.Fatalf("GetUserExpensesInRange failed: %v", err)
	}
	if len(list) != 1 || list[0].Title != "In" {
		t.Errorf("unexpected range result: %+v", list)
	}
}
