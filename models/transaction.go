package models

import "time"

// Transaction types. Anything other than "credit" is treated as outgoing
// money by the dashboard summary.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Transaction is the other side of a mirrored financial event. CategoryName
// is filled from the joined category row on reads and is what clients render.
type Transaction struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Amount       float64   `json:"amount"`
	Type         string    `json:"type"`
	CategoryID   *string   `json:"category_id,omitempty"`
	CategoryName *string   `json:"category"`
	Date         Date      `json:"date"`
	UserID       string    `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type TransactionRequest struct {
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Type        string   `json:"type"`
	Date        Date     `json:"date"`
}

// Summary is the dashboard income/expense/balance aggregate.
type Summary struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}
