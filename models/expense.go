package models

import "time"

// Expense is one side of a mirrored financial event. Category holds a
// denormalized category name, not a foreign key.
type Expense struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Category  *string   `json:"category"`
	Date      Date      `json:"date"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ExpenseRequest is the add/update payload. Amount and Category are pointers
// so an absent field can be told apart from a zero value; a missing amount is
// treated as 0.0 downstream.
type ExpenseRequest struct {
	Title    string   `json:"title"`
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Date     Date     `json:"date"`
}
