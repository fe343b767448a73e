package models

// Category is a named tag, optionally scoped to a user. Expenses reference it
// by name only; transactions reference it by id. The name is the single value
// that crosses the expense/transaction boundary.
type Category struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	UserID *string `json:"user_id,omitempty"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
