package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store/memory"
)

// newSeededStore returns a memory store with user "alice" already present.
func newSeededStore(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.New()
	seedUser(t, s, "alice")
	return s
}

func seedUser(t *testing.T, s *memory.Store, username string) *models.User {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedCategory(t *testing.T, s *memory.Store, name string) *models.Category {
	t.Helper()
	category := &models.Category{ID: uuid.New().String(), Name: name}
	if err := s.CreateCategory(context.Background(), category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return category
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func date(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}
