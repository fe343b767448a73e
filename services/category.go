package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

type CategoryService struct {
	store store.Store
}

func NewCategoryService(s store.Store) *CategoryService {
	return &CategoryService{store: s}
}

// GetCategories returns every category, name-ordered. The frontend uses
// this as its dropdown source.
func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}

func (s *CategoryService) SaveCategory(ctx context.Context, name string, userID *string) (*models.Category, error) {
	if name == "" {
		return nil, ErrValidation
	}
	category := &models.Category{
		ID:     uuid.New().String(),
		Name:   name,
		UserID: userID,
	}
	if err := s.store.CreateCategory(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return s.store.DeleteCategory(ctx, id)
}
