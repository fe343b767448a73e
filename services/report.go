package services

import (
	"context"

	"github.com/myfinance/tracker-api/models"
	"github.com/myfinance/tracker-api/store"
)

// ReportService answers the read-only expense summary queries. Every query
// tolerates zero rows: empty maps and 0.0 totals, never an error.
type ReportService struct {
	store store.Store
}

func NewReportService(s store.Store) *ReportService {
	return &ReportService{store: s}
}

// TotalByCategory maps category name to summed amount over all of the
// user's expenses. Expenses without a category collapse under the empty key.
func (s *ReportService) TotalByCategory(ctx context.Context, username string) (map[string]float64, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.TotalByCategory(ctx, user.ID)
}

// TotalByMonth maps "YYYY-MM" (zero-padded) to summed amount, one entry per
// month that has at least one expense. String keys sort chronologically, so
// the serialized object is in calendar order.
func (s *ReportService) TotalByMonth(ctx context.Context, username string) (map[string]float64, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.TotalByMonth(ctx, user.ID)
}

// TotalInRange sums expenses with dates in [start, end]. No rows means 0.0.
func (s *ReportService) TotalInRange(ctx context.Context, username string, start, end models.Date) (float64, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	return s.store.TotalInRange(ctx, user.ID, start, end)
}

// TotalByCategoryInRange is TotalByCategory restricted to [start, end].
func (s *ReportService) TotalByCategoryInRange(ctx context.Context, username string, start, end models.Date) (map[string]float64, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.store.TotalByCategoryInRange(ctx, user.ID, start, end)
}
