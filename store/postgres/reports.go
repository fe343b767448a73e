package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/myfinance/tracker-api/models"
)

// TotalByCategory sums a user's expenses per category name. A NULL category
// groups under the empty key, exactly as stored.
func (s *Store) TotalByCategory(ctx context.Context, userID string) (map[string]float64, error) {
	return s.sumByCategory(ctx, `
		SELECT category, SUM(amount)
		FROM expenses
		WHERE user_id = $1
		GROUP BY category
	`, userID)
}

func (s *Store) TotalByMonth(ctx context.Context, userID string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT EXTRACT(YEAR FROM date)::int AS yr, EXTRACT(MONTH FROM date)::int AS mon, SUM(amount)
		FROM expenses
		WHERE user_id = $1
		GROUP BY yr, mon
		ORDER BY yr, mon
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := map[string]float64{}
	for rows.Next() {
		var year, month int
		var sum sql.NullFloat64
		if err := rows.Scan(&year, &month, &sum); err != nil {
			return nil, err
		}
		totals[fmt.Sprintf("%04d-%02d", year, month)] = sum.Float64
	}
	return totals, rows.Err()
}

func (s *Store) TotalInRange(ctx context.Context, userID string, start, end models.Date) (float64, error) {
	var total sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT SUM(amount)
		FROM expenses
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
	`, userID, start, end).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil
}

func (s *Store) TotalByCategoryInRange(ctx context.Context, userID string, start, end models.Date) (map[string]float64, error) {
	return s.sumByCategory(ctx, `
		SELECT category, SUM(amount)
		FROM expenses
		WHERE user_id = $1 AND date BETWEEN $2 AND $3
		GROUP BY category
	`, userID, start, end)
}

func (s *Store) sumByCategory(ctx context.Context, query string, args ...interface{}) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := map[string]float64{}
	for rows.Next() {
		var category sql.NullString
		var sum sql.NullFloat64
		if err := rows.Scan(&category, &sum); err != nil {
			return nil, err
		}
		totals[category.String] = sum.Float64
	}
	return totals, rows.Err()
}
