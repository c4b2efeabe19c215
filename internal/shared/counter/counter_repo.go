package counter

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Increment(ctx context.Context, companyID string, counterType string) (int64, error)
	Current(ctx context.Context, companyID string, counterType string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Increment bumps the per-company counter atomically and returns the new
// value. Raw upsert keeps concurrent consumers from racing on the same row.
func (r *repository) Increment(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64

	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

func (r *repository) Current(ctx context.Context, companyID string, counterType string) (int64, error) {
	var value int64

	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(last_value, 0)
		FROM company_counters
		WHERE company_id = ? AND counter_type = ?
	`, companyID, counterType).Scan(&value).Error

	if err != nil {
		return 0, err
	}

	return value, nil
}
