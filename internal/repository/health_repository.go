package repository

import (
	"context"

	"gorm.io/gorm"
)

// HealthRepository exposes database liveness queries.
type HealthRepository interface {
	ServerTime(ctx context.Context) (string, error)
}

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository creates a new health repository.
func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

// ServerTime asks the database for its current timestamp.
func (r *healthRepository) ServerTime(ctx context.Context) (string, error) {
	var now string
	if err := r.db.WithContext(ctx).Raw("SELECT CURRENT_TIMESTAMP").Scan(&now).Error; err != nil {
		return "", err
	}
	return now, nil
}
