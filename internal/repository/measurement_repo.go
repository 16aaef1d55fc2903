package repository

import (
	"context"

	"gymcoach/internal/domain"

	"gorm.io/gorm"
)

type MeasurementRepository struct {
	db *gorm.DB
}

func NewMeasurementRepository(db *gorm.DB) *MeasurementRepository {
	return &MeasurementRepository{db: db}
}

func (r *MeasurementRepository) Create(ctx context.Context, m *domain.Measurement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MeasurementRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.Measurement, error) {
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []domain.Measurement
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MeasurementRepository) Latest(ctx context.Context, userID int64) (*domain.Measurement, error) {
	var m domain.Measurement
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("recorded_at DESC").
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &m, nil
}
