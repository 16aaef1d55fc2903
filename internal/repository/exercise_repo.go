package repository

import (
	"context"

	"gymcoach/internal/domain"

	"gorm.io/gorm"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(ctx context.Context, e *domain.Exercise) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExerciseRepository) GetByID(ctx context.Context, id int64) (*domain.Exercise, error) {
	var e domain.Exercise
	tx := r.db.WithContext(ctx).First(&e, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &e, nil
}

func (r *ExerciseRepository) List(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	q := r.db.WithContext(ctx).Model(&domain.Exercise{})
	if muscleGroup != "" {
		q = q.Where("muscle_group = ?", muscleGroup)
	}

	var items []domain.Exercise
	if err := q.Order("name").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// CountByIDs counts how many of the given IDs exist, for referential checks
// before building a routine.
func (r *ExerciseRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Exercise{}).
		Where("id IN ?", ids).
		Count(&n).Error
	return n, err
}
