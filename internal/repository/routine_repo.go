package repository

import (
	"context"
	"time"

	"gymcoach/internal/domain"

	"gorm.io/gorm"
)

type RoutineRepository struct {
	db *gorm.DB
}

func NewRoutineRepository(db *gorm.DB) *RoutineRepository {
	return &RoutineRepository{db: db}
}

type routineModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	CoachID         int64     `gorm:"column:coach_id"`
	Name            string    `gorm:"column:name"`
	Description     string    `gorm:"column:description"`
	Goal            string    `gorm:"column:goal"`
	Difficulty      string    `gorm:"column:difficulty"`
	DurationMinutes int       `gorm:"column:duration_minutes"`
	Personalized    bool      `gorm:"column:personalized"`
	TargetUserID    *int64    `gorm:"column:target_user_id"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (routineModel) TableName() string { return "routines" }

type routineExerciseModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	RoutineID   int64  `gorm:"column:routine_id"`
	ExerciseID  int64  `gorm:"column:exercise_id"`
	Position    int    `gorm:"column:position"`
	Sets        int    `gorm:"column:sets"`
	Reps        string `gorm:"column:reps"`
	RestSeconds int    `gorm:"column:rest_seconds"`
	Notes       string `gorm:"column:notes"`
}

func (routineExerciseModel) TableName() string { return "routine_exercises" }

func toDomainRoutine(m routineModel) *domain.Routine {
	return &domain.Routine{
		ID:              m.ID,
		CoachID:         m.CoachID,
		Name:            m.Name,
		Description:     m.Description,
		Goal:            m.Goal,
		Difficulty:      m.Difficulty,
		DurationMinutes: m.DurationMinutes,
		Personalized:    m.Personalized,
		TargetUserID:    m.TargetUserID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toRoutineModel(r *domain.Routine) routineModel {
	return routineModel{
		ID:              r.ID,
		CoachID:         r.CoachID,
		Name:            r.Name,
		Description:     r.Description,
		Goal:            r.Goal,
		Difficulty:      r.Difficulty,
		DurationMinutes: r.DurationMinutes,
		Personalized:    r.Personalized,
		TargetUserID:    r.TargetUserID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toRoutineExerciseModel(e *domain.RoutineExercise) routineExerciseModel {
	return routineExerciseModel{
		ID:          e.ID,
		RoutineID:   e.RoutineID,
		ExerciseID:  e.ExerciseID,
		Position:    e.Position,
		Sets:        e.Sets,
		Reps:        e.Reps,
		RestSeconds: e.RestSeconds,
		Notes:       e.Notes,
	}
}

// CreateWithExercises inserts the routine and its exercise lines in one
// transaction. When assignTo is set the same transaction also assigns the
// routine to that client, superseding any previously active assignment, so
// a failed assignment never leaves an orphan routine behind.
func (r *RoutineRepository) CreateWithExercises(ctx context.Context, routine *domain.Routine, lines []domain.RoutineExercise, assignTo *int64) (*domain.RoutineAssignment, error) {
	var created *domain.RoutineAssignment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toRoutineModel(routine)
		if err := tx.Create(&m).Error; err != nil {
			return err
		}
		*routine = *toDomainRoutine(m)

		for i := range lines {
			lines[i].RoutineID = routine.ID
			if lines[i].Position == 0 {
				lines[i].Position = i + 1
			}
			em := toRoutineExerciseModel(&lines[i])
			if err := tx.Create(&em).Error; err != nil {
				return err
			}
			lines[i].ID = em.ID
		}

		if assignTo != nil {
			a, err := assignRoutineTx(tx, routine.ID, *assignTo)
			if err != nil {
				return err
			}
			created = a
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// assignRoutineTx supersedes the client's active routine assignment and
// inserts the new active one. Callers must run it inside a transaction.
func assignRoutineTx(tx *gorm.DB, routineID, userID int64) (*domain.RoutineAssignment, error) {
	now := time.Now()
	err := tx.
		Model(&routineAssignmentModel{}).
		Where("user_id = ? AND state = ?", userID, string(domain.RoutineActive)).
		Updates(map[string]any{
			"state":    string(domain.RoutineCompleted),
			"ended_at": now,
		}).Error
	if err != nil {
		return nil, err
	}

	m := routineAssignmentModel{
		RoutineID:  routineID,
		UserID:     userID,
		State:      string(domain.RoutineActive),
		AssignedAt: now,
		StartedAt:  now,
	}
	if err := tx.Create(&m).Error; err != nil {
		return nil, err
	}
	return toDomainRoutineAssignment(m), nil
}

func (r *RoutineRepository) GetByID(ctx context.Context, id int64) (*domain.Routine, error) {
	var m routineModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoutine(m), nil
}

// GetByIDForCoach scopes the lookup to the owning coach. A foreign
// routine behaves exactly like a missing one.
func (r *RoutineRepository) GetByIDForCoach(ctx context.Context, id, coachID int64) (*domain.Routine, error) {
	var m routineModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND coach_id = ?", id, coachID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoutine(m), nil
}

// Update rewrites the routine's metadata. Exercise lines and assignments
// are untouched.
func (r *RoutineRepository) Update(ctx context.Context, routine *domain.Routine) error {
	tx := r.db.WithContext(ctx).
		Model(&routineModel{}).
		Where("id = ?", routine.ID).
		Updates(map[string]any{
			"name":             routine.Name,
			"description":      routine.Description,
			"goal":             routine.Goal,
			"difficulty":       routine.Difficulty,
			"duration_minutes": routine.DurationMinutes,
			"updated_at":       time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *RoutineRepository) ListByCoach(ctx context.Context, coachID int64) ([]domain.Routine, error) {
	var models []routineModel
	err := r.db.WithContext(ctx).
		Where("coach_id = ?", coachID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	items := make([]domain.Routine, 0, len(models))
	for _, m := range models {
		items = append(items, *toDomainRoutine(m))
	}
	return items, nil
}

// RoutineExerciseItem is one line of a routine joined with its catalog entry.
type RoutineExerciseItem struct {
	ExerciseID  int64  `json:"exercise_id" gorm:"column:exercise_id"`
	Name        string `json:"name" gorm:"column:name"`
	MuscleGroup string `json:"muscle_group,omitempty" gorm:"column:muscle_group"`
	Position    int    `json:"position" gorm:"column:position"`
	Sets        int    `json:"sets" gorm:"column:sets"`
	Reps        string `json:"reps" gorm:"column:reps"`
	RestSeconds int    `json:"rest_seconds,omitempty" gorm:"column:rest_seconds"`
	Notes       string `json:"notes,omitempty" gorm:"column:notes"`
}

func (r *RoutineRepository) ListExercises(ctx context.Context, routineID int64) ([]RoutineExerciseItem, error) {
	var items []RoutineExerciseItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT re.exercise_id, e.name, e.muscle_group,
		       re.position, re.sets, re.reps, re.rest_seconds, re.notes
		FROM routine_exercises re
		JOIN exercises e ON e.id = re.exercise_id
		WHERE re.routine_id = ?
		ORDER BY re.position`, routineID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceExercises swaps the full exercise list of a routine atomically.
func (r *RoutineRepository) ReplaceExercises(ctx context.Context, routineID int64, lines []domain.RoutineExercise) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("routine_id = ?", routineID).
			Delete(&routineExerciseModel{}).Error
		if err != nil {
			return err
		}

		for i := range lines {
			lines[i].RoutineID = routineID
			if lines[i].Position == 0 {
				lines[i].Position = i + 1
			}
			em := toRoutineExerciseModel(&lines[i])
			if err := tx.Create(&em).Error; err != nil {
				return err
			}
			lines[i].ID = em.ID
		}
		return nil
	})
}

// Delete removes the routine and its exercise lines and cancels any active
// assignment of it, all in one transaction. Historical completed and
// cancelled assignment rows are kept.
func (r *RoutineRepository) Delete(ctx context.Context, routineID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		err := tx.
			Model(&routineAssignmentModel{}).
			Where("routine_id = ? AND state = ?", routineID, string(domain.RoutineActive)).
			Updates(map[string]any{
				"state":    string(domain.RoutineCancelled),
				"ended_at": now,
			}).Error
		if err != nil {
			return err
		}

		err = tx.Where("routine_id = ?", routineID).
			Delete(&routineExerciseModel{}).Error
		if err != nil {
			return err
		}

		res := tx.Delete(&routineModel{}, routineID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
