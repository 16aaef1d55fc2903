package repository

import (
	"context"
	"errors"
	"time"

	"gymcoach/internal/domain"

	"gorm.io/gorm"
)

type RoutineAssignmentRepository struct {
	db *gorm.DB
}

func NewRoutineAssignmentRepository(db *gorm.DB) *RoutineAssignmentRepository {
	return &RoutineAssignmentRepository{db: db}
}

type routineAssignmentModel struct {
	ID         int64      `gorm:"column:id;primaryKey"`
	RoutineID  int64      `gorm:"column:routine_id"`
	UserID     int64      `gorm:"column:user_id"`
	State      string     `gorm:"column:state"`
	AssignedAt time.Time  `gorm:"column:assigned_at"`
	StartedAt  time.Time  `gorm:"column:started_at"`
	EndedAt    *time.Time `gorm:"column:ended_at"`
}

func (routineAssignmentModel) TableName() string { return "routine_assignments" }

type trainingDayModel struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	AssignmentID int64  `gorm:"column:assignment_id"`
	Weekday      string `gorm:"column:weekday"`
	StartTime    string `gorm:"column:start_time"`
	EndTime      string `gorm:"column:end_time"`
	Notes        string `gorm:"column:notes"`
}

func (trainingDayModel) TableName() string { return "training_days" }

func toDomainRoutineAssignment(m routineAssignmentModel) *domain.RoutineAssignment {
	return &domain.RoutineAssignment{
		ID:         m.ID,
		RoutineID:  m.RoutineID,
		UserID:     m.UserID,
		State:      domain.RoutineAssignmentState(m.State),
		AssignedAt: m.AssignedAt,
		StartedAt:  m.StartedAt,
		EndedAt:    m.EndedAt,
	}
}

func toDomainTrainingDay(m trainingDayModel) domain.TrainingDay {
	return domain.TrainingDay{
		ID:           m.ID,
		AssignmentID: m.AssignmentID,
		Weekday:      m.Weekday,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Notes:        m.Notes,
	}
}

// AssignToClient assigns the routine and schedules its training days in one
// transaction. The client's previously active assignment, if any, moves to
// completed inside the same transaction.
func (r *RoutineAssignmentRepository) AssignToClient(ctx context.Context, routineID, userID int64, days []domain.TrainingDay) (*domain.RoutineAssignment, error) {
	var created *domain.RoutineAssignment

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a, err := assignRoutineTx(tx, routineID, userID)
		if err != nil {
			return err
		}

		for i := range days {
			m := trainingDayModel{
				AssignmentID: a.ID,
				Weekday:      days[i].Weekday,
				StartTime:    days[i].StartTime,
				EndTime:      days[i].EndTime,
				Notes:        days[i].Notes,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
			days[i].ID = m.ID
			days[i].AssignmentID = a.ID
		}

		created = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Complete closes the client's active assignment of the routine. Returns
// the number of rows touched so callers can tell a no-op apart.
func (r *RoutineAssignmentRepository) Complete(ctx context.Context, userID, routineID int64) (int64, error) {
	tx := r.db.WithContext(ctx).
		Model(&routineAssignmentModel{}).
		Where("user_id = ? AND routine_id = ? AND state = ?",
			userID, routineID, string(domain.RoutineActive)).
		Updates(map[string]any{
			"state":    string(domain.RoutineCompleted),
			"ended_at": time.Now(),
		})
	if tx.Error != nil {
		return 0, tx.Error
	}
	return tx.RowsAffected, nil
}

func (r *RoutineAssignmentRepository) GetActiveByUser(ctx context.Context, userID int64) (*domain.RoutineAssignment, error) {
	var m routineAssignmentModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND state = ?", userID, string(domain.RoutineActive)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainRoutineAssignment(m), nil
}

func (r *RoutineAssignmentRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.RoutineAssignment, error) {
	var m routineAssignmentModel
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoutineAssignment(m), nil
}

// AssignmentListItem is a client-facing history row joined with the routine
// and the coach who authored it.
type AssignmentListItem struct {
	AssignmentID int64      `json:"assignment_id" gorm:"column:assignment_id"`
	RoutineID    int64      `json:"routine_id" gorm:"column:routine_id"`
	RoutineName  string     `json:"routine_name" gorm:"column:routine_name"`
	Goal         string     `json:"goal,omitempty" gorm:"column:goal"`
	CoachName    string     `json:"coach_name" gorm:"column:coach_name"`
	State        string     `json:"state" gorm:"column:state"`
	AssignedAt   time.Time  `json:"assigned_at" gorm:"column:assigned_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty" gorm:"column:ended_at"`
}

func (r *RoutineAssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]AssignmentListItem, error) {
	var items []AssignmentListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT ra.id AS assignment_id, ra.routine_id, rt.name AS routine_name,
		       rt.goal, cu.name AS coach_name, ra.state, ra.assigned_at, ra.ended_at
		FROM routine_assignments ra
		JOIN routines rt ON rt.id = ra.routine_id
		JOIN coaches c ON c.id = rt.coach_id
		JOIN users cu ON cu.id = c.user_id
		WHERE ra.user_id = ?
		ORDER BY ra.assigned_at DESC`, userID).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetActiveForDay returns the active assignment only when one of its
// training days falls on the given weekday.
func (r *RoutineAssignmentRepository) GetActiveForDay(ctx context.Context, userID int64, weekday string) (*domain.RoutineAssignment, error) {
	var m routineAssignmentModel
	tx := r.db.WithContext(ctx).Raw(`
		SELECT ra.*
		FROM routine_assignments ra
		JOIN training_days td ON td.assignment_id = ra.id
		WHERE ra.user_id = ? AND ra.state = ? AND td.weekday = ?
		LIMIT 1`, userID, string(domain.RoutineActive), weekday).
		Scan(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 || m.ID == 0 {
		return nil, nil
	}
	return toDomainRoutineAssignment(m), nil
}

func (r *RoutineAssignmentRepository) ListTrainingDays(ctx context.Context, assignmentID int64) ([]domain.TrainingDay, error) {
	var models []trainingDayModel
	err := r.db.WithContext(ctx).
		Where("assignment_id = ?", assignmentID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	days := make([]domain.TrainingDay, 0, len(models))
	for _, m := range models {
		days = append(days, toDomainTrainingDay(m))
	}
	return days, nil
}
