package repository

import (
	"context"
	"errors"
	"time"

	"gymcoach/internal/domain"

	"gorm.io/gorm"
)

type CoachAssignmentRepository struct {
	db *gorm.DB
}

func NewCoachAssignmentRepository(db *gorm.DB) *CoachAssignmentRepository {
	return &CoachAssignmentRepository{db: db}
}

type coachAssignmentModel struct {
	ID          int64      `gorm:"column:id;primaryKey"`
	CoachID     int64      `gorm:"column:coach_id"`
	UserID      int64      `gorm:"column:user_id"`
	State       string     `gorm:"column:state"`
	RequestedAt time.Time  `gorm:"column:requested_at"`
	DecidedAt   *time.Time `gorm:"column:decided_at"`
}

func (coachAssignmentModel) TableName() string { return "coach_assignments" }

func toDomainCoachAssignment(m coachAssignmentModel) *domain.CoachAssignment {
	return &domain.CoachAssignment{
		ID:          m.ID,
		CoachID:     m.CoachID,
		UserID:      m.UserID,
		State:       domain.AssignmentState(m.State),
		RequestedAt: m.RequestedAt,
		DecidedAt:   m.DecidedAt,
	}
}

func toCoachAssignmentModel(a *domain.CoachAssignment) coachAssignmentModel {
	return coachAssignmentModel{
		ID:          a.ID,
		CoachID:     a.CoachID,
		UserID:      a.UserID,
		State:       string(a.State),
		RequestedAt: a.RequestedAt,
		DecidedAt:   a.DecidedAt,
	}
}

// Create inserts the request. The partial unique index on (user_id) over
// open states is the backstop against concurrent duplicate requests.
func (r *CoachAssignmentRepository) Create(ctx context.Context, a *domain.CoachAssignment) error {
	m := toCoachAssignmentModel(a)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainCoachAssignment(m)
	return nil
}

func (r *CoachAssignmentRepository) GetByID(ctx context.Context, id int64) (*domain.CoachAssignment, error) {
	var m coachAssignmentModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainCoachAssignment(m), nil
}

// GetOpenByUser returns the client's pending or active assignment, or nil
// when the client has none.
func (r *CoachAssignmentRepository) GetOpenByUser(ctx context.Context, userID int64) (*domain.CoachAssignment, error) {
	var m coachAssignmentModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ? AND state IN ?", userID, []string{
			string(domain.AssignmentPending),
			string(domain.AssignmentActive),
		}).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCoachAssignment(m), nil
}

// GetActiveByCoachAndUser reports whether the client is an active client of
// the coach, nil when not.
func (r *CoachAssignmentRepository) GetActiveByCoachAndUser(ctx context.Context, coachID, userID int64) (*domain.CoachAssignment, error) {
	var m coachAssignmentModel
	tx := r.db.WithContext(ctx).
		Where("coach_id = ? AND user_id = ? AND state = ?", coachID, userID, string(domain.AssignmentActive)).
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCoachAssignment(m), nil
}

// UpdateState decides a request. The WHERE clause re-checks the current
// state so a lost race surfaces as zero rows.
func (r *CoachAssignmentRepository) UpdateState(ctx context.Context, id int64, from, to domain.AssignmentState, decidedAt time.Time) error {
	tx := r.db.WithContext(ctx).
		Model(&coachAssignmentModel{}).
		Where("id = ? AND state = ?", id, string(from)).
		Updates(map[string]any{
			"state":      string(to),
			"decided_at": decidedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ClientListItem is a coach-facing row about one client relationship.
type ClientListItem struct {
	AssignmentID int64      `json:"assignment_id" gorm:"column:assignment_id"`
	UserID       int64      `json:"user_id" gorm:"column:user_id"`
	Name         string     `json:"name" gorm:"column:name"`
	Email        string     `json:"email" gorm:"column:email"`
	RequestedAt  time.Time  `json:"requested_at" gorm:"column:requested_at"`
	DecidedAt    *time.Time `json:"decided_at,omitempty" gorm:"column:decided_at"`
}

func (r *CoachAssignmentRepository) ListByCoachAndState(ctx context.Context, coachID int64, state domain.AssignmentState) ([]ClientListItem, error) {
	var items []ClientListItem
	err := r.db.WithContext(ctx).Raw(`
		SELECT a.id AS assignment_id, u.id AS user_id, u.name, u.email,
		       a.requested_at, a.decided_at
		FROM coach_assignments a
		JOIN users u ON u.id = a.user_id
		WHERE a.coach_id = ? AND a.state = ?
		ORDER BY a.requested_at`, coachID, string(state)).
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ActiveCoachUserID returns the user ID behind the client's active coach,
// or gorm.ErrRecordNotFound when the client has no active coach.
func (r *CoachAssignmentRepository) ActiveCoachUserID(ctx context.Context, clientUserID int64) (int64, error) {
	var coachUserID int64
	tx := r.db.WithContext(ctx).Raw(`
		SELECT c.user_id
		FROM coach_assignments a
		JOIN coaches c ON c.id = a.coach_id
		WHERE a.user_id = ? AND a.state = ?`,
		clientUserID, string(domain.AssignmentActive)).
		Scan(&coachUserID)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 || coachUserID == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return coachUserID, nil
}
