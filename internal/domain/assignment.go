package domain

import "time"

// AssignmentState tracks the lifecycle of a coach-client relationship.
// A request starts pending and is decided exactly once.
type AssignmentState string

const (
	AssignmentPending  AssignmentState = "pending"
	AssignmentActive   AssignmentState = "active"
	AssignmentRejected AssignmentState = "rejected"
)

// CanTransition reports whether moving from s to target is a legal step.
// Only pending rows are decidable.
func (s AssignmentState) CanTransition(target AssignmentState) bool {
	if s != AssignmentPending {
		return false
	}
	return target == AssignmentActive || target == AssignmentRejected
}

// Open reports whether the assignment still blocks the client from
// requesting another coach.
func (s AssignmentState) Open() bool {
	return s == AssignmentPending || s == AssignmentActive
}

type CoachAssignment struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	CoachID     int64           `json:"coach_id" gorm:"index"`
	UserID      int64           `json:"user_id" gorm:"index"`
	State       AssignmentState `json:"state"`
	RequestedAt time.Time       `json:"requested_at"`
	DecidedAt   *time.Time      `json:"decided_at,omitempty"`
}
