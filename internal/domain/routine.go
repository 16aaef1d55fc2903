package domain

import "time"

// RoutineAssignmentState tracks one client's run of a routine.
type RoutineAssignmentState string

const (
	RoutineActive    RoutineAssignmentState = "active"
	RoutineCompleted RoutineAssignmentState = "completed"
	RoutineCancelled RoutineAssignmentState = "cancelled"
)

func (s RoutineAssignmentState) CanTransition(target RoutineAssignmentState) bool {
	if s != RoutineActive {
		return false
	}
	return target == RoutineCompleted || target == RoutineCancelled
}

type Routine struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	CoachID         int64     `json:"coach_id" gorm:"index"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Goal            string    `json:"goal,omitempty"`
	Difficulty      string    `json:"difficulty,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Personalized    bool      `json:"personalized"`
	TargetUserID    *int64    `json:"target_user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// RoutineExercise is one ordered line of a routine. Reps is free text so
// coaches can write ranges like "10-12" or "to failure".
type RoutineExercise struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	RoutineID   int64  `json:"routine_id" gorm:"index"`
	ExerciseID  int64  `json:"exercise_id"`
	Position    int    `json:"position"`
	Sets        int    `json:"sets"`
	Reps        string `json:"reps"`
	RestSeconds int    `json:"rest_seconds,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type RoutineAssignment struct {
	ID         int64                  `json:"id" gorm:"primaryKey"`
	RoutineID  int64                  `json:"routine_id" gorm:"index"`
	UserID     int64                  `json:"user_id" gorm:"index"`
	State      RoutineAssignmentState `json:"state"`
	AssignedAt time.Time              `json:"assigned_at"`
	StartedAt  time.Time              `json:"started_at"`
	EndedAt    *time.Time             `json:"ended_at,omitempty"`
}

// TrainingDay pins a routine assignment to a weekday slot.
type TrainingDay struct {
	ID           int64  `json:"id" gorm:"primaryKey"`
	AssignmentID int64  `json:"assignment_id" gorm:"index"`
	Weekday      string `json:"weekday"`
	StartTime    string `json:"start_time,omitempty"`
	EndTime      string `json:"end_time,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

var weekdays = map[string]struct{}{
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {},
	"friday": {}, "saturday": {}, "sunday": {},
}

// ValidWeekday reports whether s is a lowercase English weekday name.
func ValidWeekday(s string) bool {
	_, ok := weekdays[s]
	return ok
}
