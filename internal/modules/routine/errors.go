package routine

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrEmptyExercises    = errors.New("routine needs at least one exercise")
	ErrExerciseNotFound  = errors.New("exercise does not exist")
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrRoutineNotFound   = errors.New("routine not found")
	ErrForbidden         = errors.New("operation not allowed for this role")
	ErrNoCoachProfile    = errors.New("coach profile missing")
	ErrClientNotAssigned = errors.New("client is not an active client of this coach")
	ErrNoActiveRoutine   = errors.New("no active assignment of this routine")
	ErrAssignConflict    = errors.New("another assignment for this client is in progress")
	ErrAssignmentMissing = errors.New("routine assignment not found")
)
