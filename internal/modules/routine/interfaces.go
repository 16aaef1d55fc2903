package routine

import (
	"context"

	"gymcoach/internal/domain"
	"gymcoach/internal/identity"
	"gymcoach/internal/repository"
)

// RoutineRepository defines the interface for routine templates
type RoutineRepository interface {
	CreateWithExercises(ctx context.Context, routine *domain.Routine, lines []domain.RoutineExercise, assignTo *int64) (*domain.RoutineAssignment, error)
	GetByID(ctx context.Context, id int64) (*domain.Routine, error)
	GetByIDForCoach(ctx context.Context, id, coachID int64) (*domain.Routine, error)
	Update(ctx context.Context, routine *domain.Routine) error
	ListByCoach(ctx context.Context, coachID int64) ([]domain.Routine, error)
	ListExercises(ctx context.Context, routineID int64) ([]repository.RoutineExerciseItem, error)
	ReplaceExercises(ctx context.Context, routineID int64, lines []domain.RoutineExercise) error
	Delete(ctx context.Context, routineID int64) error
}

// AssignmentRepository defines the interface for routine assignments
type AssignmentRepository interface {
	AssignToClient(ctx context.Context, routineID, userID int64, days []domain.TrainingDay) (*domain.RoutineAssignment, error)
	Complete(ctx context.Context, userID, routineID int64) (int64, error)
	GetActiveByUser(ctx context.Context, userID int64) (*domain.RoutineAssignment, error)
	GetActiveForDay(ctx context.Context, userID int64, weekday string) (*domain.RoutineAssignment, error)
	GetByIDForUser(ctx context.Context, id, userID int64) (*domain.RoutineAssignment, error)
	ListByUser(ctx context.Context, userID int64) ([]repository.AssignmentListItem, error)
	ListTrainingDays(ctx context.Context, assignmentID int64) ([]domain.TrainingDay, error)
}

// CoachClientChecker verifies active coach-client relationships
type CoachClientChecker interface {
	GetActiveByCoachAndUser(ctx context.Context, coachID, userID int64) (*domain.CoachAssignment, error)
}

type ExerciseRepository interface {
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
}

type Resolver interface {
	Resolve(ctx context.Context, userID int64) (*identity.Identity, error)
}

type NotificationSender interface {
	NotifyRoutineAssigned(ctx context.Context, clientUserID, coachUserID int64, routineName string) error
}
