package coaching

import (
	"context"
	"time"

	"gymcoach/internal/domain"
	"gymcoach/internal/identity"
	"gymcoach/internal/repository"
)

// AssignmentRepository defines the interface for coach-client assignments
type AssignmentRepository interface {
	Create(ctx context.Context, a *domain.CoachAssignment) error
	GetByID(ctx context.Context, id int64) (*domain.CoachAssignment, error)
	GetOpenByUser(ctx context.Context, userID int64) (*domain.CoachAssignment, error)
	GetActiveByCoachAndUser(ctx context.Context, coachID, userID int64) (*domain.CoachAssignment, error)
	UpdateState(ctx context.Context, id int64, from, to domain.AssignmentState, decidedAt time.Time) error
	ListByCoachAndState(ctx context.Context, coachID int64, state domain.AssignmentState) ([]repository.ClientListItem, error)
}

// CoachRepository defines the interface for coach profile lookups
type CoachRepository interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Coach, error)
	GetByID(ctx context.Context, id int64) (*domain.Coach, error)
	ListActive(ctx context.Context) ([]repository.CoachListItem, error)
	Upsert(ctx context.Context, c *domain.Coach) error
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type Resolver interface {
	Resolve(ctx context.Context, userID int64) (*identity.Identity, error)
}

type NotificationSender interface {
	NotifyCoachRequest(ctx context.Context, coachUserID, clientUserID int64, clientName string) error
	NotifyRequestDecided(ctx context.Context, clientUserID, coachUserID int64, coachName string, accepted bool) error
}
