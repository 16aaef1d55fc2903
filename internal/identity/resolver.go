// Package identity maps an authenticated user ID to the role-specific
// identifiers the rest of the API keys on. Coach operations are keyed by
// coach profile ID, not user ID, so every coach-facing service resolves
// the caller here first.
package identity

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gymcoach/internal/domain"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrNoCoachProfile = errors.New("coach profile missing")
)

type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CoachGetter interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Coach, error)
}

// Identity is the resolved caller. CoachID is nil unless the user has the
// coach role and a coach profile row exists.
type Identity struct {
	UserID  int64
	Role    domain.UserRole
	CoachID *int64
}

type Resolver struct {
	users   UserGetter
	coaches CoachGetter
}

func NewResolver(users UserGetter, coaches CoachGetter) *Resolver {
	return &Resolver{users: users, coaches: coaches}
}

func (r *Resolver) Resolve(ctx context.Context, userID int64) (*Identity, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	ident := &Identity{UserID: user.ID, Role: user.Role}

	if user.Role == domain.RoleCoach {
		coach, err := r.coaches.GetByUserID(ctx, userID)
		switch {
		case err == nil:
			ident.CoachID = &coach.ID
		case errors.Is(err, gorm.ErrRecordNotFound):
			// coach account without a profile yet, CoachID stays nil
		default:
			return nil, err
		}
	}

	return ident, nil
}

// RequireCoachID returns the caller's coach profile ID or ErrNoCoachProfile.
func (i *Identity) RequireCoachID() (int64, error) {
	if i.Role != domain.RoleCoach || i.CoachID == nil {
		return 0, ErrNoCoachProfile
	}
	return *i.CoachID, nil
}
