package coaching

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"gymcoach/internal/domain"
	"gymcoach/internal/repository"
)

type Service struct {
	assignments AssignmentRepository
	coaches     CoachRepository
	users       UserRepository
	resolver    Resolver
	notifs      NotificationSender
}

func NewService(
	assignments AssignmentRepository,
	coaches CoachRepository,
	users UserRepository,
	resolver Resolver,
	notifs NotificationSender,
) *Service {
	return &Service{
		assignments: assignments,
		coaches:     coaches,
		users:       users,
		resolver:    resolver,
		notifs:      notifs,
	}
}

// RequestCoach creates a pending assignment from the client to the coach.
// A client can hold at most one open (pending or active) assignment; the
// partial unique index backs that up under concurrent requests.
func (s *Service) RequestCoach(ctx context.Context, clientUserID, coachID int64) (*domain.CoachAssignment, error) {
	ident, err := s.resolver.Resolve(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if ident.Role != domain.RoleClient {
		return nil, ErrForbidden
	}

	coach, err := s.coaches.GetActiveByID(ctx, coachID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}

	open, err := s.assignments.GetOpenByUser(ctx, clientUserID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		if open.State == domain.AssignmentActive {
			return nil, ErrAlreadyAssigned
		}
		return nil, ErrRequestPending
	}

	a := &domain.CoachAssignment{
		CoachID:     coachID,
		UserID:      clientUserID,
		State:       domain.AssignmentPending,
		RequestedAt: time.Now(),
	}
	if err := s.assignments.Create(ctx, a); err != nil {
		if isOpenAssignmentConflict(err) {
			// lost a concurrent race, re-read to report the right state
			open, rerr := s.assignments.GetOpenByUser(ctx, clientUserID)
			if rerr == nil && open != nil && open.State == domain.AssignmentActive {
				return nil, ErrAlreadyAssigned
			}
			return nil, ErrRequestPending
		}
		return nil, err
	}

	if s.notifs != nil {
		client, err := s.users.GetByID(ctx, clientUserID)
		if err == nil {
			_ = s.notifs.NotifyCoachRequest(ctx, coach.UserID, clientUserID, client.Name)
		}
	}

	return a, nil
}

// AcceptRequest moves a pending request to active. Accepting an already
// active assignment is a no-op; any other state is a conflict.
func (s *Service) AcceptRequest(ctx context.Context, coachUserID, assignmentID int64) (*domain.CoachAssignment, error) {
	return s.decide(ctx, coachUserID, assignmentID, domain.AssignmentActive)
}

// RejectRequest moves a pending request to rejected, freeing the client to
// request another coach.
func (s *Service) RejectRequest(ctx context.Context, coachUserID, assignmentID int64) (*domain.CoachAssignment, error) {
	return s.decide(ctx, coachUserID, assignmentID, domain.AssignmentRejected)
}

func (s *Service) decide(ctx context.Context, coachUserID, assignmentID int64, target domain.AssignmentState) (*domain.CoachAssignment, error) {
	ident, err := s.resolver.Resolve(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	coachID, err := ident.RequireCoachID()
	if err != nil {
		return nil, ErrForbidden
	}

	a, err := s.assignments.GetByID(ctx, assignmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	// a foreign coach's request must look like a missing one
	if a.CoachID != coachID {
		return nil, ErrAssignmentNotFound
	}

	if a.State == target {
		return a, nil
	}
	if !a.State.CanTransition(target) {
		return nil, ErrAlreadyDecided
	}

	decidedAt := time.Now()
	if err := s.assignments.UpdateState(ctx, a.ID, domain.AssignmentPending, target, decidedAt); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAlreadyDecided
		}
		return nil, err
	}
	a.State = target
	a.DecidedAt = &decidedAt

	if s.notifs != nil {
		coach, err := s.users.GetByID(ctx, coachUserID)
		if err == nil {
			_ = s.notifs.NotifyRequestDecided(ctx, a.UserID, coachUserID, coach.Name, target == domain.AssignmentActive)
		}
	}

	return a, nil
}

func (s *Service) ListClients(ctx context.Context, coachUserID int64) ([]repository.ClientListItem, error) {
	return s.listForCoach(ctx, coachUserID, domain.AssignmentActive)
}

func (s *Service) ListPendingRequests(ctx context.Context, coachUserID int64) ([]repository.ClientListItem, error) {
	return s.listForCoach(ctx, coachUserID, domain.AssignmentPending)
}

func (s *Service) listForCoach(ctx context.Context, coachUserID int64, state domain.AssignmentState) ([]repository.ClientListItem, error) {
	ident, err := s.resolver.Resolve(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	coachID, err := ident.RequireCoachID()
	if err != nil {
		return nil, ErrNoCoachProfile
	}
	return s.assignments.ListByCoachAndState(ctx, coachID, state)
}

// GetClient returns one client's account details, only while the coach has
// an active assignment with them.
func (s *Service) GetClient(ctx context.Context, coachUserID, clientUserID int64) (*domain.User, error) {
	ident, err := s.resolver.Resolve(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	coachID, err := ident.RequireCoachID()
	if err != nil {
		return nil, ErrNoCoachProfile
	}

	a, err := s.assignments.GetActiveByCoachAndUser(ctx, coachID, clientUserID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrClientNotFound
	}

	client, err := s.users.GetByID(ctx, clientUserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrClientNotFound
		}
		return nil, err
	}
	return client, nil
}

// CoachStatus reports a client's current coach relationship state.
func (s *Service) CoachStatus(ctx context.Context, clientUserID int64) (*CoachStatusResponse, error) {
	open, err := s.assignments.GetOpenByUser(ctx, clientUserID)
	if err != nil {
		return nil, err
	}

	resp := &CoachStatusResponse{}
	if open == nil {
		return resp, nil
	}

	resp.HasCoach = open.State == domain.AssignmentActive
	resp.PendingRequest = open.State == domain.AssignmentPending

	coach, err := s.coaches.GetByID(ctx, open.CoachID)
	if err == nil {
		user, uerr := s.users.GetByID(ctx, coach.UserID)
		if uerr == nil {
			resp.Coach = &repository.CoachListItem{
				CoachID:   coach.ID,
				Name:      user.Name,
				Specialty: coach.Specialty,
				Bio:       coach.Bio,
				Schedule:  coach.Schedule,
			}
		}
	}

	return resp, nil
}

func (s *Service) ListCoaches(ctx context.Context) ([]repository.CoachListItem, error) {
	return s.coaches.ListActive(ctx)
}

// UpdateProfile upserts the caller's coach profile.
func (s *Service) UpdateProfile(ctx context.Context, coachUserID int64, req UpdateProfileRequest) (*domain.Coach, error) {
	ident, err := s.resolver.Resolve(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	if ident.Role != domain.RoleCoach {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Specialty) == "" {
		return nil, ErrValidation
	}

	c := &domain.Coach{
		UserID:         coachUserID,
		Specialty:      req.Specialty,
		Certifications: req.Certifications,
		Bio:            req.Bio,
		Schedule:       req.Schedule,
	}
	if err := s.coaches.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func isOpenAssignmentConflict(err error) bool {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_one_open_coach_per_client"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
