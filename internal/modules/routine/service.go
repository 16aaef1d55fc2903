package routine

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"gymcoach/internal/domain"
	"gymcoach/internal/repository"
)

type Service struct {
	routines    RoutineRepository
	assignments AssignmentRepository
	coachLinks  CoachClientChecker
	exercises   ExerciseRepository
	resolver    Resolver
	notifs      NotificationSender
}

func NewService(
	routines RoutineRepository,
	assignments AssignmentRepository,
	coachLinks CoachClientChecker,
	exercises ExerciseRepository,
	resolver Resolver,
	notifs NotificationSender,
) *Service {
	return &Service{
		routines:    routines,
		assignments: assignments,
		coachLinks:  coachLinks,
		exercises:   exercises,
		resolver:    resolver,
		notifs:      notifs,
	}
}

func (s *Service) resolveCoach(ctx context.Context, coachUserID int64) (int64, error) {
	ident, err := s.resolver.Resolve(ctx, coachUserID)
	if err != nil {
		return 0, err
	}
	if ident.Role != domain.RoleCoach {
		return 0, ErrForbidden
	}
	coachID, err := ident.RequireCoachID()
	if err != nil {
		return 0, ErrNoCoachProfile
	}
	return coachID, nil
}

func (s *Service) validateLines(ctx context.Context, lines []ExerciseLine) ([]domain.RoutineExercise, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyExercises
	}

	ids := make([]int64, 0, len(lines))
	out := make([]domain.RoutineExercise, 0, len(lines))
	for _, l := range lines {
		if l.Sets <= 0 || strings.TrimSpace(l.Reps) == "" {
			return nil, ErrValidation
		}
		ids = append(ids, l.ExerciseID)
		out = append(out, domain.RoutineExercise{
			ExerciseID:  l.ExerciseID,
			Position:    l.Position,
			Sets:        l.Sets,
			Reps:        l.Reps,
			RestSeconds: l.RestSeconds,
			Notes:       l.Notes,
		})
	}

	n, err := s.exercises.CountByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if n != int64(len(uniqueIDs(ids))) {
		return nil, ErrExerciseNotFound
	}
	return out, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// CreateRoutine stores a routine template. With TargetClientID set, the
// routine is created and assigned to that client in one transaction, so a
// failed assignment rolls the routine back too.
func (s *Service) CreateRoutine(ctx context.Context, coachUserID int64, req CreateRoutineRequest) (*domain.Routine, *domain.RoutineAssignment, error) {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, nil, ErrValidation
	}

	lines, err := s.validateLines(ctx, req.Exercises)
	if err != nil {
		return nil, nil, err
	}

	r := &domain.Routine{
		CoachID:         coachID,
		Name:            req.Name,
		Description:     req.Description,
		Goal:            req.Goal,
		Difficulty:      req.Difficulty,
		DurationMinutes: req.DurationMinutes,
	}

	if req.TargetClientID != nil {
		link, err := s.coachLinks.GetActiveByCoachAndUser(ctx, coachID, *req.TargetClientID)
		if err != nil {
			return nil, nil, err
		}
		if link == nil {
			return nil, nil, ErrClientNotAssigned
		}
		r.Personalized = true
		r.TargetUserID = req.TargetClientID
	}

	assignment, err := s.routines.CreateWithExercises(ctx, r, lines, req.TargetClientID)
	if err != nil {
		if req.TargetClientID != nil && isActiveRoutineConflict(err) {
			return nil, nil, ErrAssignConflict
		}
		return nil, nil, err
	}

	if assignment != nil && s.notifs != nil {
		_ = s.notifs.NotifyRoutineAssigned(ctx, *req.TargetClientID, coachUserID, r.Name)
	}

	return r, assignment, nil
}

// AssignRoutine puts the routine on the client's plan. Whatever routine was
// active for the client before is superseded unconditionally.
func (s *Service) AssignRoutine(ctx context.Context, coachUserID, routineID int64, req AssignRoutineRequest) (*AssignmentDetails, error) {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return nil, err
	}

	r, err := s.routines.GetByIDForCoach(ctx, routineID, coachID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	link, err := s.coachLinks.GetActiveByCoachAndUser(ctx, coachID, req.ClientID)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, ErrClientNotAssigned
	}

	days := make([]domain.TrainingDay, 0, len(req.TrainingDays))
	for _, d := range req.TrainingDays {
		day := strings.ToLower(strings.TrimSpace(d.Weekday))
		if !domain.ValidWeekday(day) {
			return nil, ErrInvalidWeekday
		}
		days = append(days, domain.TrainingDay{
			Weekday:   day,
			StartTime: d.StartTime,
			EndTime:   d.EndTime,
			Notes:     d.Notes,
		})
	}

	a, err := s.assignments.AssignToClient(ctx, routineID, req.ClientID, days)
	if err != nil {
		// lost a concurrent race on the client's single active slot
		if isActiveRoutineConflict(err) {
			return nil, ErrAssignConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyRoutineAssigned(ctx, req.ClientID, coachUserID, r.Name)
	}

	return &AssignmentDetails{Assignment: a, TrainingDays: days}, nil
}

// CompleteRoutine lets a client close their active run of the routine.
func (s *Service) CompleteRoutine(ctx context.Context, clientUserID, routineID int64) error {
	ident, err := s.resolver.Resolve(ctx, clientUserID)
	if err != nil {
		return err
	}
	if ident.Role != domain.RoleClient {
		return ErrForbidden
	}

	rows, err := s.assignments.Complete(ctx, clientUserID, routineID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNoActiveRoutine
	}
	return nil
}

// UpdateRoutine rewrites the routine's metadata. The exercise list is
// managed separately through ReplaceExercises.
func (s *Service) UpdateRoutine(ctx context.Context, coachUserID, routineID int64, req UpdateRoutineRequest) (*domain.Routine, error) {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	r, err := s.routines.GetByIDForCoach(ctx, routineID, coachID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	r.Name = req.Name
	r.Description = req.Description
	r.Goal = req.Goal
	r.Difficulty = req.Difficulty
	r.DurationMinutes = req.DurationMinutes

	if err := s.routines.Update(ctx, r); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}
	return r, nil
}

// DeleteRoutine removes a routine the coach owns. Active assignments of it
// are cancelled in the same transaction.
func (s *Service) DeleteRoutine(ctx context.Context, coachUserID, routineID int64) error {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return err
	}

	if _, err := s.routines.GetByIDForCoach(ctx, routineID, coachID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrRoutineNotFound
		}
		return err
	}

	if err := s.routines.Delete(ctx, routineID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return ErrRoutineNotFound
		}
		return err
	}
	return nil
}

// ReplaceExercises swaps the routine's full exercise list.
func (s *Service) ReplaceExercises(ctx context.Context, coachUserID, routineID int64, req ReplaceExercisesRequest) ([]domain.RoutineExercise, error) {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return nil, err
	}

	if _, err := s.routines.GetByIDForCoach(ctx, routineID, coachID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	lines, err := s.validateLines(ctx, req.Exercises)
	if err != nil {
		return nil, err
	}

	if err := s.routines.ReplaceExercises(ctx, routineID, lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (s *Service) GetRoutine(ctx context.Context, coachUserID, routineID int64) (*RoutineDetails, error) {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return nil, err
	}

	r, err := s.routines.GetByIDForCoach(ctx, routineID, coachID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoutineNotFound
		}
		return nil, err
	}

	exercises, err := s.routines.ListExercises(ctx, routineID)
	if err != nil {
		return nil, err
	}
	return &RoutineDetails{Routine: *r, Exercises: exercises}, nil
}

func (s *Service) ListCoachRoutines(ctx context.Context, coachUserID int64) ([]domain.Routine, error) {
	coachID, err := s.resolveCoach(ctx, coachUserID)
	if err != nil {
		return nil, err
	}
	return s.routines.ListByCoach(ctx, coachID)
}

func (s *Service) ListClientAssignments(ctx context.Context, clientUserID int64) ([]repository.AssignmentListItem, error) {
	return s.assignments.ListByUser(ctx, clientUserID)
}

// ActiveRoutine returns the client's active routine with its exercises.
// With day set, only an assignment scheduled for that weekday matches.
func (s *Service) ActiveRoutine(ctx context.Context, clientUserID int64, day string) (*RoutineDetails, *AssignmentDetails, error) {
	var a *domain.RoutineAssignment
	var err error

	if day != "" {
		day = strings.ToLower(strings.TrimSpace(day))
		if !domain.ValidWeekday(day) {
			return nil, nil, ErrInvalidWeekday
		}
		a, err = s.assignments.GetActiveForDay(ctx, clientUserID, day)
	} else {
		a, err = s.assignments.GetActiveByUser(ctx, clientUserID)
	}
	if err != nil {
		return nil, nil, err
	}
	if a == nil {
		return nil, nil, ErrNoActiveRoutine
	}

	r, err := s.routines.GetByID(ctx, a.RoutineID)
	if err != nil {
		return nil, nil, err
	}

	exercises, err := s.routines.ListExercises(ctx, a.RoutineID)
	if err != nil {
		return nil, nil, err
	}

	days, err := s.assignments.ListTrainingDays(ctx, a.ID)
	if err != nil {
		return nil, nil, err
	}

	return &RoutineDetails{Routine: *r, Exercises: exercises},
		&AssignmentDetails{Assignment: a, TrainingDays: days}, nil
}

// TrainingDays lists the schedule of one of the client's own assignments.
func (s *Service) TrainingDays(ctx context.Context, clientUserID, assignmentID int64) ([]domain.TrainingDay, error) {
	if _, err := s.assignments.GetByIDForUser(ctx, assignmentID, clientUserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrAssignmentMissing
		}
		return nil, err
	}
	return s.assignments.ListTrainingDays(ctx, assignmentID)
}

func isActiveRoutineConflict(err error) bool {
	if pgErr, ok := err.(*pgconn.PgError); ok {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_one_active_routine_per_client"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}
