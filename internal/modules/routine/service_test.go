package routine

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"gymcoach/internal/domain"
	"gymcoach/internal/identity"
	"gymcoach/internal/repository"
)

type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) CreateWithExercises(ctx context.Context, routine *domain.Routine, lines []domain.RoutineExercise, assignTo *int64) (*domain.RoutineAssignment, error) {
	args := m.Called(ctx, routine, lines, assignTo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutineAssignment), args.Error(1)
}

func (m *MockRoutineRepository) GetByID(ctx context.Context, id int64) (*domain.Routine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *MockRoutineRepository) GetByIDForCoach(ctx context.Context, id, coachID int64) (*domain.Routine, error) {
	args := m.Called(ctx, id, coachID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Routine), args.Error(1)
}

func (m *MockRoutineRepository) Update(ctx context.Context, routine *domain.Routine) error {
	args := m.Called(ctx, routine)
	return args.Error(0)
}

func (m *MockRoutineRepository) ListByCoach(ctx context.Context, coachID int64) ([]domain.Routine, error) {
	args := m.Called(ctx, coachID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Routine), args.Error(1)
}

func (m *MockRoutineRepository) ListExercises(ctx context.Context, routineID int64) ([]repository.RoutineExerciseItem, error) {
	args := m.Called(ctx, routineID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.RoutineExerciseItem), args.Error(1)
}

func (m *MockRoutineRepository) ReplaceExercises(ctx context.Context, routineID int64, lines []domain.RoutineExercise) error {
	args := m.Called(ctx, routineID, lines)
	return args.Error(0)
}

func (m *MockRoutineRepository) Delete(ctx context.Context, routineID int64) error {
	args := m.Called(ctx, routineID)
	return args.Error(0)
}

type MockAssignmentRepository struct {
	mock.Mock
}

func (m *MockAssignmentRepository) AssignToClient(ctx context.Context, routineID, userID int64, days []domain.TrainingDay) (*domain.RoutineAssignment, error) {
	args := m.Called(ctx, routineID, userID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutineAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) Complete(ctx context.Context, userID, routineID int64) (int64, error) {
	args := m.Called(ctx, userID, routineID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByUser(ctx context.Context, userID int64) (*domain.RoutineAssignment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutineAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveForDay(ctx context.Context, userID int64, weekday string) (*domain.RoutineAssignment, error) {
	args := m.Called(ctx, userID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutineAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetByIDForUser(ctx context.Context, id, userID int64) (*domain.RoutineAssignment, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoutineAssignment), args.Error(1)
}

func (m *MockAssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]repository.AssignmentListItem, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.AssignmentListItem), args.Error(1)
}

func (m *MockAssignmentRepository) ListTrainingDays(ctx context.Context, assignmentID int64) ([]domain.TrainingDay, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainingDay), args.Error(1)
}

type MockCoachClientChecker struct {
	mock.Mock
}

func (m *MockCoachClientChecker) GetActiveByCoachAndUser(ctx context.Context, coachID, userID int64) (*domain.CoachAssignment, error) {
	args := m.Called(ctx, coachID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoachAssignment), args.Error(1)
}

type MockExerciseRepository struct {
	mock.Mock
}

func (m *MockExerciseRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, userID int64) (*identity.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyRoutineAssigned(ctx context.Context, clientUserID, coachUserID int64, routineName string) error {
	args := m.Called(ctx, clientUserID, coachUserID, routineName)
	return args.Error(0)
}

type fixture struct {
	routines    *MockRoutineRepository
	assignments *MockAssignmentRepository
	coachLinks  *MockCoachClientChecker
	exercises   *MockExerciseRepository
	resolver    *MockResolver
	notifs      *MockNotifier
	svc         *Service
}

func newFixture(withNotifs bool) *fixture {
	f := &fixture{
		routines:    new(MockRoutineRepository),
		assignments: new(MockAssignmentRepository),
		coachLinks:  new(MockCoachClientChecker),
		exercises:   new(MockExerciseRepository),
		resolver:    new(MockResolver),
	}
	var notifs NotificationSender
	if withNotifs {
		f.notifs = new(MockNotifier)
		notifs = f.notifs
	}
	f.svc = NewService(f.routines, f.assignments, f.coachLinks, f.exercises, f.resolver, notifs)
	return f
}

func (f *fixture) coach(userID, coachID int64) {
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(&identity.Identity{UserID: userID, Role: domain.RoleCoach, CoachID: &coachID}, nil)
}

func (f *fixture) client(userID int64) {
	f.resolver.On("Resolve", mock.Anything, userID).
		Return(&identity.Identity{UserID: userID, Role: domain.RoleClient}, nil)
}

func TestCreateRoutine_EmptyExercises(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)

	_, _, err := f.svc.CreateRoutine(context.Background(), 30, CreateRoutineRequest{
		Name:      "Push Day",
		Exercises: nil,
	})

	assert.ErrorIs(t, err, ErrEmptyExercises)
	f.routines.AssertNotCalled(t, "CreateWithExercises",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRoutine_UnknownExercise(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.exercises.On("CountByIDs", mock.Anything, []int64{1, 99}).Return(int64(1), nil)

	_, _, err := f.svc.CreateRoutine(context.Background(), 30, CreateRoutineRequest{
		Name: "Push Day",
		Exercises: []ExerciseLine{
			{ExerciseID: 1, Sets: 3, Reps: "10"},
			{ExerciseID: 99, Sets: 3, Reps: "10"},
		},
	})

	assert.ErrorIs(t, err, ErrExerciseNotFound)
}

func TestCreateRoutine_TargetNotAssigned(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.exercises.On("CountByIDs", mock.Anything, []int64{1}).Return(int64(1), nil)
	f.coachLinks.On("GetActiveByCoachAndUser", mock.Anything, int64(3), int64(7)).Return(nil, nil)

	target := int64(7)
	_, _, err := f.svc.CreateRoutine(context.Background(), 30, CreateRoutineRequest{
		Name:           "Push Day",
		Exercises:      []ExerciseLine{{ExerciseID: 1, Sets: 3, Reps: "10"}},
		TargetClientID: &target,
	})

	assert.ErrorIs(t, err, ErrClientNotAssigned)
	f.routines.AssertNotCalled(t, "CreateWithExercises",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRoutine_WithTargetAssignsAtomically(t *testing.T) {
	f := newFixture(true)
	f.coach(30, 3)
	f.exercises.On("CountByIDs", mock.Anything, []int64{1}).Return(int64(1), nil)
	f.coachLinks.On("GetActiveByCoachAndUser", mock.Anything, int64(3), int64(7)).
		Return(&domain.CoachAssignment{ID: 1, CoachID: 3, UserID: 7, State: domain.AssignmentActive}, nil)
	f.routines.On("CreateWithExercises",
		mock.Anything, mock.AnythingOfType("*domain.Routine"), mock.Anything, mock.AnythingOfType("*int64")).
		Return(&domain.RoutineAssignment{ID: 5, UserID: 7, State: domain.RoutineActive}, nil)
	f.notifs.On("NotifyRoutineAssigned", mock.Anything, int64(7), int64(30), "Push Day").Return(nil)

	target := int64(7)
	r, a, err := f.svc.CreateRoutine(context.Background(), 30, CreateRoutineRequest{
		Name:           "Push Day",
		Exercises:      []ExerciseLine{{ExerciseID: 1, Sets: 3, Reps: "10"}},
		TargetClientID: &target,
	})

	assert.NoError(t, err)
	assert.True(t, r.Personalized)
	assert.Equal(t, domain.RoutineActive, a.State)
	f.notifs.AssertExpectations(t)
}

func TestAssignRoutine_InvalidWeekday(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(&domain.Routine{ID: 10, CoachID: 3, Name: "Pull Day"}, nil)
	f.coachLinks.On("GetActiveByCoachAndUser", mock.Anything, int64(3), int64(7)).
		Return(&domain.CoachAssignment{State: domain.AssignmentActive}, nil)

	_, err := f.svc.AssignRoutine(context.Background(), 30, 10, AssignRoutineRequest{
		ClientID:     7,
		TrainingDays: []TrainingDayRequest{{Weekday: "lunes"}},
	})

	assert.ErrorIs(t, err, ErrInvalidWeekday)
	f.assignments.AssertNotCalled(t, "AssignToClient",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssignRoutine_ForeignRoutine(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.AssignRoutine(context.Background(), 30, 10, AssignRoutineRequest{ClientID: 7})

	assert.ErrorIs(t, err, ErrRoutineNotFound)
}

func TestAssignRoutine_Success(t *testing.T) {
	f := newFixture(true)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(&domain.Routine{ID: 10, CoachID: 3, Name: "Pull Day"}, nil)
	f.coachLinks.On("GetActiveByCoachAndUser", mock.Anything, int64(3), int64(7)).
		Return(&domain.CoachAssignment{State: domain.AssignmentActive}, nil)
	f.assignments.On("AssignToClient", mock.Anything, int64(10), int64(7),
		mock.AnythingOfType("[]domain.TrainingDay")).
		Return(&domain.RoutineAssignment{ID: 6, RoutineID: 10, UserID: 7, State: domain.RoutineActive}, nil)
	f.notifs.On("NotifyRoutineAssigned", mock.Anything, int64(7), int64(30), "Pull Day").Return(nil)

	details, err := f.svc.AssignRoutine(context.Background(), 30, 10, AssignRoutineRequest{
		ClientID: 7,
		TrainingDays: []TrainingDayRequest{
			{Weekday: "Monday", StartTime: "08:00"},
			{Weekday: "thursday"},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoutineActive, details.Assignment.State)
	assert.Equal(t, "monday", details.TrainingDays[0].Weekday)
	f.notifs.AssertExpectations(t)
}

func TestAssignRoutine_LostRaceIsConflict(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(&domain.Routine{ID: 10, CoachID: 3, Name: "Pull Day"}, nil)
	f.coachLinks.On("GetActiveByCoachAndUser", mock.Anything, int64(3), int64(7)).
		Return(&domain.CoachAssignment{State: domain.AssignmentActive}, nil)
	f.assignments.On("AssignToClient", mock.Anything, int64(10), int64(7),
		mock.AnythingOfType("[]domain.TrainingDay")).
		Return(nil, &pgconn.PgError{Code: "23505", ConstraintName: "idx_one_active_routine_per_client"})

	_, err := f.svc.AssignRoutine(context.Background(), 30, 10, AssignRoutineRequest{ClientID: 7})

	assert.ErrorIs(t, err, ErrAssignConflict)
}

func TestUpdateRoutine_Success(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(&domain.Routine{ID: 10, CoachID: 3, Name: "Pull Day", DurationMinutes: 45}, nil)
	f.routines.On("Update", mock.Anything, mock.MatchedBy(func(r *domain.Routine) bool {
		return r.ID == 10 && r.Name == "Pull Day v2" && r.Goal == "hypertrophy" && r.DurationMinutes == 60
	})).Return(nil)

	r, err := f.svc.UpdateRoutine(context.Background(), 30, 10, UpdateRoutineRequest{
		Name:            "Pull Day v2",
		Goal:            "hypertrophy",
		DurationMinutes: 60,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Pull Day v2", r.Name)
	f.routines.AssertExpectations(t)
}

func TestUpdateRoutine_EmptyName(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)

	_, err := f.svc.UpdateRoutine(context.Background(), 30, 10, UpdateRoutineRequest{Name: "  "})

	assert.ErrorIs(t, err, ErrValidation)
	f.routines.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRoutine_ForeignRoutine(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.UpdateRoutine(context.Background(), 30, 10, UpdateRoutineRequest{Name: "Pull Day v2"})

	assert.ErrorIs(t, err, ErrRoutineNotFound)
	f.routines.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCompleteRoutine_NoActiveAssignment(t *testing.T) {
	f := newFixture(false)
	f.client(7)
	f.assignments.On("Complete", mock.Anything, int64(7), int64(10)).Return(int64(0), nil)

	err := f.svc.CompleteRoutine(context.Background(), 7, 10)

	assert.ErrorIs(t, err, ErrNoActiveRoutine)
}

func TestCompleteRoutine_Success(t *testing.T) {
	f := newFixture(false)
	f.client(7)
	f.assignments.On("Complete", mock.Anything, int64(7), int64(10)).Return(int64(1), nil)

	err := f.svc.CompleteRoutine(context.Background(), 7, 10)

	assert.NoError(t, err)
}

func TestDeleteRoutine_ForeignRoutine(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(nil, gorm.ErrRecordNotFound)

	err := f.svc.DeleteRoutine(context.Background(), 30, 10)

	assert.ErrorIs(t, err, ErrRoutineNotFound)
	f.routines.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestActiveRoutine_InvalidDay(t *testing.T) {
	f := newFixture(false)

	_, _, err := f.svc.ActiveRoutine(context.Background(), 7, "someday")

	assert.ErrorIs(t, err, ErrInvalidWeekday)
}

func TestActiveRoutine_NoneForDay(t *testing.T) {
	f := newFixture(false)
	f.assignments.On("GetActiveForDay", mock.Anything, int64(7), "sunday").Return(nil, nil)

	_, _, err := f.svc.ActiveRoutine(context.Background(), 7, "sunday")

	assert.ErrorIs(t, err, ErrNoActiveRoutine)
}

func TestReplaceExercises_EmptyList(t *testing.T) {
	f := newFixture(false)
	f.coach(30, 3)
	f.routines.On("GetByIDForCoach", mock.Anything, int64(10), int64(3)).
		Return(&domain.Routine{ID: 10, CoachID: 3}, nil)

	_, err := f.svc.ReplaceExercises(context.Background(), 30, 10, ReplaceExercisesRequest{})

	assert.ErrorIs(t, err, ErrEmptyExercises)
	f.routines.AssertNotCalled(t, "ReplaceExercises", mock.Anything, mock.Anything, mock.Anything)
}
